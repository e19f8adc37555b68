package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	err := app.NewAgentApp().Run()
	if err != nil {
		panic(err)
	}
}
