// Command demoprovider is a stdio tool provider used for local development and tests.
// It exposes a calculator and a meeting booking tool.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "[demoprovider] ", log.LstdFlags|log.Lmsgprefix)

	if err := newServer().Run(ctx, &sdk.StdioTransport{}); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
