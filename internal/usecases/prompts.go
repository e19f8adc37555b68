package usecases

import (
	"embed"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

// loadPrompt decodes an embedded prompt template and fills its indexed placeholders with args.
func loadPrompt(name string, args ...any) ([]domain.CompletionMessage, error) {
	file, err := promptFiles.Open("prompts/" + name)
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	prompt := []domain.CompletionMessage{}
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return nil, fmt.Errorf("decode prompt %s: %w", name, err)
	}

	for i, msg := range prompt {
		if strings.Contains(msg.Content, "%[") {
			prompt[i].Content = fmt.Sprintf(msg.Content, args...)
		}
	}
	return prompt, nil
}

// stripCodeFence removes a surrounding markdown code fence that some models add around JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
