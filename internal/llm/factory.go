package llm

import (
	"fmt"
	"strings"

	"event-agent/internal/config"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// NewClient creates the configured backend client.
func NewClient(cfg *config.Config) (Client, error) {
	switch strings.ToLower(string(cfg.LLMProvider)) {
	case ProviderOllama:
		return NewOllama(cfg.OllamaURL, cfg.OllamaModel), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
