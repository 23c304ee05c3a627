package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOllama LLMProvider = "ollama"
	ProviderOpenAI LLMProvider = "openai"
)

type EventSource string

const (
	SourceStatic  EventSource = "static"
	SourceEventim EventSource = "eventim"
)

type Config struct {
	// LLM settings
	LLMProvider   LLMProvider `env:"LLM_PROVIDER" envDefault:"ollama"`
	OllamaURL     string      `env:"OLLAMA_URL" envDefault:"http://localhost:11434/api/generate"`
	OllamaModel   string      `env:"OLLAMA_MODEL" envDefault:"llama3.1"`
	OpenAIAPIKey  string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string      `env:"OPENAI_BASE_URL"`
	OpenAIModel   string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Per-call budget for the model backend
	LLMTimeoutSeconds int `env:"LLM_TIMEOUT_SECONDS" envDefault:"60"`
	LLMRetries        int `env:"LLM_RETRIES" envDefault:"1"`

	// Event catalog
	EventSource     EventSource `env:"EVENT_SOURCE" envDefault:"static"`
	EventimWebID    string      `env:"EVENTIM_WEB_ID" envDefault:"web__eventim-svn"`
	EventimLanguage string      `env:"EVENTIM_LANGUAGE" envDefault:"sl"`
	EventimPageSize int         `env:"EVENTIM_PAGE_SIZE" envDefault:"50"`

	// Storage
	LogFilePath string `env:"LOG_FILE_PATH" envDefault:"logs/session.jsonl"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
