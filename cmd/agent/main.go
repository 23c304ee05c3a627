package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"event-agent/internal/agent"
	"event-agent/internal/cli"
	"event-agent/internal/config"
	"event-agent/internal/events"
	"event-agent/internal/llm"
	"event-agent/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}
	wrapped := llm.WithRetry(client, time.Duration(cfg.LLMTimeoutSeconds)*time.Second, cfg.LLMRetries)

	provider, err := newEventProvider(cfg)
	if err != nil {
		log.Fatalf("failed to create event provider: %v", err)
	}

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init interaction recorder: %v", err)
		} else {
			rec = fr
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := agent.New(wrapped, provider)
	loop := cli.New(a, agent.NewSession(), os.Stdin, os.Stdout, rec)
	if err := loop.Run(ctx); err != nil {
		log.Fatalf("session ended with error: %v", err)
	}
}

func newEventProvider(cfg *config.Config) (events.Provider, error) {
	switch cfg.EventSource {
	case config.SourceStatic:
		return events.NewStatic(), nil
	case config.SourceEventim:
		return events.NewEventim(cfg.EventimWebID, cfg.EventimLanguage, cfg.EventimPageSize), nil
	default:
		return nil, fmt.Errorf("unknown event source: %s", cfg.EventSource)
	}
}
