package llm

import "context"

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// Client is an opaque text-completion backend: one prompt in, one text out.
type Client interface {
	Complete(ctx context.Context, prompt string) (Response, error)
}
