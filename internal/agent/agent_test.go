package agent

import (
	"context"
	"time"

	"event-agent/internal/events"
	"event-agent/internal/llm"
)

// fakeLLM replays a scripted sequence of responses and errors, recording
// every prompt it was asked.
type fakeLLM struct {
	script  []step
	prompts []string
}

type step struct {
	content string
	err     error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (llm.Response, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.script) == 0 {
		return llm.Response{}, nil
	}
	s := f.script[0]
	if len(f.script) > 1 {
		f.script = f.script[1:]
	}
	return llm.Response{Content: s.content, Model: "fake"}, s.err
}

func reply(content string) step { return step{content: content} }
func failure(err error) step    { return step{err: err} }

// fixedProvider serves a fixed batch, or fails.
type fixedProvider struct {
	batch []events.Event
	err   error
}

func (p *fixedProvider) Fetch(ctx context.Context) ([]events.Event, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make([]events.Event, len(p.batch))
	copy(out, p.batch)
	return out, nil
}

func testBatch() []events.Event {
	s := events.NewStatic()
	batch, _ := s.Fetch(context.Background())
	return batch
}

func newTestAgent(client llm.Client, provider events.Provider) *Agent {
	a := New(client, provider)
	a.now = func() time.Time { return time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC) }
	a.Seed(1)
	return a
}
