package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedClient struct {
	calls int
	resps []Response
	errs  []error
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string) (Response, error) {
	i := c.calls
	c.calls++
	if i >= len(c.errs) {
		i = len(c.errs) - 1
	}
	return c.resps[i], c.errs[i]
}

func TestRetryOnBackendError(t *testing.T) {
	inner := &scriptedClient{
		resps: []Response{{}, {Content: "ok"}},
		errs:  []error{&BackendError{Backend: "ollama", Err: errors.New("connection refused")}, nil},
	}
	c := WithRetry(inner, time.Second, 1)

	resp, err := c.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if resp.Content != "ok" || inner.calls != 2 {
		t.Fatalf("unexpected outcome: %+v calls=%d", resp, inner.calls)
	}
}

func TestRetryBudgetExhausted(t *testing.T) {
	be := &BackendError{Backend: "ollama", Err: errors.New("down")}
	inner := &scriptedClient{resps: []Response{{}}, errs: []error{be}}
	c := WithRetry(inner, time.Second, 1)

	_, err := c.Complete(context.Background(), "p")
	var got *BackendError
	if !errors.As(err, &got) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestNoRetryOnNonBackendError(t *testing.T) {
	inner := &scriptedClient{resps: []Response{{}}, errs: []error{ErrUnparsable}}
	c := WithRetry(inner, time.Second, 3)

	_, err := c.Complete(context.Background(), "p")
	if !errors.Is(err, ErrUnparsable) {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("non-transport errors must not be retried, calls=%d", inner.calls)
	}
}
