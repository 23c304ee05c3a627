package llm

import (
	"context"
	"errors"
	"time"
)

// RetryClient wraps a backend client with a per-call timeout and a small
// retry budget. Only backend (transport/HTTP) failures are retried; a
// response that arrives but fails downstream parsing is not a transport
// problem and must not be retried here.
type RetryClient struct {
	inner   Client
	timeout time.Duration
	retries int
}

func WithRetry(inner Client, timeout time.Duration, retries int) *RetryClient {
	if retries < 0 {
		retries = 0
	}
	return &RetryClient{inner: inner, timeout: timeout, retries: retries}
}

func (c *RetryClient) Complete(ctx context.Context, prompt string) (Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		resp, err := c.attempt(ctx, prompt)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var be *BackendError
		if !errors.As(err, &be) {
			return Response{}, err
		}
		if ctx.Err() != nil {
			return Response{}, lastErr
		}
	}
	return Response{}, lastErr
}

func (c *RetryClient) attempt(ctx context.Context, prompt string) (Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.inner.Complete(ctx, prompt)
}
