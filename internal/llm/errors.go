package llm

import (
	"errors"
	"fmt"
)

// ErrUnparsable is returned when model output cannot be decoded as JSON
// even after one repair attempt.
var ErrUnparsable = errors.New("model output is not valid JSON")

// BackendError is returned when the model backend is unreachable or
// replies with a non-2xx status. Extractable via errors.As().
type BackendError struct {
	Backend    string
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s backend returned status %d: %v", e.Backend, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s backend unreachable: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
