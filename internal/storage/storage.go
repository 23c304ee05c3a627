package storage

import "time"

// Interaction is one logged conversation turn.
type Interaction struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Agent     string    `json:"agent"`
	Action    string    `json:"action,omitempty"`
}

// Recorder persists interactions for later inspection.
type Recorder interface {
	Append(i Interaction) error
}
