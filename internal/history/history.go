// Package history keeps a bounded log of conversation turns used to build
// model context.
package history

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// MaxTurns bounds how many turns are kept; older turns are dropped
	// from the front.
	MaxTurns = 10
	// replyPreviewLen caps how much of an agent reply the transcript
	// carries, so prompts stay bounded over a long session.
	replyPreviewLen = 300
)

// Turn is one completed exchange.
type Turn struct {
	User  string `json:"user"`
	Agent string `json:"agent"`
}

// Buffer is an append-only, front-truncated turn log for one session.
type Buffer struct {
	mu    sync.RWMutex
	turns []Turn
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append records a completed turn, dropping the oldest entries once the
// buffer exceeds MaxTurns.
func (b *Buffer) Append(user, agent string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.turns = append(b.turns, Turn{User: user, Agent: agent})
	if len(b.turns) > MaxTurns {
		b.turns = b.turns[len(b.turns)-MaxTurns:]
	}
}

// Turns returns a copy of the buffered turns, oldest first.
func (b *Buffer) Turns() []Turn {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Turn, len(b.turns))
	copy(out, b.turns)
	return out
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.turns)
}

// Clear drops all buffered turns.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.turns = nil
}

// Transcript renders a numbered conversation context for prompts. Agent
// replies longer than the preview cap are truncated.
func (b *Buffer) Transcript() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var sb strings.Builder
	for i, turn := range b.turns {
		reply := turn.Agent
		if len(reply) > replyPreviewLen {
			reply = reply[:replyPreviewLen] + "..."
		}
		fmt.Fprintf(&sb, "%d. User: %s\n", i+1, turn.User)
		fmt.Fprintf(&sb, "   Agent: %s\n", reply)
	}
	return sb.String()
}
