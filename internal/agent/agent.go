// Package agent implements the event recommendation engine: preference
// extraction, dual-path event scoring with fallback, and the action
// planner driving one conversational session.
package agent

import (
	"math/rand"
	"time"

	"event-agent/internal/events"
	"event-agent/internal/history"
	"event-agent/internal/kb"
	"event-agent/internal/llm"
)

// Agent holds the session-independent collaborators. One Agent can serve
// any number of Sessions.
type Agent struct {
	llm    llm.Client
	events events.Provider
	now    func() time.Time
	rng    *rand.Rand
}

func New(client llm.Client, provider events.Provider) *Agent {
	return &Agent{
		llm:    client,
		events: provider,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes the cold-start suggestion scores deterministic.
func (a *Agent) Seed(seed int64) {
	a.rng = rand.New(rand.NewSource(seed))
}

// Session is the per-conversation state. Nothing here is shared between
// sessions and nothing survives the session.
type Session struct {
	Prefs   Preferences
	KB      *kb.Graph
	History *history.Buffer
}

func NewSession() *Session {
	return &Session{
		Prefs:   NewPreferences(),
		KB:      kb.Default(),
		History: history.NewBuffer(),
	}
}
