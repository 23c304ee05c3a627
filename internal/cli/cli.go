// Package cli runs the line-oriented conversation loop.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"event-agent/internal/agent"
	"event-agent/internal/storage"
)

const (
	greeting = "🤖 Hi! I'm your Event Agent."
	farewell = "🤖 Goodbye! Have fun at the events!"
)

var exitPhrases = []string{"exit", "quit", "bye"}

// Loop drives one interactive session over a reader/writer pair.
type Loop struct {
	agent *agent.Agent
	sess  *agent.Session
	in    io.Reader
	out   io.Writer
	rec   storage.Recorder
	now   func() time.Time
}

// New builds a loop. rec may be nil to disable transcript recording.
func New(a *agent.Agent, sess *agent.Session, in io.Reader, out io.Writer, rec storage.Recorder) *Loop {
	return &Loop{agent: a, sess: sess, in: in, out: out, rec: rec, now: time.Now}
}

// Run reads user turns until an exit phrase, EOF, or context cancellation.
// Per-turn failures are reported to the user and never end the session.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, greeting)

	scanner := bufio.NewScanner(l.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(l.out, "\n"+farewell)
			return nil
		}

		fmt.Fprint(l.out, "👤 You: ")
		if !scanner.Scan() {
			fmt.Fprintln(l.out, "\n"+farewell)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if wantsExit(input) {
			fmt.Fprintln(l.out, farewell)
			return nil
		}

		res := l.agent.PlanAndExecute(ctx, l.sess, input)
		if res.Quit {
			fmt.Fprintln(l.out, farewell)
			return nil
		}

		l.sess.History.Append(input, res.Reply)
		l.record(input, res)

		fmt.Fprintf(l.out, "🤖 %s\n\n", res.Reply)
	}
}

func (l *Loop) record(input string, res agent.Result) {
	if l.rec == nil {
		return
	}
	err := l.rec.Append(storage.Interaction{
		Timestamp: l.now(),
		User:      input,
		Agent:     res.Reply,
		Action:    res.Action,
	})
	if err != nil {
		log.Printf("failed to record interaction: %v", err)
	}
}

func wantsExit(input string) bool {
	lower := strings.ToLower(input)
	for _, phrase := range exitPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
