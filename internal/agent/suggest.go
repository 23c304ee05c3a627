package agent

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// SuggestEvents fetches the candidate events and ranks them, model first,
// rules on any model failure. The two scoring paths are never mixed within
// one response. Events scoring zero are dropped.
func (a *Agent) SuggestEvents(ctx context.Context, sess *Session) ([]ScoredEvent, error) {
	batch, err := a.events.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	scored, err := a.llmScoreEvents(ctx, sess, batch)
	if err != nil {
		log.Printf("model scoring unavailable, falling back to rules: %v", err)
		scored = a.ruleScoreEvents(sess, batch)
	}

	kept := make([]ScoredEvent, 0, len(scored))
	for _, se := range scored {
		if se.Score > 0 {
			kept = append(kept, se)
		}
	}
	// Stable sort: equal scores keep their batch order.
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	return kept, nil
}
