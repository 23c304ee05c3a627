package agent

import (
	"fmt"

	"event-agent/internal/events"
)

// Rule weights. Score for one event is the sum of the satisfied rules.
const (
	interestWeight  = 3
	locationWeight  = 2
	priceWeight     = 2
	organizerWeight = 2

	// coldStartMax bounds the pseudo-random score handed to events when
	// nothing is known about the user yet.
	coldStartMax = 3
)

// ScoredEvent is an event with its relevance score and the reasons it was
// awarded.
type ScoredEvent struct {
	events.Event
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// scoreEvent applies the deterministic rules against the session's
// preferences and knowledge base. An empty preference record yields a
// small random score so cold-start users still see suggestions.
func (a *Agent) scoreEvent(sess *Session, ev events.Event) (int, []string) {
	prefs := sess.Prefs
	if prefs.Empty() {
		return a.rng.Intn(coldStartMax + 1), []string{"suggested event"}
	}

	score := 0
	var reasons []string

	if prefs.HasInterest(ev.Category) {
		score += interestWeight
		reasons = append(reasons, fmt.Sprintf("matches %s interest", ev.Category))
	}

	// Either the event's own location or the registered location of its
	// venue may establish the city match.
	if prefs.Location != "" &&
		(ev.Location == prefs.Location || sess.KB.VenueLocation(ev.Venue) == prefs.Location) {
		score += locationWeight
		reasons = append(reasons, "in your city")
	}

	if ceiling, ok := sess.KB.PriceCeiling(prefs.PreferredPrice); ok && ev.Price <= ceiling {
		score += priceWeight
		reasons = append(reasons, "in your price range")
	}

	if sess.KB.Follows(ev.Organizer) {
		score += organizerWeight
		reasons = append(reasons, "by organizer you follow")
	}

	return score, reasons
}

// ruleScoreEvents scores a whole batch with the rule path, preserving the
// batch order.
func (a *Agent) ruleScoreEvents(sess *Session, batch []events.Event) []ScoredEvent {
	out := make([]ScoredEvent, 0, len(batch))
	for _, ev := range batch {
		score, reasons := a.scoreEvent(sess, ev)
		out = append(out, ScoredEvent{Event: ev, Score: score, Reasons: reasons})
	}
	return out
}
