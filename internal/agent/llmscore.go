package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"event-agent/internal/events"
	"event-agent/internal/llm"
)

const (
	llmScoreMax   = 5
	maxReasonsLen = 3
)

// eventBrief is the compact projection sent to the model: enough to judge
// relevance, small enough to keep the batch prompt bounded.
type eventBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	Organizer string `json:"organizer"`
	Venue     string `json:"venue"`
}

type scoreMeta struct {
	score   int
	reasons []string
}

// llmScoreEvents scores a whole batch with one model call. Any failure to
// obtain or validate the response fails the entire batch; the caller falls
// back to rule scoring. Partial results are never trusted.
func (a *Agent) llmScoreEvents(ctx context.Context, sess *Session, batch []events.Event) ([]ScoredEvent, error) {
	if len(batch) == 0 {
		return []ScoredEvent{}, nil
	}

	briefs := make([]eventBrief, 0, len(batch))
	for _, ev := range batch {
		briefs = append(briefs, eventBrief{
			ID:        ev.ID,
			Name:      ev.Name,
			Category:  ev.Category,
			Location:  ev.Location,
			Date:      ev.Date,
			Organizer: ev.Organizer,
			Venue:     ev.Venue,
		})
	}
	briefJSON, err := json.Marshal(briefs)
	if err != nil {
		return nil, fmt.Errorf("marshal event briefs: %w", err)
	}

	resp, err := a.llm.Complete(ctx, scoreEventsPrompt(sess.Prefs, a.now().Format("2006-01-02"), string(briefJSON)))
	if err != nil {
		return nil, fmt.Errorf("batch scoring call failed: %w", err)
	}

	scores, err := parseScoreReply(resp.Content)
	if err != nil {
		return nil, err
	}

	out := make([]ScoredEvent, 0, len(batch))
	for _, ev := range batch {
		se := ScoredEvent{Event: ev, Reasons: []string{}}
		if meta, ok := scores[ev.ID]; ok {
			se.Score = meta.score
			se.Reasons = meta.reasons
		}
		out = append(out, se)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// parseScoreReply decodes the model's JSON array into a score map keyed by
// event id. Malformed entries and entries without a usable id or score are
// skipped; ids the batch does not contain are simply never looked up.
func parseScoreReply(raw string) (map[string]scoreMeta, error) {
	var entries []json.RawMessage
	if err := llm.DecodeJSON(raw, &entries); err != nil {
		return nil, err
	}

	scores := make(map[string]scoreMeta, len(entries))
	for _, entry := range entries {
		var obj map[string]any
		if err := json.Unmarshal(entry, &obj); err != nil {
			continue
		}
		id, ok := idString(obj["id"])
		if !ok {
			continue
		}
		score, ok := toInt(obj["score"])
		if !ok {
			continue
		}
		scores[id] = scoreMeta{
			score:   clamp(score, 0, llmScoreMax),
			reasons: toReasons(obj["reasons"]),
		}
	}
	return scores, nil
}

// idString coerces the id field to a string; models return ids both as
// strings and as numbers.
func idString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	default:
		return "", false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func toReasons(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
		if len(out) == maxReasonsLen {
			break
		}
	}
	return out
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
