package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"event-agent/internal/llm"
)

// Preferences is the structured record of what is known about the user.
// The field set is fixed: a merge may change values but never add or
// remove fields.
type Preferences struct {
	Interests      []string `json:"interests"`
	Location       string   `json:"location"`
	PreferredPrice string   `json:"preferred_price"`
	Date           string   `json:"date"`
}

func NewPreferences() Preferences {
	return Preferences{Interests: []string{}}
}

// Empty reports whether nothing has been learned yet.
func (p Preferences) Empty() bool {
	return len(p.Interests) == 0 && p.Location == "" && p.PreferredPrice == ""
}

// JSON serializes the record for embedding into prompts.
func (p Preferences) JSON() string {
	data, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// HasInterest reports whether the given tag is in the interest set.
func (p Preferences) HasInterest(tag string) bool {
	for _, it := range p.Interests {
		if it == tag {
			return true
		}
	}
	return false
}

// UpdatePreferences asks the model to fold the user's utterance into the
// session's preference record. On any failure the previous record is kept
// unchanged and the error is returned to the caller.
func (a *Agent) UpdatePreferences(ctx context.Context, sess *Session, userInput string) error {
	resp, err := a.llm.Complete(ctx, updatePreferencesPrompt(sess.Prefs, userInput))
	if err != nil {
		return fmt.Errorf("preference extraction failed: %w", err)
	}
	updated, err := mergePreferences(sess.Prefs, resp.Content)
	if err != nil {
		return err
	}
	sess.Prefs = updated
	return nil
}

// prefFieldSet is the only field set a merged record may have.
var prefFieldSet = map[string]bool{
	"interests":       true,
	"location":        true,
	"preferred_price": true,
	"date":            true,
}

// mergePreferences validates raw model output against the fixed field set
// and replaces the record wholesale. The model is an untrusted parser: a
// response that is valid JSON but drops or invents a field is rejected,
// not patched.
func mergePreferences(current Preferences, raw string) (Preferences, error) {
	text, err := llm.Sanitize(raw)
	if err != nil {
		return current, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return current, fmt.Errorf("%w: preferences must be a JSON object", ErrSchemaMismatch)
	}
	if err := checkPrefFieldSet(fields); err != nil {
		return current, err
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	var updated Preferences
	if err := dec.Decode(&updated); err != nil {
		return current, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if updated.Interests == nil {
		updated.Interests = []string{}
	}
	return updated, nil
}

func checkPrefFieldSet(fields map[string]json.RawMessage) error {
	var missing, extra []string
	for name := range prefFieldSet {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range fields {
		if !prefFieldSet[name] {
			extra = append(extra, name)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return fmt.Errorf("%w: missing %v, unexpected %v", ErrSchemaMismatch, missing, extra)
}
