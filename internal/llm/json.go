package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Sanitize turns raw model output into parseable JSON text. Models asked
// for JSON-only responses still wrap it in prose or markdown fences often
// enough that a strict pass is tried first and a single repair pass
// second. On continued failure the error wraps ErrUnparsable.
func Sanitize(raw string) (string, error) {
	text := stripFences(strings.TrimSpace(raw))
	if json.Valid([]byte(text)) {
		return text, nil
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil || !json.Valid([]byte(repaired)) {
		return "", fmt.Errorf("%w: %s", ErrUnparsable, firstLine(text))
	}
	return repaired, nil
}

// DecodeJSON sanitizes raw model output and decodes it into v.
func DecodeJSON(raw string, v any) error {
	text, err := Sanitize(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %s", ErrUnparsable, firstLine(text))
	}
	return nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if len(first) <= 10 && !strings.ContainsAny(first, "{[") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	return s
}
