package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"event-agent/internal/llm"
)

func TestLLMScoreHappyPath(t *testing.T) {
	client := &fakeLLM{script: []step{
		reply(`[
			{"id": "1", "score": 4, "reasons": ["matches interest: technology"]},
			{"id": "2", "score": 5, "reasons": ["matches interest: music", "in user's city"]},
			{"id": "3", "score": 1, "reasons": []}
		]`),
	}}
	a := newTestAgent(client, &fixedProvider{})
	sess := sessionWithPrefs(basePrefs())
	batch := testBatch()

	scored, err := a.llmScoreEvents(context.Background(), sess, batch)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(scored) != len(batch) {
		t.Fatalf("expected all %d events back, got %d", len(batch), len(scored))
	}
	if scored[0].ID != "2" || scored[0].Score != 5 {
		t.Fatalf("not sorted by score: %+v", scored[0])
	}
	if len(scored[0].Reasons) != 2 {
		t.Fatalf("reasons lost: %+v", scored[0])
	}

	// Events the model never mentioned: score 0, empty reasons, still present.
	var unmentioned int
	for _, se := range scored {
		if se.ID == "4" || se.ID == "5" || se.ID == "6" {
			unmentioned++
			if se.Score != 0 || se.Reasons == nil || len(se.Reasons) != 0 {
				t.Fatalf("unmentioned event mishandled: %+v", se)
			}
		}
	}
	if unmentioned != 3 {
		t.Fatalf("unmentioned events dropped")
	}
}

func TestLLMScoreClampsAndCoerces(t *testing.T) {
	client := &fakeLLM{script: []step{
		reply(`[
			{"id": 1, "score": 9, "reasons": ["great fit"]},
			{"id": "2", "score": "-3", "reasons": ["nope"]},
			{"id": "3", "score": "4"}
		]`),
	}}
	a := newTestAgent(client, &fixedProvider{})
	scored, err := a.llmScoreEvents(context.Background(), sessionWithPrefs(basePrefs()), testBatch())
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	byID := map[string]ScoredEvent{}
	for _, se := range scored {
		byID[se.ID] = se
	}
	if byID["1"].Score != 5 {
		t.Fatalf("score 9 not clamped to 5: %+v", byID["1"])
	}
	if byID["2"].Score != 0 {
		t.Fatalf("score -3 not clamped to 0: %+v", byID["2"])
	}
	if byID["3"].Score != 4 {
		t.Fatalf("string score not coerced: %+v", byID["3"])
	}
}

func TestLLMScoreIgnoresJunkEntries(t *testing.T) {
	client := &fakeLLM{script: []step{
		reply(`[
			"not an object",
			{"score": 5, "reasons": ["no id"]},
			{"id": "99", "score": 5, "reasons": ["unknown event"]},
			{"id": "2", "score": "high", "reasons": ["unparsable score"]},
			{"id": "1", "score": 3, "reasons": ["fine"]}
		]`),
	}}
	a := newTestAgent(client, &fixedProvider{})
	scored, err := a.llmScoreEvents(context.Background(), sessionWithPrefs(basePrefs()), testBatch())
	if err != nil {
		t.Fatalf("junk entries must not fail the batch: %v", err)
	}
	if scored[0].ID != "1" || scored[0].Score != 3 {
		t.Fatalf("valid entry lost among junk: %+v", scored[0])
	}
	for _, se := range scored[1:] {
		if se.Score != 0 {
			t.Fatalf("junk entry produced a score: %+v", se)
		}
	}
}

func TestLLMScoreStableTieOrder(t *testing.T) {
	client := &fakeLLM{script: []step{
		reply(`[
			{"id": "1", "score": 3, "reasons": []},
			{"id": "2", "score": 3, "reasons": []},
			{"id": "3", "score": 3, "reasons": []},
			{"id": "4", "score": 5, "reasons": []}
		]`),
	}}
	a := newTestAgent(client, &fixedProvider{})
	scored, err := a.llmScoreEvents(context.Background(), sessionWithPrefs(basePrefs()), testBatch())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if scored[0].ID != "4" {
		t.Fatalf("highest score not first: %+v", scored[0])
	}
	// Ties keep batch order.
	if scored[1].ID != "1" || scored[2].ID != "2" || scored[3].ID != "3" {
		t.Fatalf("tie order not stable: %s %s %s", scored[1].ID, scored[2].ID, scored[3].ID)
	}
}

func TestLLMScoreWholeGridFailures(t *testing.T) {
	cases := []struct {
		name string
		step step
	}{
		{"prose response", reply("These events all look great!")},
		{"object instead of array", reply(`{"id": "1", "score": 4}`)},
		{"backend failure", failure(&llm.BackendError{Backend: "ollama", Err: errors.New("down")})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeLLM{script: []step{tc.step}}
			a := newTestAgent(client, &fixedProvider{})
			_, err := a.llmScoreEvents(context.Background(), sessionWithPrefs(basePrefs()), testBatch())
			if err == nil {
				t.Fatalf("expected whole-batch failure")
			}
		})
	}
}

func TestLLMScorePromptContainsBriefsOnly(t *testing.T) {
	client := &fakeLLM{script: []step{reply(`[]`)}}
	a := newTestAgent(client, &fixedProvider{})
	_, err := a.llmScoreEvents(context.Background(), sessionWithPrefs(basePrefs()), testBatch())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	prompt := client.prompts[0]
	if !strings.Contains(prompt, `"Ljubljana Jazz Festival"`) {
		t.Fatalf("event name missing from prompt")
	}
	if strings.Contains(prompt, `"price"`) || strings.Contains(prompt, `"currency"`) {
		t.Fatalf("price details must be elided from the projection")
	}
	if !strings.Contains(prompt, "2025-11-01") {
		t.Fatalf("today's date missing from prompt")
	}
}

func TestLLMScoreEmptyBatch(t *testing.T) {
	client := &fakeLLM{}
	a := newTestAgent(client, &fixedProvider{})
	scored, err := a.llmScoreEvents(context.Background(), NewSession(), nil)
	if err != nil || len(scored) != 0 {
		t.Fatalf("empty batch: %v %v", scored, err)
	}
	if len(client.prompts) != 0 {
		t.Fatalf("no call expected for empty batch")
	}
}
