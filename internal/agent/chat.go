package agent

import (
	"context"
	"fmt"
	"strings"
)

// Chat produces a free-form conversational reply with the preference
// record and the recent transcript as context. A backend failure becomes
// the reply itself: conversational errors are for the user to see, not for
// the loop to die on.
func (a *Agent) Chat(ctx context.Context, sess *Session, userInput string) string {
	prompt := chatPrompt(sess.Prefs, relatedInterestsHint(sess), sess.History.Transcript(), userInput)
	resp, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Sorry, I can't reach the language model right now (%v). Please try again.", err)
	}
	return resp.Content
}

// relatedInterestsHint expands the user's interests through the knowledge
// base relations so the assistant can broaden the conversation a little.
func relatedInterestsHint(sess *Session) string {
	seen := map[string]bool{}
	var related []string
	for _, interest := range sess.Prefs.Interests {
		for _, rel := range sess.KB.RelatedTo(interest) {
			if seen[rel] || sess.Prefs.HasInterest(rel) {
				continue
			}
			seen[rel] = true
			related = append(related, rel)
		}
	}
	return strings.Join(related, ", ")
}
