package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"event-agent/internal/events"
)

// Actions the planner can choose from.
const (
	ActionSuggestEvents     = "suggest_events"
	ActionSearchEvents      = "search_events" // models answer with this alias now and then
	ActionEventDetails      = "get_event_details"
	ActionUpdatePreferences = "update_user_preferences"
	ActionFollowOrganizer   = "follow_organizer"
	ActionCompareEvents     = "compare_events"
	ActionClarify           = "ask_clarification"
	ActionGeneralChat       = "general_chat"
	ActionQuit              = "quit"
)

const noneSentinel = "none"

// Result is one executed turn.
type Result struct {
	Reply  string
	Action string
	Quit   bool
}

// DecideAction asks the model which action the utterance calls for.
func (a *Agent) DecideAction(ctx context.Context, userInput string) (string, error) {
	resp, err := a.llm.Complete(ctx, decideActionPrompt(userInput))
	if err != nil {
		return "", fmt.Errorf("action decision failed: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(resp.Content)), nil
}

// PlanAndExecute runs one full turn: decide the action, execute it, format
// the reply. Failures never escape as errors; they become user-visible
// replies so the session survives them.
func (a *Agent) PlanAndExecute(ctx context.Context, sess *Session, userInput string) Result {
	action, err := a.DecideAction(ctx, userInput)
	if err != nil {
		return Result{
			Reply:  fmt.Sprintf("Sorry, I can't reach the language model right now (%v). Please try again.", err),
			Action: ActionGeneralChat,
		}
	}
	if action == ActionQuit {
		return Result{Action: ActionQuit, Quit: true}
	}
	return a.executeAction(ctx, sess, action, userInput)
}

func (a *Agent) executeAction(ctx context.Context, sess *Session, action, userInput string) Result {
	switch action {
	case ActionSuggestEvents, ActionSearchEvents:
		return Result{Reply: a.suggestReply(ctx, sess), Action: ActionSuggestEvents}

	case ActionEventDetails:
		return Result{Reply: a.detailsReply(ctx, sess, userInput), Action: action}

	case ActionFollowOrganizer:
		return Result{Reply: a.followReply(ctx, sess, userInput), Action: action}

	case ActionCompareEvents:
		return Result{Reply: a.compareReply(ctx, sess, userInput), Action: action}

	case ActionUpdatePreferences:
		if err := a.UpdatePreferences(ctx, sess, userInput); err != nil {
			log.Printf("preference update rejected: %v", err)
			return Result{Reply: "Sorry, I couldn't update your preferences this time. Your previous preferences are unchanged.", Action: action}
		}
		return Result{Reply: "✓ I've updated your preferences.", Action: action}

	case ActionGeneralChat, ActionClarify:
		return Result{Reply: a.Chat(ctx, sess, userInput), Action: action}

	default:
		log.Printf("unknown action %q, defaulting to general chat", action)
		return Result{Reply: a.Chat(ctx, sess, userInput), Action: ActionGeneralChat}
	}
}

func (a *Agent) suggestReply(ctx context.Context, sess *Session) string {
	scored, err := a.SuggestEvents(ctx, sess)
	if err != nil {
		log.Printf("suggest events failed: %v", err)
		return "Sorry, I couldn't fetch events right now. Please try again later."
	}
	return FormatEvents(scored)
}

func (a *Agent) detailsReply(ctx context.Context, sess *Session, userInput string) string {
	id, err := a.extractAnswer(ctx, extractEventIDPrompt(userInput))
	if err != nil || isNone(id) {
		return "Please specify which event you'd like details about."
	}
	batch, err := a.events.Fetch(ctx)
	if err != nil {
		log.Printf("fetch events failed: %v", err)
		return "Sorry, I couldn't fetch events right now. Please try again later."
	}
	ev, err := events.FindByID(batch, id)
	if err != nil {
		return fmt.Sprintf("Event with ID %s not found.", id)
	}
	return FormatEventDetails(ev)
}

func (a *Agent) followReply(ctx context.Context, sess *Session, userInput string) string {
	organizers := sess.KB.OrganizerNames()

	name, err := a.extractAnswer(ctx, extractOrganizerPrompt(userInput, organizers))
	if err == nil && !isNone(name) {
		for _, org := range organizers {
			if org == name {
				return a.follow(sess, org)
			}
		}
	}

	// Model couldn't pin the name; a plain substring match often can.
	for _, org := range organizers {
		if strings.Contains(strings.ToLower(userInput), strings.ToLower(org)) {
			return a.follow(sess, org)
		}
	}
	return fmt.Sprintf("Please specify which organizer you'd like to follow. Available: %s.", strings.Join(organizers, ", "))
}

func (a *Agent) follow(sess *Session, name string) string {
	if err := sess.KB.Follow(name); err != nil {
		return "Please specify an organizer name to follow."
	}
	return fmt.Sprintf("✓ Now following %s. You'll see more events from them!", name)
}

func (a *Agent) compareReply(ctx context.Context, sess *Session, userInput string) string {
	answer, err := a.extractAnswer(ctx, extractComparePairPrompt(userInput))
	if err != nil || isNone(answer) || !strings.Contains(answer, ",") {
		return "Please specify two event IDs to compare (e.g., 'compare events 1 and 2')."
	}
	ids := strings.SplitN(answer, ",", 2)

	batch, err := a.events.Fetch(ctx)
	if err != nil {
		log.Printf("fetch events failed: %v", err)
		return "Sorry, I couldn't fetch events right now. Please try again later."
	}
	first, err := events.FindByID(batch, strings.TrimSpace(ids[0]))
	if err != nil {
		return fmt.Sprintf("Event %s not found.", strings.TrimSpace(ids[0]))
	}
	second, err := events.FindByID(batch, strings.TrimSpace(ids[1]))
	if err != nil {
		return fmt.Sprintf("Event %s not found.", strings.TrimSpace(ids[1]))
	}
	return FormatComparison(first, second)
}

// extractAnswer runs a short extraction prompt and normalizes the reply.
func (a *Agent) extractAnswer(ctx context.Context, prompt string) (string, error) {
	resp, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(resp.Content), `"`), nil
}

func isNone(s string) bool {
	return strings.EqualFold(s, noneSentinel)
}
