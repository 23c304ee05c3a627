package agent

import (
	"fmt"
	"strings"
)

const updatePreferencesTemplate = `You are a JSON-only response system. You must respond with ONLY valid JSON, no other text.

Current user preferences: %s

User said: "%s"

Update the user preferences based on the user's message.
Keep all other fields unchanged and don't remove or add any fields.

For interests, you can ONLY add the following:
- music
- theater
- sports
- entrepreneurship
- technology
- history
If the user expresses interest in a topic that is not in the list, do not add anything to the interests.

For preferred_price, you can ONLY use the following:
- affordable (up to 20 EUR)
- moderate (up to 50 EUR)
For anything above 50 EUR, do not update the preferred_price field.

Examples:
- "I enjoy learning about AI" → add "technology" to interests
- "I'm interested in the middle ages" → add "history" to interests
- "I hate sports" → remove "sports" from interests if present
- "I like animals" → do not add anything to the interests
- "I live in San Francisco" → update "location" to "San Francisco"
- "I prefer free events" → update "preferred_price" to "affordable"
- "I'm available on Friday and Saturday" → update "date" to "Friday,Saturday"
- "I'm interested in events in the next two weeks" → update "date" to "next two weeks"

CRITICAL: Respond with ONLY the JSON object, no explanations, no markdown, no code blocks, no extra text.`

func updatePreferencesPrompt(prefs Preferences, userInput string) string {
	return fmt.Sprintf(updatePreferencesTemplate, prefs.JSON(), userInput)
}

const scoreEventsTemplate = `You are an assistant that ranks events for a specific user. Respond with ONLY valid JSON (no explanations).

User preferences: %s

Today's date: %s

Events: %s

For each event return an object with these fields:
- id: the event id
- score: integer 0-5 (5 = very relevant, 0 = not relevant)
- reasons: array of 1-3 short strings explaining the score (e.g. "matches interest: music", "in user's city")

Return a JSON array like: [{"id":"1","score":4,"reasons":["matches interest"]}]
CRITICAL: ONLY output JSON, no extra text.`

func scoreEventsPrompt(prefs Preferences, today, eventsJSON string) string {
	return fmt.Sprintf(scoreEventsTemplate, prefs.JSON(), today, eventsJSON)
}

const decideActionTemplate = `Based on this user input, decide what action to take.

User input: "%s"

Available actions:
- "suggest_events": Show personalized event recommendations
- "get_event_details": Get detailed information about a specific event
- "update_user_preferences": Extract and update user preferences
- "follow_organizer": Follow an event organizer
- "compare_events": Compare two events
- "ask_clarification": Ask user for more information
- "quit": Quit the agent, end the conversation
- "general_chat": Have a normal conversation

Respond with ONLY the action name, nothing else.`

func decideActionPrompt(userInput string) string {
	return fmt.Sprintf(decideActionTemplate, userInput)
}

const chatTemplate = `You are a helpful event assistant.
These are the user's preferences: %s
%s
Previous conversation: %s

Current user message: %s

IMPORTANT: Only discuss real events that exist in the system. Do not create or suggest new events.
If the user asks about events, tell them to ask for "suggest events" to see available options.

Respond naturally and helpfully.`

func chatPrompt(prefs Preferences, relatedHint, transcript, userInput string) string {
	if relatedHint != "" {
		relatedHint = "Interests related to theirs that you may mention: " + relatedHint + "\n"
	}
	return fmt.Sprintf(chatTemplate, prefs.JSON(), relatedHint, transcript, userInput)
}

const extractEventIDTemplate = `Extract the event ID from this user input. User said: "%s"

If there's a number that refers to an event, respond with just that number.
If no event ID is mentioned, respond with "none".
Only respond with the number or "none", nothing else.`

func extractEventIDPrompt(userInput string) string {
	return fmt.Sprintf(extractEventIDTemplate, userInput)
}

const extractOrganizerTemplate = `Extract the organizer name from this user input: "%s"

Available organizers: %s

Respond with ONLY the organizer name if found, or "none" if no organizer is mentioned.
Match the exact name from the available organizers list.`

func extractOrganizerPrompt(userInput string, organizers []string) string {
	return fmt.Sprintf(extractOrganizerTemplate, userInput, strings.Join(organizers, ", "))
}

const extractComparePairTemplate = `Extract two event IDs from this user input: "%s"

Respond with two numbers separated by a comma (e.g., "1,2").
If you can't find two event IDs, respond with "none".
Only respond with numbers and comma, or "none".`

func extractComparePairPrompt(userInput string) string {
	return fmt.Sprintf(extractComparePairTemplate, userInput)
}
