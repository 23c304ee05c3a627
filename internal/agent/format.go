package agent

import (
	"fmt"
	"strings"

	"event-agent/internal/events"
)

// maxSuggestions caps how many ranked events one reply shows.
const maxSuggestions = 5

// FormatEvents renders a ranked list for display. Scores stay internal;
// the reasons are what the user sees.
func FormatEvents(scored []ScoredEvent) string {
	if len(scored) == 0 {
		return "No events match your current interests. Try updating your preferences!"
	}
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}

	parts := make([]string, 0, len(scored))
	for i, se := range scored {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d. **%s**", i+1, se.Name)
		fmt.Fprintf(&sb, "\n   📅 %s", se.Date)
		fmt.Fprintf(&sb, "\n   📍 Location: %s", se.Location)
		fmt.Fprintf(&sb, "\n   💰 Price: %s", se.PriceLabel())
		if len(se.Reasons) > 0 {
			fmt.Fprintf(&sb, "\n   💡 Why: %s", strings.Join(se.Reasons, ", "))
		}
		parts = append(parts, sb.String())
	}
	return "Here are some events for you:\n\n" + strings.Join(parts, "\n\n")
}

// FormatEventDetails renders one event in full.
func FormatEventDetails(ev events.Event) string {
	return fmt.Sprintf("Event: %s\n📅 %s\n📍 %s at %s\n🏷️ %s\n💰 %s\n👤 Organized by %s",
		ev.Name, ev.Date, ev.Location, ev.Venue, ev.Category, ev.PriceLabel(), ev.Organizer)
}

// FormatComparison renders two events side by side.
func FormatComparison(first, second events.Event) string {
	return fmt.Sprintf(`📊 Comparing Events:

Event 1: %s
%s
Event 2: %s
%s`, first.Name, comparisonBody(first), second.Name, comparisonBody(second))
}

func comparisonBody(ev events.Event) string {
	return fmt.Sprintf("  📅 Date: %s\n  📍 Location: %s\n  🏢 Venue: %s\n  🏷️ Category: %s\n  💰 Price: %s\n",
		ev.Date, ev.Location, ev.Venue, ev.Category, ev.PriceLabel())
}
