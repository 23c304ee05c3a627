package events

import "context"

// Static serves the built-in demo catalog. It stands in for a real
// ticketing API during development and tests.
type Static struct {
	catalog []Event
}

func NewStatic() *Static {
	return &Static{catalog: demoCatalog()}
}

func (s *Static) Fetch(ctx context.Context) ([]Event, error) {
	out := make([]Event, len(s.catalog))
	copy(out, s.catalog)
	return out, nil
}

func demoCatalog() []Event {
	return []Event{
		{
			ID:        "1",
			Name:      "Slovenian AI & Tech Summit",
			Category:  "technology",
			Location:  "Ljubljana",
			Date:      "2025-11-15",
			Organizer: "Slovenian Tech Community",
			Venue:     "Cankarjev dom",
			Price:     20,
			Currency:  "EUR",
		},
		{
			ID:        "2",
			Name:      "Ljubljana Jazz Festival",
			Category:  "music",
			Location:  "Ljubljana",
			Date:      "2025-11-20",
			Organizer: "Ljubljana Festival",
			Venue:     "Kino Šiška",
			Price:     25,
			Currency:  "EUR",
		},
		{
			ID:        "3",
			Name:      "Startup Networking Evening",
			Category:  "networking",
			Location:  "Koper",
			Date:      "2025-11-25",
			Organizer: "Koper Business Network",
			Venue:     "Koper Conference Centre",
			Price:     30,
			Currency:  "EUR",
		},
		{
			ID:        "4",
			Name:      "Classical Concert at Ljubljana Castle",
			Category:  "culture",
			Location:  "Ljubljana",
			Date:      "2025-11-28",
			Organizer: "Ljubljana Festival",
			Venue:     "Ljubljana Castle",
			Price:     15,
			Currency:  "EUR",
		},
		{
			ID:        "5",
			Name:      "Alpine Hiking Workshop",
			Category:  "outdoor",
			Location:  "Bled",
			Date:      "2025-11-05",
			Organizer: "Slovenian Alpine Association",
			Venue:     "Bled Castle",
			Price:     50,
			Currency:  "EUR",
		},
		{
			ID:        "6",
			Name:      "Maribor Theatre Performance",
			Category:  "culture",
			Location:  "Maribor",
			Date:      "2025-11-10",
			Organizer: "Maribor Theatre",
			Venue:     "Maribor Castle",
			Price:     30,
			Currency:  "EUR",
		},
	}
}
