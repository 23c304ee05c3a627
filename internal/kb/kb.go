// Package kb holds the static knowledge graph the agent scores events
// against: venues, organizers and interest relations. Everything is
// read-only except the per-organizer follow flag.
package kb

import (
	"errors"
	"sort"
	"sync"
)

// ErrEmptyName is returned when a follow request carries no organizer name.
var ErrEmptyName = errors.New("organizer name is required")

type Venue struct {
	Location string
	Type     string
	GoodFor  []string
}

type Organizer struct {
	Focus       []string
	Quality     string
	UserFollows bool
}

// Graph is the knowledge base for one session. Keys are case-sensitive
// exact names.
type Graph struct {
	mu         sync.RWMutex
	venues     map[string]Venue
	organizers map[string]Organizer

	interestKeywords map[string][]string
	relatedInterests map[string][]string
	priceCeilings    map[string]float64
}

// Default builds the built-in Slovenian events graph.
func Default() *Graph {
	return &Graph{
		venues: map[string]Venue{
			"Cankarjev dom": {
				Location: "Ljubljana",
				Type:     "cultural center",
				GoodFor:  []string{"music", "theater", "arts", "culture"},
			},
			"Kino Šiška": {
				Location: "Ljubljana",
				Type:     "music venue",
				GoodFor:  []string{"music", "concerts", "alternative culture"},
			},
			"Ljubljana Castle": {
				Location: "Ljubljana",
				Type:     "historic venue",
				GoodFor:  []string{"culture", "history", "events", "tourism"},
			},
			"Maribor Castle": {
				Location: "Maribor",
				Type:     "historic venue",
				GoodFor:  []string{"culture", "history", "events"},
			},
			"Koper Conference Centre": {
				Location: "Koper",
				Type:     "conference center",
				GoodFor:  []string{"business", "networking", "conferences"},
			},
			"Bled Castle": {
				Location: "Bled",
				Type:     "historic venue",
				GoodFor:  []string{"culture", "history", "tourism", "events"},
			},
		},
		organizers: map[string]Organizer{
			"Ljubljana Festival": {
				Focus:   []string{"music", "culture", "arts"},
				Quality: "high",
			},
			"Slovenian Tech Community": {
				Focus:   []string{"technology", "AI", "startups"},
				Quality: "high",
			},
			"Maribor Theatre": {
				Focus:   []string{"theater", "drama", "culture"},
				Quality: "high",
			},
			"Slovenian Alpine Association": {
				Focus:   []string{"outdoor", "hiking", "mountaineering"},
				Quality: "high",
			},
			"Koper Business Network": {
				Focus:   []string{"business", "networking", "entrepreneurship"},
				Quality: "high",
			},
		},
		interestKeywords: map[string][]string{
			"technology": {"AI", "tech", "startup", "coding", "developer", "programming"},
			"music":      {"jazz", "concert", "band", "live music", "festival", "classical"},
			"networking": {"meetup", "happy hour", "mixer", "network", "business"},
			"culture":    {"theater", "drama", "arts", "exhibition", "museum"},
			"outdoor":    {"hiking", "mountaineering", "nature", "alpine", "sports"},
			"business":   {"conference", "workshop", "entrepreneurship", "startup"},
		},
		relatedInterests: map[string][]string{
			"technology": {"networking", "business"},
			"music":      {"culture", "arts"},
			"networking": {"technology", "business"},
			"culture":    {"music", "arts"},
			"outdoor":    {"sports"},
			"business":   {"technology", "networking"},
		},
		priceCeilings: map[string]float64{
			"affordable": 20,
			"moderate":   50,
		},
	}
}

// Follow marks an organizer as followed. Unknown organizers are added on
// the fly with empty focus and unknown quality.
func (g *Graph) Follow(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	org, ok := g.organizers[name]
	if !ok {
		org = Organizer{Quality: "unknown"}
	}
	org.UserFollows = true
	g.organizers[name] = org
	return nil
}

// Follows reports whether the named organizer is followed. Unknown names
// report false.
func (g *Graph) Follows(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.organizers[name].UserFollows
}

// Organizer looks up an organizer by exact name.
func (g *Graph) Organizer(name string) (Organizer, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	org, ok := g.organizers[name]
	return org, ok
}

// OrganizerNames returns all known organizer names, sorted for stable
// prompt construction.
func (g *Graph) OrganizerNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.organizers))
	for name := range g.organizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Venue looks up a venue by exact name.
func (g *Graph) Venue(name string) (Venue, bool) {
	v, ok := g.venues[name]
	return v, ok
}

// VenueLocation returns the registered city of a venue, or "" when the
// venue is unknown.
func (g *Graph) VenueLocation(name string) string {
	return g.venues[name].Location
}

// KeywordsFor returns the keyword list associated with an interest tag.
func (g *Graph) KeywordsFor(interest string) []string {
	return g.interestKeywords[interest]
}

// RelatedTo returns interests adjacent to the given one.
func (g *Graph) RelatedTo(interest string) []string {
	return g.relatedInterests[interest]
}

// PriceCeiling returns the upper price bound for a price-tier tag. The
// second result is false for tags outside the known tiers.
func (g *Graph) PriceCeiling(tier string) (float64, bool) {
	c, ok := g.priceCeilings[tier]
	return c, ok
}
