// Package events defines the normalized event shape the agent works with
// and the providers that produce it.
package events

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when an event id is absent from a fetched batch.
var ErrNotFound = errors.New("event not found")

// Event is an immutable snapshot of one candidate event. IDs are unique
// within a single fetch only.
type Event struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	Date      string  `json:"date"`
	Organizer string  `json:"organizer"`
	Venue     string  `json:"venue"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
}

// PriceLabel renders the price for display, e.g. "20 EUR".
func (e Event) PriceLabel() string {
	if e.Currency == "" {
		return fmt.Sprintf("%g", e.Price)
	}
	return fmt.Sprintf("%g %s", e.Price, e.Currency)
}

// Provider supplies candidate events.
type Provider interface {
	Fetch(ctx context.Context) ([]Event, error)
}

// FindByID locates an event in a fetched batch.
func FindByID(batch []Event, id string) (Event, error) {
	for _, e := range batch {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
