package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const eventimBaseURL = "https://public-api.eventim.com/websearch/search/api/exploration/v1/products"

// Eventim fetches live events from the public Eventim exploration API and
// maps its product schema onto the normalized Event shape.
type Eventim struct {
	baseURL  string
	webID    string
	language string
	pageSize int
	client   *http.Client
}

func NewEventim(webID, language string, pageSize int) *Eventim {
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 50
	}
	return &Eventim{
		baseURL:  eventimBaseURL,
		webID:    webID,
		language: language,
		pageSize: pageSize,
		client:   http.DefaultClient,
	}
}

type eventimProduct struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	InStock   bool    `json:"inStock"`
	TypeAttributes struct {
		LiveEntertainment struct {
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
			Location  struct {
				Name string `json:"name"`
				City string `json:"city"`
			} `json:"location"`
		} `json:"liveEntertainment"`
	} `json:"typeAttributes"`
	Attractions []struct {
		Name string `json:"name"`
	} `json:"attractions"`
	Categories []struct {
		Name           string `json:"name"`
		ParentCategory *struct {
			Name string `json:"name"`
		} `json:"parentCategory"`
	} `json:"categories"`
}

type eventimPage struct {
	Products []eventimProduct `json:"products"`
}

// Fetch retrieves the first page of upcoming products, date-ascending.
func (p *Eventim) Fetch(ctx context.Context) ([]Event, error) {
	q := url.Values{}
	q.Set("webId", p.webID)
	q.Set("language", p.language)
	q.Set("page", "1")
	q.Set("sort", "DateAsc")
	q.Set("top", strconv.Itoa(p.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build eventim request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eventim request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eventim returned status %d", resp.StatusCode)
	}

	var page eventimPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode eventim response: %w", err)
	}

	out := make([]Event, 0, len(page.Products))
	for _, prod := range page.Products {
		out = append(out, mapProduct(prod))
	}
	return out, nil
}

func mapProduct(p eventimProduct) Event {
	live := p.TypeAttributes.LiveEntertainment

	organizer := ""
	if len(p.Attractions) > 0 {
		organizer = p.Attractions[0].Name
	}

	return Event{
		ID:        p.ProductID,
		Name:      p.Name,
		Category:  leafCategory(p),
		Location:  live.Location.City,
		Date:      datePart(live.StartDate),
		Organizer: organizer,
		Venue:     live.Location.Name,
		Price:     p.Price,
		Currency:  p.Currency,
	}
}

// leafCategory picks the most specific category name: entries with a
// parent are finer-grained than the top-level ones.
func leafCategory(p eventimProduct) string {
	var top string
	for _, c := range p.Categories {
		if c.ParentCategory != nil {
			return strings.ToLower(c.Name)
		}
		if top == "" {
			top = c.Name
		}
	}
	return strings.ToLower(top)
}

// datePart trims an RFC 3339 timestamp down to its date.
func datePart(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}
