// Package geocode provides address suggestions for the listing composer,
// backed by the OpenStreetMap Nominatim search API. The API is keyless and
// rate-sensitive, so lookups are debounced, rate-limited, and the previous
// in-flight request is aborted whenever a new one starts.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/search"

// DefaultDebounce matches the composer's input debounce.
const DefaultDebounce = 400 * time.Millisecond

// minQueryLen is the shortest address fragment worth looking up.
const minQueryLen = 2

// PlaceAddress is the structured address block of a Nominatim result.
type PlaceAddress struct {
	City     string `json:"city"`
	Town     string `json:"town"`
	Village  string `json:"village"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Place is one address suggestion.
type Place struct {
	PlaceID     int64        `json:"place_id"`
	DisplayName string       `json:"display_name"`
	Lat         string       `json:"lat"`
	Lon         string       `json:"lon"`
	Address     PlaceAddress `json:"address"`
}

// Usable reports whether the result carries enough address detail to offer as
// a suggestion: at least a city/town/village plus a state.
func (p Place) Usable() bool {
	locality := p.Address.City != "" || p.Address.Town != "" || p.Address.Village != ""
	return locality && p.Address.State != ""
}

// Suggester runs address lookups. Safe for use from one editing session;
// concurrent Search calls race intentionally with last-call-wins semantics.
type Suggester struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	debounce   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	timer  *time.Timer
}

// NewSuggester creates a suggester against the public Nominatim endpoint.
func NewSuggester() *Suggester {
	return NewSuggesterWithBase(DefaultBaseURL)
}

// NewSuggesterWithBase creates a suggester against a custom endpoint.
func NewSuggesterWithBase(baseURL string) *Suggester {
	return &Suggester{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Nominatim's usage policy caps anonymous clients at roughly one
		// request per second.
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		debounce: DefaultDebounce,
	}
}

// Search performs one lookup immediately, aborting any lookup still in
// flight. Queries shorter than two characters return no suggestions without a
// network call.
func (s *Suggester) Search(ctx context.Context, query string) ([]Place, error) {
	if len(query) < minQueryLen {
		return nil, nil
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "10")
	params.Set("countrycodes", "us,ca")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode lookup returned status %d", resp.StatusCode)
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	usable := places[:0]
	for _, p := range places {
		if p.Usable() {
			usable = append(usable, p)
		}
	}
	return usable, nil
}

// Suggest schedules a debounced lookup and delivers the suggestions
// asynchronously. A newer call within the debounce window supersedes the
// pending one; a newer call after the request fired aborts it, so a slow
// earlier response can never overwrite a later one.
func (s *Suggester) Suggest(query string, deliver func(places []Place, err error)) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		places, err := s.Search(context.Background(), query)
		if errors.Is(err, context.Canceled) {
			return
		}
		deliver(places, err)
	})
	s.mu.Unlock()
}
