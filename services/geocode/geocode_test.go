package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggester(srvURL string) *Suggester {
	s := NewSuggesterWithBase(srvURL)
	s.limiter.SetLimit(1000) // no throttling in tests
	s.debounce = 10 * time.Millisecond
	return s
}

func samplePlaces() []Place {
	return []Place{
		{
			PlaceID:     1,
			DisplayName: "12 Main St, Boston, Massachusetts, United States",
			Address:     PlaceAddress{City: "Boston", State: "Massachusetts", Country: "United States"},
		},
		{
			PlaceID:     2,
			DisplayName: "Smallville, Ontario, Canada",
			Address:     PlaceAddress{Village: "Smallville", State: "Ontario", Country: "Canada"},
		},
		{
			PlaceID:     3,
			DisplayName: "Somewhere without detail",
			Address:     PlaceAddress{Country: "United States"},
		},
	}
}

func TestSearchFiltersUnusableResults(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "us,ca", r.URL.Query().Get("countrycodes"))
		json.NewEncoder(w).Encode(samplePlaces())
	}))
	defer srv.Close()

	s := newTestSuggester(srv.URL)
	places, err := s.Search(context.Background(), "12 main")
	require.NoError(t, err)

	assert.Equal(t, "12 main", gotQuery)
	require.Len(t, places, 2, "results without locality+state are dropped")
	assert.EqualValues(t, 1, places[0].PlaceID)
	assert.EqualValues(t, 2, places[1].PlaceID)
}

func TestSearchShortQuerySkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("short queries must not hit the network")
	}))
	defer srv.Close()

	s := newTestSuggester(srv.URL)
	for _, q := range []string{"", "a"} {
		places, err := s.Search(context.Background(), q)
		assert.NoError(t, err)
		assert.Empty(t, places)
	}
}

func TestSearchAbortsPreviousRequest(t *testing.T) {
	first := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "slow query" {
			close(first)
			<-release
			return
		}
		json.NewEncoder(w).Encode(samplePlaces()[:1])
	}))
	defer srv.Close()

	s := newTestSuggester(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	var slowErr error
	go func() {
		defer wg.Done()
		_, slowErr = s.Search(context.Background(), "slow query")
	}()

	<-first
	places, err := s.Search(context.Background(), "fast query")
	require.NoError(t, err)
	assert.Len(t, places, 1)

	close(release)
	wg.Wait()
	assert.ErrorIs(t, slowErr, context.Canceled, "the newer lookup aborts the older one")
}

func TestSuggestDebounceLastWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(samplePlaces()[:1])
	}))
	defer srv.Close()

	s := newTestSuggester(srv.URL)

	delivered := make(chan []Place, 2)
	s.Suggest("12 m", func(places []Place, err error) {
		require.NoError(t, err)
		delivered <- places
	})
	s.Suggest("12 main st", func(places []Place, err error) {
		require.NoError(t, err)
		delivered <- places
	})

	select {
	case places := <-delivered:
		assert.Len(t, places, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced lookup never delivered")
	}

	select {
	case <-delivered:
		t.Fatal("superseded lookup must not deliver")
	case <-time.After(100 * time.Millisecond):
	}
}
