package viajes

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mammogram7685/maps/nominatim"
)

type fakeSearcher struct {
	calls  int
	places map[string][]nominatim.Place
	err    error
}

func (f *fakeSearcher) Search(query string) ([]nominatim.Place, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.places[query], nil
}

func newTestCache(t *testing.T) *GeoCache {
	t.Helper()
	c, err := LoadCache(filepath.Join(t.TempDir(), "geocache.json"))
	require.NoError(t, err)
	return c
}

func newTestGeocoder(searcher PlaceSearcher, cache *GeoCache) (*Geocoder, *int) {
	g := NewGeocoder(searcher, cache, time.Second, zap.NewNop())
	sleeps := 0
	g.sleep = func(time.Duration) { sleeps++ }
	return g, &sleeps
}

func TestGeocoderResolveAndCache(t *testing.T) {
	searcher := &fakeSearcher{places: map[string][]nominatim.Place{
		"Madrid": {{Lat: 40.4168, Lon: -3.7038, DisplayName: "Madrid, España"}},
	}}
	cache := newTestCache(t)
	g, sleeps := newTestGeocoder(searcher, cache)

	p, err := g.Resolve("Madrid")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 40.4168, p.Lat)
	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, 1, *sleeps)

	// Second resolve, any spelling, comes from the cache.
	p2, err := g.Resolve("  MADRID ")
	require.NoError(t, err)
	assert.Equal(t, p, p2)
	assert.Equal(t, 1, searcher.calls, "cache hit must not reach the provider")
	assert.Equal(t, 1, *sleeps, "no delay without an external call")
}

func TestGeocoderUnresolvableCached(t *testing.T) {
	searcher := &fakeSearcher{}
	cache := newTestCache(t)
	g, _ := newTestGeocoder(searcher, cache)

	p, err := g.Resolve("Villanueva de la Nada")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 1, searcher.calls)

	cached, ok := cache.Get("villanueva de la nada")
	assert.True(t, ok, "no-result sentinel must be cached")
	assert.Nil(t, cached)

	p, err = g.Resolve("Villanueva de la Nada")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 1, searcher.calls, "unresolvable hit must not reach the provider")
}

func TestGeocoderEmptyPlace(t *testing.T) {
	searcher := &fakeSearcher{}
	cache := newTestCache(t)
	g, sleeps := newTestGeocoder(searcher, cache)

	for _, place := range []string{"", "   ", "\t"} {
		p, err := g.Resolve(place)
		require.NoError(t, err)
		assert.Nil(t, p)
	}
	assert.Equal(t, 0, searcher.calls)
	assert.Equal(t, 0, *sleeps)
	assert.Equal(t, 0, cache.Len(), "degenerate keys must not pollute the cache")
}

func TestGeocoderProviderError(t *testing.T) {
	boom := errors.New("network down")
	searcher := &fakeSearcher{err: boom}
	cache := newTestCache(t)
	g, sleeps := newTestGeocoder(searcher, cache)

	_, err := g.Resolve("Madrid")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len(), "failed lookups are not cached")
	assert.Equal(t, 1, *sleeps, "delay applies regardless of outcome")

	// A later attempt queries the provider again.
	_, err = g.Resolve("Madrid")
	require.Error(t, err)
	assert.Equal(t, 2, searcher.calls)
}

func TestGeocoderCachePersistsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geocache.json")
	cache, err := LoadCache(path)
	require.NoError(t, err)

	searcher := &fakeSearcher{places: map[string][]nominatim.Place{
		"Madrid": {{Lat: 40.4168, Lon: -3.7038}},
	}}
	g, _ := newTestGeocoder(searcher, cache)
	_, err = g.Resolve("Madrid")
	require.NoError(t, err)
	_, err = g.Resolve("Gibberish Place")
	require.NoError(t, err)
	require.NoError(t, cache.Save())

	// Fresh "run": reload the cache, new geocoder, same provider.
	cache2, err := LoadCache(path)
	require.NoError(t, err)
	g2, _ := newTestGeocoder(searcher, cache2)

	p, err := g2.Resolve("Madrid")
	require.NoError(t, err)
	require.NotNil(t, p)
	p, err = g2.Resolve("Gibberish Place")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 2, searcher.calls, "persisted entries must suppress lookups across runs")
}
