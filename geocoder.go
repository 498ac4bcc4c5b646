package viajes

import (
	"time"

	"go.uber.org/zap"

	"github.com/Mammogram7685/maps/nominatim"
)

// PlaceSearcher resolves a free-text query to an ordered list of candidate
// places. An empty list means no match. Satisfied by *nominatim.Client.
type PlaceSearcher interface {
	Search(query string) ([]nominatim.Place, error)
}

// Geocoder resolves place names to coordinates through the cache, falling
// back to the external provider on a miss. Every provider call is followed
// by a fixed courtesy delay to stay inside the provider's rate limit.
type Geocoder struct {
	searcher PlaceSearcher
	cache    *GeoCache
	delay    time.Duration
	sleep    func(time.Duration)
	logger   *zap.Logger
}

// NewGeocoder creates a Geocoder over the given provider and cache.
func NewGeocoder(searcher PlaceSearcher, cache *GeoCache, delay time.Duration, logger *zap.Logger) *Geocoder {
	return &Geocoder{
		searcher: searcher,
		cache:    cache,
		delay:    delay,
		sleep:    time.Sleep,
		logger:   logger,
	}
}

// Resolve returns the coordinates for place, or nil when the place is
// unresolvable. Cache hits, resolved or unresolvable, never reach the
// provider. An empty place normalizes to an empty key and is neither
// queried nor cached. Provider errors propagate to the caller and leave
// the cache untouched, so the lookup is retried on a later run.
func (g *Geocoder) Resolve(place string) (*GeoPoint, error) {
	key := NormalizePlace(place)
	if key == "" {
		return nil, nil
	}
	if p, ok := g.cache.Get(key); ok {
		return p, nil
	}

	g.logger.Debug("geocodificando", zap.String("place", place), zap.String("key", key))
	places, err := g.searcher.Search(place)
	g.sleep(g.delay)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		g.cache.Put(key, nil)
		return nil, nil
	}

	best := places[0]
	p := &GeoPoint{Lat: best.Lat, Lon: best.Lon, DisplayName: best.DisplayName}
	g.cache.Put(key, p)
	return p, nil
}
