package viajes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptCache reports that a persisted cache file exists but cannot be
// parsed. The run must abort rather than start with an empty cache, which
// would silently re-query every known place.
var ErrCorruptCache = errors.New("geocode cache is corrupt")

// GeoPoint is a resolved coordinate for a place name.
type GeoPoint struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name,omitempty"`
}

// GeoCache maps normalized place keys to coordinates. A nil value records
// that the provider returned no match for that key; both resolved and nil
// entries suppress further external lookups, within and across runs.
type GeoCache struct {
	path    string
	entries map[string]*GeoPoint
}

// LoadCache reads the persisted cache at path. A missing file yields an
// empty cache; an unparseable file yields ErrCorruptCache.
func LoadCache(path string) (*GeoCache, error) {
	c := &GeoCache{path: path, entries: map[string]*GeoPoint{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCache, path, err)
	}
	if c.entries == nil {
		c.entries = map[string]*GeoPoint{}
	}
	return c, nil
}

// Get looks up a key. ok is false when the key was never seen; a true ok
// with a nil point means the key is known unresolvable.
func (c *GeoCache) Get(key string) (p *GeoPoint, ok bool) {
	p, ok = c.entries[key]
	return p, ok
}

// Put records a resolution. A nil point marks the key unresolvable.
func (c *GeoCache) Put(key string, p *GeoPoint) {
	c.entries[key] = p
}

// Len returns the number of cached keys, unresolvable markers included.
func (c *GeoCache) Len() int {
	return len(c.entries)
}

// Save persists the full mapping atomically: the JSON is written to a
// temp file in the same directory and renamed over the previous cache, so
// a crash mid-save never corrupts the prior valid file.
func (c *GeoCache) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.entries); err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
