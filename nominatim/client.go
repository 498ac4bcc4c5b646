package nominatim

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Place is one geocoding candidate as returned by the provider.
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// searchResult mirrors the jsonv2 wire format; coordinates arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Client is an HTTP client for the Nominatim search API.
type Client struct {
	baseURL      string
	countryCodes string
	userAgent    string
	httpClient   *http.Client
}

// NewClient creates a Nominatim client. countryCodes restricts results to
// the given comma-separated ISO country codes ("" disables the filter).
// userAgent identifies the calling application as required by the usage
// policy of the public instance.
func NewClient(baseURL, countryCodes, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      baseURL,
		countryCodes: countryCodes,
		userAgent:    userAgent,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Search resolves a free-text query to at most one best candidate.
// An empty slice means the provider found no match; that is not an error.
func (c *Client) Search(query string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if c.countryCodes != "" {
		params.Set("countrycodes", c.countryCodes)
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from nominatim", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("nominatim response malformed: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("nominatim lat %q: %w", r.Lat, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("nominatim lon %q: %w", r.Lon, err)
		}
		places = append(places, Place{Lat: lat, Lon: lon, DisplayName: r.DisplayName})
	}
	return places, nil
}
