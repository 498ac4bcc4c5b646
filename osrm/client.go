package osrm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Mammogram7685/maps/geo"
)

// Route is one candidate route returned by the provider.
type Route struct {
	Geometry geo.Geometry `json:"geometry"`
}

type routeResponse struct {
	Routes []Route `json:"routes"`
}

// Client is an HTTP client for the OSRM route service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an OSRM client for the given route service base URL,
// e.g. "https://router.project-osrm.org/route/v1/driving".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Route requests a single simplified route visiting the given [lon, lat]
// coordinates in order. An empty slice means no route was found.
func (c *Client) Route(coords [][]float64) ([]Route, error) {
	parts := make([]string, 0, len(coords))
	for _, p := range coords {
		parts = append(parts, fmt.Sprintf("%g,%g", p[0], p[1]))
	}
	url := fmt.Sprintf("%s/%s?overview=simplified&geometries=geojson", c.baseURL, strings.Join(parts, ";"))

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("osrm request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from osrm", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var rr routeResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("osrm response malformed: %w", err)
	}
	return rr.Routes, nil
}
