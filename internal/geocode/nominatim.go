package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when the geocoder has no result for an address
var ErrNotFound = errors.New("geocode: no results for address")

// cacheTTL bounds how long a geocoded address is reused
const cacheTTL = 1 * time.Hour

// Location is a geocoded address
type Location struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// nominatimResult matches the Nominatim search API payload
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type cacheEntry struct {
	loc Location
	at  time.Time
}

// Client geocodes addresses through the Nominatim (OpenStreetMap) search API
type Client struct {
	baseURL    string
	userAgent  string
	cityBias   string
	httpClient *http.Client

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewClient creates a Nominatim client. cityBias, when non-empty, is
// prepended to every query to bias results toward that city.
func NewClient(baseURL, userAgent, cityBias string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		cityBias:   cityBias,
		httpClient: &http.Client{Timeout: timeout},
		cache:      make(map[string]cacheEntry),
	}
}

// Geocode resolves an address to coordinates. Returns ErrNotFound when the
// geocoder has no result; no retries are attempted.
func (c *Client) Geocode(ctx context.Context, address string) (Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Location{}, errors.New("geocode: address cannot be empty")
	}

	query := address
	if c.cityBias != "" {
		query = c.cityBias + " " + address
	}

	if loc, ok := c.cached(query); ok {
		return loc, nil
	}

	apiURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1",
		c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return Location{}, err
	}
	// Nominatim usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocode: nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, fmt.Errorf("geocode: failed to decode response: %w", err)
	}

	if len(results) == 0 {
		return Location{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: invalid longitude %q: %w", results[0].Lon, err)
	}

	loc := Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}
	c.store(query, loc)

	return loc, nil
}

func (c *Client) cached(query string) (Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache[query]
	if !ok || time.Since(entry.at) >= cacheTTL {
		return Location{}, false
	}
	return entry.loc, true
}

func (c *Client) store(query string, loc Location) {
	c.mu.Lock()
	c.cache[query] = cacheEntry{loc: loc, at: time.Now()}
	c.mu.Unlock()
}
