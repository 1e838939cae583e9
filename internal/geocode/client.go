package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Balerion769/Disaster-Response-Platform/internal/config"
	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

// Client resolves free-text place names to coordinates via the
// Nominatim search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg config.GeocoderConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		logger:     logger,
	}
}

// result is one Nominatim search candidate. Coordinates arrive as
// strings.
type result struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode looks up locationName and returns the first candidate's
// coordinates. Returns ok=false when the service has no candidates or
// the round-trip fails; failures are logged here, never propagated.
func (c *Client) Geocode(ctx context.Context, locationName string) (domain.Coordinates, bool) {
	params := url.Values{
		"q":      {locationName},
		"format": {"json"},
		"limit":  {"1"},
	}
	fullURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		c.logger.Warn("geocode request build failed", slog.Any("error", err))
		return domain.Coordinates{}, false
	}
	// Nominatim's usage policy requires a descriptive, stable client
	// identifier.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("geocode request failed",
			slog.String("location", locationName),
			slog.Any("error", err),
		)
		return domain.Coordinates{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocode service error",
			slog.String("location", locationName),
			slog.Int("status", resp.StatusCode),
		)
		return domain.Coordinates{}, false
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Warn("geocode response decode failed", slog.Any("error", err))
		return domain.Coordinates{}, false
	}

	if len(results) == 0 {
		return domain.Coordinates{}, false
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		c.logger.Warn("geocode coordinate parse failed",
			slog.String("lat", results[0].Lat),
			slog.String("lon", results[0].Lon),
		)
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true
}
