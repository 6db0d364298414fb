// Package geocode resolves street addresses to coordinates through the
// Google Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"firetrace/config"
	"firetrace/internal/domain/entity"
	"firetrace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout  = 10 * time.Second
)

type googleClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewGoogleClient creates a GeoResolver backed by the Google Geocoding API.
func NewGoogleClient(cfg *config.Config) (service.GeoResolver, error) {
	if cfg.Geocode == nil || cfg.Geocode.APIKey == "" {
		return nil, errors.New("geocode API key must be configured")
	}

	endpoint := cfg.Geocode.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	timeout := cfg.Geocode.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &googleClient{
		endpoint: endpoint,
		apiKey:   cfg.Geocode.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *googleClient) Resolve(ctx context.Context, address string) (*entity.Coordinates, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocode request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocode API returned status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocode response")
	}

	switch parsed.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, service.ErrNoCoordinates
	default:
		return nil, errors.Errorf("geocode API returned status %q", parsed.Status)
	}

	if len(parsed.Results) == 0 {
		return nil, service.ErrNoCoordinates
	}

	loc := parsed.Results[0].Geometry.Location

	return &entity.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
