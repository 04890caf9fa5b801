package route

import (
	"context"
	"net/http"
	"time"

	"moveboard/models"
)

// Google Maps endpoints. Overridable so tests can point at a local server.
const (
	DefaultDirectionsEndpoint   = "https://maps.googleapis.com/maps/api/directions/json"
	DefaultAutocompleteEndpoint = "https://maps.googleapis.com/maps/api/place/autocomplete/json"
	DefaultStreetViewEndpoint   = "https://maps.googleapis.com/maps/api/streetview"
)

// RouteService plans multi-stop routes and resolves addresses against the
// mapping provider.
type RouteService interface {
	// PlanRoute builds a route through the waypoints in order and returns
	// per-leg distance and duration. A non-nil departure time adds
	// traffic-adjusted durations.
	PlanRoute(ctx context.Context, waypoints []models.Waypoint, departure *time.Time) (*models.RoutePlan, error)
	// Autocomplete returns place suggestions for an address prefix.
	Autocomplete(ctx context.Context, prefix string) ([]models.PlaceSuggestion, error)
	// StreetViewURL renders the static street-level panorama URL for a coordinate.
	StreetViewURL(lat, lng float64) string
}

// DefaultRouteService is the production implementation backed by the Google
// Maps web APIs.
type DefaultRouteService struct {
	APIKey     string
	HTTPClient *http.Client

	DirectionsEndpoint   string
	AutocompleteEndpoint string
	StreetViewEndpoint   string
}

// NewDefaultRouteService returns a service using the default endpoints.
func NewDefaultRouteService(apiKey string) *DefaultRouteService {
	return &DefaultRouteService{
		APIKey:               apiKey,
		HTTPClient:           &http.Client{Timeout: 10 * time.Second},
		DirectionsEndpoint:   DefaultDirectionsEndpoint,
		AutocompleteEndpoint: DefaultAutocompleteEndpoint,
		StreetViewEndpoint:   DefaultStreetViewEndpoint,
	}
}

func (s *DefaultRouteService) client() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}
