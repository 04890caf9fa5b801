// File: moveboard/services/route/places.go
package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"moveboard/models"
)

type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

// Autocomplete returns place suggestions for the given address prefix.
func (s *DefaultRouteService) Autocomplete(ctx context.Context, prefix string) ([]models.PlaceSuggestion, error) {
	if prefix == "" {
		return nil, fmt.Errorf("address prefix is required")
	}
	if s.APIKey == "" {
		return nil, fmt.Errorf("mapping API key is not configured")
	}

	params := url.Values{}
	params.Set("input", prefix)
	params.Set("types", "address")
	params.Set("key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.AutocompleteEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build autocomplete request: %w", err)
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("autocomplete request failed: %w", err)
	}
	defer resp.Body.Close()

	var data autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode autocomplete response: %w", err)
	}
	// ZERO_RESULTS is a normal empty answer, not a failure.
	if data.Status != "OK" && data.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("autocomplete provider returned status %q", data.Status)
	}

	suggestions := make([]models.PlaceSuggestion, 0, len(data.Predictions))
	for _, p := range data.Predictions {
		suggestions = append(suggestions, models.PlaceSuggestion{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return suggestions, nil
}

// StreetViewURL builds the static street-level panorama URL for a coordinate.
func (s *DefaultRouteService) StreetViewURL(lat, lng float64) string {
	params := url.Values{}
	params.Set("size", "640x400")
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("key", s.APIKey)
	return s.StreetViewEndpoint + "?" + params.Encode()
}
