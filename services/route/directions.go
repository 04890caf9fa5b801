// File: moveboard/services/route/directions.go
package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moveboard/models"
)

// directionsResponse mirrors the fields we consume from the Google
// Directions API response.
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			StartAddress string        `json:"start_address"`
			EndAddress   string        `json:"end_address"`
			Distance     directionsVal `json:"distance"`
			Duration     directionsVal `json:"duration"`
			InTraffic    directionsVal `json:"duration_in_traffic"`
		} `json:"legs"`
	} `json:"routes"`
}

type directionsVal struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// waypointRef renders a waypoint the way the Directions API expects: an
// opaque place reference when present, the raw address otherwise.
func waypointRef(w models.Waypoint) string {
	if w.PlaceID != "" {
		return "place_id:" + w.PlaceID
	}
	return w.Address
}

// PlanRoute requests directions through the waypoints in order and assembles
// the per-leg segments into a RoutePlan.
func (s *DefaultRouteService) PlanRoute(ctx context.Context, waypoints []models.Waypoint, departure *time.Time) (*models.RoutePlan, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("a route needs at least an origin and a destination")
	}
	if s.APIKey == "" {
		return nil, fmt.Errorf("mapping API key is not configured")
	}

	params := url.Values{}
	params.Set("origin", waypointRef(waypoints[0]))
	params.Set("destination", waypointRef(waypoints[len(waypoints)-1]))
	if len(waypoints) > 2 {
		mids := make([]string, 0, len(waypoints)-2)
		for _, w := range waypoints[1 : len(waypoints)-1] {
			mids = append(mids, waypointRef(w))
		}
		params.Set("waypoints", strings.Join(mids, "|"))
	}
	if departure != nil {
		params.Set("departure_time", strconv.FormatInt(departure.Unix(), 10))
	}
	params.Set("key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.DirectionsEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if directions.Status != "OK" {
		return nil, fmt.Errorf("directions provider returned status %q", directions.Status)
	}
	if len(directions.Routes) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	r := directions.Routes[0]
	plan := &models.RoutePlan{OverviewPolygon: r.OverviewPolyline.Points}
	for _, leg := range r.Legs {
		l := models.RouteLeg{
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			DistanceMeters:  leg.Distance.Value,
			DistanceText:    leg.Distance.Text,
			DurationSeconds: leg.Duration.Value,
			DurationText:    leg.Duration.Text,
		}
		if leg.InTraffic.Value > 0 {
			l.TrafficSeconds = leg.InTraffic.Value
			l.TrafficText = leg.InTraffic.Text
		}
		plan.Legs = append(plan.Legs, l)
		plan.TotalMeters += l.DistanceMeters
		plan.TotalSeconds += l.DurationSeconds
		plan.TrafficSeconds += l.TrafficSeconds
	}
	return plan, nil
}
