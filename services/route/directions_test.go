package route

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moveboard/models"
)

const twoLegDirections = `{
	"status": "OK",
	"routes": [{
		"overview_polyline": {"points": "abc123"},
		"legs": [
			{
				"start_address": "1 Depot Way",
				"end_address": "412 Harrison St",
				"distance": {"value": 8200, "text": "8.2 km"},
				"duration": {"value": 900, "text": "15 mins"},
				"duration_in_traffic": {"value": 1200, "text": "20 mins"}
			},
			{
				"start_address": "412 Harrison St",
				"end_address": "88 Lake Ave",
				"distance": {"value": 4100, "text": "4.1 km"},
				"duration": {"value": 600, "text": "10 mins"},
				"duration_in_traffic": {"value": 660, "text": "11 mins"}
			}
		]
	}]
}`

func TestPlanRoute(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"origin":         r.URL.Query().Get("origin"),
			"destination":    r.URL.Query().Get("destination"),
			"waypoints":      r.URL.Query().Get("waypoints"),
			"departure_time": r.URL.Query().Get("departure_time"),
		}
		fmt.Fprint(w, twoLegDirections)
	}))
	defer srv.Close()

	svc := NewDefaultRouteService("test-key")
	svc.DirectionsEndpoint = srv.URL

	departure := time.Unix(1756700000, 0)
	plan, err := svc.PlanRoute(context.Background(), []models.Waypoint{
		{Address: "1 Depot Way"},
		{PlaceID: "ChIJabc"},
		{Address: "88 Lake Ave"},
	}, &departure)
	if err != nil {
		t.Fatalf("PlanRoute() failed: %v", err)
	}

	if gotQuery["origin"] != "1 Depot Way" || gotQuery["destination"] != "88 Lake Ave" {
		t.Errorf("origin/destination = %q/%q", gotQuery["origin"], gotQuery["destination"])
	}
	if gotQuery["waypoints"] != "place_id:ChIJabc" {
		t.Errorf("waypoints = %q, want opaque place reference", gotQuery["waypoints"])
	}
	if gotQuery["departure_time"] != "1756700000" {
		t.Errorf("departure_time = %q", gotQuery["departure_time"])
	}

	if len(plan.Legs) != 2 {
		t.Fatalf("plan has %d legs, want 2", len(plan.Legs))
	}
	if plan.Legs[0].DistanceMeters != 8200 || plan.Legs[0].DurationSeconds != 900 {
		t.Errorf("first leg = %+v", plan.Legs[0])
	}
	if plan.Legs[0].TrafficSeconds != 1200 {
		t.Errorf("first leg traffic = %d, want 1200", plan.Legs[0].TrafficSeconds)
	}
	if plan.TotalMeters != 12300 || plan.TotalSeconds != 1500 || plan.TrafficSeconds != 1860 {
		t.Errorf("totals = %d m / %d s / %d s traffic", plan.TotalMeters, plan.TotalSeconds, plan.TrafficSeconds)
	}
	if plan.OverviewPolygon != "abc123" {
		t.Errorf("polyline = %q", plan.OverviewPolygon)
	}
}

func TestPlanRouteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "routes": []}`)
	}))
	defer srv.Close()

	svc := NewDefaultRouteService("test-key")
	svc.DirectionsEndpoint = srv.URL

	stops := []models.Waypoint{{Address: "A"}, {Address: "B"}}
	if _, err := svc.PlanRoute(context.Background(), stops, nil); err == nil {
		t.Error("PlanRoute() with non-OK status should fail")
	}
	if _, err := svc.PlanRoute(context.Background(), stops[:1], nil); err == nil {
		t.Error("PlanRoute() with a single stop should fail")
	}

	svc.APIKey = ""
	if _, err := svc.PlanRoute(context.Background(), stops, nil); err == nil {
		t.Error("PlanRoute() without an API key should fail")
	}
}

func TestAutocomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("input"); got != "412 Harr" {
			t.Errorf("input = %q", got)
		}
		fmt.Fprint(w, `{"status":"OK","predictions":[
			{"description":"412 Harrison St, Portland, OR","place_id":"ChIJ412"},
			{"description":"412 Harral Ave, Bridgeport, CT","place_id":"ChIJ412b"}
		]}`)
	}))
	defer srv.Close()

	svc := NewDefaultRouteService("test-key")
	svc.AutocompleteEndpoint = srv.URL

	got, err := svc.Autocomplete(context.Background(), "412 Harr")
	if err != nil {
		t.Fatalf("Autocomplete() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].PlaceID != "ChIJ412" || got[0].Description == "" {
		t.Errorf("first suggestion = %+v", got[0])
	}
}

func TestAutocompleteZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","predictions":[]}`)
	}))
	defer srv.Close()

	svc := NewDefaultRouteService("test-key")
	svc.AutocompleteEndpoint = srv.URL

	got, err := svc.Autocomplete(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("Autocomplete() failed on empty result: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d suggestions, want none", len(got))
	}
}
