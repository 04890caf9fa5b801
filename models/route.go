package models

// Waypoint is a single stop in a route plan. Either a free-text address or an
// opaque place reference from autocomplete.
type Waypoint struct {
	Address string `json:"address,omitempty"`
	PlaceID string `json:"placeId,omitempty"`
}

// RouteLeg is the travel segment between two consecutive waypoints.
type RouteLeg struct {
	StartAddress    string `json:"startAddress"`
	EndAddress      string `json:"endAddress"`
	DistanceMeters  int    `json:"distanceMeters"`
	DistanceText    string `json:"distanceText"`
	DurationSeconds int    `json:"durationSeconds"`
	DurationText    string `json:"durationText"`
	TrafficSeconds  int    `json:"trafficSeconds,omitempty"`
	TrafficText     string `json:"trafficText,omitempty"`
}

// RoutePlan is the assembled multi-stop route.
type RoutePlan struct {
	Legs            []RouteLeg `json:"legs"`
	TotalMeters     int        `json:"totalMeters"`
	TotalSeconds    int        `json:"totalSeconds"`
	TrafficSeconds  int        `json:"trafficSeconds,omitempty"`
	OverviewPolygon string     `json:"polyline,omitempty"`
}

// PlaceSuggestion is one autocomplete result for an address prefix.
type PlaceSuggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}
