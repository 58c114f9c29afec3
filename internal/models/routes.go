package models

// CandidateKindDirect is the only candidate kind produced today; transfer
// itineraries would introduce further kinds.
const CandidateKindDirect = "direct"

// Coordinates is a WGS84 point as exposed by the API.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StopSnapshot is the id-free view of a resolved stop returned to callers.
type StopSnapshot struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

func NewStopSnapshot(name string, lat, lon float64) StopSnapshot {
	return StopSnapshot{
		Name:        name,
		Coordinates: Coordinates{Lat: lat, Lng: lon},
	}
}

// CandidateRoute describes one way of travelling between the two resolved
// stops on a single transit line. AvgTime is nil when no trip in the group
// carries usable schedule times.
type CandidateRoute struct {
	Kind              string   `json:"type"`
	RouteName         string   `json:"route_name"`
	RouteDescription  string   `json:"route_description"`
	AvgTime           *int     `json:"avg_time"`
	StopsCount        int      `json:"stops_count"`
	BoardingStop      string   `json:"boarding_stop"`
	DestinationStop   string   `json:"destination_stop"`
	IntermediateStops []string `json:"intermediate_stops"`
}

// RankedResult is the outcome of one route query: the resolved endpoint stops
// and the best candidates, ordered fastest-first and capped at five.
type RankedResult struct {
	OriginStop       StopSnapshot     `json:"origin_stop"`
	DestinationStop  StopSnapshot     `json:"destination_stop"`
	Routes           []CandidateRoute `json:"routes"`
	TotalRoutesFound int              `json:"total_routes_found"`
}
