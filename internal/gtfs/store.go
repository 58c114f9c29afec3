package gtfs

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyStore is returned by queries that need at least one stop to work with.
var ErrEmptyStore = errors.New("schedule store contains no stops")

// FeedLoadError indicates the feed itself could not be turned into a store:
// the source is missing, a required table is absent, or a table is malformed.
type FeedLoadError struct {
	Source string
	Table  string
	Err    error
}

func (e *FeedLoadError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("loading feed %q: table %s: %v", e.Source, e.Table, e.Err)
	}
	return fmt.Sprintf("loading feed %q: %v", e.Source, e.Err)
}

func (e *FeedLoadError) Unwrap() error { return e.Err }

// DataTypeError indicates a column value that must be numeric could not be parsed.
type DataTypeError struct {
	Table  string
	Column string
	Value  string
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("table %s: column %s: cannot parse %q as a number", e.Table, e.Column, e.Value)
}

// Stop corresponds to a single row in the stops.txt file.
type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Trip corresponds to a single row in the trips.txt file.
type Trip struct {
	ID      string
	RouteID string
}

// Route corresponds to a single row in the routes.txt file. ShortName and
// LongName are empty when the feed omits them.
type Route struct {
	ID        string
	ShortName string
	LongName  string
}

// StopTime corresponds to a single row in the stop_times.txt file. Arrival and
// Departure keep the feed's raw wall-clock text ("HH:MM:SS", possibly beyond
// 24:00:00); an empty string means the feed carries no time for that stop.
type StopTime struct {
	TripID    string
	StopID    string
	Sequence  int
	Arrival   string
	Departure string
}

// Store is the in-memory representation of a static feed. All fields are
// populated once by Load and never mutated afterwards, so a single Store is
// safe to share across concurrent queries.
type Store struct {
	Stops     []Stop
	Trips     []Trip
	Routes    []Route
	StopTimes []StopTime

	stopTimesByTrip map[string][]StopTime
	tripIDsByStop   map[string][]string
	tripsByID       map[string]Trip
	routesByID      map[string]Route
	stopsByID       map[string]Stop
}

// buildIndexes derives the lookup maps every query path uses, so the planner
// never scans a full table per call.
func (s *Store) buildIndexes() {
	s.stopTimesByTrip = make(map[string][]StopTime)
	s.tripIDsByStop = make(map[string][]string)
	s.tripsByID = make(map[string]Trip, len(s.Trips))
	s.routesByID = make(map[string]Route, len(s.Routes))
	s.stopsByID = make(map[string]Stop, len(s.Stops))

	for _, trip := range s.Trips {
		s.tripsByID[trip.ID] = trip
	}
	for _, route := range s.Routes {
		s.routesByID[route.ID] = route
	}
	for _, stop := range s.Stops {
		s.stopsByID[stop.ID] = stop
	}

	seen := make(map[string]map[string]bool)
	for _, st := range s.StopTimes {
		s.stopTimesByTrip[st.TripID] = append(s.stopTimesByTrip[st.TripID], st)
		if seen[st.StopID] == nil {
			seen[st.StopID] = make(map[string]bool)
		}
		if !seen[st.StopID][st.TripID] {
			seen[st.StopID][st.TripID] = true
			s.tripIDsByStop[st.StopID] = append(s.tripIDsByStop[st.StopID], st.TripID)
		}
	}
	for tripID := range s.stopTimesByTrip {
		sortStopTimes(s.stopTimesByTrip[tripID])
	}
}

// StopTimesForTrip returns the trip's stop times ordered by stop_sequence.
// The returned slice is shared; callers must not modify it.
func (s *Store) StopTimesForTrip(tripID string) []StopTime {
	return s.stopTimesByTrip[tripID]
}

// TripIDsForStop returns the IDs of every trip with a stop time at the given
// stop, in feed order.
func (s *Store) TripIDsForStop(stopID string) []string {
	return s.tripIDsByStop[stopID]
}

// StopTimeAt returns the first stop time of the trip at the given stop, in
// sequence order.
func (s *Store) StopTimeAt(tripID, stopID string) (StopTime, bool) {
	for _, st := range s.stopTimesByTrip[tripID] {
		if st.StopID == stopID {
			return st, true
		}
	}
	return StopTime{}, false
}

// TripByID returns the trip with the given ID.
func (s *Store) TripByID(id string) (Trip, bool) {
	trip, ok := s.tripsByID[id]
	return trip, ok
}

// RouteByID returns the route with the given ID.
func (s *Store) RouteByID(id string) (Route, bool) {
	route, ok := s.routesByID[id]
	return route, ok
}

// StopByID returns the stop with the given ID.
func (s *Store) StopByID(id string) (Stop, bool) {
	stop, ok := s.stopsByID[id]
	return stop, ok
}

func sortStopTimes(times []StopTime) {
	// Stable so that equal sequences keep feed order.
	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Sequence < times[j].Sequence
	})
}
