package planner

import (
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
	"github.com/melendez-dev/transmetro-gtfs/internal/models"
)

// Fallback labels for routes whose feed rows omit the optional name columns.
const (
	placeholderRouteName        = "Unnamed route"
	placeholderRouteDescription = "No description available"
)

// DirectRoutes finds every route with at least one trip that visits the origin
// stop strictly before the destination stop, and builds one candidate per such
// route. Trips are grouped by parent route; each group's travel time is the
// mean over all of its trips with usable schedule times, truncated to whole
// minutes, or nil when none have usable times. The stop listing comes from a
// representative trip: the group's lexicographically smallest trip ID, so
// results do not depend on iteration order.
func DirectRoutes(store *gtfs.Store, origin, dest gtfs.Stop) []models.CandidateRoute {
	destTrips := make(map[string]bool)
	for _, tripID := range store.TripIDsForStop(dest.ID) {
		destTrips[tripID] = true
	}

	// Intersect in origin feed order so grouping below is deterministic.
	tripsByRoute := make(map[string][]string)
	var routeOrder []string
	for _, tripID := range store.TripIDsForStop(origin.ID) {
		if !destTrips[tripID] {
			continue
		}
		trip, ok := store.TripByID(tripID)
		if !ok {
			// Stop time without a trips.txt row; a data-quality gap, not a failure.
			continue
		}
		if _, seen := tripsByRoute[trip.RouteID]; !seen {
			routeOrder = append(routeOrder, trip.RouteID)
		}
		tripsByRoute[trip.RouteID] = append(tripsByRoute[trip.RouteID], tripID)
	}

	var candidates []models.CandidateRoute
	for _, routeID := range routeOrder {
		tripIDs := tripsByRoute[routeID]

		segment := Segment(store, representativeTrip(tripIDs), origin.ID, dest.ID)
		if segment == nil {
			// No demonstrated origin-before-destination order; skip the
			// whole route rather than report a backwards connection.
			continue
		}

		candidates = append(candidates, models.CandidateRoute{
			Kind:              models.CandidateKindDirect,
			RouteName:         routeLabel(store, routeID),
			RouteDescription:  routeDescription(store, routeID),
			AvgTime:           averageTravelTime(store, tripIDs, origin.ID, dest.ID),
			StopsCount:        len(segment),
			BoardingStop:      origin.Name,
			DestinationStop:   dest.Name,
			IntermediateStops: intermediateStopNames(store, segment),
		})
	}
	return candidates
}

// representativeTrip picks the lexicographically smallest trip ID.
func representativeTrip(tripIDs []string) string {
	smallest := tripIDs[0]
	for _, id := range tripIDs[1:] {
		if id < smallest {
			smallest = id
		}
	}
	return smallest
}

// averageTravelTime returns the mean travel time over every trip in the group
// with a usable schedule, truncated toward zero to whole minutes, or nil when
// no trip has one.
func averageTravelTime(store *gtfs.Store, tripIDs []string, originStopID, destStopID string) *int {
	var sum float64
	var count int
	for _, tripID := range tripIDs {
		if duration := TravelTime(store, tripID, originStopID, destStopID); duration != nil {
			sum += *duration
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := int(sum / float64(count))
	return &mean
}

// intermediateStopNames lists the stops between the two endpoints, in visiting
// order. A stop time referencing an unknown stop falls back to its raw ID.
func intermediateStopNames(store *gtfs.Store, segment []gtfs.StopTime) []string {
	names := make([]string, 0, len(segment)-2)
	for _, st := range segment[1 : len(segment)-1] {
		if stop, ok := store.StopByID(st.StopID); ok {
			names = append(names, stop.Name)
		} else {
			names = append(names, st.StopID)
		}
	}
	return names
}

func routeLabel(store *gtfs.Store, routeID string) string {
	if route, ok := store.RouteByID(routeID); ok && route.ShortName != "" {
		return route.ShortName
	}
	return placeholderRouteName
}

func routeDescription(store *gtfs.Store, routeID string) string {
	if route, ok := store.RouteByID(routeID); ok && route.LongName != "" {
		return route.LongName
	}
	return placeholderRouteDescription
}
