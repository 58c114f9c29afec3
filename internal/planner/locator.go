package planner

import (
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
)

// NearestStop returns the stop closest to (lat, lon) by planar distance in raw
// degree space. Regional feeds span a few dozen kilometres at most, so the
// flat-earth approximation holds and a geodesic formula would only reorder
// stops that are effectively equidistant. Ties go to the first minimal stop in
// feed order. The scan is O(#stops) per call; at regional-feed scale that is
// cheaper than maintaining a spatial index, and callers issuing many queries
// share one resident store anyway.
func NearestStop(store *gtfs.Store, lat, lon float64) (gtfs.Stop, error) {
	if len(store.Stops) == 0 {
		return gtfs.Stop{}, gtfs.ErrEmptyStore
	}

	best := store.Stops[0]
	bestDist := squaredDistance(best, lat, lon)
	for _, stop := range store.Stops[1:] {
		// Strict less-than keeps the earliest minimal stop.
		if d := squaredDistance(stop, lat, lon); d < bestDist {
			best = stop
			bestDist = d
		}
	}
	return best, nil
}

// squaredDistance avoids the square root; minimizing the square minimizes the
// distance.
func squaredDistance(stop gtfs.Stop, lat, lon float64) float64 {
	dLat := stop.Lat - lat
	dLon := stop.Lon - lon
	return dLat*dLat + dLon*dLon
}
