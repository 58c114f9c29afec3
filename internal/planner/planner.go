// Package planner implements route discovery over a loaded schedule store:
// nearest-stop resolution, per-trip travel times, direct-route aggregation and
// ranking. Every function is a pure computation over the read-only store, so
// independent queries can run concurrently without coordination.
package planner

import (
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
	"github.com/melendez-dev/transmetro-gtfs/internal/models"
)

// ResolveRoutes answers a full query: it snaps both coordinates to their
// nearest stops, discovers every direct route between them and returns the
// ranked result. The store is only read, never modified.
func ResolveRoutes(store *gtfs.Store, originLat, originLon, destLat, destLon float64) (models.RankedResult, error) {
	origin, err := NearestStop(store, originLat, originLon)
	if err != nil {
		return models.RankedResult{}, err
	}
	dest, err := NearestStop(store, destLat, destLon)
	if err != nil {
		return models.RankedResult{}, err
	}

	result := Rank(DirectRoutes(store, origin, dest))
	result.OriginStop = models.NewStopSnapshot(origin.Name, origin.Lat, origin.Lon)
	result.DestinationStop = models.NewStopSnapshot(dest.Name, dest.Lat, dest.Lon)
	return result, nil
}

// ResolveRoutesFromFeed loads the feed at source and answers a single query
// with it. Callers issuing repeated queries should load once with gtfs.Load
// and use ResolveRoutes, which amortizes the parse across requests.
func ResolveRoutesFromFeed(source string, originLat, originLon, destLat, destLon float64) (models.RankedResult, error) {
	store, err := gtfs.Load(source)
	if err != nil {
		return models.RankedResult{}, err
	}
	return ResolveRoutes(store, originLat, originLon, destLat, destLon)
}
