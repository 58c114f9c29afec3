package planner

import (
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
)

// Segment returns the trip's stop times from the origin stop through the
// destination stop inclusive, in visiting order. It returns nil when either
// stop is not part of the trip or when the trip visits the destination at or
// before the origin; a trip only counts as a direct connection when it
// demonstrably travels origin → destination, never the reverse.
func Segment(store *gtfs.Store, tripID, originStopID, destStopID string) []gtfs.StopTime {
	times := store.StopTimesForTrip(tripID)

	originIdx, destIdx := -1, -1
	for i, st := range times {
		if originIdx == -1 && st.StopID == originStopID {
			originIdx = i
		}
		if destIdx == -1 && st.StopID == destStopID {
			destIdx = i
		}
	}
	if originIdx == -1 || destIdx == -1 {
		return nil
	}
	if originIdx >= destIdx {
		return nil
	}
	return times[originIdx : destIdx+1]
}
