package planner

import (
	"math"
	"sort"

	"github.com/melendez-dev/transmetro-gtfs/internal/models"
)

// maxRankedRoutes caps how many candidates a result carries. The cap is
// applied after the global sort, so the five fastest always survive.
const maxRankedRoutes = 5

// unknownTimeScore is the sort key for candidates without a usable average:
// large enough that they rank after every candidate with a real time, without
// being dropped.
const unknownTimeScore = math.MaxInt32

// Rank orders candidates fastest-first and truncates to the top five.
// TotalRoutesFound reports the count before truncation. Zero candidates is a
// valid outcome, not an error.
func Rank(candidates []models.CandidateRoute) models.RankedResult {
	ranked := make([]models.CandidateRoute, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return totalTimeScore(ranked[i]) < totalTimeScore(ranked[j])
	})

	total := len(ranked)
	if total > maxRankedRoutes {
		ranked = ranked[:maxRankedRoutes]
	}
	return models.RankedResult{
		Routes:           ranked,
		TotalRoutesFound: total,
	}
}

func totalTimeScore(candidate models.CandidateRoute) int {
	if candidate.AvgTime == nil {
		return unknownTimeScore
	}
	return *candidate.AvgTime
}
