package services

import (
	"ev-route-service/internal/domain"
	"sort"
)

// SelectWaypoint ranks all annotated candidates and marks the single
// best one as the mandatory charging stop. The input is not modified:
// a new list is returned in discovery order with exactly one candidate
// selected, alongside the winner's score. Ties are broken by discovery
// order, first-discovered wins. An empty candidate list is a no-op.
//
// This is a single-stop greedy heuristic: it does not verify the
// selected stop is reachable before battery depletion, and it never
// selects more than one stop.
func SelectWaypoint(candidates []domain.StationCandidate) ([]domain.StationCandidate, *domain.ScoredCandidate) {
	out := make([]domain.StationCandidate, len(candidates))
	copy(out, candidates)

	if len(out) == 0 {
		return out, nil
	}

	type ranked struct {
		idx    int
		scored domain.ScoredCandidate
	}

	ranking := make([]ranked, 0, len(out))
	for i, c := range out {
		ranking = append(ranking, ranked{
			idx: i,
			scored: domain.ScoredCandidate{
				Candidate: c,
				Score:     ScoreStation(c, c.DetourKm),
			},
		})
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].scored.Score > ranking[b].scored.Score
	})

	best := ranking[0]
	out[best.idx].Selected = true
	winner := best.scored
	winner.Candidate = out[best.idx]

	return out, &winner
}
