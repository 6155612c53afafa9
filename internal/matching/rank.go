package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// rankConcurrency bounds the number of scoring goroutines in a batch rank.
const rankConcurrency = 8

// RankCandidates scores every candidate against one job concurrently and
// returns them ordered by descending score. Ties break on ascending
// candidate ID so rankings are reproducible. The only error source is
// context cancellation; scoring itself cannot fail.
func (e *Engine) RankCandidates(ctx context.Context, candidates []types.Candidate, job types.Job) ([]types.RankedCandidate, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ranked[i] = types.RankedCandidate{
				CandidateID: candidate.ID,
				Name:        candidate.Name,
				Result:      e.Score(candidate, job),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return ranked[i].CandidateID.String() < ranked[j].CandidateID.String()
	})

	return ranked, nil
}
