package signbank

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/signphon/internal/domain"
)

// Similar returns the stored entries whose dominant hand is closest to the
// given entry's, nearest first. Ties are broken by gloss, then id.
func (s *Service) Similar(ctx context.Context, input SimilarInput) ([]domain.ScoredEntry, error) {
	if err := input.validate(s.cfg.MaxLimit); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	target, err := s.signs.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get sign: %w", err)
	}

	candidates, err := s.signs.ListCandidates(ctx, target.ID, s.cfg.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	scored, err := s.rank(ctx, target.Sign.Dominant, candidates)
	if err != nil {
		return nil, err
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// rank scores candidates against query on a bounded number of workers and
// sorts the result. Each worker owns a contiguous chunk of the output.
func (s *Service) rank(ctx context.Context, query domain.Hand, candidates []domain.SignEntry) ([]domain.ScoredEntry, error) {
	scored := make([]domain.ScoredEntry, len(candidates))
	workers := max(min(s.cfg.Workers, len(candidates)), 1)
	chunk := (len(candidates) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := min(lo+chunk, len(candidates))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				scored[i] = domain.ScoredEntry{
					Entry:    candidates[i],
					Distance: s.metric.Distance(query, candidates[i].Sign.Dominant),
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	slices.SortFunc(scored, func(a, b domain.ScoredEntry) int {
		return cmp.Or(
			cmp.Compare(a.Distance, b.Distance),
			cmp.Compare(domain.NormalizeGloss(a.Entry.Gloss), domain.NormalizeGloss(b.Entry.Gloss)),
			cmp.Compare(a.Entry.ID.String(), b.Entry.ID.String()),
		)
	})
	return scored, nil
}
