package app

import (
	"context"
	"sort"
	"time"

	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

type QueryService struct {
	store  domain.ReviewStore
	scorer domain.SentimentScorer
}

func NewQueryService(store domain.ReviewStore, scorer domain.SentimentScorer) *QueryService {
	return &QueryService{store: store, scorer: scorer}
}

// ListReviews filters the current store contents (filters AND-compose),
// scores every surviving record and returns them sorted by compound
// descending. Sentiment is recomputed on every call; nothing is cached.
func (s *QueryService) ListReviews(ctx context.Context, q domain.ReviewsQuery) ([]domain.ScoredReview, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ScoredReview, 0, len(all))
	for _, r := range all {
		if q.Location != nil && r.Location != *q.Location {
			continue
		}
		if q.StartDate != nil || q.EndDate != nil {
			ts, err := time.Parse(domain.TimestampLayout, r.Timestamp)
			if err != nil {
				// pre-seeded row with an unparseable timestamp; date
				// filters cannot place it, so it is skipped
				continue
			}
			if q.StartDate != nil && ts.Before(*q.StartDate) {
				continue
			}
			if q.EndDate != nil && ts.After(*q.EndDate) {
				continue
			}
		}
		out = append(out, domain.ScoredReview{Review: r, Sentiment: s.scorer.Score(r.ReviewBody)})
	}

	// stable: ties keep insertion order, which filtering preserved
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sentiment.Compound > out[j].Sentiment.Compound
	})
	return out, nil
}
