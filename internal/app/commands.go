package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

type ReviewService struct {
	store  domain.ReviewStore
	scorer domain.SentimentScorer
}

func NewReviewService(store domain.ReviewStore, scorer domain.SentimentScorer) *ReviewService {
	return &ReviewService{store: store, scorer: scorer}
}

type CreateReview struct {
	Location   string
	ReviewBody string
}

// CreateReview validates the command, synthesizes the record
// (server-assigned id and timestamp), appends it to the store and
// returns it with its sentiment attached. The only mutation path.
func (s *ReviewService) CreateReview(ctx context.Context, cmd CreateReview) (domain.ScoredReview, error) {
	if cmd.Location == "" || cmd.ReviewBody == "" {
		return domain.ScoredReview{}, domain.ErrMissingFields
	}
	if !domain.ValidLocation(cmd.Location) {
		return domain.ScoredReview{}, domain.ErrInvalidLocation
	}

	r := domain.Review{
		ReviewID:   uuid.NewString(),
		Location:   cmd.Location,
		Timestamp:  time.Now().Format(domain.TimestampLayout),
		ReviewBody: cmd.ReviewBody,
	}
	if err := s.store.Append(ctx, r); err != nil {
		return domain.ScoredReview{}, err
	}
	return domain.ScoredReview{Review: r, Sentiment: s.scorer.Score(r.ReviewBody)}, nil
}
