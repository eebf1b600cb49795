package domain

import (
	"context"
	"errors"
	"time"
)

// ReviewStore owns the review collection for the process lifetime.
// Append is the only mutation; List must return a snapshot callers
// are free to reorder.
type ReviewStore interface {
	List(ctx context.Context) ([]Review, error)
	Append(ctx context.Context, r Review) error
}

// SentimentScorer scores free text. Must be deterministic within a
// process; empty text yields the zero Sentiment.
type SentimentScorer interface {
	Score(text string) Sentiment
}

// ReviewsQuery carries the optional list filters. Nil means "not set".
// Date bounds are midnight instants and inclusive on both ends.
type ReviewsQuery struct {
	Location  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Write-path validation failures, mapped to fixed 400 bodies by the
// HTTP adapter.
var (
	ErrMissingFields   = errors.New("location and review body are required")
	ErrInvalidLocation = errors.New("invalid location")
)
