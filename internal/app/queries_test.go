package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/github-code-quality-study/review-api-P03/internal/app"
	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	reviews []domain.Review
}

func (f *fakeStore) List(ctx context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

func (f *fakeStore) Append(ctx context.Context, r domain.Review) error {
	f.reviews = append(f.reviews, r)
	return nil
}

// fakeScorer maps keywords to fixed compounds so sort order is known.
type fakeScorer struct{}

func (fakeScorer) Score(text string) domain.Sentiment {
	switch {
	case strings.Contains(text, "great"):
		return domain.Sentiment{Pos: 0.7, Neu: 0.3, Compound: 0.8}
	case strings.Contains(text, "awful"):
		return domain.Sentiment{Neg: 0.6, Neu: 0.4, Compound: -0.7}
	default:
		return domain.Sentiment{Neu: 1}
	}
}

func seedStore() *fakeStore {
	return &fakeStore{reviews: []domain.Review{
		{ReviewID: "r1", Location: "Denver, Colorado", Timestamp: "2024-01-01 10:00:00", ReviewBody: "it was fine"},
		{ReviewID: "r2", Location: "Denver, Colorado", Timestamp: "2024-01-02 00:00:00", ReviewBody: "great stay"},
		{ReviewID: "r3", Location: "El Paso, Texas", Timestamp: "2024-01-03 09:30:00", ReviewBody: "awful food"},
		{ReviewID: "r4", Location: "Denver, Colorado", Timestamp: "2024-01-04 23:59:59", ReviewBody: "nothing special"},
	}}
}

func ptr[T any](v T) *T { return &v }

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &d
}

func ids(rs []domain.ScoredReview) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ReviewID
	}
	return out
}

// ---- tests ----

func TestListReviews_NoFilters_SortedByCompoundDesc(t *testing.T) {
	q := app.NewQueryService(seedStore(), fakeScorer{})

	out, err := q.ListReviews(context.Background(), domain.ReviewsQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// great (0.8) first, awful (-0.7) last; the two neutral ties keep
	// insertion order r1 then r4.
	want := []string{"r2", "r1", "r4", "r3"}
	got := ids(out)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Sentiment.Compound < out[i].Sentiment.Compound {
			t.Fatalf("not sorted descending at %d: %v", i, out)
		}
	}
}

func TestListReviews_LocationFilterIsExact(t *testing.T) {
	q := app.NewQueryService(seedStore(), fakeScorer{})

	out, err := q.ListReviews(context.Background(), domain.ReviewsQuery{Location: ptr("Denver, Colorado")})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 Denver reviews, got %d", len(out))
	}
	for _, r := range out {
		if r.Location != "Denver, Colorado" {
			t.Fatalf("unexpected location %q", r.Location)
		}
	}

	// no match -> empty, not nil
	out, err = q.ListReviews(context.Background(), domain.ReviewsQuery{Location: ptr("denver, colorado")})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}

func TestListReviews_DateBoundsInclusive(t *testing.T) {
	q := app.NewQueryService(seedStore(), fakeScorer{})

	// r2 sits exactly on the start midnight and must be included.
	out, err := q.ListReviews(context.Background(), domain.ReviewsQuery{StartDate: date(t, "2024-01-02")})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := ids(out); len(got) != 3 {
		t.Fatalf("start_date filter: got %v", got)
	}

	// end bound is midnight of that day: r4 (23:59:59 on the 4th) is
	// outside end_date=2024-01-04.
	out, err = q.ListReviews(context.Background(), domain.ReviewsQuery{EndDate: date(t, "2024-01-04")})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, r := range out {
		if r.ReviewID == "r4" {
			t.Fatal("r4 is after end_date midnight and must be filtered out")
		}
	}
	if len(out) != 3 {
		t.Fatalf("end_date filter: got %v", ids(out))
	}
}

func TestListReviews_FiltersCompose(t *testing.T) {
	q := app.NewQueryService(seedStore(), fakeScorer{})

	out, err := q.ListReviews(context.Background(), domain.ReviewsQuery{
		Location:  ptr("Denver, Colorado"),
		StartDate: date(t, "2024-01-02"),
		EndDate:   date(t, "2024-01-03"),
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := ids(out); len(got) != 1 || got[0] != "r2" {
		t.Fatalf("composed filters: got %v, want [r2]", got)
	}
}

func TestListReviews_UnparseableTimestampSkippedByDateFilter(t *testing.T) {
	st := seedStore()
	st.reviews = append(st.reviews, domain.Review{ReviewID: "bad", Location: "El Paso, Texas", Timestamp: "not-a-time", ReviewBody: "it was fine"})
	q := app.NewQueryService(st, fakeScorer{})

	// without date filters the row is still listed
	out, _ := q.ListReviews(context.Background(), domain.ReviewsQuery{})
	if len(out) != 5 {
		t.Fatalf("expected 5 rows unfiltered, got %d", len(out))
	}

	out, _ = q.ListReviews(context.Background(), domain.ReviewsQuery{StartDate: date(t, "2024-01-01")})
	for _, r := range out {
		if r.ReviewID == "bad" {
			t.Fatal("unparseable timestamp must not survive a date filter")
		}
	}
}

func TestListReviews_RepeatReadsAreStable(t *testing.T) {
	q := app.NewQueryService(seedStore(), fakeScorer{})

	first, err := q.ListReviews(context.Background(), domain.ReviewsQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := q.ListReviews(context.Background(), domain.ReviewsQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs between identical reads: %+v vs %+v", i, first[i], second[i])
		}
	}
}
