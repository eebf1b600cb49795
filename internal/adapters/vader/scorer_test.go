package vader_test

import (
	"testing"

	"github.com/github-code-quality-study/review-api-P03/internal/adapters/vader"
)

func TestScore_PolarityAndShape(t *testing.T) {
	s := vader.New()

	pos := s.Score("Great service, friendly staff!")
	if pos.Compound <= 0 {
		t.Fatalf("expected positive compound, got %+v", pos)
	}
	neg := s.Score("Terrible wait, awful experience.")
	if neg.Compound >= 0 {
		t.Fatalf("expected negative compound, got %+v", neg)
	}

	for _, sc := range []struct {
		name string
		v    float64
	}{
		{"neg", pos.Neg}, {"neu", pos.Neu}, {"pos", pos.Pos},
		{"neg", neg.Neg}, {"neu", neg.Neu}, {"pos", neg.Pos},
	} {
		if sc.v < 0 || sc.v > 1 {
			t.Fatalf("%s = %f out of [0,1]", sc.name, sc.v)
		}
	}
	for _, c := range []float64{pos.Compound, neg.Compound} {
		if c < -1 || c > 1 {
			t.Fatalf("compound %f out of [-1,1]", c)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := vader.New()
	a := s.Score("The room was clean but the pool was closed.")
	b := s.Score("The room was clean but the pool was closed.")
	if a != b {
		t.Fatalf("same text scored differently: %+v vs %+v", a, b)
	}
}

func TestScore_EmptyTextIsZero(t *testing.T) {
	s := vader.New()
	if got := s.Score(""); got.Neg != 0 || got.Neu != 0 || got.Pos != 0 || got.Compound != 0 {
		t.Fatalf("empty text must score zero, got %+v", got)
	}
}
