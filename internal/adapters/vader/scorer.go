// Package vader adapts the VADER lexicon scorer to the domain's
// SentimentScorer port.
package vader

import (
	"time"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/github-code-quality-study/review-api-P03/internal/adapters/observability"
	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

type Scorer struct{}

func New() *Scorer { return &Scorer{} }

// Score is deterministic: the lexicon is static, so equal text always
// yields equal numbers. Empty text short-circuits to the zero value.
func (Scorer) Score(text string) domain.Sentiment {
	if text == "" {
		return domain.Sentiment{}
	}
	start := time.Now()
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)
	observability.ObserveScore(time.Since(start))
	return domain.Sentiment{
		Neg:      score.Negative,
		Neu:      score.Neutral,
		Pos:      score.Positive,
		Compound: score.Compound,
	}
}
