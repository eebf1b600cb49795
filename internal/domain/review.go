package domain

// Timestamp layouts used on the wire and in the store.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

type Review struct {
	ReviewID   string `json:"ReviewId"`
	Location   string `json:"Location"`
	Timestamp  string `json:"Timestamp"` // TimestampLayout, server-assigned
	ReviewBody string `json:"ReviewBody"`
}

// Sentiment is the polarity breakdown for one piece of text.
// Neg/Neu/Pos are in [0,1] and sum to ~1; Compound is in [-1,1].
type Sentiment struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// ScoredReview is the read model returned by both API operations:
// the stored record plus the sentiment computed for this response.
type ScoredReview struct {
	Review
	Sentiment Sentiment `json:"sentiment"`
}
