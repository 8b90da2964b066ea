package domain

// Sentiment is the overall read on an exchange-rate trend.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Insight is the structured output of the AI-insight collaborator. Its
// availability is best-effort: a failed generation degrades to "no insight
// shown", never an error.
type Insight struct {
	Analysis  string    `json:"analysis"`
	Tips      []string  `json:"tips"` // expected length 3
	Sentiment Sentiment `json:"sentiment"`
}
