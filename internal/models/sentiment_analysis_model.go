package models

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

type VaderDetails struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// SentimentResult is the combined classification of one piece of text.
// PolarityScore is the lexicon estimate, VaderScore the VADER compound.
type SentimentResult struct {
	Label         SentimentLabel `json:"sentiment"`
	Score         float64        `json:"score"`
	PolarityScore float64        `json:"textblob_score"`
	VaderScore    float64        `json:"vader_score"`
	VaderDetails  VaderDetails   `json:"vader_details"`
	Subjectivity  float64        `json:"subjectivity"`
}

type SentimentSummary struct {
	Positive  int     `json:"positive"`
	Neutral   int     `json:"neutral"`
	Negative  int     `json:"negative"`
	Total     int     `json:"total"`
	MeanScore float64 `json:"mean_score"`
	StdDev    float64 `json:"std_dev"`
}

type AnalyzedText struct {
	Text      string          `json:"text"`
	Topic     string          `json:"topic,omitempty"`
	Keywords  []string        `json:"keywords"`
	Sentiment SentimentResult `json:"sentiment"`
}
