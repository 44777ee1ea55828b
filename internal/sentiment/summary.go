package sentiment

import (
	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/civicpulse/internal/models"
)

// Summarize aggregates label counts and score statistics over results.
func Summarize(results []models.SentimentResult) models.SentimentSummary {
	summary := models.SentimentSummary{Total: len(results)}
	if len(results) == 0 {
		return summary
	}

	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
		switch r.Label {
		case models.SentimentPositive:
			summary.Positive++
		case models.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}

	if len(scores) == 1 {
		summary.MeanScore = scores[0]
		return summary
	}

	summary.MeanScore, summary.StdDev = stat.MeanStdDev(scores, nil)
	return summary
}
