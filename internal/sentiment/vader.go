package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
	"github.com/spacesedan/civicpulse/internal/models"
)

// VaderEstimator wraps govader's analyzer. Calls are serialized so a single
// instance can back every request.
type VaderEstimator struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

func NewVaderEstimator() *VaderEstimator {
	return &VaderEstimator{
		sia: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (v *VaderEstimator) Score(text string) models.VaderDetails {
	v.mu.Lock()
	scores := v.sia.PolarityScores(text)
	v.mu.Unlock()

	return models.VaderDetails{
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
		Positive: scores.Positive,
		Compound: clamp(scores.Compound, -1, 1),
	}
}
