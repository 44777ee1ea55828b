package sentiment

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spacesedan/civicpulse/internal/models"
	"github.com/spacesedan/civicpulse/internal/textutil"
)

const (
	DefaultVaderWeight    = 0.7
	DefaultPolarityWeight = 0.3
	DefaultDeadband       = 0.05
)

var (
	defaultAnalyzer     *Analyzer
	defaultAnalyzerOnce sync.Once
)

// Options tunes how the two estimators are combined. The defaults are the
// historical 0.7/0.3 weighting with a ±0.05 neutral band.
type Options struct {
	VaderWeight    float64
	PolarityWeight float64
	Deadband       float64
	StripMarkdown  bool
	Lexicon        *Lexicon
}

func DefaultOptions() Options {
	return Options{
		VaderWeight:    DefaultVaderWeight,
		PolarityWeight: DefaultPolarityWeight,
		Deadband:       DefaultDeadband,
	}
}

func (o Options) Validate() error {
	if o.VaderWeight < 0 || o.PolarityWeight < 0 {
		return fmt.Errorf("sentiment weights must be non-negative, got vader=%v polarity=%v", o.VaderWeight, o.PolarityWeight)
	}
	if o.VaderWeight+o.PolarityWeight > 1+1e-9 {
		return fmt.Errorf("sentiment weights must sum to at most 1, got %v", o.VaderWeight+o.PolarityWeight)
	}
	if o.Deadband < 0 || o.Deadband >= 1 {
		return fmt.Errorf("sentiment deadband must be in [0, 1), got %v", o.Deadband)
	}
	return nil
}

// Analyzer combines the lexicon polarity estimator with VADER into a single
// labelled score. It holds no mutable state beyond the serialized VADER
// analyzer and is safe for concurrent use.
type Analyzer struct {
	polarity *PolarityEstimator
	vader    *VaderEstimator
	opts     Options
}

func New(opts Options) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		polarity: NewPolarityEstimator(opts.Lexicon),
		vader:    NewVaderEstimator(),
		opts:     opts,
	}

	slog.Debug("[SentimentAnalyzer] Initialized",
		slog.Float64("vader_weight", opts.VaderWeight),
		slog.Float64("polarity_weight", opts.PolarityWeight),
		slog.Float64("deadband", opts.Deadband),
		slog.Int("lexicon_size", a.polarity.lexicon.Size()))

	return a, nil
}

// Default returns the process-wide analyzer built from DefaultOptions.
func Default() *Analyzer {
	defaultAnalyzerOnce.Do(func() {
		a, err := New(DefaultOptions())
		if err != nil {
			panic(fmt.Errorf("[SentimentAnalyzer] failed to build default analyzer: %w", err))
		}
		defaultAnalyzer = a
	})
	return defaultAnalyzer
}

// AnalyzeSentiment scores text with the default analyzer.
func AnalyzeSentiment(text string) models.SentimentResult {
	return Default().Analyze(text)
}

// Analyze never fails: blank input, and any panic raised while scoring,
// produce a neutral zero result.
func (a *Analyzer) Analyze(text string) (result models.SentimentResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[SentimentAnalyzer] Scoring panicked, returning neutral result",
				slog.Any("panic", r),
				slog.Int("text_length", len(text)))
			result = neutralResult()
		}
	}()

	if a.opts.StripMarkdown {
		text = textutil.MarkdownToText(text)
	}
	if strings.TrimSpace(text) == "" {
		return neutralResult()
	}

	polarity, subjectivity := a.polarity.Score(text)
	details := a.vader.Score(text)

	combined := clamp(a.opts.VaderWeight*details.Compound+a.opts.PolarityWeight*polarity, -1, 1)

	return models.SentimentResult{
		Label:         Classify(combined, a.opts.Deadband),
		Score:         combined,
		PolarityScore: polarity,
		VaderScore:    details.Compound,
		VaderDetails:  details,
		Subjectivity:  subjectivity,
	}
}

// Classify maps a combined score to a label: >= deadband is positive,
// <= -deadband is negative, anything between is neutral.
func Classify(score, deadband float64) models.SentimentLabel {
	switch {
	case score >= deadband:
		return models.SentimentPositive
	case score <= -deadband:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func neutralResult() models.SentimentResult {
	return models.SentimentResult{Label: models.SentimentNeutral}
}
