package responder

import (
	"math/rand/v2"

	"github.com/spacesedan/civicpulse/internal/textutil"
	"github.com/spacesedan/civicpulse/internal/topics"
)

// generalShare is the probability of a general reply, rather than a
// fallback, when nothing else matched.
const generalShare = 0.7

// Selector picks canned replies from a topic table.
type Selector struct {
	classifier *topics.Classifier
	intN       func(n int) int
	float      func() float64
}

type SelectorOption func(*Selector)

// WithRand makes selection draw from r. A *rand.Rand is not safe for
// concurrent use, so this is meant for tests and single-goroutine callers.
func WithRand(r *rand.Rand) SelectorOption {
	return func(s *Selector) {
		s.intN = r.IntN
		s.float = r.Float64
	}
}

func NewSelector(classifier *topics.Classifier, opts ...SelectorOption) *Selector {
	if classifier == nil {
		classifier = topics.NewClassifier(nil)
	}

	s := &Selector{
		classifier: classifier,
		intN:       rand.IntN,
		float:      rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classify returns the message's topic, or an empty string.
func (s *Selector) Classify(message string) string {
	topic, _ := s.classifier.Classify(message)
	return topic
}

// Select returns a reply for an already classified message. An empty or
// unknown topic falls through to the greeting and help keyword sets, then
// to a general or fallback reply.
func (s *Selector) Select(topic string, message string) string {
	table := s.classifier.Table()

	if topic != "" {
		if t, ok := table.Topic(topic); ok {
			return s.choose(t.Responses)
		}
	}

	lowered := textutil.Lower(message)
	switch {
	case topics.ContainsAny(lowered, table.Greeting.Keywords):
		return s.choose(table.Greeting.Responses)
	case topics.ContainsAny(lowered, table.Help.Keywords):
		return s.choose(table.Help.Responses)
	case s.float() < generalShare:
		return s.choose(table.General)
	default:
		return s.choose(table.Fallback)
	}
}

func (s *Selector) choose(options []string) string {
	return options[s.intN(len(options))]
}
