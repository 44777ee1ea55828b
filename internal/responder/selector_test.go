package responder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/civicpulse/internal/topics"
)

func newTestSelector() *Selector {
	return NewSelector(nil, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestSelectTopic(t *testing.T) {
	s := newTestSelector()
	table := topics.DefaultTable()

	for _, topic := range table.Topics {
		for i := 0; i < 10; i++ {
			assert.Contains(t, topic.Responses, s.Select(topic.Name, "anything"))
		}
	}
}

func TestSelectWithoutTopic(t *testing.T) {
	s := newTestSelector()
	table := topics.DefaultTable()

	assert.Contains(t, table.Greeting.Responses, s.Select("", "Hello there"))
	assert.Contains(t, table.Help.Responses, s.Select("", "Can you ASSIST me?"))
	assert.Contains(t, table.Greeting.Responses, s.Select("weather", "hey, will it rain?"))

	s.float = func() float64 { return 0.1 }
	assert.Contains(t, table.General, s.Select("", "What time is it?"))

	s.float = func() float64 { return 0.9 }
	assert.Contains(t, table.Fallback, s.Select("", "What time is it?"))
}

func TestSelectGreetingBeforeHelp(t *testing.T) {
	s := newTestSelector()
	table := topics.DefaultTable()

	assert.Contains(t, table.Greeting.Responses, s.Select("", "hello, I need help"))
}

func TestSelectGeneralShare(t *testing.T) {
	s := newTestSelector()
	table := topics.DefaultTable()

	const draws = 10000
	general := 0
	for i := 0; i < draws; i++ {
		reply := s.Select("", "What time is it?")
		if contains(table.General, reply) {
			general++
		} else {
			assert.Contains(t, table.Fallback, reply)
		}
	}
	assert.InDelta(t, generalShare, float64(general)/draws, 0.03)
}

func TestSelectorClassify(t *testing.T) {
	s := newTestSelector()
	assert.Equal(t, "transportation", s.Classify("I need a bus pass"))
	assert.Equal(t, "", s.Classify("What time is it?"))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
