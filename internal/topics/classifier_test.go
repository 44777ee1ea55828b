package topics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTopic(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		topic string
		ok    bool
	}{
		{"bus pass", "I need a bus pass", "transportation", true},
		{"uppercase", "WHERE IS THE NEAREST HOSPITAL", "healthcare", true},
		{"no keyword", "What time is it?", "", false},
		{"empty", "", "", false},
		{"table order wins over later topics", "There was a crime on the highway", "transportation", true},
		{"shared keyword goes to first topic", "This is an emergency", "healthcare", true},
		{"multi word keyword", "When is my tax return due?", "taxes", true},
		{"substring containment", "My parents need help", "housing", true},
		{"voting", "How do I register to vote?", "voting", true},
		{"public safety", "I want to talk to the police", "public_safety", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := ClassifyTopic(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.topic, topic)
		})
	}
}

func TestClassifierFirstMatchInTableOrder(t *testing.T) {
	doc := `
topics:
  - name: second_listed_first
    keywords: [Park]
    responses: [a]
  - name: parks
    keywords: [park, playground]
    responses: [b]
greeting: {keywords: [hello], responses: [hi]}
help: {keywords: [help], responses: [sure]}
general: [general]
fallback: [fallback]
`
	table, err := LoadTable([]byte(doc))
	require.NoError(t, err)

	c := NewClassifier(table)
	topic, ok := c.Classify("the playground in the park is broken")
	require.True(t, ok)
	assert.Equal(t, "second_listed_first", topic)

	topic, ok = c.Classify("new playground")
	require.True(t, ok)
	assert.Equal(t, "parks", topic)
}

func TestClassifierConcurrent(t *testing.T) {
	c := NewClassifier(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			topic, ok := c.Classify("Is the train running late?")
			assert.True(t, ok)
			assert.Equal(t, "transportation", topic)
		}()
	}
	wg.Wait()
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("renew my license", []string{"permit", "license"}))
	assert.False(t, ContainsAny("renew my license", []string{"ballot"}))
	assert.False(t, ContainsAny("anything", nil))
}
