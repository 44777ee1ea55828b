package topics

import (
	"strings"

	"github.com/spacesedan/civicpulse/internal/textutil"
)

// Classifier routes text to the first topic, in table order, that has a
// keyword contained in the lowercased text.
type Classifier struct {
	table *Table
}

func NewClassifier(table *Table) *Classifier {
	if table == nil {
		table = DefaultTable()
	}
	return &Classifier{table: table}
}

func (c *Classifier) Table() *Table {
	return c.table
}

// Classify returns the matching topic name, or false when nothing matched.
func (c *Classifier) Classify(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	lowered := textutil.Lower(text)
	for _, topic := range c.table.Topics {
		if ContainsAny(lowered, topic.Keywords) {
			return topic.Name, true
		}
	}
	return "", false
}

// ClassifyTopic classifies text against the embedded table.
func ClassifyTopic(text string) (string, bool) {
	return NewClassifier(nil).Classify(text)
}

// ContainsAny reports whether any keyword is a substring of text.
func ContainsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
