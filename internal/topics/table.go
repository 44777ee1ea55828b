package topics

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/spacesedan/civicpulse/internal/models"
	"github.com/spacesedan/civicpulse/internal/textutil"
)

//go:embed data/topics_en.yaml
var embeddedTable []byte

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Intent is a keyword set with its canned replies.
type Intent struct {
	Keywords  []string `yaml:"keywords"`
	Responses []string `yaml:"responses"`
}

// Table is the static routing configuration: ordered topics plus the
// greeting, help, general and fallback reply lists. It is read-only once
// loaded.
type Table struct {
	Topics   []models.Topic `yaml:"topics"`
	Greeting Intent         `yaml:"greeting"`
	Help     Intent         `yaml:"help"`
	General  []string       `yaml:"general"`
	Fallback []string       `yaml:"fallback"`
}

func LoadTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse topic table: %w", err)
	}

	if err := t.normalize(); err != nil {
		return nil, err
	}
	return &t, nil
}

func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topic table %s: %w", path, err)
	}
	return LoadTable(data)
}

// DefaultTable returns the embedded table. It panics if the embedded
// document is invalid.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t, err := LoadTable(embeddedTable)
		if err != nil {
			panic(fmt.Errorf("[TopicTable] embedded table is invalid: %w", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Topic returns the named topic entry.
func (t *Table) Topic(name string) (models.Topic, bool) {
	for _, topic := range t.Topics {
		if topic.Name == name {
			return topic, true
		}
	}
	return models.Topic{}, false
}

func (t *Table) normalize() error {
	if len(t.Topics) == 0 {
		return fmt.Errorf("topic table has no topics")
	}

	seen := make(map[string]struct{}, len(t.Topics))
	for i := range t.Topics {
		topic := &t.Topics[i]
		if topic.Name == "" {
			return fmt.Errorf("topic %d has no name", i)
		}
		if _, dup := seen[topic.Name]; dup {
			return fmt.Errorf("topic %q is listed twice", topic.Name)
		}
		seen[topic.Name] = struct{}{}

		keywords, err := normalizeKeywords(topic.Keywords)
		if err != nil {
			return fmt.Errorf("topic %q: %w", topic.Name, err)
		}
		topic.Keywords = keywords

		if len(topic.Responses) == 0 {
			return fmt.Errorf("topic %q has no responses", topic.Name)
		}
	}

	for name, intent := range map[string]*Intent{"greeting": &t.Greeting, "help": &t.Help} {
		keywords, err := normalizeKeywords(intent.Keywords)
		if err != nil {
			return fmt.Errorf("%s intent: %w", name, err)
		}
		intent.Keywords = keywords
		if len(intent.Responses) == 0 {
			return fmt.Errorf("%s intent has no responses", name)
		}
	}

	if len(t.General) == 0 {
		return fmt.Errorf("topic table has no general responses")
	}
	if len(t.Fallback) == 0 {
		return fmt.Errorf("topic table has no fallback responses")
	}
	return nil
}

func normalizeKeywords(keywords []string) ([]string, error) {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = textutil.Lower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no keywords")
	}
	return out, nil
}
