package sentiment

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon_en.yaml
var embeddedLexicon []byte

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

type lexiconFile struct {
	Language  string               `yaml:"language"`
	Negations []string             `yaml:"negations"`
	Modifiers map[string]float64   `yaml:"modifiers"`
	Words     map[string][]float64 `yaml:"words"`
}

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// Lexicon is the read-only word table behind the polarity estimator.
// It is never mutated after loading and may be shared freely.
type Lexicon struct {
	Language  string
	words     map[string]lexiconEntry
	modifiers map[string]float64
	negations map[string]struct{}
}

// LoadLexicon parses a YAML lexicon document.
func LoadLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}

	if len(f.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words")
	}

	lex := &Lexicon{
		Language:  f.Language,
		words:     make(map[string]lexiconEntry, len(f.Words)),
		modifiers: make(map[string]float64, len(f.Modifiers)),
		negations: make(map[string]struct{}, len(f.Negations)),
	}

	for word, values := range f.Words {
		if len(values) != 2 {
			return nil, fmt.Errorf("lexicon word %q: want [polarity, subjectivity], got %d values", word, len(values))
		}
		polarity, subjectivity := values[0], values[1]
		if polarity < -1 || polarity > 1 {
			return nil, fmt.Errorf("lexicon word %q: polarity %v out of [-1, 1]", word, polarity)
		}
		if subjectivity < 0 || subjectivity > 1 {
			return nil, fmt.Errorf("lexicon word %q: subjectivity %v out of [0, 1]", word, subjectivity)
		}
		lex.words[strings.ToLower(word)] = lexiconEntry{polarity: polarity, subjectivity: subjectivity}
	}

	for word, factor := range f.Modifiers {
		if factor <= 0 {
			return nil, fmt.Errorf("lexicon modifier %q: factor must be positive, got %v", word, factor)
		}
		lex.modifiers[strings.ToLower(word)] = factor
	}

	for _, word := range f.Negations {
		lex.negations[strings.ToLower(word)] = struct{}{}
	}

	return lex, nil
}

func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}
	return LoadLexicon(data)
}

// DefaultLexicon returns the embedded English lexicon. It panics if the
// embedded document is invalid.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		lex, err := LoadLexicon(embeddedLexicon)
		if err != nil {
			panic(fmt.Errorf("[Lexicon] embedded lexicon is invalid: %w", err))
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

func (l *Lexicon) Size() int {
	return len(l.words)
}

func (l *Lexicon) lookup(word string) (lexiconEntry, bool) {
	e, ok := l.words[word]
	return e, ok
}

func (l *Lexicon) modifier(word string) (float64, bool) {
	f, ok := l.modifiers[word]
	return f, ok
}

func (l *Lexicon) isNegation(word string) bool {
	if _, ok := l.negations[word]; ok {
		return true
	}
	return strings.HasSuffix(word, "n't")
}
