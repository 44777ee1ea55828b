package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/spacesedan/civicpulse/internal/textutil"
)

const (
	negationFactor    = -0.5
	negationWindow    = 3
	exclamationFactor = 1.1
	maxExclamations   = 3
)

var (
	tokenPattern      = regexp.MustCompile(`[:;=][\-']?(?:[()]|[dp]\b)|[\p{L}\p{N}]+(?:[-'][\p{L}\p{N}]+)*|!+`)
	apostropheReplace = strings.NewReplacer("’", "'", "‘", "'")
)

// PolarityEstimator averages lexicon assessments over a whole text. A
// modifier scales the next assessed word, a negation within the preceding
// window flips and halves it, and trailing exclamation marks amplify the
// last assessment.
type PolarityEstimator struct {
	lexicon *Lexicon
}

type assessment struct {
	polarity     float64
	subjectivity float64
}

func NewPolarityEstimator(lex *Lexicon) *PolarityEstimator {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &PolarityEstimator{lexicon: lex}
}

// Score returns polarity in [-1, 1] and subjectivity in [0, 1]. Text with no
// assessed words scores 0, 0.
func (p *PolarityEstimator) Score(text string) (float64, float64) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0, 0
	}

	var (
		assessments []assessment
		modifier    = 1.0
		negatedAt   = -1
	)

	for i, tok := range tokens {
		if strings.HasPrefix(tok, "!") {
			if n := len(assessments); n > 0 {
				boost := math.Pow(exclamationFactor, float64(min(len(tok), maxExclamations)))
				assessments[n-1].polarity *= boost
			}
			continue
		}

		if p.lexicon.isNegation(tok) {
			negatedAt = i
			continue
		}

		if f, ok := p.lexicon.modifier(tok); ok {
			modifier *= f
			continue
		}

		entry, ok := p.lexicon.lookup(tok)
		if !ok {
			modifier = 1.0
			continue
		}

		a := assessment{
			polarity:     entry.polarity * modifier,
			subjectivity: math.Min(1, entry.subjectivity*modifier),
		}
		if negatedAt >= 0 && i-negatedAt <= negationWindow {
			a.polarity *= negationFactor
		}
		assessments = append(assessments, a)

		modifier = 1.0
		negatedAt = -1
	}

	if len(assessments) == 0 {
		return 0, 0
	}

	var polarity, subjectivity float64
	for _, a := range assessments {
		polarity += a.polarity
		subjectivity += a.subjectivity
	}
	n := float64(len(assessments))

	return clamp(polarity/n, -1, 1), clamp(subjectivity/n, 0, 1)
}

func tokenize(text string) []string {
	text = apostropheReplace.Replace(textutil.Lower(text))
	raw := tokenPattern.FindAllString(text, -1)

	tokens := raw[:0]
	for _, tok := range raw {
		tok = strings.TrimSuffix(tok, "'s")
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
