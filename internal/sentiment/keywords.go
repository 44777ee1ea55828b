package sentiment

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"github.com/spacesedan/civicpulse/internal/textutil"
)

const DefaultKeywordCount = 5

// extraStopWords covers pronouns and auxiliaries the library list keeps.
var extraStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "with": {}, "about": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"my": {}, "your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
}

// ExtractKeywords returns up to topN of the most frequent content words in
// text, ties ordered by first appearance.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultKeywordCount
	}

	plain := textutil.Lower(textutil.MarkdownToText(text))
	if plain == "" {
		return nil
	}

	cleaned := stopwords.CleanString(plain, "en", false)

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		word = strings.Trim(word, "-_'")
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if _, stop := extraStopWords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}
