package nlp

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// KeywordEngine maps free text to a category by scanning for known
// keywords in a single pass. Longer keywords win over shorter ones so
// "estacionamento" is not shadowed by a hypothetical "estacion".
type KeywordEngine struct {
	matcher    *ahocorasick.Matcher
	keywords   []string
	categories []string
}

func NewKeywordEngine(keywords map[string]string) *KeywordEngine {
	eng := &KeywordEngine{
		keywords:   make([]string, 0, len(keywords)),
		categories: make([]string, 0, len(keywords)),
	}
	for kw, cat := range keywords {
		eng.keywords = append(eng.keywords, kw)
		eng.categories = append(eng.categories, cat)
	}
	eng.matcher = ahocorasick.NewStringMatcher(eng.keywords)
	return eng
}

// Categorize returns the category of the longest keyword present in
// text, or "" when no keyword matches. Matches are checked against word
// boundaries so "bus" does not fire inside "business".
func (e *KeywordEngine) Categorize(text string) string {
	hits := e.matcher.Match([]byte(text))
	best := -1
	for _, idx := range hits {
		kw := e.keywords[idx]
		if !containsWord(text, kw) {
			continue
		}
		if best < 0 || len(kw) > len(e.keywords[best]) {
			best = idx
		}
	}
	if best < 0 {
		return ""
	}
	return e.categories[best]
}

func containsWord(text, word string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		leftOK := i == 0 || text[i-1] == ' '
		rightOK := end == len(text) || text[end] == ' ' || text[end] == ',' || text[end] == '.'
		if leftOK && rightOK {
			return true
		}
		start = i + 1
	}
}
