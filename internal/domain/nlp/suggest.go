package nlp

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestionDistance bounds how far a message may drift from a known
// command before we stop offering it as a correction.
const maxSuggestionDistance = 10

// Suggester offers a "did you mean" command when classification fails.
type Suggester struct {
	pack *LanguagePack
}

func NewSuggester(pack *LanguagePack) *Suggester {
	return &Suggester{pack: pack}
}

// Suggest returns the closest popular command phrase for text, or ""
// when nothing is close enough to be helpful.
func (s *Suggester) Suggest(text string) string {
	phrases := make([]string, len(s.pack.PopularCommands))
	for i, pc := range s.pack.PopularCommands {
		phrases[i] = pc.Phrase
	}

	// Match against the command-shaped prefix so trailing entities in
	// the user's message ("add expens of 50") don't inflate distance.
	probe := commandPrefix(text)
	ranks := fuzzy.RankFindNormalizedFold(probe, phrases)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	if ranks[0].Distance > maxSuggestionDistance {
		return ""
	}
	return ranks[0].Target
}

// Examples renders the usage example of every popular command, one per
// line, for the help reply.
func (s *Suggester) Examples() string {
	var b strings.Builder
	for _, pc := range s.pack.PopularCommands {
		b.WriteString("- ")
		b.WriteString(pc.Example)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// prefixStopwords are connectives that precede entities rather than
// belonging to the command itself, across the supported languages.
var prefixStopwords = map[string]struct{}{
	"of": {}, "in": {}, "for": {}, "on": {}, "a": {}, "an": {}, "the": {},
	"de": {}, "em": {}, "para": {}, "com": {}, "uma": {}, "um": {},
}

func commandPrefix(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if strings.IndexFunc(w, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
			words = words[:i]
			break
		}
	}
	for len(words) > 0 {
		if _, ok := prefixStopwords[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
