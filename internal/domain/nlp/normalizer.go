package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizer canonicalizes raw user text before classification and
// extraction. Normalization is idempotent: running it twice yields the
// same output.
type Normalizer struct {
	pack *LanguagePack
}

func NewNormalizer(pack *LanguagePack) *Normalizer {
	return &Normalizer{pack: pack}
}

// Normalize lowercases, strips accents, collapses whitespace, fixes
// known misspellings token by token and applies the pack's phrase and
// text rewrites, in that order.
func (n *Normalizer) Normalize(text string) string {
	out := strings.ToLower(strings.TrimSpace(text))
	out = stripAccents(out)
	out = strings.Join(strings.Fields(out), " ")

	tokens := strings.Fields(out)
	for i, tok := range tokens {
		if fixed, ok := n.pack.Misspellings[tok]; ok {
			tokens[i] = fixed
		}
	}
	out = strings.Join(tokens, " ")

	for _, rw := range n.pack.PhraseRewrites {
		out = strings.ReplaceAll(out, rw.Phrase, rw.Replacement)
	}
	for _, rw := range n.pack.TextRewrites {
		out = rw.Pattern.ReplaceAllString(out, rw.Replacement)
	}
	return strings.Join(strings.Fields(out), " ")
}

func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}
