package nlp

import (
	"regexp"
	"sort"
	"time"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
)

// IntentPattern is one row of the ordered classification table. Higher
// Priority rows are evaluated first; rows with equal priority keep their
// declaration order, and that order breaks score ties deterministically.
type IntentPattern struct {
	Intent   Intent
	Pattern  *regexp.Regexp
	Priority int
}

// EntityPatterns bundles the per-language extraction regexes.
type EntityPatterns struct {
	Amount             *regexp.Regexp
	CategoryExpense    *regexp.Regexp
	CategoryIncome     *regexp.Regexp
	CategoryExplicit   *regexp.Regexp
	Description        *regexp.Regexp
	DescriptionNatural *regexp.Regexp
	Date               *regexp.Regexp
	DaysAgo            *regexp.Regexp
	TransactionID      *regexp.Regexp
	Period             *regexp.Regexp
	Month              *regexp.Regexp
	CategoryType       *regexp.Regexp
	UpdateAmount       *regexp.Regexp
	UpdateCategory     *regexp.Regexp
	UpdateDescription  *regexp.Regexp
	UpdateDate         *regexp.Regexp
	Priority           *regexp.Regexp
	Frequency          *regexp.Regexp
	Installments       *regexp.Regexp
	InstallmentsBare   *regexp.Regexp
	Tag                *regexp.Regexp
}

// PhraseRewrite maps a colloquial phrasing to a canonical command phrase.
type PhraseRewrite struct {
	Phrase      string
	Replacement string
}

// TextRewrite is a regex-based correction ("2 thousand" -> "2000").
type TextRewrite struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// TimeExpression resolves a relative date phrase against the current time.
type TimeExpression struct {
	Phrase  string
	Resolve func(now time.Time) time.Time
}

// PopularCommand is a known command phrase offered as a "did you mean"
// suggestion, with a usage example for the help text.
type PopularCommand struct {
	Phrase  string
	Example string
}

// ReplyTemplates are the user-facing messages of one language. Technical
// errors never leak to users; everything they see comes from here.
type ReplyTemplates struct {
	AskAmount        string
	AskCategory      string // fmt: enumerated category suggestions
	AskAgain         string // fmt: field name
	DidYouMean       string // fmt: suggested command
	Canceled         string
	Unknown          string
	Help             string // fmt: command list
	ExpenseAdded     string // fmt: amount, category
	IncomeAdded      string // fmt: amount, category
	RecurringAdded   string // fmt: frequency, amount, category, next date
	InstallmentAdded string // fmt: count, amount, category
	Rejected         string // fmt: reason
	// Rejection reasons, pre-localized so technical error text never
	// reaches the user.
	ReasonInvalidInstallments string
	ReasonInvalidRecurrence   string
}

// LanguagePack bundles every language-dependent table of the pipeline.
// Packs are static: a malformed pattern is a programming error and panics at
// package load, never at message time.
type LanguagePack struct {
	Language string

	Misspellings   map[string]string
	PhraseRewrites []PhraseRewrite
	TextRewrites   []TextRewrite

	IntentPatterns []IntentPattern
	Entities       EntityPatterns

	Months          map[string]time.Month
	TimeExpressions []TimeExpression
	Frequencies     map[string]recurrence.Frequency
	Priorities      map[string]ledger.Priority

	// CategoryKeywords back the whole-text keyword fallback: any keyword
	// occurring anywhere in the message maps to its category.
	CategoryKeywords map[string]string

	SuggestedExpenseCategories []string
	SuggestedIncomeCategories  []string

	CancelWords []string
	AffirmWords []string

	// Word lists feeding the zero-score classification heuristics.
	AddVerbs         []string
	ListVerbs        []string
	ExpenseWords     []string
	IncomeWords      []string
	RecurringWords   []string
	InstallmentWords []string

	// Reserved words that must never be swallowed into a description span.
	ReservedWords []string

	PopularCommands []PopularCommand
	Replies         ReplyTemplates
}

// PackFor returns the pack for a language tag, defaulting to en-US.
func PackFor(language string) *LanguagePack {
	switch language {
	case "pt-BR", "pt":
		return PortuguesePack()
	default:
		return EnglishPack()
	}
}

// orderPatterns stable-sorts the table by descending priority so declaration
// order is preserved within a priority band.
func orderPatterns(patterns []IntentPattern) []IntentPattern {
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Priority > patterns[j].Priority
	})
	return patterns
}
