package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
	"github.com/FACorreiaa/ledgerbot/pkg/money"
)

var titleCaser = cases.Title(language.Und)

const defaultInstallments = 2

// Extractor pulls typed entities out of a normalized message for a given
// intent. Extraction is best-effort: an entity the text does not carry is
// simply left absent, never guessed.
type Extractor struct {
	pack            *LanguagePack
	keywords        *KeywordEngine
	defaultCategory string
	now             func() time.Time
}

func NewExtractor(pack *LanguagePack, defaultCategory string) *Extractor {
	return &Extractor{
		pack:            pack,
		keywords:        NewKeywordEngine(pack.CategoryKeywords),
		defaultCategory: defaultCategory,
		now:             time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// Extract returns the entity bag for text under the given intent.
func (e *Extractor) Extract(intent Intent, text string) EntityBag {
	switch intent {
	case IntentAddExpense:
		return e.extractAdd(text, ledger.KindExpense)
	case IntentAddIncome:
		return e.extractAdd(text, ledger.KindIncome)
	case IntentAddRecurring:
		return e.extractRecurring(text)
	case IntentAddInstallment:
		return e.extractInstallment(text)
	case IntentListTransactions, IntentGetBalance, IntentListRecurring, IntentListInstallments:
		return e.extractFilters(text)
	case IntentDeleteTransaction:
		return EntityBag{TransactionID: e.transactionID(text)}
	case IntentUpdateTransaction:
		return e.extractUpdate(text)
	case IntentAddCategory:
		return e.extractCategoryDef(text)
	default:
		return EntityBag{}
	}
}

func (e *Extractor) extractAdd(text string, kind ledger.EntryKind) EntityBag {
	bag := EntityBag{Kind: kind}
	bag.Amount = e.amount(text)
	bag.Category = e.category(text, kind, false)
	bag.Description = e.description(text, bag.Category)
	bag.Date = e.date(text)
	bag.Priority = e.priority(text)
	bag.Tags = e.tags(text)
	return bag
}

func (e *Extractor) extractRecurring(text string) EntityBag {
	kind := ledger.KindExpense
	if containsAny(text, e.pack.IncomeWords) && !containsAny(text, e.pack.ExpenseWords) {
		kind = ledger.KindIncome
	}

	bag := e.extractAdd(text, kind)
	bag.Category = e.category(text, kind, true)

	freq := recurrence.Monthly
	if m := e.pack.Entities.Frequency.FindStringSubmatch(text); m != nil {
		if parsed, ok := e.pack.Frequencies[m[1]]; ok {
			freq = parsed
		}
	}
	start := e.now()
	if bag.Date != nil {
		start = *bag.Date
	}
	desc, err := recurrence.New(freq, start)
	if err == nil {
		bag.Recurrence = desc
	}
	return bag
}

func (e *Extractor) extractInstallment(text string) EntityBag {
	bag := e.extractAdd(text, ledger.KindExpense)
	bag.Category = e.category(text, ledger.KindExpense, true)

	total := defaultInstallments
	if m := e.pack.Entities.Installments.FindStringSubmatch(text); m != nil {
		total, _ = strconv.Atoi(m[1])
	} else if m := e.pack.Entities.InstallmentsBare.FindStringSubmatch(text); m != nil {
		total, _ = strconv.Atoi(m[1])
	}
	bag.TotalInstallments = &total
	return bag
}

func (e *Extractor) extractFilters(text string) EntityBag {
	bag := EntityBag{}
	switch {
	case containsAny(text, e.pack.IncomeWords):
		bag.Kind = ledger.KindIncome
	case containsAny(text, e.pack.ExpenseWords):
		bag.Kind = ledger.KindExpense
	}

	if m := e.pack.Entities.Month.FindStringSubmatch(text); m != nil {
		if month, ok := e.pack.Months[m[1]]; ok {
			now := e.now()
			start := time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
			bag.Month = &start
		}
	}
	if m := e.pack.Entities.Period.FindStringSubmatch(text); m != nil {
		if from := e.parseDate(m[1]); from != nil {
			bag.StartDate = from
		}
		if to := e.parseDate(m[2]); to != nil {
			bag.EndDate = to
		}
	}
	if bag.Month == nil && bag.StartDate == nil {
		bag.Date = e.date(text)
	}
	return bag
}

func (e *Extractor) extractUpdate(text string) EntityBag {
	bag := EntityBag{TransactionID: e.transactionID(text)}
	if m := e.pack.Entities.UpdateAmount.FindStringSubmatch(text); m != nil {
		if dec, err := money.ParseDecimal(m[1]); err == nil {
			bag.Amount = &dec
		}
	}
	if m := e.pack.Entities.UpdateCategory.FindStringSubmatch(text); m != nil {
		bag.Category = titleCaser.String(e.trimReserved(m[1]))
	}
	if m := e.pack.Entities.UpdateDescription.FindStringSubmatch(text); m != nil {
		bag.Description = firstNonEmpty(m[1:])
	}
	if m := e.pack.Entities.UpdateDate.FindStringSubmatch(text); m != nil {
		bag.Date = e.parseDate(m[1])
	}
	bag.Priority = e.priority(text)
	return bag
}

func (e *Extractor) extractCategoryDef(text string) EntityBag {
	bag := EntityBag{CategoryKind: ledger.CategoryExpense}
	if m := e.pack.Entities.CategoryType.FindStringSubmatch(text); m != nil {
		if containsAny(m[1], e.pack.IncomeWords) {
			bag.CategoryKind = ledger.CategoryIncome
		}
	}
	if m := e.pack.Entities.CategoryExplicit.FindStringSubmatch(text); m != nil {
		bag.CategoryName = titleCaser.String(e.trimReserved(m[1]))
	}
	return bag
}

// amount finds the money value of the message. Numbers that belong to
// other entities (dates, periods, installment counts) are blanked out
// first, so "buy in 3 installments of 90" yields 90, not 3.
func (e *Extractor) amount(text string) *decimal.Decimal {
	p := e.pack.Entities
	clean := redact(text, p.Date, p.Period, p.DaysAgo, p.Installments, p.InstallmentsBare, p.TransactionID)
	m := p.Amount.FindStringSubmatch(clean)
	if m == nil {
		return nil
	}
	dec, err := money.ParseDecimal(m[1])
	if err != nil {
		return nil
	}
	return &dec
}

// category resolves the category through a fixed chain: explicit
// "category X", the kind's preposition pattern, then the keyword table.
// Direct adds leave it empty when nothing matches, routing the message
// into the confirmation dialog; recurring and installment adds use the
// whole-text keyword scan and finally the default category instead.
func (e *Extractor) category(text string, kind ledger.EntryKind, useDefault bool) string {
	if m := e.pack.Entities.CategoryExplicit.FindStringSubmatch(text); m != nil {
		return e.canonicalCategory(m[1])
	}

	prep := e.pack.Entities.CategoryExpense
	if kind == ledger.KindIncome {
		prep = e.pack.Entities.CategoryIncome
	}
	if m := prep.FindStringSubmatch(text); m != nil {
		if cat := e.canonicalCategory(m[1]); cat != "" {
			return cat
		}
	}

	if !useDefault {
		return ""
	}
	if cat := e.keywords.Categorize(text); cat != "" {
		return cat
	}
	return e.defaultCategory
}

// canonicalCategory cleans a captured category span. A span that is a
// known keyword resolves to that keyword's category ("on lunch" means
// Food, not a category literally named Lunch).
func (e *Extractor) canonicalCategory(raw string) string {
	cleaned := e.trimReserved(raw)
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}
	if len(words) > 2 {
		words = words[:2]
	}
	cleaned = strings.Join(words, " ")
	if cat := e.keywords.Categorize(cleaned); cat != "" {
		return cat
	}
	return titleCaser.String(cleaned)
}

func (e *Extractor) description(text, category string) string {
	if m := e.pack.Entities.Description.FindStringSubmatch(text); m != nil {
		return firstNonEmpty(m[1:])
	}
	m := e.pack.Entities.DescriptionNatural.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	span := e.trimReserved(m[1])
	if span == "" || strings.EqualFold(span, category) {
		return ""
	}
	return span
}

// date resolves the entry date: explicit dd/mm first, then relative
// phrases ("yesterday"), then "N days ago".
func (e *Extractor) date(text string) *time.Time {
	if m := e.pack.Entities.Date.FindStringSubmatch(text); m != nil {
		return e.parseDate(m[1])
	}
	for _, expr := range e.pack.TimeExpressions {
		if strings.Contains(text, expr.Phrase) {
			t := expr.Resolve(e.now())
			return &t
		}
	}
	if m := e.pack.Entities.DaysAgo.FindStringSubmatch(text); m != nil {
		days, _ := strconv.Atoi(m[1])
		t := e.now().AddDate(0, 0, -days)
		return &t
	}
	return nil
}

// parseDate reads a dd/mm or dd/mm/yy[yy] date. Out-of-range parts are
// clamped rather than rejected: an invalid day falls back to the 1st, an
// invalid month to the current one, and two-digit years mean 20xx.
func (e *Extractor) parseDate(raw string) *time.Time {
	parts := strings.Split(raw, "/")
	if len(parts) < 2 {
		return nil
	}
	now := e.now()

	day, _ := strconv.Atoi(parts[0])
	monthNum, _ := strconv.Atoi(parts[1])
	year := now.Year()
	if len(parts) == 3 {
		year, _ = strconv.Atoi(parts[2])
		if year < 100 {
			year += 2000
		}
	}
	if monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}
	month := time.Month(monthNum)
	if day < 1 || day > daysIn(year, month) {
		day = 1
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return &t
}

func (e *Extractor) priority(text string) ledger.Priority {
	if m := e.pack.Entities.Priority.FindStringSubmatch(text); m != nil {
		return e.pack.Priorities[m[1]]
	}
	return ""
}

func (e *Extractor) tags(text string) []string {
	m := e.pack.Entities.Tag.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(m[1], ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (e *Extractor) transactionID(text string) string {
	if m := e.pack.Entities.TransactionID.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// trimReserved drops trailing reserved tokens from a captured span, so
// "food priority" becomes "food".
func (e *Extractor) trimReserved(span string) string {
	words := strings.Fields(span)
	for len(words) > 0 && e.isReserved(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func (e *Extractor) isReserved(word string) bool {
	for _, r := range e.pack.ReservedWords {
		if word == r {
			return true
		}
	}
	return false
}

// redact blanks every span matched by the given patterns, preserving
// offsets so later matches still index into the original text.
func redact(text string, patterns ...*regexp.Regexp) string {
	out := []byte(text)
	for _, p := range patterns {
		for _, span := range p.FindAllStringIndex(text, -1) {
			for i := span[0]; i < span[1]; i++ {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

func firstNonEmpty(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
