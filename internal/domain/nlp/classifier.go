package nlp

import "strings"

// Classifier scores a normalized message against every intent pattern
// and picks the best match. When no pattern fires it falls through a
// chain of word-list heuristics before giving up with IntentUnknown.
type Classifier struct {
	pack *LanguagePack
}

func NewClassifier(pack *LanguagePack) *Classifier {
	return &Classifier{pack: pack}
}

// Classify returns the winning intent for text, which must already be
// normalized. Each pattern's score is its number of non-overlapping
// matches; the strict maximum wins, and on a tie the pattern declared
// first (higher priority) keeps the intent.
func (c *Classifier) Classify(text string) Intent {
	best := IntentUnknown
	bestScore := 0
	for _, ip := range c.pack.IntentPatterns {
		score := len(ip.Pattern.FindAllStringIndex(text, -1))
		if score > bestScore {
			best = ip.Intent
			bestScore = score
		}
	}
	if bestScore > 0 {
		return best
	}
	return c.heuristic(text)
}

// heuristic handles phrasings no pattern anticipates. The checks run in
// a fixed order from most to least specific.
func (c *Classifier) heuristic(text string) Intent {
	hasAdd := containsAny(text, c.pack.AddVerbs)
	hasList := containsAny(text, c.pack.ListVerbs)
	hasExpense := containsAny(text, c.pack.ExpenseWords)
	hasIncome := containsAny(text, c.pack.IncomeWords)
	hasRecurring := containsAny(text, c.pack.RecurringWords)
	hasInstallment := containsAny(text, c.pack.InstallmentWords)
	hasMonth := c.mentionsMonth(text)

	switch {
	case hasRecurring && hasAdd:
		return IntentAddRecurring
	case hasRecurring && hasList:
		return IntentListRecurring
	case hasInstallment && hasList:
		return IntentListInstallments
	case hasInstallment:
		return IntentAddInstallment
	case hasMonth && (hasExpense || hasIncome):
		return IntentListTransactions
	case hasMonth:
		return IntentGetBalance
	case hasAdd && hasExpense:
		return IntentAddExpense
	case hasAdd && hasIncome:
		return IntentAddIncome
	case hasList && (hasExpense || hasIncome):
		return IntentListTransactions
	// A bare amount with an expense word ("50 on lunch" style) is
	// still worth treating as an expense entry.
	case hasExpense && c.pack.Entities.Amount.MatchString(text):
		return IntentAddExpense
	default:
		return IntentUnknown
	}
}

func (c *Classifier) mentionsMonth(text string) bool {
	for name := range c.pack.Months {
		if containsWord(text, name) {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(w, " ") {
			if strings.Contains(text, w) {
				return true
			}
			continue
		}
		if containsWord(text, w) {
			return true
		}
	}
	return false
}
