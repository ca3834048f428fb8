package nlp

import (
	"regexp"
	"time"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
)

var englishPack = &LanguagePack{
	Language: "en-US",

	Misspellings: map[string]string{
		"expence":     "expense",
		"expanse":     "expense",
		"exspense":    "expense",
		"recieve":     "receive",
		"recieved":    "received",
		"ballance":    "balance",
		"balanse":     "balance",
		"mony":        "money",
		"salery":      "salary",
		"pament":      "payment",
		"payd":        "paid",
		"instalment":  "installment",
		"instalments": "installments",
	},

	PhraseRewrites: []PhraseRewrite{
		{"how much did i spend", "list expenses"},
		{"how much i spent", "list expenses"},
		{"how much did i receive", "list income"},
		{"what is my balance", "balance"},
		{"what's my balance", "balance"},
		{"financial status", "balance"},
		{"all transactions", "list transactions"},
		{"all expenses", "list expenses"},
		{"all income", "list income"},
		{"my expenses", "list expenses"},
		{"my income", "list income"},
		{"my subscriptions", "list recurring expenses"},
		{"subscriptions", "list recurring expenses"},
	},

	TextRewrites: []TextRewrite{
		{regexp.MustCompile(`\bone\s+thousand\b`), "1000"},
		{regexp.MustCompile(`\b(\d+)\s+thousand\b`), "${1}000"},
		{regexp.MustCompile(`\b(\d+)\s*k\b`), "${1}000"},
	},

	IntentPatterns: orderPatterns([]IntentPattern{
		{
			Intent:   IntentAddRecurring,
			Priority: 20,
			Pattern: regexp.MustCompile(`^(?:add|register|insert|new|create|record|log)\s+(?:an?\s+)?(?:recurring|fixed)\s+(?:expense|spending|cost|bill|income|revenue)` +
				`|^(?:add|register|insert|new|create|record|log)\s+(?:an?\s+)?(?:expense|spending|cost|bill|income|revenue)\b.*\b(?:recurring|fixed|repeating|periodic)\b`),
		},
		{
			Intent:   IntentAddInstallment,
			Priority: 20,
			Pattern: regexp.MustCompile(`^(?:add|register|insert|new|create|record|log|buy|bought)\b.*\bin\s+\d+\s+(?:installments?|payments?|times|x)\b` +
				`|^(?:add|register|insert|new|create|record|log)\s+(?:an?\s+)?installment\b`),
		},
		{
			Intent:   IntentListRecurring,
			Priority: 20,
			Pattern: regexp.MustCompile(`^(?:list|show|display|view|get|what)\b.*\brecurring\b` +
				`|^(?:list|show|display|view|get)\s+(?:expenses|spending|income|bills)\s+(?:recurring|fixed|monthly|repeating)\b`),
		},
		{
			Intent:   IntentListInstallments,
			Priority: 20,
			Pattern: regexp.MustCompile(`^(?:list|show|display|view|get|what)\b.*\binstallments?\b`),
		},
		{
			Intent:   IntentAddExpense,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:add|register|insert|new|create|record|log)\s+(?:an?\s+)?(?:expense|spending|cost|payment|bill|purchase)\b` +
				`|^(?:spent|bought|paid)\b`),
		},
		{
			Intent:   IntentAddIncome,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:add|register|insert|new|create|record|log)\s+(?:an?\s+)?(?:income|revenue|earnings?|salary)\b` +
				`|^(?:received|earned|got)\b`),
		},
		{
			Intent:   IntentListTransactions,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:list|show|display|view|get)\s+(?:my\s+|all\s+)?(?:transactions|expenses|spending|income|revenue|movements)\b` +
				`|\bhow\s+much\s+(?:did\s+i\s+)?(?:spend|spent|receive|received|earn|earned)\b`),
		},
		{
			Intent:   IntentGetBalance,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:balance|summary|statement|status|total)\b` +
				`|\bhow\s+much\s+(?:do\s+i\s+have|is\s+left|left|have|available)\b`),
		},
		{
			Intent:   IntentDeleteTransaction,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:delete|remove|cancel|undo|erase|eliminate)\s+(?:the\s+)?(?:transaction|expense|income|entry|movement)\b`),
		},
		{
			Intent:   IntentUpdateTransaction,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:update|edit|modify|change|correct|adjust)\s+(?:the\s+)?(?:transaction|expense|income|entry|movement)\b`),
		},
		{
			Intent:   IntentAddCategory,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:add|new|create|register|insert)\s+(?:a\s+)?category\b`),
		},
		{
			Intent:   IntentListCategories,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:list|show|display|view|get|what)\s+(?:all\s+|my\s+)?categories\b`),
		},
		{
			Intent:   IntentHelp,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:help|commands|instructions|manual|tutorial|how\s+to\s+use|what\s+can\s+i\s+do)\b`),
		},
	}),

	Entities: EntityPatterns{
		Amount:             regexp.MustCompile(`(?:(?:r\$|\$|€|£)\s?)?(\d+[.,]\d{1,2}|\d+)(?:\s+(?:dollars|bucks|reais|euros))?`),
		CategoryExpense:    regexp.MustCompile(`\b(?:in|for|on|under)\s+([a-z][a-z ]*?)(?:\s+(?:of|with|value|amount|description|tags?|priority|on|r\$|\$|€|\d|"|')|$)`),
		CategoryIncome:     regexp.MustCompile(`\b(?:from|as)\s+([a-z][a-z ]*?)(?:\s+(?:of|with|value|amount|description|tags?|priority|on|r\$|\$|€|\d|"|')|$)`),
		CategoryExplicit:   regexp.MustCompile(`\bcategory\s+([a-z][a-z ]*?)(?:\s+(?:of|with|value|amount|type|description|tags?|priority|on|r\$|\$|€|\d|"|')|$)`),
		Description:        regexp.MustCompile(`"([^"]+)"|'([^']+)'`),
		DescriptionNatural: regexp.MustCompile(`\b(?:for|with)\s+([a-z][a-z ]*[a-z])(?:\s+\d|\s+r\$|\s+\$|\s*$)`),
		Date:               regexp.MustCompile(`\b(?:on|date)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
		DaysAgo:            regexp.MustCompile(`\b(\d+)\s+days?\s+ago\b`),
		TransactionID:      regexp.MustCompile(`\bid\s+([a-f0-9-]+)`),
		Period:             regexp.MustCompile(`\b(?:from|between)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s+(?:to|until|through|and)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
		Month:              regexp.MustCompile(`\b(?:in|for|of)\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`),
		CategoryType:       regexp.MustCompile(`\btype\s+(expense|income)\b`),
		UpdateAmount:       regexp.MustCompile(`\b(?:amount|value)\s+(?:to\s+)?(?:r\$|\$|€)?\s?(\d+[.,]\d{1,2}|\d+)`),
		UpdateCategory:     regexp.MustCompile(`\bcategory\s+(?:to\s+)?([a-z][a-z ]*)`),
		UpdateDescription:  regexp.MustCompile(`\bdescription\s+(?:to\s+)?(?:"([^"]+)"|'([^']+)')`),
		UpdateDate:         regexp.MustCompile(`\bdate\s+(?:to\s+)?(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
		Priority:           regexp.MustCompile(`\b(?:priority|importance)\s+(high|medium|low)\b`),
		Frequency:          regexp.MustCompile(`\b(daily|weekly|biweekly|fortnightly|monthly|bimonthly|quarterly|semiannual|annual|yearly)\b`),
		Installments:       regexp.MustCompile(`\b(?:in|of)\s+(\d+)\s+(?:installments?|payments?|parts?|times|x)\b`),
		InstallmentsBare:   regexp.MustCompile(`\b(\d+)\s*(?:installments?|payments?|times|x)\b`),
		Tag:                regexp.MustCompile(`\btags?\s+([a-z][a-z, ]*)`),
	},

	Months: map[string]time.Month{
		"january": time.January, "february": time.February, "march": time.March,
		"april": time.April, "may": time.May, "june": time.June,
		"july": time.July, "august": time.August, "september": time.September,
		"october": time.October, "november": time.November, "december": time.December,
	},

	TimeExpressions: []TimeExpression{
		{"day before yesterday", func(now time.Time) time.Time { return now.AddDate(0, 0, -2) }},
		{"yesterday", func(now time.Time) time.Time { return now.AddDate(0, 0, -1) }},
		{"today", func(now time.Time) time.Time { return now }},
		{"last week", func(now time.Time) time.Time { return startOfWeek(now).AddDate(0, 0, -7) }},
		{"this week", startOfWeek},
		{"last month", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		}},
		{"previous month", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		}},
		{"this month", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		}},
	},

	Frequencies: map[string]recurrence.Frequency{
		"daily":       recurrence.Daily,
		"weekly":      recurrence.Weekly,
		"biweekly":    recurrence.Biweekly,
		"fortnightly": recurrence.Biweekly,
		"monthly":     recurrence.Monthly,
		"bimonthly":   recurrence.Bimonthly,
		"quarterly":   recurrence.Quarterly,
		"semiannual":  recurrence.Semiannual,
		"annual":      recurrence.Annual,
		"yearly":      recurrence.Annual,
	},

	Priorities: map[string]ledger.Priority{
		"high":   ledger.PriorityHigh,
		"medium": ledger.PriorityMedium,
		"low":    ledger.PriorityLow,
	},

	CategoryKeywords: map[string]string{
		"meal": "Food", "restaurant": "Food", "supermarket": "Food",
		"grocery": "Food", "groceries": "Food", "snack": "Food",
		"lunch": "Food", "dinner": "Food", "breakfast": "Food",
		"coffee": "Food", "bakery": "Food",
		"uber": "Transportation", "taxi": "Transportation", "bus": "Transportation",
		"subway": "Transportation", "fuel": "Transportation", "gas": "Transportation",
		"parking": "Transportation", "toll": "Transportation",
		"rent": "Housing", "mortgage": "Housing", "electricity": "Housing",
		"water": "Housing", "internet": "Housing", "phone": "Housing",
		"doctor": "Health", "hospital": "Health", "pharmacy": "Health",
		"medicine": "Health", "dentist": "Health", "therapy": "Health",
		"school": "Education", "college": "Education", "university": "Education",
		"course": "Education", "book": "Education", "tuition": "Education",
		"cinema": "Entertainment", "movie": "Entertainment", "concert": "Entertainment",
		"travel": "Entertainment", "trip": "Entertainment", "gym": "Entertainment",
		"streaming": "Entertainment", "netflix": "Entertainment", "spotify": "Entertainment",
		"paycheck": "Salary", "wage": "Salary", "salary": "Salary",
		"dividend": "Investments", "interest": "Investments", "stock": "Investments",
	},

	SuggestedExpenseCategories: []string{"Food", "Transportation", "Housing", "Health", "Entertainment"},
	SuggestedIncomeCategories:  []string{"Salary", "Investments", "Freelance"},

	CancelWords: []string{"cancel", "forget it", "never mind", "nevermind", "stop"},
	AffirmWords: []string{"yes", "y", "yeah", "yep", "sure", "ok", "okay", "correct"},

	AddVerbs:         []string{"add", "register", "insert", "new", "create", "record", "log", "bought", "buy", "spent", "paid"},
	ListVerbs:        []string{"list", "show", "display", "view", "get", "what"},
	ExpenseWords:     []string{"expense", "expenses", "spending", "spent", "cost", "costs", "bill", "bills"},
	IncomeWords:      []string{"income", "revenue", "earnings", "salary", "received", "earned"},
	RecurringWords:   []string{"recurring", "fixed", "repeating", "periodic", "subscription"},
	InstallmentWords: []string{"installment", "installments", "times", "parts"},

	ReservedWords: []string{
		"description", "category", "date", "priority", "frequency",
		"recurring", "installment", "installments", "times", "tag", "tags",
		"monthly", "weekly", "daily", "annual",
	},

	PopularCommands: []PopularCommand{
		{"add expense", "add expense of 50 in Food"},
		{"add income", "add income of 2000 as Salary"},
		{"add recurring expense", "add recurring expense of 15 in Entertainment monthly"},
		{"buy in installments", "buy in 3 installments of 90 for headphones"},
		{"list transactions", "list transactions for january"},
		{"list recurring expenses", "list recurring expenses"},
		{"list installments", "list installments"},
		{"balance", "balance for this month"},
		{"delete transaction", "delete transaction id 123abc"},
		{"update transaction", "update transaction id 123abc amount to 75.50"},
		{"add category", "add category Education type expense"},
		{"list categories", "list categories"},
		{"help", "help"},
	},

	Replies: ReplyTemplates{
		AskAmount:        "I couldn't identify the amount. How much was it?",
		AskCategory:      "I couldn't identify the category. Which one fits best?\n%s",
		AskAgain:         "Sorry, I still need the %s. Could you tell me just that?",
		DidYouMean:       "I didn't quite get that. Did you mean '%s'?",
		Canceled:         "Okay, I've discarded that. What would you like to do next?",
		Unknown:          "I didn't understand that command. Type 'help' to see what I can do.",
		Help:             "Here's what you can ask me:\n%s",
		ExpenseAdded:     "Expense of %s in %s recorded.",
		IncomeAdded:      "Income of %s as %s recorded.",
		RecurringAdded:   "Recurring %s expense of %s in %s set up. Next occurrence: %s.",
		InstallmentAdded: "Purchase split into %d installments of %s in %s.",
		Rejected:         "I can't do that: %s",

		ReasonInvalidInstallments: "the number of installments must be at least 1",
		ReasonInvalidRecurrence:   "I couldn't understand that repetition schedule",
	},
}

// EnglishPack returns the en-US language pack.
func EnglishPack() *LanguagePack { return englishPack }

// startOfWeek returns the Monday of now's week at midnight.
func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
