package nlp

import "fmt"

// Intent is the closed set of commands free text can resolve to.
type Intent string

const (
	IntentAddExpense        Intent = "ADD_EXPENSE"
	IntentAddIncome         Intent = "ADD_INCOME"
	IntentAddRecurring      Intent = "ADD_RECURRING"
	IntentAddInstallment    Intent = "ADD_INSTALLMENT"
	IntentListTransactions  Intent = "LIST_TRANSACTIONS"
	IntentListRecurring     Intent = "LIST_RECURRING"
	IntentListInstallments  Intent = "LIST_INSTALLMENTS"
	IntentGetBalance        Intent = "GET_BALANCE"
	IntentDeleteTransaction Intent = "DELETE_TRANSACTION"
	IntentUpdateTransaction Intent = "UPDATE_TRANSACTION"
	IntentAddCategory       Intent = "ADD_CATEGORY"
	IntentListCategories    Intent = "LIST_CATEGORIES"
	IntentHelp              Intent = "HELP"
	IntentConfirmNeeded     Intent = "CONFIRM_NEEDED"
	IntentUnknown           Intent = "UNKNOWN"
)

// allIntents is used to validate intents coming from outside the classifier,
// e.g. an LLM fallback response.
var allIntents = map[Intent]struct{}{
	IntentAddExpense: {}, IntentAddIncome: {}, IntentAddRecurring: {},
	IntentAddInstallment: {}, IntentListTransactions: {}, IntentListRecurring: {},
	IntentListInstallments: {}, IntentGetBalance: {}, IntentDeleteTransaction: {},
	IntentUpdateTransaction: {}, IntentAddCategory: {}, IntentListCategories: {},
	IntentHelp: {}, IntentConfirmNeeded: {}, IntentUnknown: {},
}

// ParseIntent validates an intent name against the closed enumeration.
func ParseIntent(s string) (Intent, error) {
	if _, ok := allIntents[Intent(s)]; ok {
		return Intent(s), nil
	}
	return IntentUnknown, fmt.Errorf("unknown intent %q", s)
}

// IsAddCommand reports whether the intent creates ledger entries.
func (i Intent) IsAddCommand() bool {
	switch i {
	case IntentAddExpense, IntentAddIncome, IntentAddRecurring, IntentAddInstallment:
		return true
	}
	return false
}
