package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(EnglishPack())

	tests := []struct {
		text string
		want Intent
	}{
		{"add expense of 50 in food", IntentAddExpense},
		{"spent 30 on lunch", IntentAddExpense},
		{"add income of 2000 as salary", IntentAddIncome},
		{"received 2000 from freelance", IntentAddIncome},
		{"add recurring expense of 15 in entertainment monthly", IntentAddRecurring},
		{"buy in 3 installments of 90", IntentAddInstallment},
		{"bought a tv in 10 installments", IntentAddInstallment},
		{"list transactions for january", IntentListTransactions},
		{"list recurring expenses", IntentListRecurring},
		{"list installments", IntentListInstallments},
		{"balance for this month", IntentGetBalance},
		{"delete transaction id 4f2a", IntentDeleteTransaction},
		{"update transaction id 4f2a amount to 75.50", IntentUpdateTransaction},
		{"add category education type expense", IntentAddCategory},
		{"list categories", IntentListCategories},
		{"help", IntentHelp},
		{"hello there", IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

// Equal scores resolve to the pattern declared first, so a message
// touching both recurring and installment vocabulary stays deterministic.
func TestClassifyTieBreak(t *testing.T) {
	c := NewClassifier(EnglishPack())

	assert.Equal(t, IntentListRecurring, c.Classify("show recurring installments"))
}

func TestClassifyHeuristics(t *testing.T) {
	c := NewClassifier(EnglishPack())

	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"month plus expense word lists transactions", "january expenses", IntentListTransactions},
		{"bare month asks for balance", "and in january", IntentGetBalance},
		{"recurring with add verb", "create my netflix recurring charge", IntentAddRecurring},
		{"installment words alone", "purchase in several installments", IntentAddInstallment},
		{"expense word with amount", "groceries expense 42", IntentAddExpense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifyPortuguese(t *testing.T) {
	c := NewClassifier(PortuguesePack())

	tests := []struct {
		text string
		want Intent
	}{
		{"adicionar despesa de 50 em alimentacao", IntentAddExpense},
		{"gastei 30 no almoco", IntentAddExpense},
		{"recebi 2000 de salario", IntentAddIncome},
		{"comprei em 3 parcelas de 90", IntentAddInstallment},
		{"listar despesas recorrentes", IntentListRecurring},
		{"saldo", IntentGetBalance},
		{"ajuda", IntentHelp},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}
