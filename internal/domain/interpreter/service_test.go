package interpreter

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/ledgerbot/internal/adapter/memory"
	"github.com/FACorreiaa/ledgerbot/internal/domain/dialog"
	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/nlp"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	store *memory.LedgerStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	pack := nlp.EnglishPack()

	store := memory.NewLedgerStore()
	categories := memory.NewCategoryStore()
	for _, name := range pack.SuggestedExpenseCategories {
		categories.Seed(name, ledger.CategoryExpense)
	}
	for _, name := range pack.SuggestedIncomeCategories {
		categories.Seed(name, ledger.CategoryIncome)
	}
	categories.Seed("Others", ledger.CategoryExpense)

	arena := dialog.NewArena(time.Hour, logger)
	svc := NewService(pack, arena, NoFallback(), store, categories, "Others", "USD", logger).
		WithClock(func() time.Time { return testNow })

	return &fixture{svc: svc, store: store}
}

func (f *fixture) interpret(t *testing.T, text string) *nlp.InterpretationResult {
	t.Helper()
	result, err := f.svc.Interpret(context.Background(), "conv-1", text)
	require.NoError(t, err)
	return result
}

func TestInterpretDirectExpense(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "add expense of 50 in Food")

	assert.Equal(t, nlp.IntentAddExpense, result.Intent)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, "Food", result.Drafts[0].Category)
	assert.Equal(t, int64(5000), result.Drafts[0].Amount.Amount())
	assert.Contains(t, result.Message, "Food")

	entries := f.store.All()
	require.Len(t, entries, 1)
	assert.Equal(t, ledger.KindExpense, entries[0].Draft.Kind)
}

func TestInterpretConfirmationRoundTrip(t *testing.T) {
	f := newFixture(t)

	first := f.interpret(t, "add expense of 50")
	assert.Equal(t, nlp.IntentConfirmNeeded, first.Intent)
	assert.Equal(t, []string{nlp.FieldCategory}, first.MissingFields)
	require.NotEmpty(t, first.SuggestedCategories)
	assert.Contains(t, first.Message, "1. "+first.SuggestedCategories[0])
	assert.Empty(t, f.store.All(), "nothing persists while the command is pending")

	second := f.interpret(t, "1")
	assert.Equal(t, nlp.IntentAddExpense, second.Intent)
	require.Len(t, second.Drafts, 1)
	assert.Equal(t, first.SuggestedCategories[0], second.Drafts[0].Category)
	assert.Len(t, f.store.All(), 1)
}

func TestInterpretAmountThenCategory(t *testing.T) {
	f := newFixture(t)

	first := f.interpret(t, "add expense")
	assert.Equal(t, nlp.IntentConfirmNeeded, first.Intent)
	assert.Equal(t, []string{nlp.FieldAmount, nlp.FieldCategory}, first.MissingFields)

	second := f.interpret(t, "42,50")
	assert.Equal(t, nlp.IntentConfirmNeeded, second.Intent)
	assert.Equal(t, []string{nlp.FieldCategory}, second.MissingFields)

	third := f.interpret(t, "Transportation")
	assert.Equal(t, nlp.IntentAddExpense, third.Intent)
	require.Len(t, third.Drafts, 1)
	assert.Equal(t, "Transportation", third.Drafts[0].Category)
	assert.Equal(t, int64(4250), third.Drafts[0].Amount.Amount())
}

func TestInterpretAmountOnlyMissing(t *testing.T) {
	f := newFixture(t)

	first := f.interpret(t, "add expense in Food")
	assert.Equal(t, nlp.IntentConfirmNeeded, first.Intent)
	assert.Equal(t, []string{nlp.FieldAmount}, first.MissingFields)

	// A bare number completes the command without re-asking for the
	// category that was already present.
	second := f.interpret(t, "50")
	assert.Equal(t, nlp.IntentAddExpense, second.Intent)
	require.Len(t, second.Drafts, 1)
	assert.Equal(t, "Food", second.Drafts[0].Category)
	assert.Equal(t, int64(5000), second.Drafts[0].Amount.Amount())
}

func TestInterpretRejectsInvalidInstallments(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "buy in 0 installments of 90")

	assert.Empty(t, result.Drafts)
	assert.Empty(t, f.store.All())
	assert.Contains(t, result.Message, f.svc.pack.Replies.ReasonInvalidInstallments)
}

func TestInterpretCancelDiscardsPending(t *testing.T) {
	f := newFixture(t)

	f.interpret(t, "add expense of 50")
	result := f.interpret(t, "cancel")

	assert.Equal(t, f.svc.pack.Replies.Canceled, result.Message)
	assert.Empty(t, f.store.All())

	// The next message starts from a clean slate.
	next := f.interpret(t, "add expense of 10 in Food")
	assert.Equal(t, nlp.IntentAddExpense, next.Intent)
}

func TestInterpretInstallmentSeries(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "buy in 3 installments of 90")

	assert.Equal(t, nlp.IntentAddInstallment, result.Intent)
	require.Len(t, result.Drafts, 3)

	ref := result.Drafts[0].Installment.ReferenceID
	for i, draft := range result.Drafts {
		require.NotNil(t, draft.Installment)
		assert.Equal(t, ref, draft.Installment.ReferenceID)
		assert.Equal(t, 3, draft.Installment.Total)
		assert.Equal(t, i+1, draft.Installment.Current)
		assert.Equal(t, int64(9000), draft.Amount.Amount())
	}
	assert.Len(t, f.store.All(), 3)
}

func TestInterpretRecurring(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "add recurring expense of 15 in Entertainment monthly")

	assert.Equal(t, nlp.IntentAddRecurring, result.Intent)
	require.Len(t, result.Drafts, 1)
	draft := result.Drafts[0]
	require.NotNil(t, draft.Recurrence)
	assert.False(t, draft.IsPaid)
	assert.Equal(t, "Entertainment", draft.Category)
	assert.Contains(t, result.Message, "monthly")
}

func TestInterpretCategoryAutoCorrect(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "add expense of 20 in Fod")

	require.Len(t, result.Drafts, 1)
	assert.Equal(t, "Food", result.Drafts[0].Category)
}

func TestInterpretSuggestionRoundTrip(t *testing.T) {
	f := newFixture(t)

	first := f.interpret(t, "add expens of 50")
	assert.Equal(t, nlp.IntentUnknown, first.Intent)
	assert.Equal(t, "add expense", first.SuggestedCommand)

	second := f.interpret(t, "yes")
	assert.Equal(t, nlp.IntentConfirmNeeded, second.Intent)
	assert.Equal(t, []string{nlp.FieldAmount, nlp.FieldCategory}, second.MissingFields)
}

func TestInterpretRecurringWithoutAmountAsks(t *testing.T) {
	f := newFixture(t)

	first := f.interpret(t, "add recurring expense netflix monthly")
	assert.Equal(t, nlp.IntentConfirmNeeded, first.Intent)
	assert.Equal(t, []string{nlp.FieldAmount}, first.MissingFields)

	second := f.interpret(t, "55")
	assert.Equal(t, nlp.IntentAddRecurring, second.Intent)
	require.Len(t, second.Drafts, 1)
	assert.Equal(t, "Entertainment", second.Drafts[0].Category)
}

func TestInterpretUnknown(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "quack quack quack")

	assert.Equal(t, nlp.IntentUnknown, result.Intent)
	assert.Equal(t, f.svc.pack.Replies.Unknown, result.Message)
}

func TestInterpretHelp(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "help")

	assert.Equal(t, nlp.IntentHelp, result.Intent)
	assert.Contains(t, result.Message, "add expense of 50 in Food")
}

func TestInterpretListPassesEntitiesThrough(t *testing.T) {
	f := newFixture(t)

	result := f.interpret(t, "list expenses for january")

	assert.Equal(t, nlp.IntentListTransactions, result.Intent)
	require.NotNil(t, result.Entities.Month)
	assert.Equal(t, time.January, result.Entities.Month.Month())
	assert.Empty(t, result.Drafts)
	assert.Empty(t, f.store.All())
}
