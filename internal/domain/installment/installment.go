// Package installment expands a single "buy in N installments" command into
// the dated series of ledger entry drafts that represents it.
package installment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
	"github.com/FACorreiaa/ledgerbot/pkg/money"
)

// ErrInvalidInstallments rejects a series with fewer than one installment.
var ErrInvalidInstallments = errors.New("installment count must be at least 1")

// Expand turns the first entry of a series into totalInstallments drafts.
// The first draft mirrors firstEntry; each subsequent draft keeps amount,
// category, priority and tags, suffixes the description with "(k/total)",
// and advances the date one calendar month with end-of-month clamping. All
// drafts share one freshly generated reference id, and Current values are
// 1..total by construction.
func Expand(firstEntry ledger.EntryDraft, totalInstallments int) ([]ledger.EntryDraft, error) {
	if totalInstallments < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInstallments, totalInstallments)
	}

	referenceID := uuid.New()
	dayOfMonth := firstEntry.Date.Day()

	drafts := make([]ledger.EntryDraft, totalInstallments)
	for i := 0; i < totalInstallments; i++ {
		draft := firstEntry

		if i > 0 {
			draft.Date = recurrence.AddMonths(firstEntry.Date, i, dayOfMonth)
			draft.IsPaid = false
			draft.PaidDate = nil
		}
		draft.Description = strings.TrimSpace(fmt.Sprintf("%s (%d/%d)", firstEntry.Description, i+1, totalInstallments))
		draft.Installment = &ledger.InstallmentPlan{
			ReferenceID:    referenceID,
			Total:          totalInstallments,
			Current:        i + 1,
			PerInstallment: firstEntry.Amount,
		}

		drafts[i] = draft
	}

	return drafts, nil
}

// SplitTotal divides a stated grand total into per-installment amounts,
// assigning leftover cents to the earliest installments so the series sums
// back to the total exactly.
func SplitTotal(total *money.Money, totalInstallments int) ([]*money.Money, error) {
	if totalInstallments < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInstallments, totalInstallments)
	}
	return total.Split(totalInstallments)
}
