package nlp

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
)

// Field names used in missing-field reporting and confirmation prompts.
const (
	FieldAmount   = "amount"
	FieldCategory = "category"
)

// EntityBag holds the typed fields extracted from one message. Which fields
// are populated depends on the intent; an absent required field is a valid
// state that routes the message into the confirmation dialog, not an error.
type EntityBag struct {
	Amount      *decimal.Decimal
	Category    string
	Description string
	Date        *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	Month       *time.Time
	Priority    ledger.Priority
	Tags        []string

	// Pre-assembled sub-entities for ADD_RECURRING / ADD_INSTALLMENT so
	// downstream components never re-parse raw text.
	Recurrence        *recurrence.Descriptor
	TotalInstallments *int
	Installment       *ledger.InstallmentPlan

	// Filters and identifiers for list/update/delete commands.
	Kind          ledger.EntryKind
	TransactionID string

	// ADD_CATEGORY fields.
	CategoryName string
	CategoryKind ledger.CategoryKind
}

// Merge overlays non-empty fields of other onto a copy of the bag.
func (b EntityBag) Merge(other EntityBag) EntityBag {
	merged := b
	if other.Amount != nil {
		merged.Amount = other.Amount
	}
	if other.Category != "" {
		merged.Category = other.Category
	}
	if other.Description != "" {
		merged.Description = other.Description
	}
	if other.Date != nil {
		merged.Date = other.Date
	}
	if other.Priority != "" {
		merged.Priority = other.Priority
	}
	if len(other.Tags) > 0 {
		merged.Tags = other.Tags
	}
	return merged
}

// MissingFields reports which required fields the bag lacks for the intent.
// Only direct expense/income adds participate in the confirmation dialog;
// recurring and installment adds fall back to a default category instead.
func (b EntityBag) MissingFields(intent Intent) []string {
	if intent != IntentAddExpense && intent != IntentAddIncome {
		return nil
	}

	var missing []string
	if b.Amount == nil {
		missing = append(missing, FieldAmount)
	}
	if b.Category == "" {
		missing = append(missing, FieldCategory)
	}
	return missing
}

// InterpretationResult is the pipeline's output contract for one message.
type InterpretationResult struct {
	Intent        Intent
	Entities      EntityBag
	MissingFields []string

	// Message carries the user-facing reply: a clarification question for
	// CONFIRM_NEEDED results, otherwise a confirmation of what happened.
	Message string

	// SuggestedCategories enumerates candidate categories when the dialog
	// asks for one; a 1-based index in the user's reply selects from it.
	SuggestedCategories []string

	// SuggestedCommand is a close known command offered for an
	// unrecognized message ("did you mean ...?").
	SuggestedCommand string

	// Drafts are the ledger entries produced by a fully resolved add
	// command, after recurrence/installment expansion.
	Drafts []ledger.EntryDraft
}

// Resolved reports whether the message produced a final command rather than
// a pending clarification.
func (r *InterpretationResult) Resolved() bool {
	return r.Intent != IntentConfirmNeeded && len(r.MissingFields) == 0
}
