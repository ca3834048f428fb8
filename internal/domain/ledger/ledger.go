// Package ledger defines the entry drafts produced by the interpretation
// pipeline and the collaborator interfaces that persist them. Storage itself
// lives outside this core; only the contracts are owned here.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
	"github.com/FACorreiaa/ledgerbot/pkg/money"
)

// EntryKind distinguishes money leaving from money entering the ledger.
type EntryKind string

const (
	KindExpense EntryKind = "expense"
	KindIncome  EntryKind = "income"
)

// Priority grades how urgent an entry is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CategoryKind is the transaction type a category applies to.
type CategoryKind string

const (
	CategoryExpense CategoryKind = "expense"
	CategoryIncome  CategoryKind = "income"
)

// Category is a named bucket transactions are classified into.
type Category struct {
	ID   uuid.UUID
	Name string
	Kind CategoryKind
}

// InstallmentPlan links one entry to its position in an installment series.
// All entries sharing a ReferenceID carry the same Total and PerInstallment;
// Current values cover exactly 1..Total with no gaps or duplicates.
type InstallmentPlan struct {
	ReferenceID    uuid.UUID
	Total          int
	Current        int
	PerInstallment *money.Money
}

// EntryDraft is a ledger entry produced by this core and handed to the
// external ledger store for persistence.
type EntryDraft struct {
	Kind        EntryKind
	Amount      *money.Money
	Category    string
	Description string
	Date        time.Time
	DueDate     *time.Time
	IsPaid      bool
	PaidDate    *time.Time
	Recurrence  *recurrence.Descriptor
	Installment *InstallmentPlan
	Priority    Priority
	Tags        []string
}

// PersistedEntry is a draft after the ledger store accepted it.
type PersistedEntry struct {
	ID        uuid.UUID
	Draft     EntryDraft
	CreatedAt time.Time
}

// Store is the external ledger store. Appends must not be retried
// automatically: a duplicate financial entry is worse than a missing one.
type Store interface {
	Append(ctx context.Context, draft EntryDraft) (*PersistedEntry, error)
	FindByReferenceID(ctx context.Context, referenceID uuid.UUID) ([]PersistedEntry, error)
}

// CategoryStore looks up and lists the user's categories.
type CategoryStore interface {
	FindCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context, kind *CategoryKind) ([]Category, error)
}
