// Package memory provides in-process implementations of the ledger
// ports, used by the local chat loop and by tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
)

// LedgerStore keeps appended entries in memory.
type LedgerStore struct {
	mu      sync.Mutex
	entries []ledger.PersistedEntry
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

func (s *LedgerStore) Append(_ context.Context, draft ledger.EntryDraft) (*ledger.PersistedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := ledger.PersistedEntry{
		ID:        uuid.New(),
		Draft:     draft,
		CreatedAt: time.Now(),
	}
	s.entries = append(s.entries, entry)
	return &entry, nil
}

func (s *LedgerStore) FindByReferenceID(_ context.Context, referenceID uuid.UUID) ([]ledger.PersistedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ledger.PersistedEntry
	for _, e := range s.entries {
		if e.Draft.Installment != nil && e.Draft.Installment.ReferenceID == referenceID {
			out = append(out, e)
		}
	}
	return out, nil
}

// All returns a copy of every stored entry, in append order.
func (s *LedgerStore) All() []ledger.PersistedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ledger.PersistedEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// CategoryStore serves a fixed category list.
type CategoryStore struct {
	mu         sync.Mutex
	categories []ledger.Category
}

func NewCategoryStore(categories ...ledger.Category) *CategoryStore {
	return &CategoryStore{categories: categories}
}

// Seed adds a category, generating its ID.
func (s *CategoryStore) Seed(name string, kind ledger.CategoryKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, ledger.Category{ID: uuid.New(), Name: name, Kind: kind})
}

func (s *CategoryStore) FindCategory(_ context.Context, name string) (*ledger.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			cat := c
			return &cat, nil
		}
	}
	return nil, nil
}

func (s *CategoryStore) ListCategories(_ context.Context, kind *ledger.CategoryKind) ([]ledger.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ledger.Category
	for _, c := range s.categories {
		if kind == nil || c.Kind == *kind {
			out = append(out, c)
		}
	}
	return out, nil
}
