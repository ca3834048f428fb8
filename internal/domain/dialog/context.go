package dialog

import (
	"log/slog"
	"sync"
	"time"

	"github.com/FACorreiaa/ledgerbot/internal/domain/nlp"
)

// Pending is an interrupted add command waiting for the user to supply
// its missing fields.
type Pending struct {
	Intent              nlp.Intent
	Bag                 nlp.EntityBag
	Missing             []string
	SuggestedCategories []string
}

// Context is the per-conversation dialog state. It is only ever touched
// by the conversation's exclusive worker, so it needs no lock of its own.
type Context struct {
	ConversationID string
	Pending        *Pending

	// SuggestedCommand is the last "did you mean" offer, consumed by an
	// affirmative reply.
	SuggestedCommand string

	lastActivity time.Time
}

// Touch records activity, deferring idle eviction.
func (c *Context) Touch(now time.Time) { c.lastActivity = now }

// Reset discards any pending command and suggestion.
func (c *Context) Reset() {
	c.Pending = nil
	c.SuggestedCommand = ""
}

// Arena owns the live conversation contexts and evicts the idle ones.
type Arena struct {
	mu         sync.Mutex
	contexts   map[string]*Context
	idleExpiry time.Duration
	logger     *slog.Logger
}

func NewArena(idleExpiry time.Duration, logger *slog.Logger) *Arena {
	return &Arena{
		contexts:   make(map[string]*Context),
		idleExpiry: idleExpiry,
		logger:     logger,
	}
}

// Get returns the context for a conversation, creating it on first use.
func (a *Arena) Get(conversationID string) *Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx, ok := a.contexts[conversationID]
	if !ok {
		ctx = &Context{ConversationID: conversationID, lastActivity: time.Now()}
		a.contexts[conversationID] = ctx
	}
	return ctx
}

// Sweep drops every context idle longer than the expiry and returns how
// many were evicted. Evicting a context also abandons its pending
// command; the user starts from a clean state next time.
func (a *Arena) Sweep(now time.Time) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	evicted := 0
	for id, ctx := range a.contexts {
		if now.Sub(ctx.lastActivity) >= a.idleExpiry {
			delete(a.contexts, id)
			evicted++
		}
	}
	if evicted > 0 {
		a.logger.Info("evicted idle conversation contexts", slog.Int("count", evicted))
	}
	return evicted
}

// Len reports the number of live contexts.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.contexts)
}
