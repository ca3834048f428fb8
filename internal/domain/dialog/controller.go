package dialog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/FACorreiaa/ledgerbot/internal/domain/nlp"
	"github.com/FACorreiaa/ledgerbot/pkg/money"
)

var bareNumber = regexp.MustCompile(`^(?:r\$|\$|€|£)?\s?(\d+[.,]\d{1,2}|\d+)$`)

// Outcome tells the caller what a dialog turn decided.
type Outcome int

const (
	// OutcomePassThrough: the message is not a dialog reply; run it through
	// the full pipeline.
	OutcomePassThrough Outcome = iota
	// OutcomeFieldFilled: the reply supplied a missing field; Pending was
	// updated in place and may now be complete.
	OutcomeFieldFilled
	// OutcomeCanceled: the user abandoned the pending command.
	OutcomeCanceled
	// OutcomeRerun: the user accepted a suggested command; run Command.
	OutcomeRerun
	// OutcomeReprompt: the reply answered neither the question nor any
	// command; ask again.
	OutcomeReprompt
)

// Turn is the controller's decision for one message.
type Turn struct {
	Outcome Outcome
	// Command is the text to re-run for OutcomeRerun.
	Command string
	// Field is the slot a reprompt should ask about.
	Field string
}

// Controller drives the confirmation dialog of one language. It mutates
// the per-conversation Context it is handed; concurrency is the caller's
// problem (the sequencer guarantees one message at a time per conversation).
type Controller struct {
	pack *nlp.LanguagePack
}

func NewController(pack *nlp.LanguagePack) *Controller {
	return &Controller{pack: pack}
}

// Handle interprets text against the conversation's dialog state.
func (c *Controller) Handle(ctx *Context, text string) Turn {
	if c.isCancel(text) && (ctx.Pending != nil || ctx.SuggestedCommand != "") {
		ctx.Reset()
		return Turn{Outcome: OutcomeCanceled}
	}

	if ctx.SuggestedCommand != "" && c.isAffirm(text) {
		cmd := ctx.SuggestedCommand
		ctx.Reset()
		return Turn{Outcome: OutcomeRerun, Command: cmd}
	}

	if ctx.Pending == nil {
		// The user moved on; a declined suggestion does not linger.
		ctx.SuggestedCommand = ""
		return Turn{Outcome: OutcomePassThrough}
	}
	return c.fillField(ctx, text)
}

// fillField tries to consume the reply as the value of the first missing
// field. A reply that instead looks like a fresh command passes through,
// abandoning the pending one.
func (c *Controller) fillField(ctx *Context, text string) Turn {
	pending := ctx.Pending
	field := pending.Missing[0]

	switch field {
	case nlp.FieldAmount:
		if m := bareNumber.FindStringSubmatch(text); m != nil {
			if dec, err := money.ParseDecimal(m[1]); err == nil {
				pending.Bag.Amount = &dec
				pending.Missing = pending.Missing[1:]
				return Turn{Outcome: OutcomeFieldFilled}
			}
		}
	case nlp.FieldCategory:
		if cat := c.pickCategory(text, pending.SuggestedCategories); cat != "" {
			pending.Bag.Category = cat
			pending.Missing = pending.Missing[1:]
			return Turn{Outcome: OutcomeFieldFilled}
		}
	}

	// Not an answer. A recognizable command supersedes the pending one;
	// anything else earns a narrower re-prompt.
	if c.looksLikeCommand(text) {
		ctx.Reset()
		return Turn{Outcome: OutcomePassThrough}
	}
	return Turn{Outcome: OutcomeReprompt, Field: field}
}

// pickCategory accepts either a 1-based index into the suggestions or a
// category name typed out.
func (c *Controller) pickCategory(text string, suggestions []string) string {
	trimmed := strings.TrimSpace(text)
	if idx, err := strconv.Atoi(trimmed); err == nil {
		if idx >= 1 && idx <= len(suggestions) {
			return suggestions[idx-1]
		}
		return ""
	}
	for _, s := range suggestions {
		if strings.EqualFold(s, trimmed) {
			return s
		}
	}
	// A short free-text answer names a category we don't suggest. Words
	// only: a sentence is a command attempt, not a category.
	if len(strings.Fields(trimmed)) <= 2 && trimmed != "" && !bareNumber.MatchString(trimmed) {
		return trimmed
	}
	return ""
}

func (c *Controller) looksLikeCommand(text string) bool {
	for _, ip := range c.pack.IntentPatterns {
		if ip.Pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func (c *Controller) isCancel(text string) bool {
	for _, w := range c.pack.CancelWords {
		if text == w {
			return true
		}
	}
	return false
}

func (c *Controller) isAffirm(text string) bool {
	for _, w := range c.pack.AffirmWords {
		if text == w {
			return true
		}
	}
	return false
}
