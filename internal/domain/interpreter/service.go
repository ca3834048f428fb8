package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ledgerbot/internal/domain/dialog"
	"github.com/FACorreiaa/ledgerbot/internal/domain/installment"
	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/nlp"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
	"github.com/FACorreiaa/ledgerbot/internal/domain/sequencer"
	"github.com/FACorreiaa/ledgerbot/pkg/metrics"
	"github.com/FACorreiaa/ledgerbot/pkg/money"
)

// categoryCorrectionDistance bounds the Levenshtein distance for silently
// auto-correcting a typed category to a known one.
const categoryCorrectionDistance = 2

// Service runs the full interpretation pipeline: normalize, classify,
// extract, walk the confirmation dialog, and hand resolved add commands
// to the ledger store. One Service instance serves every conversation.
type Service struct {
	pack       *nlp.LanguagePack
	normalizer *nlp.Normalizer
	classifier *nlp.Classifier
	suggester  *nlp.Suggester
	extractor  *nlp.Extractor
	controller *dialog.Controller
	arena      *dialog.Arena
	seq        *sequencer.Sequencer
	fallback   *Fallback

	store      ledger.Store
	categories ledger.CategoryStore

	currency string
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

func NewService(
	pack *nlp.LanguagePack,
	arena *dialog.Arena,
	fallback *Fallback,
	store ledger.Store,
	categories ledger.CategoryStore,
	defaultCategory, currency string,
	logger *slog.Logger,
) *Service {
	return &Service{
		pack:       pack,
		normalizer: nlp.NewNormalizer(pack),
		classifier: nlp.NewClassifier(pack),
		suggester:  nlp.NewSuggester(pack),
		extractor:  nlp.NewExtractor(pack, defaultCategory),
		controller: dialog.NewController(pack),
		arena:      arena,
		seq:        sequencer.New(),
		fallback:   fallback,
		store:      store,
		categories: categories,
		currency:   currency,
		logger:     logger,
		tracer:     otel.Tracer("interpreter"),
		now:        time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.extractor.WithClock(now)
	return s
}

// Interpret processes one message for one conversation. Messages of the
// same conversation are serialized in arrival order; the call blocks
// until this message's turn completes or ctx is done.
func (s *Service) Interpret(ctx context.Context, conversationID, text string) (*nlp.InterpretationResult, error) {
	ctx, span := s.tracer.Start(ctx, "interpret",
		trace.WithAttributes(attribute.String("conversation.id", conversationID)))
	defer span.End()

	var (
		result *nlp.InterpretationResult
		err    error
	)
	seqErr := s.seq.Do(ctx, conversationID, func() {
		result, err = s.process(ctx, conversationID, text)
	})
	if seqErr != nil {
		return nil, fmt.Errorf("interpret %s: %w", conversationID, seqErr)
	}
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("intent", string(result.Intent)))
	metrics.MessagesInterpreted.WithLabelValues(string(result.Intent)).Inc()
	return result, nil
}

func (s *Service) process(ctx context.Context, conversationID, text string) (*nlp.InterpretationResult, error) {
	conv := s.arena.Get(conversationID)
	conv.Touch(s.now())

	normalized := s.normalizer.Normalize(text)
	turn := s.controller.Handle(conv, normalized)

	switch turn.Outcome {
	case dialog.OutcomeCanceled:
		return &nlp.InterpretationResult{
			Intent:  nlp.IntentUnknown,
			Message: s.pack.Replies.Canceled,
		}, nil

	case dialog.OutcomeReprompt:
		metrics.ConfirmationsOpened.Inc()
		return &nlp.InterpretationResult{
			Intent:        nlp.IntentConfirmNeeded,
			Entities:      conv.Pending.Bag,
			MissingFields: conv.Pending.Missing,
			Message:       fmt.Sprintf(s.pack.Replies.AskAgain, turn.Field),
		}, nil

	case dialog.OutcomeFieldFilled:
		pending := conv.Pending
		if len(pending.Missing) > 0 {
			return s.confirmNeeded(conv, pending.Intent, pending.Bag, pending.Missing), nil
		}
		conv.Reset()
		return s.finalize(ctx, conv, pending.Intent, pending.Bag)

	case dialog.OutcomeRerun:
		normalized = s.normalizer.Normalize(turn.Command)
	}

	return s.analyze(ctx, conv, normalized)
}

func (s *Service) analyze(ctx context.Context, conv *dialog.Context, normalized string) (*nlp.InterpretationResult, error) {
	intent := s.classifier.Classify(normalized)
	if intent == nlp.IntentUnknown {
		intent = s.fallback.Classify(ctx, normalized)
	}
	if intent == nlp.IntentUnknown {
		return s.unknown(conv, normalized), nil
	}
	if intent == nlp.IntentHelp {
		return &nlp.InterpretationResult{
			Intent:  nlp.IntentHelp,
			Message: fmt.Sprintf(s.pack.Replies.Help, s.suggester.Examples()),
		}, nil
	}

	bag := s.extractor.Extract(intent, normalized)
	if missing := bag.MissingFields(intent); len(missing) > 0 {
		return s.confirmNeeded(conv, intent, bag, missing), nil
	}
	return s.finalize(ctx, conv, intent, bag)
}

func (s *Service) unknown(conv *dialog.Context, normalized string) *nlp.InterpretationResult {
	if suggestion := s.suggester.Suggest(normalized); suggestion != "" {
		conv.SuggestedCommand = suggestion
		return &nlp.InterpretationResult{
			Intent:           nlp.IntentUnknown,
			SuggestedCommand: suggestion,
			Message:          fmt.Sprintf(s.pack.Replies.DidYouMean, suggestion),
		}
	}
	return &nlp.InterpretationResult{
		Intent:  nlp.IntentUnknown,
		Message: s.pack.Replies.Unknown,
	}
}

// confirmNeeded parks the partial command on the conversation and asks
// for the first missing field.
func (s *Service) confirmNeeded(conv *dialog.Context, intent nlp.Intent, bag nlp.EntityBag, missing []string) *nlp.InterpretationResult {
	suggestions := s.pack.SuggestedExpenseCategories
	if bag.Kind == ledger.KindIncome {
		suggestions = s.pack.SuggestedIncomeCategories
	}

	conv.Pending = &dialog.Pending{
		Intent:              intent,
		Bag:                 bag,
		Missing:             missing,
		SuggestedCategories: suggestions,
	}
	metrics.ConfirmationsOpened.Inc()

	result := &nlp.InterpretationResult{
		Intent:        nlp.IntentConfirmNeeded,
		Entities:      bag,
		MissingFields: missing,
	}
	switch missing[0] {
	case nlp.FieldAmount:
		result.Message = s.pack.Replies.AskAmount
	case nlp.FieldCategory:
		result.Message = fmt.Sprintf(s.pack.Replies.AskCategory, enumerate(suggestions))
		result.SuggestedCategories = suggestions
	}
	return result
}

// finalize turns a fully resolved command into its outcome. Add commands
// produce ledger drafts and append them; everything else is returned
// with its entities for the outer surface to execute.
func (s *Service) finalize(ctx context.Context, conv *dialog.Context, intent nlp.Intent, bag nlp.EntityBag) (*nlp.InterpretationResult, error) {
	result := &nlp.InterpretationResult{Intent: intent, Entities: bag}
	if !intent.IsAddCommand() {
		return result, nil
	}

	// Recurring and installment adds default their category instead of
	// asking, but no add can proceed without an amount.
	if bag.Amount == nil {
		return s.confirmNeeded(conv, intent, bag, []string{nlp.FieldAmount}), nil
	}

	bag.Category = s.resolveCategory(ctx, bag.Category, bag.Kind)
	result.Entities = bag

	drafts, message, err := s.buildDrafts(intent, bag)
	if err != nil {
		return &nlp.InterpretationResult{
			Intent:  intent,
			Message: fmt.Sprintf(s.pack.Replies.Rejected, s.rejectionReason(err)),
		}, nil
	}

	for _, draft := range drafts {
		if _, err := s.store.Append(ctx, draft); err != nil {
			// Never retried: a duplicated entry is worse than a missing one.
			return nil, fmt.Errorf("append entry: %w", err)
		}
		metrics.EntriesAppended.WithLabelValues(string(draft.Kind)).Inc()
	}

	result.Drafts = drafts
	result.Message = message
	return result, nil
}

func (s *Service) buildDrafts(intent nlp.Intent, bag nlp.EntityBag) ([]ledger.EntryDraft, string, error) {
	amount := money.NewFromDecimal(*bag.Amount, s.currency)
	date := s.now()
	if bag.Date != nil {
		date = *bag.Date
	}

	draft := ledger.EntryDraft{
		Kind:        bag.Kind,
		Amount:      amount,
		Category:    bag.Category,
		Description: bag.Description,
		Date:        date,
		IsPaid:      true,
		PaidDate:    &date,
		Priority:    bag.Priority,
		Tags:        bag.Tags,
	}

	r := s.pack.Replies
	switch intent {
	case nlp.IntentAddExpense:
		return []ledger.EntryDraft{draft}, fmt.Sprintf(r.ExpenseAdded, amount.Display(), draft.Category), nil

	case nlp.IntentAddIncome:
		return []ledger.EntryDraft{draft}, fmt.Sprintf(r.IncomeAdded, amount.Display(), draft.Category), nil

	case nlp.IntentAddRecurring:
		desc := bag.Recurrence
		if desc == nil {
			var err error
			desc, err = recurrence.New(recurrence.Monthly, date)
			if err != nil {
				return nil, "", err
			}
		}
		draft.Recurrence = desc
		draft.IsPaid = false
		draft.PaidDate = nil
		next, _ := desc.NextOccurrence(s.now())
		msg := fmt.Sprintf(r.RecurringAdded, string(desc.Frequency), amount.Display(), draft.Category, next.Format("2006-01-02"))
		return []ledger.EntryDraft{draft}, msg, nil

	case nlp.IntentAddInstallment:
		total := defaultInstallmentCount
		if bag.TotalInstallments != nil {
			total = *bag.TotalInstallments
		}
		drafts, err := installment.Expand(draft, total)
		if err != nil {
			return nil, "", err
		}
		msg := fmt.Sprintf(r.InstallmentAdded, total, amount.Display(), draft.Category)
		return drafts, msg, nil
	}
	return nil, "", fmt.Errorf("not an add command: %s", intent)
}

// resolveCategory validates a category against the store, silently
// auto-correcting near misses ("Fod" to "Food"). Store failures are
// ignored and the typed category kept: categorization must never block
// recording money movement.
func (s *Service) resolveCategory(ctx context.Context, category string, kind ledger.EntryKind) string {
	if category == "" || s.categories == nil {
		return category
	}
	if cat, err := s.categories.FindCategory(ctx, category); err == nil && cat != nil {
		return cat.Name
	}

	catKind := ledger.CategoryExpense
	if kind == ledger.KindIncome {
		catKind = ledger.CategoryIncome
	}
	known, err := s.categories.ListCategories(ctx, &catKind)
	if err != nil {
		s.logger.Warn("category lookup failed, keeping typed category",
			slog.String("category", category), slog.Any("error", err))
		return category
	}

	names := make([]string, len(known))
	for i, c := range known {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(category, names)
	sort.Sort(ranks)
	if len(ranks) > 0 && ranks[0].Distance <= categoryCorrectionDistance {
		return ranks[0].Target
	}
	return category
}

const defaultInstallmentCount = 2

// rejectionReason maps a domain error to its localized user-facing
// explanation. Raw error text never reaches the user.
func (s *Service) rejectionReason(err error) string {
	if errors.Is(err, installment.ErrInvalidInstallments) {
		return s.pack.Replies.ReasonInvalidInstallments
	}
	return s.pack.Replies.ReasonInvalidRecurrence
}

func enumerate(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(b.String(), "\n")
}
