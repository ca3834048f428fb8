package interpreter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/FACorreiaa/ledgerbot/internal/domain/nlp"
	"github.com/FACorreiaa/ledgerbot/pkg/metrics"
)

// FallbackClassifier asks an external model for the intent of a message
// the rule-based classifier could not place. Implementations live at the
// integration edge; this package only defines the contract.
type FallbackClassifier interface {
	ClassifyIntent(ctx context.Context, text string) (string, error)
}

// Fallback wraps a FallbackClassifier with the safety rails the pipeline
// needs: a timeout, a rate limit, and validation of whatever intent name
// the model returns. Any failure degrades to IntentUnknown.
type Fallback struct {
	classifier FallbackClassifier
	limiter    *rate.Limiter
	timeout    time.Duration
	logger     *slog.Logger
}

// NoFallback disables model-backed classification entirely.
func NoFallback() *Fallback { return &Fallback{} }

func NewFallback(classifier FallbackClassifier, perSecond float64, burst int, timeout time.Duration, logger *slog.Logger) *Fallback {
	return &Fallback{
		classifier: classifier,
		limiter:    rate.NewLimiter(rate.Limit(perSecond), burst),
		timeout:    timeout,
		logger:     logger,
	}
}

// Classify returns the model's intent for text, or IntentUnknown when the
// fallback is disabled, rate limited, times out, errors, or answers with
// an intent name outside the known set.
func (f *Fallback) Classify(ctx context.Context, text string) nlp.Intent {
	if f.classifier == nil {
		return nlp.IntentUnknown
	}
	if !f.limiter.Allow() {
		metrics.FallbackFailures.Inc()
		f.logger.Warn("fallback classifier rate limited")
		return nlp.IntentUnknown
	}

	metrics.FallbackInvocations.Inc()
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	raw, err := f.classifier.ClassifyIntent(ctx, text)
	if err != nil {
		metrics.FallbackFailures.Inc()
		f.logger.Warn("fallback classifier failed", slog.Any("error", fmt.Errorf("classify intent: %w", err)))
		return nlp.IntentUnknown
	}
	intent, err := nlp.ParseIntent(raw)
	if err != nil {
		metrics.FallbackFailures.Inc()
		f.logger.Warn("fallback classifier returned unknown intent", slog.String("intent", raw))
		return nlp.IntentUnknown
	}
	return intent
}
