package main

import (
	"log/slog"

	"github.com/FACorreiaa/ledgerbot/internal/adapter/memory"
	"github.com/FACorreiaa/ledgerbot/internal/domain/dialog"
	"github.com/FACorreiaa/ledgerbot/internal/domain/interpreter"
	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/nlp"
	"github.com/FACorreiaa/ledgerbot/pkg/config"
	"github.com/FACorreiaa/ledgerbot/pkg/cron"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Arena       *dialog.Arena
	Scheduler   *cron.Scheduler
	Interpreter *interpreter.Service

	LedgerStore   *memory.LedgerStore
	CategoryStore *memory.CategoryStore
}

// InitDependencies wires the interpretation pipeline together.
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	pack := nlp.PackFor(cfg.Bot.Language)
	arena := dialog.NewArena(cfg.Bot.IdleExpiry, logger)
	scheduler := cron.NewScheduler(arena, cfg.Bot.SweepSchedule, logger)

	store := memory.NewLedgerStore()
	categories := memory.NewCategoryStore()
	for _, name := range pack.SuggestedExpenseCategories {
		categories.Seed(name, ledger.CategoryExpense)
	}
	for _, name := range pack.SuggestedIncomeCategories {
		categories.Seed(name, ledger.CategoryIncome)
	}
	categories.Seed(cfg.Bot.DefaultCategory, ledger.CategoryExpense)

	fallback := interpreter.NoFallback()
	if cfg.Fallback.Enabled {
		// The model client lives outside this repo; wire it here when an
		// implementation of interpreter.FallbackClassifier is available.
		logger.Warn("llm fallback enabled but no classifier is wired, staying rule-based")
	}

	svc := interpreter.NewService(
		pack, arena, fallback, store, categories,
		cfg.Bot.DefaultCategory, cfg.Bot.DefaultCurrency, logger,
	)

	return &Dependencies{
		Config:        cfg,
		Logger:        logger,
		Arena:         arena,
		Scheduler:     scheduler,
		Interpreter:   svc,
		LedgerStore:   store,
		CategoryStore: categories,
	}, nil
}
