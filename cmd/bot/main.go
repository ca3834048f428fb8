package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/FACorreiaa/ledgerbot/pkg/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("bot exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	deps, err := InitDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("init dependencies: %w", err)
	}

	if err := deps.Scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer func() { <-deps.Scheduler.Stop().Done() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("chat loop started",
		slog.String("language", cfg.Bot.Language),
		slog.String("currency", cfg.Bot.DefaultCurrency),
	)
	return chatLoop(ctx, deps)
}

// chatLoop reads messages from stdin and prints the interpreter's replies,
// one conversation for the whole session.
func chatLoop(ctx context.Context, deps *Dependencies) error {
	const conversationID = "local"

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("ledgerbot ready, type 'help' for commands (ctrl-d to quit)")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := deps.Interpreter.Interpret(ctx, conversationID, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			deps.Logger.Error("interpret failed", slog.Any("error", err))
			continue
		}
		if result.Message != "" {
			fmt.Println(result.Message)
		} else {
			fmt.Printf("[%s]\n", result.Intent)
		}
	}
}
