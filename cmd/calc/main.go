package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"go-calc-history/internal/calculator"
	"go-calc-history/internal/config"
	"go-calc-history/internal/observability"
	"go-calc-history/internal/repl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := observability.InitLogger(); err != nil {
		return err
	}
	defer observability.SyncLogger()

	calc := calculator.New(cfg.MaxHistory, observability.Logger)

	logObs, err := calculator.NewLoggingObserver(cfg.LogFile())
	if err != nil {
		return err
	}
	calc.Register(logObs)

	if cfg.AutoSave {
		calc.Register(calculator.NewAutoSaveObserver(cfg.HistoryFile, calc.History))
	}

	repl.New(calc, os.Stdout).Run(os.Stdin)
	return nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}
