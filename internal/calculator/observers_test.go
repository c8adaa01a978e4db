package calculator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLoggingObserverWritesLine(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "calculator.log")

	obs, err := NewLoggingObserver(logPath)
	if err != nil {
		t.Fatalf("creating logging observer: %v", err)
	}

	calc := New(10, zap.NewNop())
	calc.Register(obs)

	ctx := context.Background()
	calc.Evaluate(ctx, "add", []float64{2, 3})
	calc.Evaluate(ctx, "multiply", []float64{2, 4})

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	contents := string(raw)
	if !strings.Contains(contents, "ADD 2, 3 = 5") {
		t.Fatalf("expected add line in log, got %q", contents)
	}
	if !strings.Contains(contents, "MULTIPLY 2, 4 = 8") {
		t.Fatalf("expected multiply line in log, got %q", contents)
	}
}

func TestLoggingObserverAppends(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "calculator.log")

	for i := 0; i < 2; i++ {
		obs, err := NewLoggingObserver(logPath)
		if err != nil {
			t.Fatalf("creating logging observer: %v", err)
		}
		if err := obs.Notify(context.Background(), testRecord(float64(i))); err != nil {
			t.Fatalf("notify: %v", err)
		}
	}

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if got := strings.Count(string(raw), "ADD"); got != 2 {
		t.Fatalf("expected 2 appended lines, got %d", got)
	}
}

func TestAutoSaveObserverRewritesCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "history", "history.csv")

	calc := New(10, zap.NewNop())
	calc.Register(NewAutoSaveObserver(csvPath, calc.History))

	ctx := context.Background()
	calc.Evaluate(ctx, "power", []float64{2, 3})

	records, err := ReadCSV(csvPath)
	if err != nil {
		t.Fatalf("reading autosaved csv: %v", err)
	}
	if len(records) != 1 || records[0].Result != 8 {
		t.Fatalf("expected one record with result 8, got %+v", records)
	}

	calc.Evaluate(ctx, "subtract", []float64{10, 4})

	records, err = ReadCSV(csvPath)
	if err != nil {
		t.Fatalf("reading autosaved csv: %v", err)
	}
	if len(records) != 2 || records[1].Result != 6 {
		t.Fatalf("expected full rewritten history, got %+v", records)
	}
}
