package calculator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Observer reacts to a newly recorded calculation. Observers run
// synchronously, in registration order, immediately after a successful push.
// An observer error never rolls back the push and never prevents the
// remaining observers from running.
type Observer interface {
	Notify(ctx context.Context, rec Record) error
}

// LoggingObserver appends a one-line summary of every calculation to an
// append-only log file.
type LoggingObserver struct {
	logger *zap.Logger
}

// NewLoggingObserver opens (creating parent directories as needed) an
// append-only zap logger targeting logPath.
func NewLoggingObserver(logPath string) (*LoggingObserver, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(f),
		zap.InfoLevel,
	)

	return &LoggingObserver{logger: zap.New(core)}, nil
}

// Notify writes the record's summary line, e.g. "ADD 2, 3 = 5".
func (o *LoggingObserver) Notify(_ context.Context, rec Record) error {
	o.logger.Info(rec.String())
	return o.logger.Sync()
}

// AutoSaveObserver rewrites a CSV file with the full history snapshot after
// every calculation.
type AutoSaveObserver struct {
	path     string
	snapshot func() []Record
}

// NewAutoSaveObserver builds an observer that persists the records returned
// by snapshot (typically Calculator.History) to csvPath.
func NewAutoSaveObserver(csvPath string, snapshot func() []Record) *AutoSaveObserver {
	return &AutoSaveObserver{path: csvPath, snapshot: snapshot}
}

// Notify overwrites the CSV file with the current snapshot.
func (o *AutoSaveObserver) Notify(context.Context, Record) error {
	return WriteCSV(o.path, o.snapshot())
}
