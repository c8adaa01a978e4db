package calculator

import (
	"context"

	"go.uber.org/zap"
)

// Calculator is the facade tying together operation resolution, the bounded
// undo/redo history, and the registered observers. It is the single entry
// point used by both the REPL and the HTTP handlers. It is not safe for
// concurrent use; both surfaces drive it from one goroutine.
type Calculator struct {
	history   *History
	observers []Observer
	logger    *zap.Logger
}

// New creates a calculator with a history bounded to maxHistory records.
func New(maxHistory int, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		history: NewHistory(maxHistory),
		logger:  logger,
	}
}

// Register appends an observer. Observers are notified in registration order.
func (c *Calculator) Register(obs Observer) {
	c.observers = append(c.observers, obs)
}

// Evaluate resolves opName, applies it to operands, records the result in
// the history, and notifies the observers. On failure nothing is recorded
// and no observer fires.
func (c *Calculator) Evaluate(ctx context.Context, opName string, operands []float64) (Record, error) {
	op, err := Resolve(opName)
	if err != nil {
		return Record{}, err
	}

	result, err := op.Apply(operands)
	if err != nil {
		return Record{}, err
	}

	rec := newRecord(op, operands, result)
	c.history.Push(rec)
	c.notify(ctx, rec)
	return rec, nil
}

// notify runs every observer against rec. Observer failures are logged and
// isolated: one failing observer neither unwinds the push nor stops the rest.
func (c *Calculator) notify(ctx context.Context, rec Record) {
	for _, obs := range c.observers {
		if err := obs.Notify(ctx, rec); err != nil {
			c.logger.Warn("observer failed",
				zap.String("operation", rec.Operator),
				zap.Error(err),
			)
		}
	}
}

// Undo steps the history back one record. See History.Undo.
func (c *Calculator) Undo() (*Record, error) { return c.history.Undo() }

// Redo re-applies the last undone record. See History.Redo.
func (c *Calculator) Redo() (*Record, error) { return c.history.Redo() }

// History returns a copy of the live records, oldest first.
func (c *Calculator) History() []Record { return c.history.Snapshot() }

// Len reports the number of live records.
func (c *Calculator) Len() int { return c.history.Len() }

// Clear empties the history.
func (c *Calculator) Clear() { c.history.Clear() }

// Save writes the current history snapshot to a CSV file at path.
func (c *Calculator) Save(path string) error {
	return WriteCSV(path, c.history.Snapshot())
}

// Load replaces the in-memory history with the records from the CSV file at
// path. Records are replayed through the bounded push, so files longer than
// the capacity keep only the newest rows. Observers do not fire on load.
func (c *Calculator) Load(path string) error {
	records, err := ReadCSV(path)
	if err != nil {
		return err
	}

	c.history.Clear()
	for _, rec := range records {
		c.history.Push(rec)
	}

	c.logger.Info("history loaded",
		zap.String("path", path),
		zap.Int("records", c.history.Len()),
	)
	return nil
}
