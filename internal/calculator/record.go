package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is an immutable snapshot of one calculation: the operation name,
// the operands in user order, the result, and when it was evaluated.
// Records are built by the facade (or the CSV loader) and never mutated.
type Record struct {
	Operator  string
	Operands  []float64
	Result    float64
	Timestamp time.Time
}

func newRecord(op Operation, operands []float64, result float64) Record {
	// Copy the operand slice so callers cannot mutate the record afterwards.
	ops := make([]float64, len(operands))
	copy(ops, operands)

	return Record{
		Operator:  op.Name,
		Operands:  ops,
		Result:    result,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
}

// String renders the record in the log/history line format, e.g.
// "ADD 2, 3 = 5".
func (r Record) String() string {
	parts := make([]string, len(r.Operands))
	for i, v := range r.Operands {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%s %s = %s",
		strings.ToUpper(r.Operator),
		strings.Join(parts, ", "),
		strconv.FormatFloat(r.Result, 'g', -1, 64),
	)
}

// Equal reports whether two records carry the same calculation and timestamp.
func (r Record) Equal(other Record) bool {
	if r.Operator != other.Operator || r.Result != other.Result || !r.Timestamp.Equal(other.Timestamp) {
		return false
	}
	if len(r.Operands) != len(other.Operands) {
		return false
	}
	for i := range r.Operands {
		if r.Operands[i] != other.Operands[i] {
			return false
		}
	}
	return true
}
