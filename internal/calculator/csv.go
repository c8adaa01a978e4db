package calculator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// csvHeader is the persisted column layout. operand_2 is blank for arity-1
// operations.
var csvHeader = []string{"operator", "operand_1", "operand_2", "result", "timestamp"}

// WriteCSV overwrites path with one header row plus one row per record,
// creating parent directories as needed.
func WriteCSV(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Operator,
			formatOperand(rec.Operands, 0),
			formatOperand(rec.Operands, 1),
			strconv.FormatFloat(rec.Result, 'g', -1, 64),
			rec.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV parses a history file written by WriteCSV. Any malformed row fails
// the whole load; there is no partial result.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCsvParse, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrCsvParse)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCsvParse, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(csvHeader) {
		return Record{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}

	op, err := Resolve(row[0])
	if err != nil {
		return Record{}, err
	}

	operands := make([]float64, 0, 2)
	for _, cell := range []string{row[1], row[2]} {
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Record{}, fmt.Errorf("operand %q: %v", cell, err)
		}
		operands = append(operands, v)
	}
	if len(operands) != op.Arity {
		return Record{}, fmt.Errorf("%s expects %d operands, got %d", op.Name, op.Arity, len(operands))
	}

	result, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("result %q: %v", row[3], err)
	}

	ts, err := time.Parse(time.RFC3339, row[4])
	if err != nil {
		return Record{}, fmt.Errorf("timestamp %q: %v", row[4], err)
	}

	return Record{Operator: op.Name, Operands: operands, Result: result, Timestamp: ts}, nil
}

func formatOperand(operands []float64, i int) string {
	if i >= len(operands) {
		return ""
	}
	return strconv.FormatFloat(operands[i], 'g', -1, 64)
}
