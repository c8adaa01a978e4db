// Package repl implements the interactive calculator session: a line-oriented
// loop that dispatches operation keywords and history commands against the
// calculator facade.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go-calc-history/internal/calculator"
)

const helpText = `add, subtract, multiply, divide, power, root, modulus,
intdivide, percent, absdiff <a> <b>   - two-operand calculations
negate <a>                            - one-operand calculation
history      - display past calculations
clear        - clear history
undo         - undo last calculation
redo         - redo last undone calculation
save <file>  - save history to CSV
load <file>  - load history from CSV (replaces current)
help         - show this help
exit / quit  - leave the program`

// REPL drives one interactive calculator session.
type REPL struct {
	calc     *calculator.Calculator
	out      io.Writer
	builtins map[string]func(args []string) bool
}

// New builds a session around calc, writing all output to out.
func New(calc *calculator.Calculator, out io.Writer) *REPL {
	r := &REPL{calc: calc, out: out}
	r.builtins = map[string]func([]string) bool{
		"undo":    r.cmdUndo,
		"redo":    r.cmdRedo,
		"history": r.cmdHistory,
		"clear":   r.cmdClear,
		"save":    r.cmdSave,
		"load":    r.cmdLoad,
		"help":    r.cmdHelp,
		"exit":    r.cmdExit,
		"quit":    r.cmdExit,
	}
	return r
}

// Run reads commands from in until exit/quit or EOF.
func (r *REPL) Run(in io.Reader) {
	fmt.Fprintln(r.out, bannerStyle.Render("Welcome to the Calculator CLI"))
	fmt.Fprintln(r.out, "Type 'help' to list commands - Ctrl-D or 'exit' to quit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, promptStyle.Render("calc> "))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return
		}
		if r.HandleLine(strings.TrimSpace(scanner.Text())) {
			return
		}
	}
}

// HandleLine dispatches one input line. It returns true when the session
// should end.
func (r *REPL) HandleLine(line string) bool {
	if line == "" {
		return false
	}

	parts := strings.Fields(line)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	if builtin, ok := r.builtins[cmd]; ok {
		return builtin(args)
	}

	r.evaluate(cmd, args)
	return false
}

func (r *REPL) evaluate(opName string, args []string) {
	operands := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			r.errorf("operand %q is not a number", arg)
			return
		}
		operands = append(operands, v)
	}

	rec, err := r.calc.Evaluate(context.Background(), opName, operands)
	if err != nil {
		r.errorf("%s", friendlyMessage(err))
		return
	}

	fmt.Fprintln(r.out, resultStyle.Render("= "+strconv.FormatFloat(rec.Result, 'g', -1, 64)))
}

func (r *REPL) cmdUndo([]string) bool {
	rec, err := r.calc.Undo()
	switch {
	case err != nil:
		fmt.Fprintln(r.out, "Nothing to undo.")
	case rec == nil:
		fmt.Fprintln(r.out, noticeStyle.Render("Undid last calculation. History is now empty."))
	default:
		fmt.Fprintln(r.out, noticeStyle.Render("Undid last calculation. Current: "+formatRecord(*rec)))
	}
	return false
}

func (r *REPL) cmdRedo([]string) bool {
	rec, err := r.calc.Redo()
	if err != nil {
		fmt.Fprintln(r.out, "Nothing to redo.")
		return false
	}
	fmt.Fprintln(r.out, noticeStyle.Render("Redid: "+formatRecord(*rec)))
	return false
}

func (r *REPL) cmdHistory([]string) bool {
	records := r.calc.History()
	if len(records) == 0 {
		fmt.Fprintln(r.out, "History is empty.")
		return false
	}
	for i, rec := range records {
		fmt.Fprintf(r.out, "%3d: %s\n", i+1, formatRecord(rec))
	}
	return false
}

func (r *REPL) cmdClear([]string) bool {
	r.calc.Clear()
	fmt.Fprintln(r.out, "History cleared.")
	return false
}

func (r *REPL) cmdSave(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: save <file>")
		return false
	}
	if err := r.calc.Save(args[0]); err != nil {
		r.errorf("%s", friendlyMessage(err))
		return false
	}
	fmt.Fprintf(r.out, "History saved to %s\n", args[0])
	return false
}

func (r *REPL) cmdLoad(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: load <file>")
		return false
	}
	if err := r.calc.Load(args[0]); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(r.out, "File not found.")
			return false
		}
		r.errorf("%s", friendlyMessage(err))
		return false
	}
	fmt.Fprintf(r.out, "History loaded from %s\n", args[0])
	return false
}

func (r *REPL) cmdHelp([]string) bool {
	fmt.Fprintln(r.out, helpText)
	return false
}

func (r *REPL) cmdExit([]string) bool {
	fmt.Fprintln(r.out, "Goodbye!")
	return true
}

func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintln(r.out, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

func formatRecord(rec calculator.Record) string {
	return rec.Timestamp.Format(time.RFC3339) + " | " + rec.String()
}

// friendlyMessage turns domain errors into one-line user-facing messages.
func friendlyMessage(err error) string {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "dividing by zero is not allowed"
	case errors.Is(err, calculator.ErrUnknownOperation):
		return err.Error()
	case errors.Is(err, calculator.ErrInvalidOperands):
		return err.Error()
	case errors.Is(err, calculator.ErrCsvParse):
		return "could not parse history file: " + err.Error()
	default:
		return err.Error()
	}
}
