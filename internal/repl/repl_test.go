package repl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"go-calc-history/internal/calculator"

	"go.uber.org/zap"
)

func newTestREPL() (*REPL, *bytes.Buffer) {
	out := &bytes.Buffer{}
	calc := calculator.New(10, zap.NewNop())
	return New(calc, out), out
}

func TestBasicCalculationsAndHistory(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("add 2 3")
	r.HandleLine("power 2 5")
	r.HandleLine("history")

	got := out.String()
	if !strings.Contains(got, "= 5") || !strings.Contains(got, "= 32") {
		t.Fatalf("expected results in output, got %q", got)
	}
	if !strings.Contains(got, "ADD") || !strings.Contains(got, "POWER") {
		t.Fatalf("expected history listing, got %q", got)
	}
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("ADD 2 3")

	if !strings.Contains(out.String(), "= 5") {
		t.Fatalf("expected result for upper-cased command, got %q", out.String())
	}
}

func TestArityOneOperation(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("negate 4")

	if !strings.Contains(out.String(), "= -4") {
		t.Fatalf("expected negation result, got %q", out.String())
	}
}

func TestFriendlyDivisionByZeroMessage(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("divide 5 0")

	if !strings.Contains(strings.ToLower(out.String()), "dividing by zero is not allowed") {
		t.Fatalf("expected friendly division error, got %q", out.String())
	}
}

func TestNonNumericOperand(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("add two 3")

	if !strings.Contains(out.String(), "is not a number") {
		t.Fatalf("expected operand error, got %q", out.String())
	}
}

func TestSingleWordCommandsProduceOutput(t *testing.T) {
	for _, cmd := range []string{"undo", "redo", "clear", "help", "history"} {
		t.Run(cmd, func(t *testing.T) {
			r, out := newTestREPL()
			r.HandleLine(cmd)
			if strings.TrimSpace(out.String()) == "" {
				t.Fatalf("expected some output for %q", cmd)
			}
		})
	}
}

func TestEmptyLineIsIgnored(t *testing.T) {
	r, out := newTestREPL()

	if quit := r.HandleLine(""); quit {
		t.Fatal("empty line must not end the session")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output for empty line, got %q", out.String())
	}
}

func TestUndoRedoFlow(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("add 2 3")
	r.HandleLine("power 2 5")
	out.Reset()

	r.HandleLine("undo")
	if !strings.Contains(out.String(), "ADD 2, 3 = 5") {
		t.Fatalf("expected undo to report the now-current add record, got %q", out.String())
	}

	out.Reset()
	r.HandleLine("undo")
	if !strings.Contains(out.String(), "History is now empty.") {
		t.Fatalf("expected empty-state message, got %q", out.String())
	}

	out.Reset()
	r.HandleLine("undo")
	if !strings.Contains(out.String(), "Nothing to undo.") {
		t.Fatalf("expected nothing-to-undo message, got %q", out.String())
	}

	out.Reset()
	r.HandleLine("redo")
	if !strings.Contains(out.String(), "Redid: ") || !strings.Contains(out.String(), "ADD 2, 3 = 5") {
		t.Fatalf("expected redo message, got %q", out.String())
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")

	r1, out1 := newTestREPL()
	r1.HandleLine("add 2 3")
	r1.HandleLine("multiply 4 2")
	r1.HandleLine("save " + path)
	if !strings.Contains(out1.String(), "History saved to") {
		t.Fatalf("expected save confirmation, got %q", out1.String())
	}

	r2, out2 := newTestREPL()
	r2.HandleLine("load " + path)
	if !strings.Contains(out2.String(), "History loaded from") {
		t.Fatalf("expected load confirmation, got %q", out2.String())
	}

	out2.Reset()
	r2.HandleLine("history")
	got := out2.String()
	if !strings.Contains(got, "ADD 2, 3 = 5") || !strings.Contains(got, "MULTIPLY 4, 2 = 8") {
		t.Fatalf("expected loaded history listing, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("load " + filepath.Join(t.TempDir(), "nope.csv"))

	if !strings.Contains(out.String(), "File not found.") {
		t.Fatalf("expected file-not-found message, got %q", out.String())
	}
}

func TestSaveLoadUsage(t *testing.T) {
	r, out := newTestREPL()

	r.HandleLine("save")
	r.HandleLine("load")

	got := out.String()
	if !strings.Contains(got, "Usage: save <file>") || !strings.Contains(got, "Usage: load <file>") {
		t.Fatalf("expected usage messages, got %q", got)
	}
}

func TestExitEndsSession(t *testing.T) {
	for _, cmd := range []string{"exit", "quit"} {
		t.Run(cmd, func(t *testing.T) {
			r, out := newTestREPL()
			if quit := r.HandleLine(cmd); !quit {
				t.Fatalf("expected %q to end the session", cmd)
			}
			if !strings.Contains(out.String(), "Goodbye!") {
				t.Fatalf("expected goodbye message, got %q", out.String())
			}
		})
	}
}

func TestRunLoopUntilEOF(t *testing.T) {
	out := &bytes.Buffer{}
	calc := calculator.New(10, zap.NewNop())
	r := New(calc, out)

	r.Run(strings.NewReader("add 2 3\nhistory\n"))

	got := out.String()
	if !strings.Contains(got, "calc>") {
		t.Fatalf("expected prompt in output, got %q", got)
	}
	if !strings.Contains(got, "= 5") {
		t.Fatalf("expected evaluation during Run, got %q", got)
	}
}
