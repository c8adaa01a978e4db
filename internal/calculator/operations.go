package calculator

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Operation is one named arithmetic operation. The roster is closed: all
// operations are registered below at init time and the registry is never
// mutated afterwards.
type Operation struct {
	Name  string
	Arity int
	apply func(operands []float64) (float64, error)
}

// Apply validates the operand count and computes the result. Operations are
// pure: same operands, same result, no side effects.
func (op Operation) Apply(operands []float64) (float64, error) {
	if len(operands) != op.Arity {
		return 0, fmt.Errorf("%w: %s expects %d operands, got %d",
			ErrInvalidOperands, op.Name, op.Arity, len(operands))
	}
	return op.apply(operands)
}

var registry = map[string]Operation{}

func register(name string, arity int, fn func([]float64) (float64, error)) {
	registry[name] = Operation{Name: name, Arity: arity, apply: fn}
}

func binary(fn func(a, b float64) (float64, error)) func([]float64) (float64, error) {
	return func(ops []float64) (float64, error) { return fn(ops[0], ops[1]) }
}

func init() {
	register("add", 2, binary(func(a, b float64) (float64, error) { return a + b, nil }))
	register("subtract", 2, binary(func(a, b float64) (float64, error) { return a - b, nil }))
	register("multiply", 2, binary(func(a, b float64) (float64, error) { return a * b, nil }))
	register("divide", 2, binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %g / %g", ErrDivisionByZero, a, b)
		}
		return a / b, nil
	}))
	register("power", 2, binary(func(a, b float64) (float64, error) { return math.Pow(a, b), nil }))
	register("root", 2, binary(root))
	register("modulus", 2, binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %g mod %g", ErrDivisionByZero, a, b)
		}
		return math.Mod(a, b), nil
	}))
	register("intdivide", 2, binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %g // %g", ErrDivisionByZero, a, b)
		}
		return math.Floor(a / b), nil
	}))
	register("percent", 2, binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %g %% of %g", ErrDivisionByZero, a, b)
		}
		return a / b * 100, nil
	}))
	register("absdiff", 2, binary(func(a, b float64) (float64, error) { return math.Abs(a - b), nil }))
	register("negate", 1, func(ops []float64) (float64, error) { return -ops[0], nil })
}

// root computes the n-th root of a. The zeroth root is undefined, and only
// odd integer roots of negative operands have a real result.
func root(a, n float64) (float64, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: zeroth root of %g", ErrInvalidOperands, a)
	}
	if a < 0 {
		if n != math.Trunc(n) || math.Mod(n, 2) == 0 {
			return 0, fmt.Errorf("%w: even root of negative number %g", ErrInvalidOperands, a)
		}
		return -math.Pow(-a, 1/n), nil
	}
	return math.Pow(a, 1/n), nil
}

// Resolve looks up an operation by its lower-cased name.
func Resolve(name string) (Operation, error) {
	op, ok := registry[strings.ToLower(name)]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownOperation, name, strings.Join(OperationNames(), ", "))
	}
	return op, nil
}

// OperationNames returns the sorted roster of registered operation names.
func OperationNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
