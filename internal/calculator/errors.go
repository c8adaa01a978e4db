package calculator

import "errors"

// Sentinel errors for the calculator domain. Callers classify failures with
// errors.Is; wrapped variants carry the operation name or file detail.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidOperands  = errors.New("invalid operands")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
	ErrCsvParse         = errors.New("malformed csv")
)
