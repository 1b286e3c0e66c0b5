package solver

import (
	"errors"
	"fmt"
)

// ErrConfigInvalid is returned by New/NextGame when the oracle reports
// rows, cols, or mines out of range.
var ErrConfigInvalid = errors.New("solver: invalid game configuration")

// ErrBoardContradiction is returned when propagation or enumeration
// derives an impossible constraint, indicating the Oracle violated its
// contract (or the solver has a bug). It is fatal: callers must not retry.
var ErrBoardContradiction = errors.New("solver: board contradiction")

// contradictionf wraps ErrBoardContradiction with a concrete reason.
func contradictionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBoardContradiction}, args...)...)
}

// configInvalidf wraps ErrConfigInvalid with a concrete reason.
func configInvalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfigInvalid}, args...)...)
}
