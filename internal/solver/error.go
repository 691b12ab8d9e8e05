package solver

import "errors"

// ErrBadIndex reports a position outside board bounds. It can only
// come from a logic fault in the caller, never from a legal probe.
var ErrBadIndex = errors.New("position out of bounds")

// AssertionError reports a broken deduction invariant, such as
// re-revealing an already resolved cell.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}

// CapabilityFault wraps an unexpected minefield oracle failure. A
// detonation is not a fault; it is a regular sweep outcome.
type CapabilityFault struct {
	Err error
}

func (e CapabilityFault) Error() string {
	return "minefield capability fault: " + e.Err.Error()
}

func (e CapabilityFault) Unwrap() error {
	return e.Err
}
