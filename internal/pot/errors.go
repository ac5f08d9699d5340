package pot

import (
	"errors"
	"fmt"
)

// Domain errors for potential evaluation.
var (
	// ErrUnsupported indicates a capability the concrete potential type
	// does not implement.
	ErrUnsupported = errors.New("pot: capability not implemented")

	// ErrBadMode indicates an evaluation mode outside the known set.
	ErrBadMode = errors.New("pot: unknown evaluation mode")

	// ErrNoSeparation indicates a gradient request without a separation
	// vector.
	ErrNoSeparation = errors.New("pot: gradient mode requires a separation vector")
)

// UnsupportedError reports which capability was requested from which
// potential. It unwraps to ErrUnsupported.
type UnsupportedError struct {
	Potential  string
	Capability string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("pot: %s does not implement %s", e.Potential, e.Capability)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(p Potential, capability string) error {
	return &UnsupportedError{Potential: p.String(), Capability: capability}
}
