package equiv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("fmodgo: enum equivalence misconfigured")

// ConfigurationError reports a declared pair whose members do not line up.
type ConfigurationError struct {
	Pair     string   // Name given to Declare
	CountA   int      // Distinct values on the first side
	CountB   int      // Distinct values on the second side
	MissingB []string // Values of the first side absent from the second
	MissingA []string // Values of the second side absent from the first
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fmodgo: enum equivalence %s is inconsistent", e.Pair)
	if e.CountA != e.CountB {
		fmt.Fprintf(&b, "; member counts differ (%d vs %d)", e.CountA, e.CountB)
	}
	if len(e.MissingB) > 0 {
		fmt.Fprintf(&b, "; no counterpart on second side for %s", strings.Join(e.MissingB, ", "))
	}
	if len(e.MissingA) > 0 {
		fmt.Fprintf(&b, "; no counterpart on first side for %s", strings.Join(e.MissingA, ", "))
	}
	return b.String()
}

// Is makes errors.Is(err, ErrConfiguration) true.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
