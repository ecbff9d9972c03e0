package pointsample

import (
	"fmt"
)

var (
	// ErrInvalidParameter implies a count, candidate number or distance is out of range.
	ErrInvalidParameter = fmt.Errorf("invalid parameter")

	// ErrInvalidDomain implies the sampling rectangle has a non-positive side.
	ErrInvalidDomain = fmt.Errorf("invalid domain")

	// ErrResourceExhausted implies generation was stopped by a configured safety limit.
	ErrResourceExhausted = fmt.Errorf("resource exhausted")

	// ErrNoSampleAvailable implies a sample was requested before one was made.
	ErrNoSampleAvailable = fmt.Errorf("no sample available")
)
