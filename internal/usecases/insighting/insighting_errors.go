package insighting

import "errors"

var (
	// ErrInvalidDateRange rejects ranges where start is not strictly before
	// end; equal dates are rejected too.
	ErrInvalidDateRange = errors.New("start date must be before end date")
)
