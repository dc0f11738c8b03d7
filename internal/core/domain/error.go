package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")

	// ErrOrderInconsistent marks a partial header+lines write that
	// could not be rolled back. Never swallowed, always surfaced.
	ErrOrderInconsistent = errors.New("order header and lines are inconsistent")
)
