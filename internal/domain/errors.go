package domain

import "errors"

var (
	// ErrDuplicateNumber is surfaced when an insert hits the unique
	// constraint on a business identifier. Callers retry the whole
	// generate-then-insert sequence.
	ErrDuplicateNumber = errors.New("duplicate business number")

	// ErrPaymentConfirmed guards confirmed payments, which are immutable.
	ErrPaymentConfirmed = errors.New("payment is confirmed and cannot be modified")

	ErrInvalidTransition = errors.New("invalid status transition")
)
