// Package common defines shared sentinel errors used across the Crack client.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input shape errors (empty username, malformed patch, etc.).
	ErrValidation = errors.New("validation error")

	// Session errors.
	ErrNoActiveSession = errors.New("no active session")

	// Ledger errors. ErrInsufficientFunds is an expected, recoverable
	// outcome of a debit, not a defect.
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Catalog / directory lookup errors.
	ErrUnknownGift      = errors.New("unknown gift")
	ErrUnknownRecipient = errors.New("unknown recipient")

	// ErrStorageFailure marks errors coming from the persistence medium.
	// Callers should re-read persisted state rather than trust in-memory
	// values after observing it.
	ErrStorageFailure = errors.New("storage failure")
)
