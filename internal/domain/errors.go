package domain

import "errors"

var (
	// Party errors
	ErrPartyNotFound    = errors.New("party not found")
	ErrInvalidPartyType = errors.New("party type must be customer or vendor")

	// Query errors
	ErrInvalidRange    = errors.New("range start must not be after range end")
	ErrInvalidAsOfDate = errors.New("as-of date is invalid")

	// Document errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrUnparseableDate  = errors.New("date could not be parsed")
	ErrUnknownEventKind = errors.New("unknown ledger event kind")
)
