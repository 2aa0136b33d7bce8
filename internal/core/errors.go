package core

import (
	"errors"
)

var (
	// Input errors.
	ErrInvalidCellReference = errors.New("invalid cell reference")
	ErrSourceUnavailable    = errors.New("input source unavailable")
	ErrNoBallots            = errors.New("no ballots in region")

	// Ballot errors.
	ErrMalformedBallotField = errors.New("malformed ballot field")

	// Tabulation errors.
	ErrExhaustedElectorate = errors.New("all ballots exhausted")

	// Config errors.
	ErrInvalidConfig = errors.New("invalid config")
)
