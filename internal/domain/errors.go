package domain

import "errors"

var (
	// ErrMalformedDate indicates a date/time string did not match the
	// expected D/M/YYYY H:M:S shape or contained a non-numeric component.
	ErrMalformedDate = errors.New("malformed date string")

	// ErrUnknownRole indicates a role that has no entry in the rate table.
	// Cost computation never falls back to a default rate.
	ErrUnknownRole = errors.New("unknown role")
)
