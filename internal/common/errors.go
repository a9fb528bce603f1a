// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// ErrSourceUnreachable indicates a transport failure talking to the menu source.
	ErrSourceUnreachable = errors.New("menu source unreachable")
	// ErrMalformedResponse indicates the menu source returned data we cannot parse.
	ErrMalformedResponse = errors.New("malformed menu source response")

	// ErrMissingConfig indicates required configuration is absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig indicates configuration was present but unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
)
