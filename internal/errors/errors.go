// Package errors provides sentinel errors for domain-specific failures.
package errors

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTradeNotFound   = errors.New("trade not found")
	ErrNoActiveSession = errors.New("no active session selected")
	ErrInputValidation = errors.New("input validation failed")
)
