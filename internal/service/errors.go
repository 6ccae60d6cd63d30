package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Donor Errors =====
var (
	ErrMissingFields      = errors.New("required fields missing")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDonorNotFound      = errors.New("donor not found")
	ErrInvalidCredentials = errors.New("invalid password")
)

// ===== Adoption Errors =====
var (
	ErrNoLetters         = errors.New("no letters provided")
	ErrLetterNotFound    = errors.New("letter not found")
	ErrLetterUnavailable = errors.New("letter not available")
)
