package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrIncompleteProfile  = errors.New("soul profile is missing required fields")
	ErrLegacyRequestShape = errors.New("legacy request shape no longer supported")

	ErrUpstreamCredentials = errors.New("upstream credentials rejected")
	ErrUpstreamQuota       = errors.New("upstream quota exceeded")
	ErrGenerationFailed    = errors.New("itinerary generation failed")

	ErrMapsCredentialMissing = errors.New("maps credential missing")

	ErrJourneyNotFound = errors.New("journey not found")
	ErrUnknownItemID   = errors.New("unknown checklist item id")
	ErrDatabaseError   = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
