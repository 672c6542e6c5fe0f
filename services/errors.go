// Package services: services/errors.go
package services

import "errors"

// Domain errors surfaced to the HTTP layer. Anything else coming out of a
// service is a storage failure and maps to a 500.
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailTaken     = errors.New("email already exists")
	ErrInvalidStatus  = errors.New("invalid payment status")
	ErrInvalidPhoto   = errors.New("file must be an image")
	ErrPhotoTooLarge  = errors.New("file too large")
)
