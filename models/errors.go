package models

import "errors"

// Sentinel errors shared by repositories, services and controllers.
// Repositories and services wrap these with fmt.Errorf("...: %w", ...)
// so controllers can map them to HTTP status codes with errors.Is.
var (
	// ErrNotFound means the referenced list, line item, catalog item or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the actor is not the owner of the resource being mutated or read.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument means the input failed validation before any store call.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable means the underlying persistence call failed.
	ErrStoreUnavailable = errors.New("store unavailable")
)
