// Package service implements the forum's use-case orchestration layer.
//
// Each operation takes a plain request struct, applies domain rules through
// the store interfaces, and returns a typed (value, error) pair. Expected
// business failures are sentinel errors from this package or from the store
// package; unexpected I/O failures are wrapped and propagated unchanged so
// callers can route them to their generic failure path.
package service

import "errors"

// Business errors returned by use-cases. Together with the store package's
// not-found and duplicate sentinels these form the complete failure taxonomy
// crossing the use-case boundary.
var (
	// ErrNotAllowed is returned when the acting student is not the author
	// (or recipient) of the aggregate being mutated.
	ErrNotAllowed = errors.New("not allowed")

	// ErrWrongCredentials is returned on authentication failure. It is
	// deliberately the same for an unknown email and a wrong password so the
	// response never leaks which one occurred.
	ErrWrongCredentials = errors.New("credentials are not valid")

	// ErrInvalidAttachmentType is returned when an uploaded file's MIME type
	// is outside the allow-list.
	ErrInvalidAttachmentType = errors.New("invalid attachment type")

	// ErrInvalidPage is returned when a paginated fetch receives a page
	// number below 1. The check runs before any store call.
	ErrInvalidPage = errors.New("page must be 1 or greater")
)
