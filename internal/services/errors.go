// Package services defines the business logic for companies, invoices, and
// industries. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer. Anything not covered by a sentinel here (constraint violations,
// connectivity failures, malformed values reaching the store) propagates as
// the raw storage error.
package services

import "errors"

var (
	// ErrCompanyNotFound indicates that no company exists for the requested
	// code, or that a mutating statement matched zero rows.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvoiceNotFound indicates that no invoice exists for the requested id.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrIndustryNotFound indicates that no industry exists for the requested
	// code.
	ErrIndustryNotFound = errors.New("industry not found")

	// ErrEmptyCode indicates that slug derivation produced an empty code
	// (the input contained no letters or digits). A row with code "" would be
	// unreachable through the code-keyed routes, so creation is rejected.
	ErrEmptyCode = errors.New("derived code is empty")
)
