package esgview

import (
	"context"
	"errors"
)

// Sentinel errors shared across service implementations.
var (
	// ErrNotFound marks a per-company resource that does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrMalformedResponse marks a backend payload that could not be
	// decoded. Raw payload content is never surfaced to the user.
	ErrMalformedResponse = errors.New("malformed backend response")
)

// LookupStatus is the outcome of a remote company lookup. The six values are
// disjoint; each renders distinctly.
type LookupStatus string

// Lookup outcomes.
const (
	LookupCompleted        LookupStatus = "completed"
	LookupProcessing       LookupStatus = "processing"
	LookupFailed           LookupStatus = "failed" // retryable
	LookupValidationNeeded LookupStatus = "validation_needed"
	LookupNotFound         LookupStatus = "not_found"
	LookupError            LookupStatus = "error" // generic, no retry
)

// LookupRequest asks the analysis backend for one company-year record.
type LookupRequest struct {
	Year        int    `json:"year"`
	CompanyCode string `json:"company_code"`
	// AutoFetch consents to the expensive fetch-and-analyze pipeline. It is
	// only set after the user confirms a validation_needed outcome.
	AutoFetch bool `json:"auto_fetch"`
}

// LookupResponse is the backend's answer to a LookupRequest.
type LookupResponse struct {
	Status  LookupStatus `json:"status"`
	Message string       `json:"message"`
	Data    *Company     `json:"data,omitempty"`
	ESGID   string       `json:"esg_id,omitempty"`
}

// LookupService queries the analysis backend for a single company-year
// record.
type LookupService interface {
	Lookup(ctx context.Context, req LookupRequest) (*LookupResponse, error)
}
