package mock

import (
	"context"

	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of esgview.LookupService.
type LookupService struct {
	LookupFn func(ctx context.Context, req esgview.LookupRequest) (*esgview.LookupResponse, error)
}

func (s *LookupService) Lookup(ctx context.Context, req esgview.LookupRequest) (*esgview.LookupResponse, error) {
	return s.LookupFn(ctx, req)
}
