package mock

import (
	"context"

	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.KeywordSource = (*KeywordSource)(nil)

// KeywordSource is a mock implementation of esgview.KeywordSource.
type KeywordSource struct {
	KeywordsFn func(ctx context.Context, stockID string, year int) ([]esgview.Keyword, error)
}

func (s *KeywordSource) Keywords(ctx context.Context, stockID string, year int) ([]esgview.Keyword, error) {
	return s.KeywordsFn(ctx, stockID, year)
}
