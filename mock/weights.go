package mock

import (
	"context"

	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.WeightSource = (*WeightSource)(nil)

// WeightSource is a mock implementation of esgview.WeightSource.
type WeightSource struct {
	WeightTableFn func(ctx context.Context) (*esgview.WeightTable, error)
}

func (s *WeightSource) WeightTable(ctx context.Context) (*esgview.WeightTable, error) {
	return s.WeightTableFn(ctx)
}
