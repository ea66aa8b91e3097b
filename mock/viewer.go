package mock

import (
	"context"

	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of esgview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, companies []esgview.Company) error
}

func (v *Viewer) View(ctx context.Context, companies []esgview.Company) error {
	return v.ViewFn(ctx, companies)
}
