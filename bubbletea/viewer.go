package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sustainlab/esgview"
)

// Viewer implements esgview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer. The options are applied to every model it
// starts.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the dashboard and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, companies []esgview.Company) error {
	m := NewModel(companies, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
