package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyentranbao-ct/product-catalog/internal/coordinator"
)

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, co *coordinator.Coordinator, list *ListRenderer) error {
	p := tea.NewProgram(New(co, list),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal browser: %w", err)
	}
	return nil
}
