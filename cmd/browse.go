package cmd

import (
	"context"
	"fmt"

	"movees-db/internal/tui"
	"movees-db/internal/usecase"
	"movees-db/internal/wire"
	"movees-db/pkg/utils"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Browse runs the terminal movie browser until the user quits or ctx is done.
func Browse(ctx context.Context, config *utils.Config, logger *zap.Logger) error {
	repo := wire.NewRepository(config, logger)
	service := usecase.NewService(repo, config, nil, logger)

	model := tui.New(ctx, service.Fetch, usecase.ViewReducer(config), config.App.Name, logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
