// Package tui renders the sync status screen: aggregate status, queue
// counts, the last successful sync and the dead-letter panel where parked
// changes are retried, discarded or copied.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SyncEngine == nil {
		return nil, ErrNoSyncEngine
	}
	return &TUI{services: services, logger: logger.WithComponent("tui")}, nil
}

// Run shows the status screen until the user quits, ctx is cancelled or the
// engine stops.
func (t *TUI) Run(ctx context.Context) error {
	updates, cancel := t.services.SyncEngine.Subscribe()
	defer cancel()

	model := newMainLoopModel(ctx, t.services.SyncEngine, t.services.AppInfo, updates)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Error().Err(err).Msg("status screen stopped")
	}
	return err
}
