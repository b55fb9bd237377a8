package tui

import (
	"fmt"

	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

// syncModel renders the aggregate status line.
type syncModel struct {
	spinner  spinner.Model
	progress progress.Model
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
	}
}

func (m syncModel) View(status models.SyncStatus) string {
	switch status.State {
	case models.SyncSyncing:
		return fmt.Sprintf("%s Syncing %s", m.spinner.View(), m.progress.ViewAs(status.Progress))
	case models.SyncCompleted:
		return okStyle.Render("✓ All changes synced")
	case models.SyncError:
		return errorStyle.Render("! " + status.Message)
	case models.SyncOffline:
		return offlineStyle.Render("Offline: changes will sync when the connection returns")
	default:
		return "Idle"
	}
}
