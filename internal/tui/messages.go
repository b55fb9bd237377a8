package tui

import "github.com/MKhiriev/repair-minder-sync/models"

type snapshotMsg models.SyncSnapshot

// subscriptionClosedMsg arrives once the engine has stopped.
type subscriptionClosedMsg struct{}

type actionDoneMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
