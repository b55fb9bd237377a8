package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx     context.Context
	engine  service.SyncEngine
	appInfo service.AppInfoService
	updates <-chan models.SyncSnapshot
	now     func() time.Time

	snapshot    models.SyncSnapshot
	deadLetters []models.PendingMutation
	idx         int

	sync       syncModel
	help       help.Model
	status     string
	errMsg     string
	confirming bool
	showInfo   bool
}

func newMainLoopModel(ctx context.Context, engine service.SyncEngine, appInfo service.AppInfoService, updates <-chan models.SyncSnapshot) mainLoopModel {
	return mainLoopModel{
		ctx:         ctx,
		engine:      engine,
		appInfo:     appInfo,
		updates:     updates,
		now:         time.Now,
		snapshot:    engine.Snapshot(),
		deadLetters: engine.DeadLetters(),
		sync:        newSyncModel(),
		help:        help.New(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.updates), m.sync.spinner.Tick)
}

func waitForSnapshot(updates <-chan models.SyncSnapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snapshot = models.SyncSnapshot(msg)
		m.reloadDeadLetters()
		return m, waitForSnapshot(m.updates)
	case subscriptionClosedMsg:
		return m, tea.Quit
	case tea.FocusMsg:
		// back in the foreground
		m.engine.Resume()
		return m, nil
	case actionDoneMsg:
		m.reloadDeadLetters()
		if msg.err != nil {
			m.errMsg = humanizeActionError(msg.err)
			return m, nil
		}
		m.status = msg.status
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.errMsg != "":
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	case m.confirming:
		return m.updateConfirm(msg)
	case m.showInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.deadLetters)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.sync):
		m.engine.Trigger()
		m.status = "Sync requested"
		return m, clearStatusAfter(statusTTL)
	case key.Matches(msg, keys.retry):
		dl, ok := m.current()
		if !ok {
			m.status = "No parked changes"
			return m, nil
		}
		return m, m.cmdRetry(dl.Key)
	case key.Matches(msg, keys.discard):
		if _, ok := m.current(); !ok {
			m.status = "No parked changes"
			return m, nil
		}
		m.confirming = true
	case key.Matches(msg, keys.copy):
		dl, ok := m.current()
		if !ok || dl.LastError == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopy(fmt.Sprintf("%s %s: %s", dl.Key, dl.Kind, dl.LastError))
	case key.Matches(msg, keys.info):
		m.showInfo = true
	}

	return m, nil
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		dl, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDiscard(dl.Key)
	case key.Matches(msg, keys.no, keys.esc):
		m.confirming = false
	}
	return m, nil
}

func (m *mainLoopModel) reloadDeadLetters() {
	m.deadLetters = m.engine.DeadLetters()
	if m.idx >= len(m.deadLetters) {
		m.idx = len(m.deadLetters) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.PendingMutation, bool) {
	if m.idx < 0 || m.idx >= len(m.deadLetters) {
		return models.PendingMutation{}, false
	}
	return m.deadLetters[m.idx], true
}

func (m mainLoopModel) cmdRetry(entityKey models.EntityKey) tea.Cmd {
	return func() tea.Msg {
		if err := m.engine.Retry(m.ctx, entityKey); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Re-queued " + entityKey.String()}
	}
}

func (m mainLoopModel) cmdDiscard(entityKey models.EntityKey) tea.Cmd {
	return func() tea.Msg {
		if err := m.engine.Discard(m.ctx, entityKey); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Discarded " + entityKey.String()}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return actionDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return actionDoneMsg{status: "Copied"}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) View() string {
	if m.showInfo {
		var info models.AppBuildInfo
		if m.appInfo != nil {
			info = m.appInfo.BuildInfo()
		}
		return appStyle.Render(renderBuildInfoWindow(info))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("REPAIR MINDER SYNC"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	b.WriteString(m.sync.View(m.snapshot.Status))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Pending changes: %d\n", m.snapshot.Pending)
	fmt.Fprintf(&b, "Parked changes:  %d\n", m.snapshot.Failed)
	fmt.Fprintf(&b, "Last sync:       %s\n", formatLastSync(m.snapshot.LastSyncAt, m.now()))

	b.WriteString("\n")
	b.WriteString(m.renderDeadLetters())

	switch {
	case m.errMsg != "":
		b.WriteString("\n")
		b.WriteString(errorOverlayModel{message: m.errMsg}.View())
		b.WriteString("\n")
	case m.confirming:
		if dl, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: dl.Key.String() + " " + string(dl.Kind)}.View())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return appStyle.Render(b.String())
}

func (m mainLoopModel) renderDeadLetters() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Parked changes (%d)", len(m.deadLetters))))

	if len(m.deadLetters) == 0 {
		b.WriteString(helpStyle.Render("  none"))
		b.WriteString("\n")
		return b.String()
	}

	for i, dl := range m.deadLetters {
		line := fmt.Sprintf("%-20s %-24s %d tries  %s",
			fitText(dl.Key.String(), 20), dl.Kind, dl.Attempts, fitText(dl.LastError, 40))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
