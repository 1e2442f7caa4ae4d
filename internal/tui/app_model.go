// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

const statusTTL = 2 * time.Second

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	logger        *logger.Logger
	version       string
	currentScreen screen

	list   listModel
	detail detailModel

	// busy is set while a remote call runs; keys other than ctrl+c are
	// ignored until its result message arrives.
	busy    bool
	spinner spinner.Model

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	notice string
}

func newAppModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		services:      services,
		logger:        logger,
		currentScreen: screenList,
		list:          newListModel(),
		spinner:       s,
		busy:          true,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case listRefreshedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		m.list.setRows(m.services.StudentListService.Rows())
		return m, nil
	case documentLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail = newDetailModel(msg.buffer, msg.state)
		m.currentScreen = screenDetail
		return m, nil
	case documentSavedMsg:
		return m.handleSaved(msg)
	case documentsDeletedMsg:
		return m.handleDeleted(msg)
	case copiedMsg:
		m.detail.status = "Id copied to clipboard."
		return m, cmdClearStatus()
	case clipboardFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.detail.status = ""
		m.notice = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = titleStyle.Render("Students")
		if m.version != "" {
			body += " " + helpStyle.Render(m.version)
		}
		body += "\n\n" + m.list.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.busy {
		body += "\n\n" + m.spinner.View() + " working..."
	}
	if m.notice != "" {
		body += "\n\n" + noticeStyle.Render(m.notice)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleSaved keeps the returned lifecycle state whatever the outcome; the
// next save must start from it.
func (m appModel) handleSaved(msg documentSavedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.detail.state = msg.state

	if msg.err != nil {
		var failure *service.Failure
		if errors.As(msg.err, &failure) {
			m.detail.messages = failure.Messages
		}
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.detail.messages = nil
	m.notice = string(msg.notice)
	m.currentScreen = screenList
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.cmdRefresh(), cmdClearStatus())
}

// handleDeleted shows the rows the delete service refreshed after the batch.
func (m appModel) handleDeleted(msg documentsDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.list.setRows(m.services.StudentListService.Rows())
	m.list.selected = make(map[string]bool)

	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.notice = fmt.Sprintf("%d deleted successfully.", msg.summary.Succeeded)
	return m, cmdClearStatus()
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		selected := m.list.selection()
		if len(selected) == 0 {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDelete(selected))
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.filtering {
		return m.updateFilter(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.rows)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		m.list.toggleCurrent()
	case key.Matches(keyMsg, keys.delete):
		selected := m.list.selection()
		if len(selected) == 0 {
			m.showErrorf(service.ErrNothingSelected.Error())
			return m, nil
		}
		m.confirm = confirmModel{count: len(selected)}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.newItem):
		id := m.services.DraftService.NewDocumentID()
		m.detail = newDetailModel(models.Student{Id: id}, models.StateNotPersisted())
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.enter):
		row, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(row.Id))
	case key.Matches(keyMsg, keys.refresh):
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.filter):
		m.list.filtering = true
		return m, m.list.filter.Focus()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.list.filtering = false
			m.list.filter.Blur()
			q := m.services.StudentListService.Query()
			q.FirstnameContains = m.list.filter.Value()
			m.services.StudentListService.SetQuery(q)
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
		case key.Matches(keyMsg, keys.esc):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.filter.SetValue(m.services.StudentListService.Query().FirstnameContains)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.filter, cmd = m.list.filter.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.detail.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.detail.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if err := m.detail.apply(); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSave(m.detail.buffer, m.detail.state))
		case key.Matches(keyMsg, keys.addAttachment):
			if err := m.detail.apply(); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.services.DraftService.AddAttachment(&m.detail.buffer)
			m.detail.rebuildInputs(len(m.detail.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.removeAttachment):
			return m.removeFocusedAttachment()
		case key.Matches(keyMsg, keys.copyID):
			return m, cmdCopyToClipboard(m.detail.buffer.Id)
		}
	}

	var cmd tea.Cmd
	m.detail.inputs[m.detail.focus], cmd = m.detail.inputs[m.detail.focus].Update(msg)
	return m, cmd
}

func (m appModel) removeFocusedAttachment() (tea.Model, tea.Cmd) {
	idx := m.detail.focusedAttachment()
	if idx < 0 {
		return m, nil
	}
	if err := m.detail.apply(); err != nil {
		m.showErrorf(err.Error())
		return m, nil
	}
	if err := m.services.DraftService.RemoveAttachment(&m.detail.buffer, idx); err != nil {
		m.showErrorf(err.Error())
		return m, nil
	}
	m.detail.rebuildInputs(m.detail.focus - attachmentInputs)
	return m, nil
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.StudentListService
	return func() tea.Msg {
		return listRefreshedMsg{err: svc.Refresh(ctx)}
	}
}

func (m appModel) cmdLoad(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DraftService
	return func() tea.Msg {
		buffer, state, err := svc.Load(ctx, id)
		return documentLoadedMsg{buffer: buffer, state: state, err: err}
	}
}

// cmdSave hands a copy of buffer to the draft service; later edits in the
// detail screen cannot reach the running save.
func (m appModel) cmdSave(buffer models.Student, state models.LifecycleState) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DraftService
	snapshot := buffer.Clone()
	return func() tea.Msg {
		next, notice, err := svc.Save(ctx, snapshot, state)
		return documentSavedMsg{state: next, notice: notice, err: err}
	}
}

func (m appModel) cmdDelete(selected []models.Student) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BatchDeleteService
	return func() tea.Msg {
		summary, err := svc.DeleteMany(ctx, selected)
		return documentsDeletedMsg{summary: summary, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clipboardFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
