// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-draft-keeper/models"
)

type listModel struct {
	rows     []models.Student
	idx      int
	selected map[string]bool

	filtering bool
	filter    textinput.Model
}

func newListModel() listModel {
	filter := textinput.New()
	filter.Placeholder = "first name contains"
	filter.Width = 30

	return listModel{selected: make(map[string]bool), filter: filter}
}

// setRows replaces the rows, keeps the cursor in range and drops selections
// of rows that are gone.
func (m *listModel) setRows(rows []models.Student) {
	m.rows = rows
	if m.idx >= len(rows) {
		m.idx = len(rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	present := make(map[string]bool, len(rows))
	for _, row := range rows {
		present[row.Id] = true
	}
	for id := range m.selected {
		if !present[id] {
			delete(m.selected, id)
		}
	}
}

func (m listModel) current() (models.Student, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return models.Student{}, false
	}
	return m.rows[m.idx], true
}

func (m *listModel) toggleCurrent() {
	row, ok := m.current()
	if !ok {
		return
	}
	if m.selected[row.Id] {
		delete(m.selected, row.Id)
		return
	}
	m.selected[row.Id] = true
}

// selection returns the selected rows in list order.
func (m listModel) selection() []models.Student {
	out := make([]models.Student, 0, len(m.selected))
	for _, row := range m.rows {
		if m.selected[row.Id] {
			out = append(out, row)
		}
	}
	return out
}

func (m listModel) View() string {
	var b strings.Builder

	if m.filtering {
		b.WriteString("Filter: " + m.filter.View() + "\n\n")
	} else if v := m.filter.Value(); v != "" {
		b.WriteString(helpStyle.Render("filter: first name contains "+fmt.Sprintf("%q", v)) + "\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString("No students\n")
	}
	for i, row := range m.rows {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if m.selected[row.Id] {
			mark = "[x]"
		}
		draft := ""
		if row.HasDraftEntity {
			draft = helpStyle.Render("  (draft)")
		}
		fmt.Fprintf(&b, "%s%s %-20s %-20s %3d  %-12s %s%s\n",
			cursor, mark,
			fitText(row.Firstname, 20), fitText(row.Lastname, 20),
			row.Age, fitText(row.Course, 12), row.Gender, draft)
	}

	help := "space select  d delete  n new  enter open  r refresh  / filter  q quit"
	if m.filtering {
		help = "enter apply  esc cancel"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
