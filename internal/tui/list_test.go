// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-draft-keeper/models"
)

func TestListModel_SetRows(t *testing.T) {
	m := newListModel()
	m.setRows(testRows)
	m.idx = 1
	m.toggleCurrent()
	assert.Len(t, m.selection(), 1)

	m.setRows(testRows[:1])

	assert.Equal(t, 0, m.idx)
	assert.Empty(t, m.selection(), "selection of a removed row is dropped")

	m.setRows(nil)
	_, ok := m.current()
	assert.False(t, ok)
}

func TestListModel_ToggleTwiceDeselects(t *testing.T) {
	m := newListModel()
	m.setRows(testRows)

	m.toggleCurrent()
	m.toggleCurrent()

	assert.Empty(t, m.selection())
}

func TestListModel_SelectionKeepsListOrder(t *testing.T) {
	m := newListModel()
	m.setRows(testRows)
	m.selected["s2"] = true
	m.selected["s1"] = true

	got := m.selection()

	assert.Equal(t, []models.Student{testRows[0], testRows[1]}, got)
}

func TestListModel_View(t *testing.T) {
	m := newListModel()
	assert.Contains(t, m.View(), "No students")

	rows := []models.Student{{Id: "s1", Firstname: "Anna", HasDraftEntity: true}}
	m.setRows(rows)
	m.toggleCurrent()

	out := m.View()
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "(draft)")
}

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "fits", in: "Anna", max: 10, want: "Anna"},
		{name: "truncated", in: "Bartholomew", max: 8, want: "Barth..."},
		{name: "tiny", in: "Bartholomew", max: 2, want: "Ba"},
		{name: "no limit", in: "Anna", max: 0, want: "Anna"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}
