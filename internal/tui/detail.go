// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type scalarField struct {
	label  string
	target string
}

var scalarFields = []scalarField{
	{label: "First name", target: models.FieldFirstname},
	{label: "Last name", target: models.FieldLastname},
	{label: "Age", target: models.FieldAge},
	{label: "Course", target: models.FieldCourse},
	{label: "Gender", target: models.FieldGender},
	{label: "Status", target: models.FieldStatus},
}

// inputs per attachment row: Filename, Comments
const attachmentInputs = 2

// detailModel is the editor of one document. inputs holds one input per
// scalar field followed by the inputs of every attachment row; the buffer is
// only brought up to date with them by apply.
type detailModel struct {
	buffer models.Student
	state  models.LifecycleState

	inputs []textinput.Model
	focus  int

	// messages are the service messages of the last failed save.
	messages []models.ServiceMessage
	status   string
}

func newDetailModel(buffer models.Student, state models.LifecycleState) detailModel {
	m := detailModel{buffer: buffer, state: state}
	m.rebuildInputs(0)
	return m
}

func (m *detailModel) rebuildInputs(focus int) {
	b := m.buffer
	values := []string{b.Firstname, b.Lastname, "", b.Course, b.Gender, strconv.FormatBool(b.Status)}
	if b.Age != 0 {
		values[2] = strconv.Itoa(b.Age)
	}
	for _, a := range b.Attachments {
		values = append(values, a.Filename, a.Comments)
	}

	m.inputs = make([]textinput.Model, len(values))
	for i, v := range values {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].SetValue(v)
	}
	m.inputs[2].CharLimit = 3
	m.inputs[4].CharLimit = 1

	m.focus = min(max(focus, 0), len(m.inputs)-1)
	m.inputs[m.focus].Focus()
}

// apply copies the input values into the buffer.
func (m *detailModel) apply() error {
	age := 0
	if v := strings.TrimSpace(m.inputs[2].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errInvalidAge
		}
		age = n
	}

	status := false
	if v := strings.TrimSpace(m.inputs[5].Value()); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errInvalidStatus
		}
		status = b
	}

	m.buffer.Firstname = m.inputs[0].Value()
	m.buffer.Lastname = m.inputs[1].Value()
	m.buffer.Age = age
	m.buffer.Course = m.inputs[3].Value()
	m.buffer.Gender = strings.ToUpper(strings.TrimSpace(m.inputs[4].Value()))
	m.buffer.Status = status

	for i := range m.buffer.Attachments {
		base := len(scalarFields) + i*attachmentInputs
		m.buffer.Attachments[i].Filename = m.inputs[base].Value()
		m.buffer.Attachments[i].Comments = m.inputs[base+1].Value()
	}
	return nil
}

// focusedAttachment returns the index of the attachment row holding the
// focus, or -1 when a scalar input is focused.
func (m detailModel) focusedAttachment() int {
	if m.focus < len(scalarFields) {
		return -1
	}
	return (m.focus - len(scalarFields)) / attachmentInputs
}

func (m *detailModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// invalid reports whether a message of the last save targets target.
func (m detailModel) invalid(target string) bool {
	for _, msg := range m.messages {
		if strings.TrimPrefix(msg.Target, "in/") == target {
			return true
		}
	}
	return false
}

func (m detailModel) label(text, target string) string {
	if m.invalid(target) {
		return invalidLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m detailModel) title() string {
	switch m.state.Kind {
	case models.NotPersisted:
		return "New student"
	case models.LocalDraftPending:
		return "New student (draft saved, not activated)"
	default:
		return "Student " + m.buffer.Id
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title()) + "\n")
	b.WriteString(helpStyle.Render("Id "+m.buffer.Id) + "\n\n")

	for i, f := range scalarFields {
		b.WriteString(m.label(f.label, f.target) + " " + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Attachments") + "\n")
	if len(m.buffer.Attachments) == 0 {
		b.WriteString(helpStyle.Render("  none") + "\n")
	}
	for i, a := range m.buffer.Attachments {
		base := len(scalarFields) + i*attachmentInputs
		target := fmt.Sprintf("%s(%d)/", odata.AttachmentsRelation, i)

		size := "empty"
		if len(a.Content) > 0 {
			size = fmt.Sprintf("%d bytes", len(a.Content))
		}
		fmt.Fprintf(&b, "  %s  %s\n", a.AttachId, helpStyle.Render(size))
		b.WriteString("  " + m.label("File name", target+"Filename") + " " + m.inputs[base].View() + "\n")
		b.WriteString("  " + m.label("Comments", target+"Comments") + " " + m.inputs[base+1].View() + "\n")
	}

	if len(m.messages) > 0 {
		lines := make([]string, 0, len(m.messages))
		for _, msg := range m.messages {
			lines = append(lines, "- "+msg.Text())
		}
		b.WriteString("\n" + errorStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab next  ctrl+s save  ctrl+a add attachment  ctrl+x remove attachment  ctrl+y copy id  esc back"))
	return b.String()
}
