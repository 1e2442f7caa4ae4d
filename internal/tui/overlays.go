// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "fmt"

type confirmModel struct {
	count int
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Delete %d selected student(s)?\n\n", m.count)
	content += helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
