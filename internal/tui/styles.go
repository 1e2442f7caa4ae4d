// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle          = lipgloss.NewStyle().Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	helpStyle         = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle       = lipgloss.NewStyle().Bold(true)
	labelStyle        = lipgloss.NewStyle().Width(12)
	invalidLabelStyle = labelStyle.Foreground(lipgloss.Color("9")).Bold(true)
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
