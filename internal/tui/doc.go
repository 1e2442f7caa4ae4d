// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the draft keeper client.
//
// It renders two screens with bubbletea: the student list, backed by
// [service.ClientStudentListService], and the detail editor holding the edit
// buffer of one document. Every remote call runs as a tea.Cmd; the screen is
// busy while it runs and becomes interactive again when its result message
// arrives, whether the call failed or not.
package tui
