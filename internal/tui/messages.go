// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-draft-keeper/models"

type listRefreshedMsg struct {
	err error
}

type documentLoadedMsg struct {
	buffer models.Student
	state  models.LifecycleState
	err    error
}

type documentSavedMsg struct {
	state  models.LifecycleState
	notice models.SaveNotice
	err    error
}

type documentsDeletedMsg struct {
	summary models.DeleteSummary
	err     error
}

type copiedMsg struct{}

type clipboardFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
