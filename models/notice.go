// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaveNotice is the confirmation shown after a successful save.
type SaveNotice string

const (
	NoticeNone    SaveNotice = ""
	NoticeCreated SaveNotice = "Student created successfully."
	NoticeUpdated SaveNotice = "Student updated successfully."
)

// ReconcileReport summarises one replace-all run over an attachment
// collection.
type ReconcileReport struct {
	// Deleted is the number of pre-existing entries removed.
	Deleted int
	// CleanupFailures is the number of pre-existing entries that could not be
	// removed. They do not fail the reconciliation.
	CleanupFailures int
	// Created is the number of desired entries written.
	Created int
}
