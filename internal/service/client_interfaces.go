// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientDraftService drives one document through the create → draft →
// activate sequence of the document service.
type ClientDraftService interface {
	// Save writes buffer to the service along the path selected by state and
	// returns the state the caller must pass to the next Save. A non-nil error
	// is always a [*Failure]. The buffer is snapshotted before the first
	// remote call.
	Save(ctx context.Context, buffer models.Student, state models.LifecycleState) (models.LifecycleState, models.SaveNotice, error)

	// Load builds the edit buffer for id: the active instance with its
	// attachments and state Active when it exists, otherwise a blank buffer
	// carrying id and state NotPersisted.
	Load(ctx context.Context, id string) (models.Student, models.LifecycleState, error)

	// NewDocumentID returns a fresh caller-generated document id.
	NewDocumentID() string

	// AddAttachment appends a blank attachment row with the next sequential
	// AttachId and returns it.
	AddAttachment(buffer *models.Student) models.Attachment

	// RemoveAttachment removes the attachment row at index.
	RemoveAttachment(buffer *models.Student, index int) error
}

// ClientAttachmentReconciler replaces the attachment collection of a draft.
type ClientAttachmentReconciler interface {
	// Reconcile deletes every attachment currently under draft and creates
	// one per desired entry. Delete failures are counted in the report, not
	// returned.
	Reconcile(ctx context.Context, draft models.DraftHandle, desired []models.Attachment) (models.ReconcileReport, error)
}

// ClientBatchDeleteService deletes several documents with one batch request.
type ClientBatchDeleteService interface {
	// DeleteMany deletes the active instances of selected. A partial failure
	// is returned as a [*Failure] of kind FailurePartialBatch together with
	// the summary.
	DeleteMany(ctx context.Context, selected []models.Student) (models.DeleteSummary, error)
}

// ListRefresher reloads the list view backing.
type ListRefresher interface {
	Refresh(ctx context.Context) error
}

// ClientStudentListService is the list view backing: the live filter and the
// rows it last produced.
type ClientStudentListService interface {
	ListRefresher

	// SetQuery replaces the live filter. Rows are not reloaded until Refresh.
	SetQuery(q models.StudentQuery)

	// Query returns the current live filter.
	Query() models.StudentQuery

	// Rows returns a copy of the rows loaded by the last successful Refresh.
	Rows() []models.Student
}

// IDGenerator produces client-side identifiers.
type IDGenerator interface {
	DocumentID() string
	BatchGroupID() string
}
