// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DraftService is the document service side of the draft lifecycle. Every
// student exists as at most one active and at most one draft row; writes go to
// the draft and reach the active row only through ActivateDraft.
type DraftService interface {
	ListStudents(ctx context.Context, q models.StudentQuery) ([]models.Student, error)
	GetStudent(ctx context.Context, key models.EntityKey) (models.Student, error)

	// CreateDraft stores s, attachments included, as a new draft.
	CreateDraft(ctx context.Context, s models.Student) (models.Student, error)

	// UpdateDraft applies wire-named scalar field values to a draft.
	UpdateDraft(ctx context.Context, key models.EntityKey, fields map[string]any) (models.Student, error)

	// DeleteStudent discards a draft, or removes an active student together
	// with its draft.
	DeleteStudent(ctx context.Context, key models.EntityKey) error

	// EditDraft materialises a draft from the active student. An existing
	// draft is replaced unless preserveChanges is set.
	EditDraft(ctx context.Context, id string, preserveChanges bool) (models.Student, error)

	// ActivateDraft replaces the active student with the draft.
	ActivateDraft(ctx context.Context, id string) (models.Student, error)

	// PurgeStaleDrafts discards drafts untouched for longer than ttl.
	PurgeStaleDrafts(ctx context.Context, ttl time.Duration) (int, error)
}

// AttachmentService manages the attachments of one student representation.
// Writes are only allowed on drafts.
type AttachmentService interface {
	ListAttachments(ctx context.Context, owner models.EntityKey) ([]models.Attachment, error)
	GetAttachment(ctx context.Context, owner models.EntityKey, attachID string) (models.Attachment, error)
	CreateAttachment(ctx context.Context, owner models.EntityKey, a models.Attachment) (models.Attachment, error)
	DeleteAttachment(ctx context.Context, owner models.EntityKey, attachID string) error
}

// ServiceInfoService describes the running document service.
type ServiceInfoService interface {
	GetAppVersion(ctx context.Context) string
	ServiceDocument(ctx context.Context) models.ServiceDocument
}

// DraftServiceWrapper defines middleware composition for DraftService.
// Implementations wrap an existing DraftService to add behavior such as
// validation.
type DraftServiceWrapper interface {
	Wrap(DraftService) DraftService
}
