// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StudentRepository persists both representations of every student. A row is
// addressed by its [models.EntityKey].
type StudentRepository interface {
	// ListStudents returns the active students matching q.
	ListStudents(ctx context.Context, q models.StudentQuery) ([]models.Student, error)

	// GetStudent returns one representation without attachments.
	// HasDraftEntity is set on active rows that have a draft next to them.
	GetStudent(ctx context.Context, key models.EntityKey) (models.Student, error)

	// CreateStudent inserts s and its attachments under the key formed by
	// s.Id and s.IsActiveEntity.
	CreateStudent(ctx context.Context, s models.Student) error

	// UpdateStudent writes fields and stamps the draft change time.
	UpdateStudent(ctx context.Context, key models.EntityKey, fields []models.FieldValue, changedAt time.Time) error

	// DeleteStudent removes one representation and its attachments.
	DeleteStudent(ctx context.Context, key models.EntityKey) error

	// EditStudent replaces the draft of id with a copy of the active
	// representation, attachments included.
	EditStudent(ctx context.Context, id string, changedAt time.Time) error

	// ActivateStudent replaces the active representation of id with the
	// draft and removes the draft.
	ActivateStudent(ctx context.Context, id string) error

	// PurgeDrafts removes drafts last changed before cutoff and returns their
	// ids.
	PurgeDrafts(ctx context.Context, cutoff time.Time) ([]string, error)
}

// AttachmentRepository persists the attachments of one representation.
type AttachmentRepository interface {
	ListAttachments(ctx context.Context, owner models.EntityKey) ([]models.Attachment, error)
	GetAttachment(ctx context.Context, owner models.EntityKey, attachID string) (models.Attachment, error)
	CreateAttachment(ctx context.Context, owner models.EntityKey, a models.Attachment) error
	DeleteAttachment(ctx context.Context, owner models.EntityKey, attachID string) error
}
