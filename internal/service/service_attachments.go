// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type attachmentService struct {
	studentRepository    store.StudentRepository
	attachmentRepository store.AttachmentRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewAttachmentService(studentRepository store.StudentRepository, attachmentRepository store.AttachmentRepository, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		studentRepository:    studentRepository,
		attachmentRepository: attachmentRepository,
		now:                  time.Now,
		logger:               logger,
	}
}

func (a *attachmentService) ListAttachments(ctx context.Context, owner models.EntityKey) ([]models.Attachment, error) {
	if err := a.requireOwner(ctx, owner); err != nil {
		return nil, err
	}

	attachments, err := a.attachmentRepository.ListAttachments(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return attachments, nil
}

func (a *attachmentService) GetAttachment(ctx context.Context, owner models.EntityKey, attachID string) (models.Attachment, error) {
	attachment, err := a.attachmentRepository.GetAttachment(ctx, owner, attachID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Attachment{}, ErrAttachmentNotFound
		}
		return models.Attachment{}, fmt.Errorf("get attachment: %w", err)
	}
	return attachment, nil
}

func (a *attachmentService) CreateAttachment(ctx context.Context, owner models.EntityKey, attachment models.Attachment) (models.Attachment, error) {
	log := logger.FromContext(ctx)

	if owner.IsActiveEntity {
		return models.Attachment{}, ErrActiveReadOnly
	}
	if strings.TrimSpace(attachment.AttachId) == "" {
		return models.Attachment{}, fmt.Errorf("%w: AttachId is required", ErrInvalidDataProvided)
	}
	if err := a.requireOwner(ctx, owner); err != nil {
		return models.Attachment{}, err
	}

	if err := a.attachmentRepository.CreateAttachment(ctx, owner, attachment); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return models.Attachment{}, ErrAttachmentExists
		}
		if errors.Is(err, store.ErrNotFound) {
			return models.Attachment{}, ErrStudentNotFound
		}
		log.Err(err).Str("func", "attachmentService.CreateAttachment").
			Str("id", owner.Id).
			Str("attach_id", attachment.AttachId).
			Msg("failed to create attachment")
		return models.Attachment{}, fmt.Errorf("create attachment: %w", err)
	}
	a.touch(ctx, owner)

	return a.GetAttachment(ctx, owner, attachment.AttachId)
}

func (a *attachmentService) DeleteAttachment(ctx context.Context, owner models.EntityKey, attachID string) error {
	if owner.IsActiveEntity {
		return ErrActiveReadOnly
	}

	if err := a.attachmentRepository.DeleteAttachment(ctx, owner, attachID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAttachmentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "attachmentService.DeleteAttachment").
			Str("id", owner.Id).
			Str("attach_id", attachID).
			Msg("failed to delete attachment")
		return fmt.Errorf("delete attachment: %w", err)
	}
	a.touch(ctx, owner)

	return nil
}

func (a *attachmentService) requireOwner(ctx context.Context, owner models.EntityKey) error {
	if _, err := a.studentRepository.GetStudent(ctx, owner); err != nil {
		return mapStudentError(err)
	}
	return nil
}

// touch refreshes the draft change time so the janitor keeps the draft.
func (a *attachmentService) touch(ctx context.Context, owner models.EntityKey) {
	if err := a.studentRepository.UpdateStudent(ctx, owner, nil, a.now()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "attachmentService.touch").Str("id", owner.Id).Msg("failed to stamp draft")
	}
}
