// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// DraftValidationService checks a draft against the activation rules before
// the wrapped service activates it. All other calls pass through.
type DraftValidationService struct {
	DraftService

	attachmentRepository store.AttachmentRepository
	validator            validators.Validator
}

func NewDraftValidationService(attachmentRepository store.AttachmentRepository) DraftServiceWrapper {
	return &DraftValidationService{
		attachmentRepository: attachmentRepository,
		validator:            validators.NewStudentValidator(),
	}
}

func (v *DraftValidationService) ActivateDraft(ctx context.Context, id string) (models.Student, error) {
	key := models.EntityKey{Id: id}

	draft, err := v.DraftService.GetStudent(ctx, key)
	if err != nil {
		return models.Student{}, err
	}

	draft.Attachments, err = v.attachmentRepository.ListAttachments(ctx, key)
	if err != nil {
		return models.Student{}, fmt.Errorf("list draft attachments: %w", err)
	}

	if err = v.validator.Validate(ctx, draft); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "DraftValidationService.ActivateDraft").Str("id", id).Msg("draft rejected")
		return models.Student{}, fmt.Errorf("error during draft validation before activation: %w", err)
	}

	return v.DraftService.ActivateDraft(ctx, id)
}

func (v *DraftValidationService) Wrap(inner DraftService) DraftService {
	v.DraftService = inner
	return v
}
