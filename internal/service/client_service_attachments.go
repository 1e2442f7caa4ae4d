// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type clientAttachmentReconciler struct {
	gateway adapter.DocumentGateway
	logger  *logger.Logger
}

func NewClientAttachmentReconciler(gateway adapter.DocumentGateway, logger *logger.Logger) ClientAttachmentReconciler {
	return &clientAttachmentReconciler{gateway: gateway, logger: logger}
}

func (r *clientAttachmentReconciler) Reconcile(ctx context.Context, draft models.DraftHandle, desired []models.Attachment) (models.ReconcileReport, error) {
	var report models.ReconcileReport

	if draft.IsZero() || draft.Key.IsActiveEntity {
		return report, fmt.Errorf("reconcile %q: %w", draft.Path, ErrNotADraft)
	}

	existing, err := r.gateway.ReadChildCollection(ctx, draft, odata.AttachmentsRelation)
	if err != nil {
		return report, fmt.Errorf("read attachments: %w", err)
	}

	for _, entry := range existing {
		if err = r.gateway.DeleteEntity(ctx, entry.Path); err != nil {
			r.logger.Warn().
				Str("func", "clientAttachmentReconciler.Reconcile").
				Str("path", entry.Path).
				Err(err).
				Msg("delete attachment failed")
			report.CleanupFailures++
			continue
		}
		report.Deleted++
	}

	for _, att := range desired {
		child := models.Attachment{
			AttachId: att.AttachId,
			Comments: att.Comments,
			Filename: att.Filename,
			Mimetype: att.Mimetype,
		}
		if len(att.Content) > 0 {
			child.Content = append([]byte(nil), att.Content...)
		}
		if err = r.gateway.CreateChild(ctx, draft, odata.AttachmentsRelation, child); err != nil {
			return report, fmt.Errorf("create attachment %s: %w", att.AttachId, err)
		}
		report.Created++
	}

	return report, nil
}
