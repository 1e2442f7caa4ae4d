// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type attachmentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	logger.Debug().Msg("creating attachment repository")
	return &attachmentRepository{
		db:     db,
		logger: logger,
	}
}

func scanAttachment(row rowScanner) (models.Attachment, error) {
	var a models.Attachment
	if err := row.Scan(&a.AttachId, &a.Comments, &a.Filename, &a.Mimetype, &a.Content); err != nil {
		return models.Attachment{}, err
	}
	if len(a.Content) == 0 {
		a.Content = nil
	}
	return a, nil
}

func (r *attachmentRepository) ListAttachments(ctx context.Context, owner models.EntityKey) ([]models.Attachment, error) {
	return listAttachments(ctx, r.db, r.db, owner)
}

func listAttachments(ctx context.Context, db *DB, q querier, owner models.EntityKey) ([]models.Attachment, error) {
	query, args, err := buildSelectAttachmentsQuery(db.builder, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listAttachments").
			Str("id", owner.Id).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attachments := make([]models.Attachment, 0)
	for rows.Next() {
		a, scanErr := scanAttachment(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		attachments = append(attachments, a)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return attachments, nil
}

func (r *attachmentRepository) GetAttachment(ctx context.Context, owner models.EntityKey, attachID string) (models.Attachment, error) {
	query, args, err := buildSelectAttachmentQuery(r.db.builder, owner, attachID)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	a, err := scanAttachment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Attachment{}, ErrNotFound
	}
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return a, nil
}

func (r *attachmentRepository) CreateAttachment(ctx context.Context, owner models.EntityKey, a models.Attachment) error {
	return insertAttachment(ctx, r.db, r.db, owner, a)
}

func insertAttachment(ctx context.Context, db *DB, q querier, owner models.EntityKey, a models.Attachment) error {
	query, args, err := buildInsertAttachmentQuery(db.builder, owner, a)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		if db.isDuplicate(err) {
			return ErrAlreadyExists
		}
		if db.isMissingParent(err) {
			return ErrNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "insertAttachment").
			Str("id", owner.Id).
			Str("attach_id", a.AttachId).
			Msg("failed to insert attachment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *attachmentRepository) DeleteAttachment(ctx context.Context, owner models.EntityKey, attachID string) error {
	query, args, err := buildDeleteAttachmentQuery(r.db.builder, owner, attachID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}
