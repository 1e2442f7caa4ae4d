// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// studentRepository is the SQL implementation of [StudentRepository]. Queries
// are built with squirrel using the placeholder format of the connection.
type studentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (models.Student, error) {
	var (
		s         models.Student
		changedAt sql.NullTime
		hasDraft  bool
	)

	err := row.Scan(
		&s.Id,
		&s.IsActiveEntity,
		&s.Firstname,
		&s.Lastname,
		&s.Age,
		&s.Course,
		&s.Gender,
		&s.Status,
		&changedAt,
		&hasDraft,
	)
	if err != nil {
		return models.Student{}, err
	}

	if changedAt.Valid {
		t := changedAt.Time.UTC()
		s.DraftLastChangedAt = &t
	}
	s.HasDraftEntity = s.IsActiveEntity && hasDraft

	return s, nil
}

func (r *studentRepository) ListStudents(ctx context.Context, q models.StudentQuery) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStudentsQuery(r.db.builder, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "studentRepository.ListStudents").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, scanErr := scanStudent(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "studentRepository.ListStudents").Msg("failed to scan student row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		students = append(students, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return students, nil
}

func (r *studentRepository) GetStudent(ctx context.Context, key models.EntityKey) (models.Student, error) {
	return r.getStudent(ctx, r.db, key)
}

func (r *studentRepository) getStudent(ctx context.Context, q querier, key models.EntityKey) (models.Student, error) {
	query, args, err := buildSelectStudentQuery(r.db.builder, key)
	if err != nil {
		return models.Student{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := scanStudent(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "studentRepository.getStudent").
			Str("id", key.Id).
			Bool("is_active_entity", key.IsActiveEntity).
			Msg("failed to scan student row")
		return models.Student{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *studentRepository) CreateStudent(ctx context.Context, s models.Student) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		return r.insertStudent(ctx, tx, s)
	})
}

func (r *studentRepository) insertStudent(ctx context.Context, q querier, s models.Student) error {
	query, args, err := buildInsertStudentQuery(r.db.builder, s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		if r.db.isDuplicate(err) {
			return ErrAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "studentRepository.insertStudent").
			Str("id", s.Id).
			Msg("failed to insert student")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	owner := models.EntityKey{Id: s.Id, IsActiveEntity: s.IsActiveEntity}
	for _, a := range s.Attachments {
		if err = insertAttachment(ctx, r.db, q, owner, a); err != nil {
			return err
		}
	}

	return nil
}

func (r *studentRepository) UpdateStudent(ctx context.Context, key models.EntityKey, fields []models.FieldValue, changedAt time.Time) error {
	query, args, err := buildUpdateStudentQuery(r.db.builder, key, fields, changedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "studentRepository.UpdateStudent").
			Str("id", key.Id).
			Msg("failed to update student")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

func (r *studentRepository) DeleteStudent(ctx context.Context, key models.EntityKey) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		return r.deleteStudent(ctx, tx, key)
	})
}

// deleteStudent removes attachments first so that the delete does not depend
// on foreign key enforcement being enabled.
func (r *studentRepository) deleteStudent(ctx context.Context, q querier, key models.EntityKey) error {
	query, args, err := buildDeleteAttachmentsQuery(r.db.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteStudentQuery(r.db.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "studentRepository.deleteStudent").
			Str("id", key.Id).
			Msg("failed to delete student")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

func (r *studentRepository) EditStudent(ctx context.Context, id string, changedAt time.Time) error {
	active := models.EntityKey{Id: id, IsActiveEntity: true}
	draft := active.Draft()

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.deleteStudent(ctx, tx, draft); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		stamp := changedAt.UTC()
		return r.copyStudent(ctx, tx, active, draft, &stamp)
	})
}

func (r *studentRepository) ActivateStudent(ctx context.Context, id string) error {
	active := models.EntityKey{Id: id, IsActiveEntity: true}
	draft := active.Draft()

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.deleteStudent(ctx, tx, active); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := r.copyStudent(ctx, tx, draft, active, nil); err != nil {
			return err
		}
		return r.deleteStudent(ctx, tx, draft)
	})
}

// copyStudent inserts a copy of from, attachments included, under to.
func (r *studentRepository) copyStudent(ctx context.Context, q querier, from, to models.EntityKey, changedAt *time.Time) error {
	src, err := r.getStudent(ctx, q, from)
	if err != nil {
		return err
	}

	src.Attachments, err = listAttachments(ctx, r.db, q, from)
	if err != nil {
		return err
	}

	src.IsActiveEntity = to.IsActiveEntity
	src.DraftLastChangedAt = changedAt

	return r.insertStudent(ctx, q, src)
}

func (r *studentRepository) PurgeDrafts(ctx context.Context, cutoff time.Time) ([]string, error) {
	var purged []string

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildSelectStaleDraftsQuery(r.db.builder, cutoff)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		ids, err := scanIDs(ctx, tx, query, args)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err = r.deleteStudent(ctx, tx, models.EntityKey{Id: id}); err != nil {
				return err
			}
		}
		purged = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	return purged, nil
}

func scanIDs(ctx context.Context, q querier, query string, args []any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
