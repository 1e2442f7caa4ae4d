// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type draftService struct {
	studentRepository store.StudentRepository

	now    func() time.Time
	newID  func() string
	logger *logger.Logger
}

func NewDraftService(studentRepository store.StudentRepository, logger *logger.Logger) DraftService {
	return &draftService{
		studentRepository: studentRepository,
		now:               time.Now,
		newID:             utils.NewIDGenerator().DocumentID,
		logger:            logger,
	}
}

func (d *draftService) ListStudents(ctx context.Context, q models.StudentQuery) ([]models.Student, error) {
	students, err := d.studentRepository.ListStudents(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (d *draftService) GetStudent(ctx context.Context, key models.EntityKey) (models.Student, error) {
	s, err := d.studentRepository.GetStudent(ctx, key)
	if err != nil {
		return models.Student{}, mapStudentError(err)
	}
	return s, nil
}

func (d *draftService) CreateDraft(ctx context.Context, s models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	// A create without a key gets a service-assigned one.
	if strings.TrimSpace(s.Id) == "" {
		s.Id = d.newID()
	}

	active, err := d.studentRepository.GetStudent(ctx, models.EntityKey{Id: s.Id, IsActiveEntity: true})
	switch {
	case err == nil:
		log.Debug().Str("func", "draftService.CreateDraft").Str("id", active.Id).Msg("active student already exists")
		return models.Student{}, ErrStudentExists
	case !errors.Is(err, store.ErrNotFound):
		return models.Student{}, fmt.Errorf("check active student: %w", err)
	}

	changedAt := d.now().UTC()
	s.IsActiveEntity = false
	s.HasDraftEntity = false
	s.DraftLastChangedAt = &changedAt

	if err = d.studentRepository.CreateStudent(ctx, s); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return models.Student{}, ErrStudentExists
		}
		log.Err(err).Str("func", "draftService.CreateDraft").Str("id", s.Id).Msg("failed to create draft")
		return models.Student{}, fmt.Errorf("create draft: %w", err)
	}

	log.Info().Str("func", "draftService.CreateDraft").Str("id", s.Id).Int("attachments", len(s.Attachments)).Msg("draft created")
	return d.GetStudent(ctx, models.EntityKey{Id: s.Id})
}

func (d *draftService) UpdateDraft(ctx context.Context, key models.EntityKey, fields map[string]any) (models.Student, error) {
	if key.IsActiveEntity {
		return models.Student{}, ErrActiveReadOnly
	}

	values, err := toFieldValues(fields)
	if err != nil {
		return models.Student{}, err
	}

	if err = d.studentRepository.UpdateStudent(ctx, key, values, d.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "draftService.UpdateDraft").Str("id", key.Id).Msg("failed to update draft")
		return models.Student{}, fmt.Errorf("update draft: %w", err)
	}

	return d.GetStudent(ctx, key)
}

func (d *draftService) DeleteStudent(ctx context.Context, key models.EntityKey) error {
	log := logger.FromContext(ctx)

	if key.IsActiveEntity {
		if _, err := d.GetStudent(ctx, key); err != nil {
			return err
		}
		if err := d.studentRepository.DeleteStudent(ctx, key.Draft()); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("delete draft: %w", err)
		}
	}

	if err := d.studentRepository.DeleteStudent(ctx, key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrStudentNotFound
		}
		log.Err(err).Str("func", "draftService.DeleteStudent").Str("id", key.Id).Msg("failed to delete student")
		return fmt.Errorf("delete student: %w", err)
	}

	log.Info().Str("func", "draftService.DeleteStudent").
		Str("id", key.Id).
		Bool("is_active_entity", key.IsActiveEntity).
		Msg("student deleted")
	return nil
}

func (d *draftService) EditDraft(ctx context.Context, id string, preserveChanges bool) (models.Student, error) {
	active, err := d.GetStudent(ctx, models.EntityKey{Id: id, IsActiveEntity: true})
	if err != nil {
		return models.Student{}, err
	}

	if active.HasDraftEntity && preserveChanges {
		return models.Student{}, ErrDraftExists
	}

	if err = d.studentRepository.EditStudent(ctx, id, d.now()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "draftService.EditDraft").Str("id", id).Msg("failed to create draft from active student")
		return models.Student{}, fmt.Errorf("edit student: %w", err)
	}

	return d.GetStudent(ctx, models.EntityKey{Id: id})
}

func (d *draftService) ActivateDraft(ctx context.Context, id string) (models.Student, error) {
	if err := d.studentRepository.ActivateStudent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "draftService.ActivateDraft").Str("id", id).Msg("failed to activate draft")
		return models.Student{}, fmt.Errorf("activate draft: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "draftService.ActivateDraft").Str("id", id).Msg("draft activated")
	return d.GetStudent(ctx, models.EntityKey{Id: id, IsActiveEntity: true})
}

func (d *draftService) PurgeStaleDrafts(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("%w: ttl must be positive", ErrInvalidDataProvided)
	}

	purged, err := d.studentRepository.PurgeDrafts(ctx, d.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("purge drafts: %w", err)
	}

	if len(purged) > 0 {
		logger.FromContext(ctx).Info().Str("func", "draftService.PurgeStaleDrafts").
			Strs("ids", purged).
			Msg("stale drafts discarded")
	}
	return len(purged), nil
}

func mapStudentError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrStudentNotFound
	}
	return fmt.Errorf("get student: %w", err)
}

// toFieldValues converts decoded JSON properties into typed field values in
// write order. Annotations ("@odata.*") and key properties are skipped.
func toFieldValues(fields map[string]any) ([]models.FieldValue, error) {
	for name := range fields {
		if strings.HasPrefix(name, "@") || readOnlyFields[name] {
			continue
		}
		if _, ok := fieldKinds[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	values := make([]models.FieldValue, 0, len(fields))
	for _, f := range (models.Student{}).ScalarFields() {
		raw, ok := fields[f.Name]
		if !ok {
			continue
		}
		value, err := convertFieldValue(fieldKinds[f.Name], raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFieldValue, f.Name, err)
		}
		values = append(values, models.FieldValue{Name: f.Name, Value: value})
	}
	return values, nil
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
)

var fieldKinds = map[string]fieldKind{
	models.FieldFirstname: kindString,
	models.FieldLastname:  kindString,
	models.FieldAge:       kindInt,
	models.FieldCourse:    kindString,
	models.FieldGender:    kindString,
	models.FieldStatus:    kindBool,
}

var readOnlyFields = map[string]bool{
	"Id":                 true,
	"IsActiveEntity":     true,
	"HasDraftEntity":     true,
	"DraftLastChangedAt": true,
}

func convertFieldValue(kind fieldKind, raw any) (any, error) {
	switch kind {
	case kindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("expected string, got %T", raw)
	case kindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("expected boolean, got %T", raw)
	default:
		switch n := raw.(type) {
		case int:
			return n, nil
		case float64:
			if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
				return nil, fmt.Errorf("expected integer, got %v", n)
			}
			return int(n), nil
		case json.Number:
			i, err := n.Int64()
			if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
				return nil, fmt.Errorf("expected integer, got %s", n)
			}
			return int(i), nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", raw)
		}
	}
}
