// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	maxNameLength = 40
	minAge        = 1
	maxAge        = 120

	// FieldAttachments targets the attachment collection of a student.
	FieldAttachments = "_Attachments"
)

// GenderCodes are the accepted values of Student.Gender.
var GenderCodes = []any{"M", "F", "D"}

// studentFieldOrder is the order in which violations are reported.
var studentFieldOrder = []string{
	models.FieldFirstname,
	models.FieldLastname,
	models.FieldAge,
	models.FieldCourse,
	models.FieldGender,
}

var ageOutOfRange = fmt.Sprintf("Age must be between %d and %d.", minAge, maxAge)

// StudentValidator checks a draft student and its attachments before
// activation.
type StudentValidator struct{}

func NewStudentValidator() Validator {
	return &StudentValidator{}
}

// Validate accepts models.Student or *models.Student. fields restricts the
// run to the named wire fields; FieldAttachments selects the attachment
// rules. A failed run returns a *ValidationError.
func (v *StudentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Student:
		return v.validateStudent(ctx, value, fields...)
	case *models.Student:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStudent(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StudentValidator) validateStudent(ctx context.Context, s models.Student, fields ...string) error {
	if len(fields) == 0 {
		fields = append(slices.Clone(studentFieldOrder), FieldAttachments)
	}
	for _, f := range fields {
		if f != FieldAttachments && !slices.Contains(studentFieldOrder, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	err := validation.ValidateStruct(&s,
		validation.Field(&s.Firstname,
			validation.Required.Error("First name is required."),
			validation.RuneLength(0, maxNameLength).Error(fmt.Sprintf("First name must not exceed %d characters.", maxNameLength)),
		),
		validation.Field(&s.Lastname,
			validation.Required.Error("Last name is required."),
			validation.RuneLength(0, maxNameLength).Error(fmt.Sprintf("Last name must not exceed %d characters.", maxNameLength)),
		),
		// Min skips zero values, so Required covers an age of 0.
		validation.Field(&s.Age,
			validation.Required.Error(ageOutOfRange),
			validation.Min(minAge).Error(ageOutOfRange),
			validation.Max(maxAge).Error(ageOutOfRange),
		),
		validation.Field(&s.Course,
			validation.Required.Error("Course is required."),
		),
		validation.Field(&s.Gender,
			validation.Required.Error("Gender is required."),
			validation.In(GenderCodes...).Error("Gender must be one of M, F or D."),
		),
	)

	var messages []models.ServiceMessage
	if err != nil {
		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			logger.FromContext(ctx).Err(err).Str("func", "StudentValidator.validateStudent").Msg("validation rule failed")
			return fmt.Errorf("validate student: %w", err)
		}
		for _, name := range studentFieldOrder {
			if fieldErr, found := fieldErrs[name]; found && slices.Contains(fields, name) {
				messages = append(messages, toServiceMessage(name, fieldErr))
			}
		}
	}

	if slices.Contains(fields, FieldAttachments) {
		attachmentMessages, attErr := v.validateAttachments(s.Attachments)
		if attErr != nil {
			return attErr
		}
		messages = append(messages, attachmentMessages...)
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func (v *StudentValidator) validateAttachments(attachments []models.Attachment) ([]models.ServiceMessage, error) {
	var messages []models.ServiceMessage
	for i := range attachments {
		a := attachments[i]
		err := validation.ValidateStruct(&a,
			validation.Field(&a.AttachId, validation.Required.Error("Attachment id is required.")),
			validation.Field(&a.Filename, validation.Required.Error("File name is required.")),
		)
		if err == nil {
			continue
		}

		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validate attachment %d: %w", i, err)
		}
		for _, name := range []string{"AttachId", "Filename"} {
			if fieldErr, found := fieldErrs[name]; found {
				target := fmt.Sprintf("%s(%d)/%s", FieldAttachments, i, name)
				messages = append(messages, toServiceMessage(target, fieldErr))
			}
		}
	}
	return messages, nil
}

func toServiceMessage(target string, err error) models.ServiceMessage {
	m := models.ServiceMessage{Message: err.Error(), Target: target}
	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		m.Code = ruleErr.Code()
	}
	return m
}
