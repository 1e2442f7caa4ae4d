// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentExists      = errors.New("student already exists")
	ErrDraftExists        = errors.New("draft already exists")
	ErrActiveReadOnly     = errors.New("active entities can only be changed through a draft")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrAttachmentExists   = errors.New("attachment already exists")

	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidFieldValue = errors.New("invalid field value")
)
