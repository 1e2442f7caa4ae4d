// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/models"
)

var (
	ErrNothingSelected      = errors.New("Select at least one student to delete.")
	ErrNotADraft            = errors.New("attachments can only be reconciled on a draft")
	ErrMissingDraftHandle   = errors.New("draft pending state without a draft handle")
	ErrUnknownLifecycle     = errors.New("unknown lifecycle state")
	ErrAttachmentIndexRange = errors.New("attachment index out of range")
)

// FailureKind classifies a [Failure].
type FailureKind int

const (
	// FailureValidation means the service rejected the data with structured
	// messages.
	FailureValidation FailureKind = iota + 1
	// FailureTransport means the request could not be completed or the
	// service answered without structured messages.
	FailureTransport
	// FailurePartialBatch means some batched deletes failed.
	FailurePartialBatch
)

// String implements fmt.Stringer.
func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureTransport:
		return "transport"
	case FailurePartialBatch:
		return "partial batch"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

const (
	unknownErrorText     = "Unknown error"
	validationHeaderText = "Please fix the highlighted errors."
	deleteFailedText     = "Delete failed."
)

// Failure is the structured outcome of a failed save or delete. Error returns
// the text shown to the user.
type Failure struct {
	Kind FailureKind

	// Messages are the structured messages of a validation failure.
	Messages []models.ServiceMessage

	// Text is the user text of transport and partial batch failures.
	Text string

	// Failed is the number of failed operations of a partial batch.
	Failed int

	// Err is the underlying error, if any.
	Err error
}

// Error implements error.
func (f *Failure) Error() string {
	switch f.Kind {
	case FailureValidation:
		lines := make([]string, 0, len(f.Messages))
		for _, m := range f.Messages {
			lines = append(lines, "- "+m.Text())
		}
		return validationHeaderText + "\n\n" + strings.Join(lines, "\n")
	case FailurePartialBatch:
		return fmt.Sprintf("%d delete operation(s) failed.", f.Failed)
	default:
		if f.Text == "" {
			return unknownErrorText
		}
		return f.Text
	}
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// classifyFailure turns an error raised during a save into a [*Failure]. An
// error envelope with detail messages is a validation failure; everything else
// is a transport failure carrying the best available text.
func classifyFailure(err error) *Failure {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}

	var svcErr *adapter.ServiceError
	if errors.As(err, &svcErr) {
		if len(svcErr.Messages) > 0 {
			return &Failure{Kind: FailureValidation, Messages: svcErr.Messages, Err: err}
		}
		text := svcErr.Message
		if text == "" {
			text = svcErr.Body
		}
		return &Failure{Kind: FailureTransport, Text: text, Err: err}
	}

	return &Failure{Kind: FailureTransport, Text: err.Error(), Err: err}
}
