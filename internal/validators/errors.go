// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError lists every violated rule of one validation run, in field
// order. It is rendered by the handler as an OData error envelope.
type ValidationError struct {
	Messages []models.ServiceMessage
}

func (e *ValidationError) Error() string {
	texts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		if m.Target != "" {
			texts = append(texts, m.Target+": "+m.Text())
			continue
		}
		texts = append(texts, m.Text())
	}
	return "validation failed: " + strings.Join(texts, "; ")
}
