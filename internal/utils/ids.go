// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// BatchGroupPrefix prefixes every batch delete group id.
const BatchGroupPrefix = "$delete-"

// IDGenerator produces identifiers for documents, batch groups and traces.
type IDGenerator struct{}

// NewIDGenerator returns a ready-to-use [IDGenerator].
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// DocumentID returns a caller-generated document identifier: 32 uppercase
// hexadecimal characters derived from a random UUID.
func (g *IDGenerator) DocumentID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// BatchGroupID returns a fresh batch group id, e.g. "$delete-0190c3...".
func (g *IDGenerator) BatchGroupID() string {
	return BatchGroupPrefix + g.TraceID()
}

// TraceID returns a time-ordered UUIDv7 string, falling back to v4.
func (g *IDGenerator) TraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
