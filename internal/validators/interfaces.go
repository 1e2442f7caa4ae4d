// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the rules a draft has to satisfy before it can
// be activated.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the collected rule violations of one run, each carrying
//     a message and the wire name of the offending field as its target.
//
// Rules are declared with ozzo-validation; this package only orders the
// violations and converts them to [models.ServiceMessage] values.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
