// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the resource dispatch. Callers can match against them
// with [errors.Is].
var (
	// ErrUnknownResource is returned for paths that name an entity set,
	// navigation or action the service does not expose.
	ErrUnknownResource = errors.New("resource not found")

	// ErrUnsupportedOperation is returned when the method is not defined for
	// the addressed resource.
	ErrUnsupportedOperation = errors.New("operation not supported on this resource")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrActionKey is returned when an action is bound to the wrong
	// representation, e.g. Edit on a draft.
	ErrActionKey = errors.New("action is not bound to this representation")
)
