// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package odata

import "errors"

var (
	ErrInvalidPath          = errors.New("invalid resource path")
	ErrInvalidFilter        = errors.New("invalid $filter expression")
	ErrInvalidBatchResponse = errors.New("invalid batch response")
)
