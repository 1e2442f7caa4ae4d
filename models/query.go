// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StudentQuery is the live filter of the list screen. Zero values mean "no
// condition", except for the pointer fields which are only applied when set.
type StudentQuery struct {
	// FirstnameContains matches students whose firstname contains the value.
	FirstnameContains string

	// Age matches students of exactly this age.
	Age *int

	// Gender matches students with exactly this gender code.
	Gender string

	// CourseContains matches students whose course contains the value.
	CourseContains string

	// Status matches students with exactly this status.
	Status *bool
}

// IsEmpty reports whether q has no conditions.
func (q StudentQuery) IsEmpty() bool {
	return q.FirstnameContains == "" && q.Age == nil && q.Gender == "" &&
		q.CourseContains == "" && q.Status == nil
}

// CollectionResponse is the OData envelope for collection reads.
type CollectionResponse[T any] struct {
	Value []T `json:"value"`
}
