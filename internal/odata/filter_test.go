// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package odata

import (
	"testing"

	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStudentFilter(t *testing.T) {
	age := 21
	active := true

	assert.Equal(t, "", EncodeStudentFilter(models.StudentQuery{}))
	assert.Equal(t,
		"contains(firstname,'Ann') and Age eq 21 and Gender eq 'F' and contains(Course,'C''S') and Status eq true",
		EncodeStudentFilter(models.StudentQuery{
			FirstnameContains: "Ann",
			Age:               &age,
			Gender:            "F",
			CourseContains:    "C'S",
			Status:            &active,
		}),
	)
}

func TestParseFilter_RoundTrip(t *testing.T) {
	age := 30
	inactive := false
	q := models.StudentQuery{
		FirstnameContains: "and it's",
		Age:               &age,
		Gender:            "M",
		Status:            &inactive,
	}

	conds, err := ParseFilter(EncodeStudentFilter(q))
	require.NoError(t, err)

	assert.Equal(t, []Condition{
		{Field: "firstname", Operator: OpContains, Value: "and it's"},
		{Field: "Age", Operator: OpEq, Value: 30},
		{Field: "Gender", Operator: OpEq, Value: "M"},
		{Field: "Status", Operator: OpEq, Value: false},
	}, conds)
}

func TestParseFilter_Empty(t *testing.T) {
	conds, err := ParseFilter("  ")
	require.NoError(t, err)
	assert.Empty(t, conds)
}

func TestParseFilter_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"unknown property", "Salary eq 10"},
		{"unsupported operator", "Age gt 10"},
		{"contains on int", "contains(Age,'1')"},
		{"bad int", "Age eq ten"},
		{"bad bool", "Status eq yes"},
		{"unquoted string", "Gender eq F"},
		{"unterminated literal", "Gender eq 'F"},
		{"contains without comma", "contains(firstname)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestParseStudentFilter(t *testing.T) {
	age := 30
	inactive := false
	want := models.StudentQuery{
		FirstnameContains: "O'Neil",
		Age:               &age,
		Gender:            "M",
		CourseContains:    "Bio",
		Status:            &inactive,
	}

	got, err := ParseStudentFilter(EncodeStudentFilter(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	empty, err := ParseStudentFilter("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestParseStudentFilter_Unsupported(t *testing.T) {
	for _, expr := range []string{
		"Lastname eq 'Lee'",
		"contains(Gender,'M')",
		"firstname eq 'Ann'",
		"Age gt 3",
	} {
		_, err := ParseStudentFilter(expr)
		assert.ErrorIs(t, err, ErrInvalidFilter, expr)
	}
}
