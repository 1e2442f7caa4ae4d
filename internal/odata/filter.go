// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package odata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// Operator of a filter condition.
type Operator string

const (
	OpEq       Operator = "eq"
	OpContains Operator = "contains"
)

// Condition is one term of a conjunctive $filter expression. Value is a string,
// an int or a bool.
type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// Filterable properties of a student and the literal kind each accepts.
var filterableFields = map[string]string{
	"firstname": "string",
	"Lastname":  "string",
	"Age":       "int",
	"Course":    "string",
	"Gender":    "string",
	"Status":    "bool",
}

// EncodeStudentFilter renders q as a $filter expression. It returns "" for an
// empty query.
func EncodeStudentFilter(q models.StudentQuery) string {
	terms := make([]string, 0, 5)

	if q.FirstnameContains != "" {
		terms = append(terms, "contains(firstname,"+Quote(q.FirstnameContains)+")")
	}
	if q.Age != nil {
		terms = append(terms, "Age eq "+strconv.Itoa(*q.Age))
	}
	if q.Gender != "" {
		terms = append(terms, "Gender eq "+Quote(q.Gender))
	}
	if q.CourseContains != "" {
		terms = append(terms, "contains(Course,"+Quote(q.CourseContains)+")")
	}
	if q.Status != nil {
		terms = append(terms, "Status eq "+strconv.FormatBool(*q.Status))
	}

	return strings.Join(terms, " and ")
}

// ParseFilter parses the conjunctive subset of $filter produced by
// [EncodeStudentFilter]: terms "contains(Field,'text')" and "Field eq literal"
// joined by "and".
func ParseFilter(expr string) ([]Condition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	terms, err := splitConjunction(expr)
	if err != nil {
		return nil, err
	}

	conditions := make([]Condition, 0, len(terms))
	for _, term := range terms {
		cond, err := parseTerm(term)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

func splitConjunction(expr string) ([]string, error) {
	var (
		terms   []string
		inQuote bool
		start   int
	)
	for i := 0; i < len(expr); i++ {
		if expr[i] == '\'' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			continue
		}
		if strings.HasPrefix(expr[i:], " and ") {
			terms = append(terms, strings.TrimSpace(expr[start:i]))
			i += len(" and ") - 1
			start = i + 1
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unterminated string literal", ErrInvalidFilter)
	}
	terms = append(terms, strings.TrimSpace(expr[start:]))
	return terms, nil
}

func parseTerm(term string) (Condition, error) {
	if strings.HasPrefix(term, "contains(") && strings.HasSuffix(term, ")") {
		inner := term[len("contains(") : len(term)-1]
		field, literal, ok := strings.Cut(inner, ",")
		if !ok {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidFilter, term)
		}
		field = strings.TrimSpace(field)
		if filterableFields[field] != "string" {
			return Condition{}, fmt.Errorf("%w: contains on %q", ErrInvalidFilter, field)
		}
		value, err := Unquote(strings.TrimSpace(literal))
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidFilter, term)
		}
		return Condition{Field: field, Operator: OpContains, Value: value}, nil
	}

	field, literal, ok := strings.Cut(term, " eq ")
	if !ok {
		return Condition{}, fmt.Errorf("%w: unsupported term %q", ErrInvalidFilter, term)
	}
	field, literal = strings.TrimSpace(field), strings.TrimSpace(literal)

	kind, ok := filterableFields[field]
	if !ok {
		return Condition{}, fmt.Errorf("%w: unknown property %q", ErrInvalidFilter, field)
	}

	switch kind {
	case "string":
		value, err := Unquote(literal)
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidFilter, term)
		}
		return Condition{Field: field, Operator: OpEq, Value: value}, nil
	case "int":
		value, err := strconv.Atoi(literal)
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidFilter, term)
		}
		return Condition{Field: field, Operator: OpEq, Value: value}, nil
	default:
		value, err := strconv.ParseBool(literal)
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidFilter, term)
		}
		return Condition{Field: field, Operator: OpEq, Value: value}, nil
	}
}

// ParseStudentFilter parses expr and folds the conditions into a
// [models.StudentQuery]. Conditions the query cannot express are rejected.
func ParseStudentFilter(expr string) (models.StudentQuery, error) {
	conditions, err := ParseFilter(expr)
	if err != nil {
		return models.StudentQuery{}, err
	}

	var q models.StudentQuery
	for _, c := range conditions {
		switch {
		case c.Field == models.FieldFirstname && c.Operator == OpContains:
			q.FirstnameContains = c.Value.(string)
		case c.Field == models.FieldCourse && c.Operator == OpContains:
			q.CourseContains = c.Value.(string)
		case c.Field == models.FieldAge && c.Operator == OpEq:
			age := c.Value.(int)
			q.Age = &age
		case c.Field == models.FieldGender && c.Operator == OpEq:
			q.Gender = c.Value.(string)
		case c.Field == models.FieldStatus && c.Operator == OpEq:
			status := c.Value.(bool)
			q.Status = &status
		default:
			return models.StudentQuery{}, fmt.Errorf("%w: %s %s is not supported", ErrInvalidFilter, c.Operator, c.Field)
		}
	}
	return q, nil
}
