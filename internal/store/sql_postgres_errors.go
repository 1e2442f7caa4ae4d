// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories which sentinel a driver error
// stands for.
type ErrorClassification int

const (
	// Unclassified errors are returned wrapped, as they are.
	Unclassified ErrorClassification = iota

	// Duplicate is a primary key or unique constraint violation.
	Duplicate

	// MissingParent is a foreign key violation: the referenced student row
	// is gone.
	MissingParent
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// pgClassifications lists the SQLSTATE codes the repositories react to.
var pgClassifications = map[string]ErrorClassification{
	pgerrcode.UniqueViolation:     Duplicate,
	pgerrcode.ForeignKeyViolation: MissingParent,
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors raised
// through the pgx stdlib driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}
	return pgClassifications[pgErr.Code]
}
