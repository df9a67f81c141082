// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass is the result returned by [ErrorClassificator.Classify].
// Repositories switch on it to turn constraint failures into typed errors.
type ErrorClass int

const (
	// ClassUnknown covers every error that is not a recognised PostgreSQL
	// constraint or connectivity failure.
	ClassUnknown ErrorClass = iota
	ClassUniqueViolation
	ClassForeignKeyViolation
	ClassCheckViolation
	// ClassTransient marks connection loss, serialization failures and
	// deadlocks.
	ClassTransient
)

// String returns a short label used in log fields.
func (c ErrorClass) String() string {
	switch c {
	case ClassUniqueViolation:
		return "unique_violation"
	case ClassForeignKeyViolation:
		return "foreign_key_violation"
	case ClassCheckViolation:
		return "check_violation"
	case ClassTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// ErrorClassificator maps driver errors to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the SQLSTATE code of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. nil and non-PostgreSQL errors
// are [ClassUnknown].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ClassUnknown
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClass] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ClassForeignKeyViolation
	case pgerrcode.CheckViolation:
		return ClassCheckViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return ClassTransient
	}

	return ClassUnknown
}
