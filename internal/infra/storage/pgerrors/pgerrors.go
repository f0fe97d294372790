// Package pgerrors classifies PostgreSQL driver errors.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation      = "unique_violation"
	codeForeignKeyViolation  = "foreign_key_violation"
	codeCheckViolation       = "check_violation"
	codeSerializationFailure = "serialization_failure"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
// When constraint is non-empty only that constraint matches.
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports whether err references a missing row
func IsForeignKeyViolation(err error, constraint string) bool {
	return is(err, codeForeignKeyViolation, constraint)
}

// IsCheckViolation reports whether err violates a CHECK constraint
func IsCheckViolation(err error, constraint string) bool {
	return is(err, codeCheckViolation, constraint)
}

// IsSerializationFailure reports whether a SERIALIZABLE transaction lost a
// conflict with a concurrent one. PostgreSQL raises it instead of a unique
// violation when two transactions insert the same key, and also at commit.
func IsSerializationFailure(err error) bool {
	return is(err, codeSerializationFailure, "")
}

func is(err error, code, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code.Name() != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
