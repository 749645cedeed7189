package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation.
// If hint is non-empty the violated constraint/column must also mention it,
// which lets the settlement layer tell a receipt-number race apart from a
// duplicate billing period.
func IsUniqueViolation(err error, hint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return hint == "" || strings.Contains(pgErr.ConstraintName, hint) || strings.Contains(pgErr.Detail, hint)
	}

	// sqlite: "UNIQUE constraint failed: receipts.receipt_number"
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") &&
		!strings.Contains(strings.ToLower(msg), "duplicate key") {
		return false
	}
	return hint == "" || strings.Contains(msg, hint)
}

// IsForeignKeyViolation reports whether err is a referential-integrity failure.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
