package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kode SQLSTATE Postgres untuk unique_violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation true kalau err berasal dari pelanggaran unique constraint
// (mis. double submit sesi dengan (group, date, class_index) yang sama).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
