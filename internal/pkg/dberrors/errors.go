package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names from migrations; duplicate-key mapping relies on these.
const (
	UsersEmailKey             = "users_email_key"
	ApplicationsJobStudentKey = "applications_job_id_student_id_key"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// unique_violation is 23505
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
