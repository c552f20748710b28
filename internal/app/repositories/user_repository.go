package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/db"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	"github.com/jobsphere/jobsphere/internal/pkg/dberrors"
	"github.com/jobsphere/jobsphere/internal/pkg/helpers"
)

var userColumns = []string{
	"id", "name", "email", "password", "role", "is_approved",
	"company", "phone", "bio", "skills", "resume", "profile_picture",
	"created_at", "updated_at",
}

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
	DeleteCascade(ctx context.Context, id int64) error
	GetAll(ctx context.Context, role string, isApproved *bool, page, pageSize int) ([]*models.User, int64, error)
	GetPendingRecruiters(ctx context.Context) ([]*models.User, error)
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountPendingRecruiters(ctx context.Context) (int64, error)
	GetRecent(ctx context.Context, limit int) ([]*models.User, error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.IsApproved,
		&user.Company,
		&user.Phone,
		&user.Bio,
		&user.Skills,
		&user.Resume,
		&user.ProfilePicture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and sets its generated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("name", "email", "password", "role", "is_approved", "company", "phone", "bio", "skills").
		Values(user.Name, user.Email, user.Password, user.Role, user.IsApproved, user.Company, user.Phone, user.Bio, user.Skills).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.UsersEmailKey) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// Update persists the mutable profile fields of a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("name", user.Name).
		Set("company", user.Company).
		Set("phone", user.Phone).
		Set("bio", user.Bio).
		Set("skills", user.Skills).
		Set("resume", user.Resume).
		Set("profile_picture", user.ProfilePicture).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", user.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetApproved flips the approval flag for a user
func (r *UserRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	query := squirrel.Update("users").
		Set("is_approved", approved).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user row without touching dependent records
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteCascade removes a user together with everything they own. Dependent
// rows go first so a mid-transaction failure never leaves orphans.
func (r *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// Applications on jobs posted by this user (recruiter case)
		_, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE posted_by = $1)`, id)
		if err != nil {
			return fmt.Errorf("error deleting applications for owned jobs: %w", err)
		}

		_, err = tx.Exec(ctx, `DELETE FROM jobs WHERE posted_by = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting owned jobs: %w", err)
		}

		// Applications submitted by this user (student case)
		_, err = tx.Exec(ctx, `DELETE FROM applications WHERE student_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting submitted applications: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}

		if result.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}

// GetAll retrieves users with optional role and approval filters, paginated
func (r *UserRepository) GetAll(ctx context.Context, role string, isApproved *bool, page, pageSize int) ([]*models.User, int64, error) {
	query := squirrel.Select(userColumns...).
		Column("COUNT(*) OVER() AS total_count").
		From("users").
		PlaceholderFormat(squirrel.Dollar)

	if role != "" {
		query = query.Where("role = ?", role)
	}
	if isApproved != nil {
		query = query.Where("is_approved = ?", *isApproved)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query = query.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	var total int64

	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.IsApproved,
			&user.Company,
			&user.Phone,
			&user.Bio,
			&user.Skills,
			&user.Resume,
			&user.ProfilePicture,
			&user.CreatedAt,
			&user.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, &user)
	}

	if users == nil {
		users = []*models.User{}
	}

	return users, total, nil
}

// GetPendingRecruiters retrieves unapproved recruiters, newest first
func (r *UserRepository) GetPendingRecruiters(ctx context.Context) ([]*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where("role = ?", models.RoleRecruiter).
		Where("is_approved = ?", false).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var recruiters []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		recruiters = append(recruiters, user)
	}

	if recruiters == nil {
		recruiters = []*models.User{}
	}

	return recruiters, nil
}

// CountByRole counts users with a given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// CountAll counts all users
func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// CountPendingRecruiters counts unapproved recruiters
func (r *UserRepository) CountPendingRecruiters(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1 AND is_approved = FALSE`, models.RoleRecruiter).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// GetRecent retrieves the most recently created users
func (r *UserRepository) GetRecent(ctx context.Context, limit int) ([]*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, user)
	}

	if users == nil {
		users = []*models.User{}
	}

	return users, nil
}
