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
)

var applicationColumns = []string{
	"a.id", "a.job_id", "a.student_id", "a.resume", "a.cover_letter",
	"a.status", "a.notes", "a.created_at", "a.updated_at",
}

var applicationJoinColumns = []string{
	"j.title", "j.company", "j.location", "j.salary", "j.job_type",
	"u.name", "u.email", "u.phone", "u.skills",
}

// IApplicationRepository defines the interface for application-related database operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	GetByJob(ctx context.Context, jobID int64) ([]*models.Application, error)
	GetByRecruiter(ctx context.Context, recruiterID int64) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, notes *string) error
	CountAll(ctx context.Context) (int64, error)
}

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application and bumps the job's stored counter in the
// same transaction. The unique constraint on (job_id, student_id) is the
// duplicate guard; there is no check-then-insert, so concurrent applies
// cannot both slip through.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := squirrel.Insert("applications").
			Columns("job_id", "student_id", "resume", "cover_letter", "status").
			Values(application.JobID, application.StudentID, application.Resume, application.CoverLetter, application.Status).
			Suffix("RETURNING id, created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, dberrors.ApplicationsJobStudentKey) {
				return apperrors.ErrAlreadyApplied
			}
			return fmt.Errorf("error executing query: %w", err)
		}

		// Single-statement increment so concurrent applies never lose updates
		_, err = tx.Exec(ctx, `UPDATE jobs SET applications_count = applications_count + 1 WHERE id = $1`, application.JobID)
		if err != nil {
			return fmt.Errorf("error incrementing applications count: %w", err)
		}

		return nil
	})
}

func scanPopulatedApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	var jobSummary models.JobSummary
	var studentSummary models.UserSummary
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.StudentID,
		&app.Resume,
		&app.CoverLetter,
		&app.Status,
		&app.Notes,
		&app.CreatedAt,
		&app.UpdatedAt,
		&jobSummary.Title,
		&jobSummary.Company,
		&jobSummary.Location,
		&jobSummary.Salary,
		&jobSummary.JobType,
		&studentSummary.Name,
		&studentSummary.Email,
		&studentSummary.Phone,
		&studentSummary.Skills,
	)
	if err != nil {
		return nil, err
	}

	jobSummary.ID = app.JobID
	studentSummary.ID = app.StudentID
	app.Job = &jobSummary
	app.Student = &studentSummary
	return &app, nil
}

func (r *ApplicationRepository) selectPopulated() squirrel.SelectBuilder {
	return squirrel.Select(applicationColumns...).
		Columns(applicationJoinColumns...).
		From("applications a").
		Join("jobs j ON j.id = a.job_id").
		Join("users u ON u.id = a.student_id").
		PlaceholderFormat(squirrel.Dollar)
}

// GetByID retrieves one application populated with job and student summaries
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := r.selectPopulated().Where("a.id = ?", id)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	app, err := scanPopulatedApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return app, nil
}

func (r *ApplicationRepository) queryPopulated(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Application, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		app, err := scanPopulatedApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		applications = append(applications, app)
	}

	if applications == nil {
		applications = []*models.Application{}
	}

	return applications, nil
}

// GetByStudent retrieves all applications submitted by a student, newest first
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := r.selectPopulated().
		Where("a.student_id = ?", studentID).
		OrderBy("a.created_at DESC")
	return r.queryPopulated(ctx, query)
}

// GetByJob retrieves all applications for one job, newest first
func (r *ApplicationRepository) GetByJob(ctx context.Context, jobID int64) ([]*models.Application, error) {
	query := r.selectPopulated().
		Where("a.job_id = ?", jobID).
		OrderBy("a.created_at DESC")
	return r.queryPopulated(ctx, query)
}

// GetByRecruiter retrieves applications across every job owned by a recruiter,
// newest first
func (r *ApplicationRepository) GetByRecruiter(ctx context.Context, recruiterID int64) ([]*models.Application, error) {
	query := r.selectPopulated().
		Where("j.posted_by = ?", recruiterID).
		OrderBy("a.created_at DESC")
	return r.queryPopulated(ctx, query)
}

// UpdateStatus sets the status and optional recruiter notes of an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, notes *string) error {
	query := squirrel.Update("applications").
		Set("status", status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if notes != nil {
		query = query.Set("notes", *notes)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// CountAll counts all applications
func (r *ApplicationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
