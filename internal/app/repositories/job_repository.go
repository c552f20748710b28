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
	"github.com/jobsphere/jobsphere/internal/pkg/helpers"
)

var jobColumns = []string{
	"j.id", "j.title", "j.company", "j.location", "j.salary", "j.description",
	"j.requirements", "j.job_type", "j.experience", "j.skills", "j.posted_by",
	"j.is_active", "j.application_deadline", "j.applications_count",
	"j.created_at", "j.updated_at",
}

// JobFilter describes the public listing criteria. Empty strings mean no
// constraint; enum fields carrying unrecognized values are dropped.
type JobFilter struct {
	Search     string
	Location   string
	JobType    string
	Experience string
	Page       int
	PageSize   int
}

// IJobRepository defines the interface for job-related database operations
type IJobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	DeleteCascade(ctx context.Context, id int64) error
	List(ctx context.Context, filter JobFilter) ([]*models.Job, int64, error)
	GetByPoster(ctx context.Context, posterID int64) ([]*models.Job, []int64, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Job, error)
}

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// buildJobListQuery composes the public listing query. Active jobs only,
// newest first, poster name and company joined in.
func buildJobListQuery(filter JobFilter) squirrel.SelectBuilder {
	query := squirrel.Select(jobColumns...).
		Columns("u.name AS poster_name", "u.company AS poster_company").
		Column("COUNT(*) OVER() AS total_count").
		From("jobs j").
		LeftJoin("users u ON u.id = j.posted_by").
		Where("j.is_active = ?", true).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			squirrel.Or{
				squirrel.Expr("j.title ILIKE ?", pattern),
				squirrel.Expr("j.company ILIKE ?", pattern),
				squirrel.Expr("j.description ILIKE ?", pattern),
			},
		)
	}

	if filter.Location != "" {
		query = query.Where("j.location ILIKE ?", "%"+filter.Location+"%")
	}

	if filter.JobType != "" && models.ValidJobType(models.JobType(filter.JobType)) {
		query = query.Where("j.job_type = ?", filter.JobType)
	}

	if filter.Experience != "" && models.ValidExperienceLevel(models.ExperienceLevel(filter.Experience)) {
		query = query.Where("j.experience = ?", filter.Experience)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	return query.OrderBy("j.created_at DESC").Limit(uint64(limit)).Offset(offset)
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Salary,
		&job.Description,
		&job.Requirements,
		&job.JobType,
		&job.Experience,
		&job.Skills,
		&job.PostedBy,
		&job.IsActive,
		&job.ApplicationDeadline,
		&job.ApplicationsCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a new job and sets its generated ID
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := squirrel.Insert("jobs").
		Columns("title", "company", "location", "salary", "description", "requirements",
			"job_type", "experience", "skills", "posted_by", "is_active", "application_deadline").
		Values(job.Title, job.Company, job.Location, job.Salary, job.Description, job.Requirements,
			job.JobType, job.Experience, job.Skills, job.PostedBy, job.IsActive, job.ApplicationDeadline).
		Suffix("RETURNING id, applications_count, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.ApplicationsCount, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID with its poster summary attached
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := squirrel.Select(jobColumns...).
		Columns("u.name AS poster_name", "u.company AS poster_company").
		From("jobs j").
		LeftJoin("users u ON u.id = j.posted_by").
		Where("j.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var job models.Job
	var posterName *string
	var posterCompany *string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Salary,
		&job.Description,
		&job.Requirements,
		&job.JobType,
		&job.Experience,
		&job.Skills,
		&job.PostedBy,
		&job.IsActive,
		&job.ApplicationDeadline,
		&job.ApplicationsCount,
		&job.CreatedAt,
		&job.UpdatedAt,
		&posterName,
		&posterCompany,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	if posterName != nil {
		job.Poster = &models.UserSummary{ID: job.PostedBy, Name: *posterName, Company: posterCompany}
	}

	return &job, nil
}

// Update persists the mutable fields of a job
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	query := squirrel.Update("jobs").
		Set("title", job.Title).
		Set("company", job.Company).
		Set("location", job.Location).
		Set("salary", job.Salary).
		Set("description", job.Description).
		Set("requirements", job.Requirements).
		Set("job_type", job.JobType).
		Set("experience", job.Experience).
		Set("skills", job.Skills).
		Set("is_active", job.IsActive).
		Set("application_deadline", job.ApplicationDeadline).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", job.ID).
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
		return apperrors.ErrJobNotFound
	}

	return nil
}

// DeleteCascade removes a job and all applications referencing it. The
// applications go first so a failure never leaves orphans.
func (r *JobRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting applications: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting job: %w", err)
		}

		if result.RowsAffected() == 0 {
			return apperrors.ErrJobNotFound
		}

		return nil
	})
}

// List retrieves active jobs matching the filter, with total count
func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]*models.Job, int64, error) {
	sql, args, err := buildJobListQuery(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	var total int64

	for rows.Next() {
		var job models.Job
		var posterName *string
		var posterCompany *string
		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.Salary,
			&job.Description,
			&job.Requirements,
			&job.JobType,
			&job.Experience,
			&job.Skills,
			&job.PostedBy,
			&job.IsActive,
			&job.ApplicationDeadline,
			&job.ApplicationsCount,
			&job.CreatedAt,
			&job.UpdatedAt,
			&posterName,
			&posterCompany,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		if posterName != nil {
			job.Poster = &models.UserSummary{ID: job.PostedBy, Name: *posterName, Company: posterCompany}
		}
		jobs = append(jobs, &job)
	}

	if jobs == nil {
		jobs = []*models.Job{}
	}

	return jobs, total, nil
}

// GetByPoster retrieves all jobs owned by a user, newest first, together
// with a counted number of applications per job. The count is recomputed
// from the applications table and may differ from the stored counter.
func (r *JobRepository) GetByPoster(ctx context.Context, posterID int64) ([]*models.Job, []int64, error) {
	query := squirrel.Select(jobColumns...).
		Column("(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS counted_applications").
		From("jobs j").
		Where("j.posted_by = ?", posterID).
		OrderBy("j.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	var counts []int64

	for rows.Next() {
		var job models.Job
		var counted int64
		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.Salary,
			&job.Description,
			&job.Requirements,
			&job.JobType,
			&job.Experience,
			&job.Skills,
			&job.PostedBy,
			&job.IsActive,
			&job.ApplicationDeadline,
			&job.ApplicationsCount,
			&job.CreatedAt,
			&job.UpdatedAt,
			&counted,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("error scanning row: %w", err)
		}
		jobs = append(jobs, &job)
		counts = append(counts, counted)
	}

	if jobs == nil {
		jobs = []*models.Job{}
		counts = []int64{}
	}

	return jobs, counts, nil
}

// Count counts jobs, optionally only active ones
func (r *JobRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	sql := `SELECT COUNT(*) FROM jobs`
	if activeOnly {
		sql += ` WHERE is_active = TRUE`
	}

	var count int64
	err := r.db.QueryRow(ctx, sql).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// GetRecent retrieves the most recently created jobs
func (r *JobRepository) GetRecent(ctx context.Context, limit int) ([]*models.Job, error) {
	query := squirrel.Select(jobColumns...).
		From("jobs j").
		OrderBy("j.created_at DESC").
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

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if jobs == nil {
		jobs = []*models.Job{}
	}

	return jobs, nil
}
