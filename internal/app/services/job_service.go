package services

import (
	"context"

	"github.com/jobsphere/jobsphere/internal/app/auth"
	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/repositories"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	"github.com/jobsphere/jobsphere/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// JobService defines the interface for job posting operations
type JobService interface {
	ListJobs(ctx context.Context, filter *dto.JobFilterRequest) (*dto.JobListResponse, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, actor *auth.Actor, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, actor *auth.Actor, id int64, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actor *auth.Actor, id int64) error
	GetMyJobs(ctx context.Context, actor *auth.Actor) (*dto.RecruiterJobsResponse, error)
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo  repositories.IJobRepository
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo repositories.IJobRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) JobService {
	return &jobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListJobs returns the public page of active jobs matching the filter
func (s *jobServiceImpl) ListJobs(ctx context.Context, filter *dto.JobFilterRequest) (*dto.JobListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = helpers.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = helpers.DefaultPageSize
	}
	if limit > helpers.MaxPageSize {
		limit = helpers.MaxPageSize
	}

	jobs, total, err := s.jobRepo.List(ctx, repositories.JobFilter{
		Search:     filter.Search,
		Location:   filter.Location,
		JobType:    filter.JobType,
		Experience: filter.Experience,
		Page:       page,
		PageSize:   limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list jobs")
		return nil, err
	}

	return &dto.JobListResponse{
		Jobs:        jobs,
		TotalPages:  helpers.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetJob returns one job by ID, regardless of ownership
func (s *jobServiceImpl) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// CreateJob creates a job posting owned by the actor. The company defaults
// to the actor's own company when not supplied.
func (s *jobServiceImpl) CreateJob(ctx context.Context, actor *auth.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := decisionError(auth.CanPostJobs(actor)); err != nil {
		return nil, err
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = models.JobTypeFullTime
	}
	if !models.ValidJobType(jobType) {
		return nil, apperrors.NewValidationError("invalid job type")
	}

	experience := req.Experience
	if experience == "" {
		experience = models.ExperienceFresher
	}
	if !models.ValidExperienceLevel(experience) {
		return nil, apperrors.NewValidationError("invalid experience level")
	}

	company := req.Company
	if company == "" {
		poster, err := s.userRepo.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if poster.Company != nil {
			company = *poster.Company
		}
	}

	requirements := req.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	job := &models.Job{
		Title:               req.Title,
		Company:             company,
		Location:            req.Location,
		Salary:              req.Salary,
		Description:         req.Description,
		Requirements:        requirements,
		JobType:             jobType,
		Experience:          experience,
		Skills:              skills,
		PostedBy:            actor.ID,
		IsActive:            true,
		ApplicationDeadline: req.ApplicationDeadline,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Int64("user_id", actor.ID).Msg("Failed to create job")
		return nil, err
	}

	s.logger.Info().Int64("job_id", job.ID).Int64("user_id", actor.ID).Msg("Job created")

	return s.jobRepo.GetByID(ctx, job.ID)
}

// UpdateJob applies a partial patch to a job the actor owns
func (s *jobServiceImpl) UpdateJob(ctx context.Context, actor *auth.Actor, id int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := decisionError(auth.CanManageJob(actor, job.PostedBy)); err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.JobType != nil {
		if !models.ValidJobType(*req.JobType) {
			return nil, apperrors.NewValidationError("invalid job type")
		}
		job.JobType = *req.JobType
	}
	if req.Experience != nil {
		if !models.ValidExperienceLevel(*req.Experience) {
			return nil, apperrors.NewValidationError("invalid experience level")
		}
		job.Experience = *req.Experience
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.logger.Error().Err(err).Int64("job_id", id).Msg("Failed to update job")
		return nil, err
	}

	return s.jobRepo.GetByID(ctx, id)
}

// DeleteJob removes a job the actor owns together with its applications
func (s *jobServiceImpl) DeleteJob(ctx context.Context, actor *auth.Actor, id int64) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := decisionError(auth.CanManageJob(actor, job.PostedBy)); err != nil {
		return err
	}

	if err := s.jobRepo.DeleteCascade(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("job_id", id).Msg("Failed to delete job")
		return err
	}

	s.logger.Info().Int64("job_id", id).Int64("user_id", actor.ID).Msg("Job deleted")
	return nil
}

// GetMyJobs returns the actor's own postings. Each entry carries both the
// stored counter and a count recomputed from the applications table.
func (s *jobServiceImpl) GetMyJobs(ctx context.Context, actor *auth.Actor) (*dto.RecruiterJobsResponse, error) {
	if err := decisionError(auth.CanViewOwnedJobs(actor)); err != nil {
		return nil, err
	}

	jobs, counts, err := s.jobRepo.GetByPoster(ctx, actor.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", actor.ID).Msg("Failed to get owned jobs")
		return nil, err
	}

	recruiterJobs := make([]*dto.RecruiterJob, 0, len(jobs))
	for i, job := range jobs {
		recruiterJobs = append(recruiterJobs, &dto.RecruiterJob{
			Job:                 job,
			CountedApplications: counts[i],
		})
	}

	return &dto.RecruiterJobsResponse{Jobs: recruiterJobs}, nil
}
