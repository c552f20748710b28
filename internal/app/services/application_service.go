package services

import (
	"context"
	"mime/multipart"

	"github.com/jobsphere/jobsphere/internal/app/auth"
	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/repositories"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	"github.com/jobsphere/jobsphere/internal/pkg/filestorage"
	"github.com/jobsphere/jobsphere/internal/pkg/validation"
	"github.com/rs/zerolog"
)

const resumeSubdir = "resumes"

// ApplicationService defines the interface for application lifecycle operations
type ApplicationService interface {
	Apply(ctx context.Context, actor *auth.Actor, req *dto.ApplyRequest, resume *multipart.FileHeader) (*models.Application, error)
	GetMyApplications(ctx context.Context, actor *auth.Actor) ([]*models.Application, error)
	GetJobApplications(ctx context.Context, actor *auth.Actor, jobID int64) ([]*models.Application, error)
	GetRecruiterApplications(ctx context.Context, actor *auth.Actor) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, actor *auth.Actor, id int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	GetApplication(ctx context.Context, actor *auth.Actor, id int64) (*models.Application, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	applicationRepo repositories.IApplicationRepository
	jobRepo         repositories.IJobRepository
	fileStorage     filestorage.Storage
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	jobRepo repositories.IJobRepository,
	fileStorage filestorage.Storage,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

// Apply submits an application to a job. The job must exist and be active,
// a PDF resume must be attached, and the student must not have applied to
// this job before. The stored counter on the job is bumped with the insert.
func (s *applicationServiceImpl) Apply(ctx context.Context, actor *auth.Actor, req *dto.ApplyRequest, resume *multipart.FileHeader) (*models.Application, error) {
	if err := decisionError(auth.CanApply(actor)); err != nil {
		return nil, err
	}

	if resume == nil {
		return nil, apperrors.ErrResumeRequired
	}
	if err := validation.ValidateResumeUpload(resume); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}

	resumePath, err := s.fileStorage.SaveFileWithPath(resume, resumeSubdir)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", actor.ID).Msg("Failed to store resume")
		return nil, err
	}

	application := &models.Application{
		JobID:     req.JobID,
		StudentID: actor.ID,
		Resume:    resumePath,
		Status:    models.StatusApplied,
	}
	if req.CoverLetter != "" {
		application.CoverLetter = &req.CoverLetter
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		// The stored file has no owning record, remove it
		if delErr := s.fileStorage.DeleteFile(resumePath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", resumePath).Msg("Failed to clean up orphaned resume")
		}
		return nil, err
	}

	s.logger.Info().
		Int64("application_id", application.ID).
		Int64("job_id", req.JobID).
		Int64("user_id", actor.ID).
		Msg("Application submitted")

	return s.applicationRepo.GetByID(ctx, application.ID)
}

// GetMyApplications returns the applications submitted by the actor, newest first
func (s *applicationServiceImpl) GetMyApplications(ctx context.Context, actor *auth.Actor) ([]*models.Application, error) {
	if err := decisionError(auth.CanViewOwnApplications(actor)); err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByStudent(ctx, actor.ID)
}

// GetJobApplications returns all applications for one job the actor owns
func (s *applicationServiceImpl) GetJobApplications(ctx context.Context, actor *auth.Actor, jobID int64) ([]*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := decisionError(auth.CanReviewApplications(actor, job.PostedBy)); err != nil {
		return nil, err
	}

	return s.applicationRepo.GetByJob(ctx, jobID)
}

// GetRecruiterApplications returns applications across every job the actor owns
func (s *applicationServiceImpl) GetRecruiterApplications(ctx context.Context, actor *auth.Actor) ([]*models.Application, error) {
	if err := decisionError(auth.CanViewOwnedJobs(actor)); err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByRecruiter(ctx, actor.ID)
}

// UpdateStatus sets an application's status. Any of the five statuses may
// be set from any other; there is no forward-only progression.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, actor *auth.Actor, id int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	if err := decisionError(auth.CanReviewApplications(actor, job.PostedBy)); err != nil {
		return nil, err
	}

	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, req.Status, req.Notes); err != nil {
		s.logger.Error().Err(err).Int64("application_id", id).Msg("Failed to update application status")
		return nil, err
	}

	s.logger.Info().
		Int64("application_id", id).
		Str("status", string(req.Status)).
		Int64("user_id", actor.ID).
		Msg("Application status updated")

	return s.applicationRepo.GetByID(ctx, id)
}

// GetApplication returns one application if the actor is its student, owns
// its parent job, or is an admin
func (s *applicationServiceImpl) GetApplication(ctx context.Context, actor *auth.Actor, id int64) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	if err := decisionError(auth.CanViewApplication(actor, application.StudentID, job.PostedBy)); err != nil {
		return nil, err
	}

	return application, nil
}
