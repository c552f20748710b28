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

const recentItemsLimit = 5

// AdminService defines the interface for moderation operations
type AdminService interface {
	ListUsers(ctx context.Context, actor *auth.Actor, filter *dto.UserFilterRequest) (*dto.UserListResponse, error)
	GetPendingRecruiters(ctx context.Context, actor *auth.Actor) ([]*models.User, error)
	ApproveRecruiter(ctx context.Context, actor *auth.Actor, id int64) (*models.User, error)
	RejectRecruiter(ctx context.Context, actor *auth.Actor, id int64) error
	DeleteUser(ctx context.Context, actor *auth.Actor, id int64) error
	GetStats(ctx context.Context, actor *auth.Actor) (*dto.StatsResponse, error)
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	userRepo        repositories.IUserRepository
	jobRepo         repositories.IJobRepository
	applicationRepo repositories.IApplicationRepository
	logger          zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	jobRepo repositories.IJobRepository,
	applicationRepo repositories.IApplicationRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// ListUsers returns a paginated user listing with optional role and
// approval filters
func (s *adminServiceImpl) ListUsers(ctx context.Context, actor *auth.Actor, filter *dto.UserFilterRequest) (*dto.UserListResponse, error) {
	if err := decisionError(auth.CanModerate(actor)); err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = helpers.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = helpers.AdminPageSize
	}
	if limit > helpers.MaxPageSize {
		limit = helpers.MaxPageSize
	}

	users, total, err := s.userRepo.GetAll(ctx, filter.Role, filter.IsApproved, page, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list users")
		return nil, err
	}

	return &dto.UserListResponse{
		Users:       users,
		TotalPages:  helpers.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetPendingRecruiters returns recruiters awaiting approval, newest first
func (s *adminServiceImpl) GetPendingRecruiters(ctx context.Context, actor *auth.Actor) ([]*models.User, error) {
	if err := decisionError(auth.CanModerate(actor)); err != nil {
		return nil, err
	}
	return s.userRepo.GetPendingRecruiters(ctx)
}

// ApproveRecruiter grants a pending recruiter posting rights
func (s *adminServiceImpl) ApproveRecruiter(ctx context.Context, actor *auth.Actor, id int64) (*models.User, error) {
	if err := decisionError(auth.CanModerate(actor)); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleRecruiter {
		return nil, apperrors.ErrNotARecruiter
	}

	if err := s.userRepo.SetApproved(ctx, id, true); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("Failed to approve recruiter")
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Int64("admin_id", actor.ID).Msg("Recruiter approved")

	user.IsApproved = true
	return user, nil
}

// RejectRecruiter removes a recruiter account outright
func (s *adminServiceImpl) RejectRecruiter(ctx context.Context, actor *auth.Actor, id int64) error {
	if err := decisionError(auth.CanModerate(actor)); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != models.RoleRecruiter {
		return apperrors.ErrNotARecruiter
	}

	if err := s.userRepo.DeleteCascade(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("Failed to reject recruiter")
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("admin_id", actor.ID).Msg("Recruiter rejected")
	return nil
}

// DeleteUser removes a non-admin user and everything they own. Recruiter
// deletion takes their jobs and those jobs' applications; student deletion
// takes their applications.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, actor *auth.Actor, id int64) error {
	if err := decisionError(auth.CanModerate(actor)); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return apperrors.ErrAdminNotDeletable
	}

	if err := s.userRepo.DeleteCascade(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("Failed to delete user")
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("admin_id", actor.ID).Msg("User deleted")
	return nil
}

// GetStats returns the dashboard aggregate of counts and recent records
func (s *adminServiceImpl) GetStats(ctx context.Context, actor *auth.Actor) (*dto.StatsResponse, error) {
	if err := decisionError(auth.CanModerate(actor)); err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalStudents, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	totalRecruiters, err := s.userRepo.CountByRole(ctx, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}
	pendingRecruiters, err := s.userRepo.CountPendingRecruiters(ctx)
	if err != nil {
		return nil, err
	}
	totalJobs, err := s.jobRepo.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobRepo.Count(ctx, true)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applicationRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.userRepo.GetRecent(ctx, recentItemsLimit)
	if err != nil {
		return nil, err
	}
	recentJobs, err := s.jobRepo.GetRecent(ctx, recentItemsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalUsers:        totalUsers,
		TotalStudents:     totalStudents,
		TotalRecruiters:   totalRecruiters,
		PendingRecruiters: pendingRecruiters,
		TotalJobs:         totalJobs,
		ActiveJobs:        activeJobs,
		TotalApplications: totalApplications,
		RecentUsers:       recentUsers,
		RecentJobs:        recentJobs,
	}, nil
}
