package services

import (
	"context"
	"strings"

	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/repositories"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	pkgauth "github.com/jobsphere/jobsphere/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for registration, login and profile operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *pkgauth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *pkgauth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account and returns it with a signed token.
// Recruiters start unapproved and must wait for an admin; students are
// usable immediately. The admin role cannot be self-assigned.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRegistrationRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashedPassword,
		Role:       role,
		IsApproved: role != models.RoleRecruiter,
		Skills:     []string{},
	}
	if req.Company != "" {
		user.Company = &req.Company
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Failed to create user")
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("User registered")

	resp := dto.NewAuthResponse(user, token)
	return &resp, nil
}

// Login verifies credentials and returns the user with a signed token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("User logged in")

	resp := dto.NewAuthResponse(user, token)
	return &resp, nil
}

// GetProfile returns the user record for the authenticated identity
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the supplied profile fields and returns the updated user
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Company != nil {
		user.Company = req.Company
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to update profile")
		return nil, err
	}

	return user, nil
}
