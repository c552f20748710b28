package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/jobsphere/jobsphere/internal/app/models"
	appRepos "github.com/jobsphere/jobsphere/internal/app/repositories"
	"github.com/jobsphere/jobsphere/internal/config"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	pkgauth "github.com/jobsphere/jobsphere/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData creates the default admin account if it does not exist.
// The admin email and password come from configuration; when the password
// is empty, seeding is skipped so production deployments can opt out.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Info().Msg("Admin password not configured, skipping admin seeding")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	hashedPassword, err := pkgauth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to hash admin password")
		return err
	}

	admin := &appModels.User{
		Name:       "Admin",
		Email:      cfg.Admin.Email,
		Password:   hashedPassword,
		Role:       appModels.RoleAdmin,
		IsApproved: true,
		Skills:     []string{},
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Int64("id", admin.ID).Msg("Default admin account created")
	return nil
}
