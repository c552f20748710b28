package services

import (
	"context"
	"testing"
	"time"

	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	pkgauth "github.com/jobsphere/jobsphere/internal/pkg/auth"
	"github.com/rs/zerolog"
)

func newTestAuthService(db *memDB) AuthService {
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService(&fakeUserRepo{db: db}, jwtService, zerolog.Nop())
}

func TestRegisterStudentIsApproved(t *testing.T) {
	svc := newTestAuthService(newMemDB())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !resp.IsApproved {
		t.Error("student should be approved immediately")
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestRegisterRecruiterStartsUnapproved(t *testing.T) {
	svc := newTestAuthService(newMemDB())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Rick",
		Email:    "rick@example.com",
		Password: "secret123",
		Role:     models.RoleRecruiter,
		Company:  "Acme",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.IsApproved {
		t.Error("recruiter must start unapproved")
	}
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	svc := newTestAuthService(newMemDB())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.Role != models.RoleStudent {
		t.Errorf("expected student role, got %s", resp.Role)
	}
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	svc := newTestAuthService(newMemDB())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	if !apperrors.Is(err, apperrors.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newMemDB())

	req := &dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterLowercasesEmail(t *testing.T) {
	db := newMemDB()
	svc := newTestAuthService(db)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "Jane@Example.COM",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Email != "jane@example.com" {
		t.Errorf("expected lowercased email, got %s", resp.Email)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(newMemDB())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	if !apperrors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !apperrors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newMemDB()
	svc := newTestAuthService(db)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Phone:    "123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	bio := "Go developer"
	updated, err := svc.UpdateProfile(context.Background(), reg.ID, &dto.UpdateProfileRequest{
		Bio:    &bio,
		Skills: []string{"go", "sql"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if updated.Bio == nil || *updated.Bio != bio {
		t.Error("bio not updated")
	}
	if len(updated.Skills) != 2 {
		t.Errorf("skills not updated: %v", updated.Skills)
	}
	if updated.Name != "Jane" {
		t.Error("untouched field should be preserved")
	}
	if updated.Phone == nil || *updated.Phone != "123" {
		t.Error("untouched phone should be preserved")
	}
}
