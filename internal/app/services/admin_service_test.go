package services

import (
	"context"
	"testing"

	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

func newTestAdminService(db *memDB) AdminService {
	return NewAdminService(&fakeUserRepo{db: db}, &fakeJobRepo{db: db}, &fakeApplicationRepo{db: db}, zerolog.Nop())
}

func TestAdminOnlyAccess(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)

	student := seedUser(t, db, models.RoleStudent, true, "")
	recruiter := seedUser(t, db, models.RoleRecruiter, true, "Acme")

	if _, err := svc.ListUsers(context.Background(), student, &dto.UserFilterRequest{}); !apperrors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student must be rejected, got %v", err)
	}
	if _, err := svc.GetStats(context.Background(), recruiter); !apperrors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("recruiter must be rejected, got %v", err)
	}
	if _, err := svc.ListUsers(context.Background(), nil, &dto.UserFilterRequest{}); !apperrors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("anonymous must be unauthenticated, got %v", err)
	}
}

func TestApproveRecruiter(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	pending := seedUser(t, db, models.RoleRecruiter, false, "Acme")
	student := seedUser(t, db, models.RoleStudent, true, "")

	before, err := svc.GetPendingRecruiters(context.Background(), admin)
	if err != nil {
		t.Fatalf("GetPendingRecruiters failed: %v", err)
	}
	if len(before) != 1 {
		t.Fatalf("expected 1 pending recruiter, got %d", len(before))
	}

	approved, err := svc.ApproveRecruiter(context.Background(), admin, pending.ID)
	if err != nil {
		t.Fatalf("ApproveRecruiter failed: %v", err)
	}
	if !approved.IsApproved {
		t.Error("recruiter should be approved")
	}

	after, err := svc.GetPendingRecruiters(context.Background(), admin)
	if err != nil {
		t.Fatalf("GetPendingRecruiters failed: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("pending list should be empty, got %d", len(after))
	}

	if _, err := svc.ApproveRecruiter(context.Background(), admin, student.ID); !apperrors.Is(err, apperrors.ErrNotARecruiter) {
		t.Errorf("approving a student must fail, got %v", err)
	}
	if _, err := svc.ApproveRecruiter(context.Background(), admin, 999); !apperrors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRejectRecruiterDeletes(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	pending := seedUser(t, db, models.RoleRecruiter, false, "Acme")
	student := seedUser(t, db, models.RoleStudent, true, "")

	if err := svc.RejectRecruiter(context.Background(), admin, pending.ID); err != nil {
		t.Fatalf("RejectRecruiter failed: %v", err)
	}

	userRepo := &fakeUserRepo{db: db}
	if _, err := userRepo.GetByID(context.Background(), pending.ID); !apperrors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("rejected recruiter should be deleted, got %v", err)
	}

	if err := svc.RejectRecruiter(context.Background(), admin, student.ID); !apperrors.Is(err, apperrors.ErrNotARecruiter) {
		t.Errorf("rejecting a student must fail, got %v", err)
	}
}

func TestDeleteUserAdminBlocked(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	otherAdmin := seedUser(t, db, models.RoleAdmin, true, "")

	if err := svc.DeleteUser(context.Background(), admin, otherAdmin.ID); !apperrors.Is(err, apperrors.ErrAdminNotDeletable) {
		t.Errorf("admin users must never be deletable, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), admin, admin.ID); !apperrors.Is(err, apperrors.ErrAdminNotDeletable) {
		t.Errorf("self-deletion must be blocked too, got %v", err)
	}
}

func TestDeleteRecruiterCascades(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)
	jobSvc := newTestJobService(db)
	appRepo := &fakeApplicationRepo{db: db}

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	recruiter := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	student := seedUser(t, db, models.RoleStudent, true, "")

	job := createJob(t, jobSvc, recruiter, "Backend Engineer")
	err := appRepo.Create(context.Background(), &models.Application{
		JobID: job.ID, StudentID: student.ID, Resume: "r.pdf", Status: models.StatusApplied,
	})
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), admin, recruiter.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := jobSvc.GetJob(context.Background(), job.ID); !apperrors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("recruiter's jobs should be gone, got %v", err)
	}
	if count, _ := appRepo.CountAll(context.Background()); count != 0 {
		t.Errorf("applications to the recruiter's jobs should be gone, %d left", count)
	}
	if _, err := (&fakeUserRepo{db: db}).GetByID(context.Background(), student.ID); err != nil {
		t.Errorf("unrelated student must survive, got %v", err)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)
	jobSvc := newTestJobService(db)
	appRepo := &fakeApplicationRepo{db: db}

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	recruiter := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	student := seedUser(t, db, models.RoleStudent, true, "")

	job := createJob(t, jobSvc, recruiter, "Backend Engineer")
	err := appRepo.Create(context.Background(), &models.Application{
		JobID: job.ID, StudentID: student.ID, Resume: "r.pdf", Status: models.StatusApplied,
	})
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), admin, student.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if count, _ := appRepo.CountAll(context.Background()); count != 0 {
		t.Errorf("student's applications should be gone, %d left", count)
	}
	if _, err := jobSvc.GetJob(context.Background(), job.ID); err != nil {
		t.Errorf("the job must survive student deletion, got %v", err)
	}
}

func TestListUsersFilters(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	seedUser(t, db, models.RoleStudent, true, "")
	seedUser(t, db, models.RoleStudent, true, "")
	seedUser(t, db, models.RoleRecruiter, false, "Acme")
	seedUser(t, db, models.RoleRecruiter, true, "Beta")

	resp, err := svc.ListUsers(context.Background(), admin, &dto.UserFilterRequest{Role: "student"})
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected 2 students, got %d", resp.Total)
	}

	pending := false
	resp, err = svc.ListUsers(context.Background(), admin, &dto.UserFilterRequest{Role: "recruiter", IsApproved: &pending})
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 unapproved recruiter, got %d", resp.Total)
	}

	resp, err = svc.ListUsers(context.Background(), admin, &dto.UserFilterRequest{})
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if resp.Total != 5 {
		t.Errorf("expected all 5 users, got %d", resp.Total)
	}
	if resp.CurrentPage != 1 {
		t.Errorf("expected default page 1, got %d", resp.CurrentPage)
	}
}

func TestGetStats(t *testing.T) {
	db := newMemDB()
	svc := newTestAdminService(db)
	jobSvc := newTestJobService(db)
	appRepo := &fakeApplicationRepo{db: db}

	admin := seedUser(t, db, models.RoleAdmin, true, "")
	recruiter := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	seedUser(t, db, models.RoleRecruiter, false, "Beta")
	student := seedUser(t, db, models.RoleStudent, true, "")

	active := createJob(t, jobSvc, recruiter, "Active Role")
	inactive := createJob(t, jobSvc, recruiter, "Closed Role")
	off := false
	if _, err := jobSvc.UpdateJob(context.Background(), recruiter, inactive.ID, &dto.UpdateJobRequest{IsActive: &off}); err != nil {
		t.Fatalf("failed to deactivate job: %v", err)
	}
	err := appRepo.Create(context.Background(), &models.Application{
		JobID: active.ID, StudentID: student.ID, Resume: "r.pdf", Status: models.StatusApplied,
	})
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	stats, err := svc.GetStats(context.Background(), admin)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalUsers != 4 {
		t.Errorf("TotalUsers = %d, want 4", stats.TotalUsers)
	}
	if stats.TotalStudents != 1 {
		t.Errorf("TotalStudents = %d, want 1", stats.TotalStudents)
	}
	if stats.TotalRecruiters != 2 {
		t.Errorf("TotalRecruiters = %d, want 2", stats.TotalRecruiters)
	}
	if stats.PendingRecruiters != 1 {
		t.Errorf("PendingRecruiters = %d, want 1", stats.PendingRecruiters)
	}
	if stats.TotalJobs != 2 {
		t.Errorf("TotalJobs = %d, want 2", stats.TotalJobs)
	}
	if stats.ActiveJobs != 1 {
		t.Errorf("ActiveJobs = %d, want 1", stats.ActiveJobs)
	}
	if stats.TotalApplications != 1 {
		t.Errorf("TotalApplications = %d, want 1", stats.TotalApplications)
	}
	if len(stats.RecentUsers) != 4 {
		t.Errorf("expected 4 recent users, got %d", len(stats.RecentUsers))
	}
	if len(stats.RecentJobs) != 2 {
		t.Errorf("expected 2 recent jobs, got %d", len(stats.RecentJobs))
	}
}
