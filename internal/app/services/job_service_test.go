package services

import (
	"context"
	"testing"

	"github.com/jobsphere/jobsphere/internal/app/auth"
	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

func newTestJobService(db *memDB) JobService {
	return NewJobService(&fakeJobRepo{db: db}, &fakeUserRepo{db: db}, zerolog.Nop())
}

// seedUser inserts a user directly and returns the matching actor
func seedUser(t *testing.T, db *memDB, role models.RoleType, approved bool, company string) *auth.Actor {
	t.Helper()
	user := &models.User{
		Name:       "seeded",
		Email:      "",
		Password:   "x",
		Role:       role,
		IsApproved: approved,
		Skills:     []string{},
	}
	if company != "" {
		user.Company = &company
	}
	repo := &fakeUserRepo{db: db}
	// Unique email per seeded user
	db.mu.Lock()
	user.Email = string(role) + string(rune('a'+len(db.users))) + "@example.com"
	db.mu.Unlock()
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &auth.Actor{ID: user.ID, Role: role, IsApproved: approved}
}

func createJob(t *testing.T, svc JobService, actor *auth.Actor, title string) *models.Job {
	t.Helper()
	job, err := svc.CreateJob(context.Background(), actor, &dto.CreateJobRequest{
		Title:       title,
		Location:    "Berlin",
		Description: "description",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	return job
}

func TestCreateJobDefaults(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)
	recruiter := seedUser(t, db, models.RoleRecruiter, true, "Acme Corp")

	job := createJob(t, svc, recruiter, "Backend Engineer")

	if job.Company != "Acme Corp" {
		t.Errorf("company should default to the poster's, got %q", job.Company)
	}
	if job.JobType != models.JobTypeFullTime {
		t.Errorf("jobType should default to full-time, got %s", job.JobType)
	}
	if job.Experience != models.ExperienceFresher {
		t.Errorf("experience should default to fresher, got %s", job.Experience)
	}
	if !job.IsActive {
		t.Error("new jobs must be active")
	}
	if job.Requirements == nil || job.Skills == nil {
		t.Error("requirements and skills should default to empty lists")
	}
	if job.Poster == nil || job.Poster.Name != "seeded" {
		t.Error("created job should carry the poster summary")
	}
}

func TestCreateJobAuthorization(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)

	student := seedUser(t, db, models.RoleStudent, true, "")
	pending := seedUser(t, db, models.RoleRecruiter, false, "")
	admin := seedUser(t, db, models.RoleAdmin, true, "")

	req := &dto.CreateJobRequest{Title: "T", Location: "L", Description: "D"}

	if _, err := svc.CreateJob(context.Background(), student, req); !apperrors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student should be forbidden, got %v", err)
	}
	if _, err := svc.CreateJob(context.Background(), pending, req); !apperrors.Is(err, apperrors.ErrRecruiterNotApproved) {
		t.Errorf("unapproved recruiter should be refused, got %v", err)
	}
	if _, err := svc.CreateJob(context.Background(), nil, req); !apperrors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("anonymous should be unauthenticated, got %v", err)
	}
	if _, err := svc.CreateJob(context.Background(), admin, req); err != nil {
		t.Errorf("admin should be allowed, got %v", err)
	}
}

func TestCreateJobInvalidEnums(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)
	recruiter := seedUser(t, db, models.RoleRecruiter, true, "Acme")

	_, err := svc.CreateJob(context.Background(), recruiter, &dto.CreateJobRequest{
		Title: "T", Location: "L", Description: "D", JobType: "volunteer",
	})
	if !apperrors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure for bad jobType, got %v", err)
	}

	_, err = svc.CreateJob(context.Background(), recruiter, &dto.CreateJobRequest{
		Title: "T", Location: "L", Description: "D", Experience: "decades",
	})
	if !apperrors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure for bad experience, got %v", err)
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)

	owner := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	other := seedUser(t, db, models.RoleRecruiter, true, "Rival")
	admin := seedUser(t, db, models.RoleAdmin, true, "")

	job := createJob(t, svc, owner, "Backend Engineer")

	newTitle := "Platform Engineer"
	if _, err := svc.UpdateJob(context.Background(), other, job.ID, &dto.UpdateJobRequest{Title: &newTitle}); !apperrors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner should be forbidden, got %v", err)
	}

	updated, err := svc.UpdateJob(context.Background(), owner, job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("title not updated: %s", updated.Title)
	}
	if updated.Location != "Berlin" {
		t.Error("unpatched fields should be preserved")
	}

	adminTitle := "Staff Engineer"
	if _, err := svc.UpdateJob(context.Background(), admin, job.ID, &dto.UpdateJobRequest{Title: &adminTitle}); err != nil {
		t.Errorf("admin should bypass ownership, got %v", err)
	}
}

func TestUpdateJobNotFound(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)
	admin := seedUser(t, db, models.RoleAdmin, true, "")

	title := "X"
	_, err := svc.UpdateJob(context.Background(), admin, 999, &dto.UpdateJobRequest{Title: &title})
	if !apperrors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestDeleteJobRemovesApplications(t *testing.T) {
	db := newMemDB()
	jobSvc := newTestJobService(db)
	appRepo := &fakeApplicationRepo{db: db}

	owner := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	student := seedUser(t, db, models.RoleStudent, true, "")
	job := createJob(t, jobSvc, owner, "Backend Engineer")

	err := appRepo.Create(context.Background(), &models.Application{
		JobID: job.ID, StudentID: student.ID, Resume: "uploads/resumes/r.pdf", Status: models.StatusApplied,
	})
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	if err := jobSvc.DeleteJob(context.Background(), owner, job.ID); err != nil {
		t.Fatalf("DeleteJob failed: %v", err)
	}

	if count, _ := appRepo.CountAll(context.Background()); count != 0 {
		t.Errorf("applications should be deleted with the job, %d left", count)
	}
	if _, err := jobSvc.GetJob(context.Background(), job.ID); !apperrors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("job should be gone, got %v", err)
	}
}

func TestListJobsExcludesInactive(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)
	owner := seedUser(t, db, models.RoleRecruiter, true, "Acme")

	active := createJob(t, svc, owner, "Active Role")
	inactive := createJob(t, svc, owner, "Closed Role")

	off := false
	if _, err := svc.UpdateJob(context.Background(), owner, inactive.ID, &dto.UpdateJobRequest{IsActive: &off}); err != nil {
		t.Fatalf("failed to deactivate job: %v", err)
	}

	resp, err := svc.ListJobs(context.Background(), &dto.JobFilterRequest{})
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("expected 1 active job, got %d", resp.Total)
	}
	if resp.Jobs[0].ID != active.ID {
		t.Errorf("wrong job listed: %d", resp.Jobs[0].ID)
	}
}

func TestListJobsPagination(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)
	owner := seedUser(t, db, models.RoleRecruiter, true, "Acme")

	for i := 0; i < 25; i++ {
		createJob(t, svc, owner, "Role")
	}

	resp, err := svc.ListJobs(context.Background(), &dto.JobFilterRequest{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}

	if resp.Total != 25 {
		t.Errorf("expected total 25, got %d", resp.Total)
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.CurrentPage != 3 {
		t.Errorf("expected current page 3, got %d", resp.CurrentPage)
	}
	if len(resp.Jobs) != 5 {
		t.Errorf("expected 5 jobs on the last page, got %d", len(resp.Jobs))
	}
}

func TestGetMyJobsCountsApplications(t *testing.T) {
	db := newMemDB()
	jobSvc := newTestJobService(db)
	appRepo := &fakeApplicationRepo{db: db}

	owner := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	s1 := seedUser(t, db, models.RoleStudent, true, "")
	s2 := seedUser(t, db, models.RoleStudent, true, "")
	job := createJob(t, jobSvc, owner, "Backend Engineer")

	for _, s := range []*auth.Actor{s1, s2} {
		err := appRepo.Create(context.Background(), &models.Application{
			JobID: job.ID, StudentID: s.ID, Resume: "r.pdf", Status: models.StatusApplied,
		})
		if err != nil {
			t.Fatalf("failed to create application: %v", err)
		}
	}

	resp, err := jobSvc.GetMyJobs(context.Background(), owner)
	if err != nil {
		t.Fatalf("GetMyJobs failed: %v", err)
	}

	if len(resp.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(resp.Jobs))
	}
	if resp.Jobs[0].CountedApplications != 2 {
		t.Errorf("expected counted applications 2, got %d", resp.Jobs[0].CountedApplications)
	}
	if resp.Jobs[0].ApplicationsCount != 2 {
		t.Errorf("expected stored counter 2, got %d", resp.Jobs[0].ApplicationsCount)
	}
}

func TestGetMyJobsNewestFirst(t *testing.T) {
	db := newMemDB()
	svc := newTestJobService(db)

	owner := seedUser(t, db, models.RoleRecruiter, true, "Acme")
	first := createJob(t, svc, owner, "Backend Engineer")
	second := createJob(t, svc, owner, "Frontend Engineer")

	resp, err := svc.GetMyJobs(context.Background(), owner)
	if err != nil {
		t.Fatalf("GetMyJobs failed: %v", err)
	}

	if len(resp.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(resp.Jobs))
	}
	if resp.Jobs[0].ID != second.ID || resp.Jobs[1].ID != first.ID {
		t.Errorf("expected newest first, got order %d, %d", resp.Jobs[0].ID, resp.Jobs[1].ID)
	}
}
