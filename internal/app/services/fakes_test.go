package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jobsphere/jobsphere/internal/app/models"
	"github.com/jobsphere/jobsphere/internal/app/repositories"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
)

// memDB is a shared in-memory backing store for the repository fakes
type memDB struct {
	mu           sync.Mutex
	users        map[int64]*models.User
	jobs         map[int64]*models.Job
	applications map[int64]*models.Application
	nextUserID   int64
	nextJobID    int64
	nextAppID    int64
}

func newMemDB() *memDB {
	return &memDB{
		users:        make(map[int64]*models.User),
		jobs:         make(map[int64]*models.Job),
		applications: make(map[int64]*models.Application),
	}
}

type fakeUserRepo struct {
	db *memDB
}

type fakeJobRepo struct {
	db *memDB
}

type fakeApplicationRepo struct {
	db *memDB
}

var (
	_ repositories.IUserRepository        = (*fakeUserRepo)(nil)
	_ repositories.IJobRepository         = (*fakeJobRepo)(nil)
	_ repositories.IApplicationRepository = (*fakeApplicationRepo)(nil)
)

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	r.db.nextUserID++
	user.ID = r.db.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.db.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, user := range r.db.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, user := range r.db.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	clone := *user
	r.db.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) SetApproved(_ context.Context, id int64, approved bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsApproved = approved
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.db.users, id)
	return nil
}

func (r *fakeUserRepo) DeleteCascade(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}

	for jobID, job := range r.db.jobs {
		if job.PostedBy != id {
			continue
		}
		for appID, app := range r.db.applications {
			if app.JobID == jobID {
				delete(r.db.applications, appID)
			}
		}
		delete(r.db.jobs, jobID)
	}

	for appID, app := range r.db.applications {
		if app.StudentID == id {
			delete(r.db.applications, appID)
		}
	}

	delete(r.db.users, id)
	return nil
}

func (r *fakeUserRepo) GetAll(_ context.Context, role string, isApproved *bool, page, pageSize int) ([]*models.User, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var matched []*models.User
	for _, user := range r.db.users {
		if role != "" && string(user.Role) != role {
			continue
		}
		if isApproved != nil && user.IsApproved != *isApproved {
			continue
		}
		clone := *user
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []*models.User{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeUserRepo) GetPendingRecruiters(_ context.Context) ([]*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var pending []*models.User
	for _, user := range r.db.users {
		if user.Role == models.RoleRecruiter && !user.IsApproved {
			clone := *user
			pending = append(pending, &clone)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID > pending[j].ID })
	if pending == nil {
		pending = []*models.User{}
	}
	return pending, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role models.RoleType) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var count int64
	for _, user := range r.db.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.users)), nil
}

func (r *fakeUserRepo) CountPendingRecruiters(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var count int64
	for _, user := range r.db.users {
		if user.Role == models.RoleRecruiter && !user.IsApproved {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) GetRecent(_ context.Context, limit int) ([]*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var users []*models.User
	for _, user := range r.db.users {
		clone := *user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	if len(users) > limit {
		users = users[:limit]
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextJobID++
	job.ID = r.db.nextJobID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	clone := *job
	r.db.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	job, ok := r.db.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	clone := *job
	if poster, ok := r.db.users[job.PostedBy]; ok {
		clone.Poster = &models.UserSummary{ID: poster.ID, Name: poster.Name, Company: poster.Company}
	}
	return &clone, nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *models.Job) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.jobs[job.ID]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	clone := *job
	clone.ApplicationsCount = existing.ApplicationsCount
	r.db.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) DeleteCascade(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	for appID, app := range r.db.applications {
		if app.JobID == id {
			delete(r.db.applications, appID)
		}
	}
	delete(r.db.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(_ context.Context, filter repositories.JobFilter) ([]*models.Job, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var matched []*models.Job
	for _, job := range r.db.jobs {
		if !job.IsActive {
			continue
		}
		if filter.Search != "" &&
			!contains(job.Title, filter.Search) &&
			!contains(job.Company, filter.Search) &&
			!contains(job.Description, filter.Search) {
			continue
		}
		if filter.Location != "" && !contains(job.Location, filter.Location) {
			continue
		}
		if filter.JobType != "" && models.ValidJobType(models.JobType(filter.JobType)) && string(job.JobType) != filter.JobType {
			continue
		}
		if filter.Experience != "" && models.ValidExperienceLevel(models.ExperienceLevel(filter.Experience)) && string(job.Experience) != filter.Experience {
			continue
		}
		clone := *job
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []*models.Job{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeJobRepo) GetByPoster(_ context.Context, posterID int64) ([]*models.Job, []int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var jobs []*models.Job
	for _, job := range r.db.jobs {
		if job.PostedBy != posterID {
			continue
		}
		clone := *job
		jobs = append(jobs, &clone)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })

	counts := make([]int64, len(jobs))
	for i, job := range jobs {
		for _, app := range r.db.applications {
			if app.JobID == job.ID {
				counts[i]++
			}
		}
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}
	return jobs, counts, nil
}

func (r *fakeJobRepo) Count(_ context.Context, activeOnly bool) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var count int64
	for _, job := range r.db.jobs {
		if activeOnly && !job.IsActive {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeJobRepo) GetRecent(_ context.Context, limit int) ([]*models.Job, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var jobs []*models.Job
	for _, job := range r.db.jobs {
		clone := *job
		jobs = append(jobs, &clone)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}
	return jobs, nil
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.applications {
		if existing.JobID == application.JobID && existing.StudentID == application.StudentID {
			return apperrors.ErrAlreadyApplied
		}
	}

	r.db.nextAppID++
	application.ID = r.db.nextAppID
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	clone := *application
	r.db.applications[application.ID] = &clone

	if job, ok := r.db.jobs[application.JobID]; ok {
		job.ApplicationsCount++
	}
	return nil
}

func (r *fakeApplicationRepo) populate(app *models.Application) *models.Application {
	clone := *app
	if job, ok := r.db.jobs[app.JobID]; ok {
		clone.Job = &models.JobSummary{
			ID:       job.ID,
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			Salary:   job.Salary,
			JobType:  job.JobType,
		}
	}
	if student, ok := r.db.users[app.StudentID]; ok {
		clone.Student = &models.UserSummary{
			ID:     student.ID,
			Name:   student.Name,
			Email:  student.Email,
			Phone:  student.Phone,
			Skills: student.Skills,
		}
	}
	return &clone
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*models.Application, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	app, ok := r.db.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return r.populate(app), nil
}

func (r *fakeApplicationRepo) collect(match func(*models.Application) bool) []*models.Application {
	var apps []*models.Application
	for _, app := range r.db.applications {
		if match(app) {
			apps = append(apps, r.populate(app))
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID > apps[j].ID })
	if apps == nil {
		apps = []*models.Application{}
	}
	return apps
}

func (r *fakeApplicationRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Application, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.collect(func(a *models.Application) bool { return a.StudentID == studentID }), nil
}

func (r *fakeApplicationRepo) GetByJob(_ context.Context, jobID int64) ([]*models.Application, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.collect(func(a *models.Application) bool { return a.JobID == jobID }), nil
}

func (r *fakeApplicationRepo) GetByRecruiter(_ context.Context, recruiterID int64) ([]*models.Application, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.collect(func(a *models.Application) bool {
		job, ok := r.db.jobs[a.JobID]
		return ok && job.PostedBy == recruiterID
	}), nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status models.ApplicationStatus, notes *string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	app, ok := r.db.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.Status = status
	if notes != nil {
		app.Notes = notes
	}
	return nil
}

func (r *fakeApplicationRepo) CountAll(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.applications)), nil
}

// fakeStorage records saved files without touching the filesystem
type fakeStorage struct {
	mu    sync.Mutex
	saved map[string]bool
	next  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string]bool)}
}

func (s *fakeStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	path := fmt.Sprintf("uploads/%s/file-%d.pdf", subPath, s.next)
	s.saved[path] = true
	return path, nil
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return s.SaveFileWithPath(fileHeader, "")
}

func (s *fakeStorage) DeleteFile(filePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, filePath)
	return nil
}
