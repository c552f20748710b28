package dto

import (
	"time"

	"github.com/jobsphere/jobsphere/internal/app/models"
)

// CreateJobRequest represents job creation data
type CreateJobRequest struct {
	Title               string                 `json:"title" binding:"required,max=100" example:"Backend Engineer"`
	Company             string                 `json:"company" binding:"omitempty,max=100" example:"Acme Corp"`
	Location            string                 `json:"location" binding:"required,max=100" example:"Berlin"`
	Salary              string                 `json:"salary" binding:"omitempty,max=50" example:"60k-80k EUR"`
	Description         string                 `json:"description" binding:"required" example:"Build and run services"`
	Requirements        []string               `json:"requirements" binding:"omitempty"`
	JobType             models.JobType         `json:"jobType" binding:"omitempty" example:"full-time"`
	Experience          models.ExperienceLevel `json:"experience" binding:"omitempty" example:"1-2 years"`
	Skills              []string               `json:"skills" binding:"omitempty"`
	ApplicationDeadline *time.Time             `json:"applicationDeadline" binding:"omitempty"`
}

// UpdateJobRequest represents a partial job update. Nil fields are left untouched.
type UpdateJobRequest struct {
	Title               *string                 `json:"title" binding:"omitempty,max=100"`
	Company             *string                 `json:"company" binding:"omitempty,max=100"`
	Location            *string                 `json:"location" binding:"omitempty,max=100"`
	Salary              *string                 `json:"salary" binding:"omitempty,max=50"`
	Description         *string                 `json:"description" binding:"omitempty"`
	Requirements        []string                `json:"requirements" binding:"omitempty"`
	JobType             *models.JobType         `json:"jobType" binding:"omitempty"`
	Experience          *models.ExperienceLevel `json:"experience" binding:"omitempty"`
	Skills              []string                `json:"skills" binding:"omitempty"`
	IsActive            *bool                   `json:"isActive" binding:"omitempty"`
	ApplicationDeadline *time.Time              `json:"applicationDeadline" binding:"omitempty"`
}

// JobFilterRequest carries the public listing filters. Unrecognized enum
// values are dropped rather than rejected.
type JobFilterRequest struct {
	Search     string `form:"search"`
	Location   string `form:"location"`
	JobType    string `form:"jobType"`
	Experience string `form:"experience"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// JobListResponse is the paginated public listing payload
type JobListResponse struct {
	Jobs        []*models.Job `json:"jobs"`
	TotalPages  int           `json:"totalPages" example:"5"`
	CurrentPage int           `json:"currentPage" example:"1"`
	Total       int64         `json:"total" example:"42"`
}

// RecruiterJobsResponse lists the actor's own jobs with a read-time
// application count per job alongside the stored counter.
type RecruiterJobsResponse struct {
	Jobs []*RecruiterJob `json:"jobs"`
}

// RecruiterJob pairs a job with the counted number of its applications
type RecruiterJob struct {
	*models.Job
	CountedApplications int64 `json:"countedApplications" example:"3"`
}
