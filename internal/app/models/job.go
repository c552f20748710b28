package models

import (
	"time"
)

// Job defines the job posting model based on the 'jobs' table
type Job struct {
	ID                  int64           `json:"id" db:"id" example:"1"`
	Title               string          `json:"title" db:"title" example:"Backend Engineer"`
	Company             string          `json:"company" db:"company" example:"Acme Corp"`
	Location            string          `json:"location" db:"location" example:"Istanbul"`
	Salary              string          `json:"salary" db:"salary" example:"competitive"` // Free text by design
	Description         string          `json:"description" db:"description"`
	Requirements        []string        `json:"requirements" db:"requirements"`
	JobType             JobType         `json:"jobType" db:"job_type" example:"full-time"`
	Experience          ExperienceLevel `json:"experience" db:"experience" example:"fresher"`
	Skills              []string        `json:"skills" db:"skills"`
	PostedBy            int64           `json:"postedBy" db:"posted_by"`   // Owning recruiter (or admin) user ID
	IsActive            bool            `json:"isActive" db:"is_active"`   // Inactive jobs are hidden from public listing
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty" db:"application_deadline"`
	ApplicationsCount   int             `json:"applicationsCount" db:"applications_count"` // Denormalized counter, incremented atomically on apply
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time       `json:"updatedAt" db:"updated_at"`

	Poster *UserSummary `json:"poster,omitempty"` // Relation, no db tag
}

// JobSummary carries the subset of a job attached to applications
type JobSummary struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Company     string  `json:"company" db:"company"`
	Location    string  `json:"location,omitempty" db:"location"`
	Salary      string  `json:"salary,omitempty" db:"salary"`
	JobType     JobType `json:"jobType,omitempty" db:"job_type"`
	Description string  `json:"description,omitempty" db:"description"`
}
