package models

import (
	"time"
)

// Application defines the application model based on the 'applications' table.
// The pair (job_id, student_id) is unique: a student applies to a job at most once.
type Application struct {
	ID          int64             `json:"id" db:"id" example:"1"`
	JobID       int64             `json:"jobId" db:"job_id"`
	StudentID   int64             `json:"studentId" db:"student_id"`
	Resume      string            `json:"resume" db:"resume"` // Stored path of the uploaded PDF
	CoverLetter *string           `json:"coverLetter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status" example:"Applied"`
	Notes       *string           `json:"notes,omitempty" db:"notes"` // Recruiter-private notes
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	Job     *JobSummary  `json:"job,omitempty"`     // Relation, no db tag
	Student *UserSummary `json:"student,omitempty"` // Relation, no db tag
}
