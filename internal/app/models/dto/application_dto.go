package dto

import "github.com/jobsphere/jobsphere/internal/app/models"

// ApplyRequest represents the multipart form fields for submitting an
// application. The resume file travels separately as a file part.
type ApplyRequest struct {
	JobID       int64  `form:"jobId" binding:"required" example:"7"`
	CoverLetter string `form:"coverLetter" binding:"omitempty,max=2000"`
}

// UpdateApplicationStatusRequest represents a status change by a recruiter
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" example:"Shortlisted"`
	Notes  *string                  `json:"notes" binding:"omitempty,max=1000"`
}

// ApplicationListResponse wraps a list of populated applications
type ApplicationListResponse struct {
	Applications []*models.Application `json:"applications"`
}
