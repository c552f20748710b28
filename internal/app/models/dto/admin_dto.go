package dto

import "github.com/jobsphere/jobsphere/internal/app/models"

// UserFilterRequest carries the admin user-listing filters
type UserFilterRequest struct {
	Role       string `form:"role"`
	IsApproved *bool  `form:"isApproved"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// UserListResponse is the paginated admin user listing payload
type UserListResponse struct {
	Users       []*models.User `json:"users"`
	TotalPages  int            `json:"totalPages" example:"3"`
	CurrentPage int            `json:"currentPage" example:"1"`
	Total       int64          `json:"total" example:"57"`
}

// PendingRecruitersResponse lists recruiters awaiting approval
type PendingRecruitersResponse struct {
	Recruiters []*models.User `json:"recruiters"`
}

// StatsResponse is the admin dashboard aggregate
type StatsResponse struct {
	TotalUsers        int64          `json:"totalUsers" example:"120"`
	TotalStudents     int64          `json:"totalStudents" example:"90"`
	TotalRecruiters   int64          `json:"totalRecruiters" example:"25"`
	PendingRecruiters int64          `json:"pendingRecruiters" example:"4"`
	TotalJobs         int64          `json:"totalJobs" example:"60"`
	ActiveJobs        int64          `json:"activeJobs" example:"48"`
	TotalApplications int64          `json:"totalApplications" example:"300"`
	RecentUsers       []*models.User `json:"recentUsers"`
	RecentJobs        []*models.Job  `json:"recentJobs"`
}
