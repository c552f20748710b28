package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/services"
	"github.com/jobsphere/jobsphere/internal/middleware"
	"github.com/jobsphere/jobsphere/internal/pkg/helpers"
)

// AdminController handles moderation operations
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetStats handles the dashboard aggregate
// @Summary Platform statistics
// @Description Returns user, job and application counts plus the five most recent users and jobs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Statistics retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// ListUsers handles the paginated user listing
// @Summary List users
// @Description Lists users with optional role and approval filters, passwords excluded
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param isApproved query bool false "Filter by approval flag"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Users retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	filter := dto.UserFilterRequest{
		Role: ctx.Query("role"),
	}
	if approvedStr := ctx.Query("isApproved"); approvedStr != "" {
		if approved, err := strconv.ParseBool(approvedStr); err == nil {
			filter.IsApproved = &approved
		}
	}
	filter.Page, filter.Limit = helpers.ParsePaginationParams(ctx, helpers.AdminPageSize)

	resp, err := c.adminService.ListUsers(ctx.Request.Context(), middleware.CurrentActor(ctx), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// DeleteUser handles moderated user removal
// @Summary Delete a user
// @Description Deletes a non-admin user together with their jobs and applications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse "User deleted"
// @Failure 400 {object} dto.ErrorResponse "Admin users cannot be deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), middleware.CurrentActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "User deleted"))
}

// GetPendingRecruiters handles the approval queue listing
// @Summary List pending recruiters
// @Description Returns unapproved recruiters, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PendingRecruitersResponse} "Pending recruiters retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /admin/recruiters/pending [get]
func (c *AdminController) GetPendingRecruiters(ctx *gin.Context) {
	recruiters, err := c.adminService.GetPendingRecruiters(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PendingRecruitersResponse{Recruiters: recruiters}, ""))
}

// ApproveRecruiter handles recruiter approval
// @Summary Approve a recruiter
// @Description Grants a pending recruiter posting rights
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "Recruiter approved"
// @Failure 400 {object} dto.ErrorResponse "Target is not a recruiter"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/recruiters/{id}/approve [put]
func (c *AdminController) ApproveRecruiter(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.adminService.ApproveRecruiter(ctx.Request.Context(), middleware.CurrentActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Recruiter approved"))
}

// RejectRecruiter handles recruiter rejection
// @Summary Reject a recruiter
// @Description Deletes a pending recruiter's account outright
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse "Recruiter rejected"
// @Failure 400 {object} dto.ErrorResponse "Target is not a recruiter"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/recruiters/{id}/reject [delete]
func (c *AdminController) RejectRecruiter(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.adminService.RejectRecruiter(ctx.Request.Context(), middleware.CurrentActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Recruiter rejected"))
}
