package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/services"
	"github.com/jobsphere/jobsphere/internal/middleware"
)

// ApplicationController handles application lifecycle operations
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Apply handles application submission
// @Summary Apply to a job
// @Description Submits an application with a PDF resume (max 5MB). One application per student per job.
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param jobId formData int true "Job ID"
// @Param coverLetter formData string false "Cover letter (max 2000 chars)"
// @Param resume formData file true "Resume (PDF)"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Missing resume, duplicate application or inactive job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	// Missing file is a domain error, not a binding error
	resume, err := ctx.FormFile("resume")
	if err != nil {
		resume = nil
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), middleware.CurrentActor(ctx), &req, resume)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application, "Application submitted"))
}

// GetMyApplications handles the student's own listing
// @Summary List own applications
// @Description Returns the applications submitted by the actor, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /applications/my-applications [get]
func (c *ApplicationController) GetMyApplications(ctx *gin.Context) {
	applications, err := c.applicationService.GetMyApplications(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationListResponse{Applications: applications}, ""))
}

// GetJobApplications handles the recruiter's per-job listing
// @Summary List applications for a job
// @Description Returns all applications for one job the actor owns, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applications retrieved"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /applications/job/{jobId} [get]
func (c *ApplicationController) GetJobApplications(ctx *gin.Context) {
	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applications, err := c.applicationService.GetJobApplications(ctx.Request.Context(), middleware.CurrentActor(ctx), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationListResponse{Applications: applications}, ""))
}

// GetRecruiterApplications handles the recruiter's aggregate listing
// @Summary List applications across own jobs
// @Description Returns applications for every job the actor owns, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden or pending approval"
// @Router /applications/recruiter [get]
func (c *ApplicationController) GetRecruiterApplications(ctx *gin.Context) {
	applications, err := c.applicationService.GetRecruiterApplications(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationListResponse{Applications: applications}, ""))
}

// UpdateStatus handles status changes by the owning recruiter
// @Summary Update application status
// @Description Sets the status (Applied, Reviewed, Shortlisted, Accepted or Rejected) with optional private notes
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx.Request.Context(), middleware.CurrentActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application, "Status updated"))
}

// GetApplication handles reading one application
// @Summary Get an application
// @Description Returns one application if the actor submitted it, owns its job, or is an admin
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	application, err := c.applicationService.GetApplication(ctx.Request.Context(), middleware.CurrentActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application, ""))
}
