package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/services"
	"github.com/jobsphere/jobsphere/internal/middleware"
)

// JobController handles job posting operations
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// ListJobs handles the public job listing
// @Summary List active jobs
// @Description Lists active jobs with optional search, location, jobType and experience filters. Unrecognized enum values are ignored.
// @Tags jobs
// @Produce json
// @Param search query string false "Substring match against title, company or description"
// @Param location query string false "Substring match against location"
// @Param jobType query string false "Exact match: full-time, part-time, contract, internship, remote"
// @Param experience query string false "Exact match: fresher, 1-2 years, 2-5 years, 5+ years"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Jobs retrieved"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	var filter dto.JobFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.jobService.ListJobs(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetJob handles reading one job
// @Summary Get a job
// @Description Returns one job by ID with its poster summary
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job retrieved"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	job, err := c.jobService.GetJob(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job, ""))
}

// CreateJob handles job creation
// @Summary Create a job
// @Description Creates a job posting owned by the authenticated approved recruiter or admin
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job data"
// @Success 201 {object} dto.APIResponse{data=models.Job} "Job created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden or pending approval"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(job, "Job created"))
}

// UpdateJob handles partial job updates
// @Summary Update a job
// @Description Applies the supplied fields to a job owned by the actor (or any job for admins)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job updated"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), middleware.CurrentActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job, "Job updated"))
}

// DeleteJob handles job deletion
// @Summary Delete a job
// @Description Deletes a job and all applications referencing it
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse "Job deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), middleware.CurrentActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Job deleted"))
}

// GetMyJobs handles the recruiter's own listing
// @Summary List own jobs
// @Description Returns the actor's postings with a per-job application count recomputed from the applications table
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RecruiterJobsResponse} "Jobs retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden or pending approval"
// @Router /jobs/recruiter/my-jobs [get]
func (c *JobController) GetMyJobs(ctx *gin.Context) {
	resp, err := c.jobService.GetMyJobs(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}
