package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/app/controllers"
	"github.com/jobsphere/jobsphere/internal/middleware"
)

// SetupRouter registers all API routes on the given engine.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobController.ListJobs)

		jobsAuth := jobs.Group("")
		jobsAuth.Use(authMiddleware.JWTAuth())
		{
			jobsAuth.GET("/recruiter/my-jobs", jobController.GetMyJobs)
			jobsAuth.POST("", jobController.CreateJob)
			jobsAuth.PUT("/:id", jobController.UpdateJob)
			jobsAuth.DELETE("/:id", jobController.DeleteJob)
		}

		jobs.GET("/:id", jobController.GetJob)
	}

	// Authenticated routes
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		me := authenticated.Group("/auth")
		{
			me.GET("/me", authController.GetMe)
			me.PUT("/profile", authController.UpdateProfile)
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("", applicationController.Apply)
			applications.GET("/my-applications", applicationController.GetMyApplications)
			applications.GET("/recruiter", applicationController.GetRecruiterApplications)
			applications.GET("/job/:jobId", applicationController.GetJobApplications)
			applications.PUT("/:id/status", applicationController.UpdateStatus)
			applications.GET("/:id", applicationController.GetApplication)
		}

		admin := authenticated.Group("/admin")
		{
			admin.GET("/stats", adminController.GetStats)
			admin.GET("/users", adminController.ListUsers)
			admin.DELETE("/users/:id", adminController.DeleteUser)
			admin.GET("/recruiters/pending", adminController.GetPendingRecruiters)
			admin.PUT("/recruiters/:id/approve", adminController.ApproveRecruiter)
			admin.DELETE("/recruiters/:id/reject", adminController.RejectRecruiter)
		}
	}
}
