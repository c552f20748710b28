package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/services"
	"github.com/jobsphere/jobsphere/internal/middleware"
)

// AuthController handles registration, login and profile operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles new account creation
// @Summary Register a new user
// @Description Creates a student or recruiter account. Recruiters start unapproved and need admin approval before posting jobs.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate email"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "User registered successfully"))
}

// Login handles credential verification
// @Summary Log in
// @Description Verifies email and password and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Logged in successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Logged in successfully"))
}

// GetMe returns the authenticated user's profile
// @Summary Get current user
// @Description Returns the profile of the authenticated user, password excluded
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) GetMe(ctx *gin.Context) {
	user, err := c.authService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

// UpdateProfile updates the authenticated user's profile fields
// @Summary Update profile
// @Description Applies the supplied subset of profile fields
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.User} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.authService.UpdateProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Profile updated"))
}
