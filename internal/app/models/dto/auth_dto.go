package dto

import "github.com/jobsphere/jobsphere/internal/app/models"

// RegisterRequest represents registration data
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,max=50" example:"Jane Doe"`
	Email    string          `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string          `json:"password" binding:"required,min=6" example:"secret123"`
	Role     models.RoleType `json:"role" binding:"omitempty" example:"student"`
	Company  string          `json:"company" binding:"omitempty,max=100" example:"Acme Corp"`
	Phone    string          `json:"phone" binding:"omitempty,max=20" example:"+15550100"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned on successful register/login
type AuthResponse struct {
	ID         int64           `json:"id" example:"1"`
	Name       string          `json:"name" example:"Jane Doe"`
	Email      string          `json:"email" example:"jane@example.com"`
	Role       models.RoleType `json:"role" example:"student"`
	IsApproved bool            `json:"isApproved" example:"true"`
	Token      string          `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// UpdateProfileRequest carries the mutable profile fields. Pointer fields
// distinguish "not supplied" from "set to empty".
type UpdateProfileRequest struct {
	Name    *string  `json:"name" binding:"omitempty,max=50"`
	Company *string  `json:"company" binding:"omitempty,max=100"`
	Phone   *string  `json:"phone" binding:"omitempty,max=20"`
	Bio     *string  `json:"bio" binding:"omitempty,max=500"`
	Skills  []string `json:"skills" binding:"omitempty"`
}

// NewAuthResponse builds the auth payload from a user and a signed token
func NewAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		IsApproved: user.IsApproved,
		Token:      token,
	}
}
