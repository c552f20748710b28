package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`                        // Unique identifier for the user
	Name           string    `json:"name" db:"name" example:"Jane Doe"`             // Display name
	Email          string    `json:"email" db:"email" example:"jane@example.com"`   // Email address, globally unique, stored lowercase
	Password       string    `json:"-" db:"password"`                               // Bcrypt hash (excluded from JSON)
	Role           RoleType  `json:"role" db:"role" example:"student"`              // student, recruiter or admin
	IsApproved     bool      `json:"isApproved" db:"is_approved" example:"true"`    // Recruiters start false and need admin approval
	Company        *string   `json:"company,omitempty" db:"company"`                // Recruiters only
	Phone          *string   `json:"phone,omitempty" db:"phone"`                    // Contact phone (nullable)
	Bio            *string   `json:"bio,omitempty" db:"bio"`                        // Short bio, max 500 chars
	Skills         []string  `json:"skills" db:"skills"`                            // Ordered list of skills
	Resume         *string   `json:"resume,omitempty" db:"resume"`                  // Stored resume path (nullable)
	ProfilePicture *string   `json:"profilePicture,omitempty" db:"profile_picture"` // Stored picture path (nullable)
	CreatedAt      time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

// UserSummary carries the public subset of a user attached to jobs and applications
type UserSummary struct {
	ID      int64    `json:"id" db:"id"`
	Name    string   `json:"name" db:"name"`
	Email   string   `json:"email,omitempty" db:"email"`
	Company *string  `json:"company,omitempty" db:"company"`
	Phone   *string  `json:"phone,omitempty" db:"phone"`
	Skills  []string `json:"skills,omitempty" db:"skills"`
	Bio     *string  `json:"bio,omitempty" db:"bio"`
}
