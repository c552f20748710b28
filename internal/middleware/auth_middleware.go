package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/jobsphere/jobsphere/internal/app/auth"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/app/repositories"
	"github.com/jobsphere/jobsphere/internal/pkg/auth"
)

const actorContextKey = "actor"

// AuthMiddleware validates bearer tokens and loads the acting user
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the Authorization header and attaches the actor to the
// context. The user is reloaded from the database so approval changes take
// effect immediately, not at next login.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Invalid token format"))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message))
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "User no longer exists"))
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("userRole", string(user.Role))
		c.Set(actorContextKey, &appauth.Actor{
			ID:         user.ID,
			Role:       user.Role,
			IsApproved: user.IsApproved,
		})

		c.Next()
	}
}

// CurrentActor returns the actor attached by JWTAuth, or nil when the
// request is unauthenticated
func CurrentActor(c *gin.Context) *appauth.Actor {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return nil
	}
	actor, ok := value.(*appauth.Actor)
	if !ok {
		return nil
	}
	return actor
}

// CurrentUserID returns the authenticated user's ID, or 0 when anonymous
func CurrentUserID(c *gin.Context) int64 {
	actor := CurrentActor(c)
	if actor == nil {
		return 0
	}
	return actor.ID
}
