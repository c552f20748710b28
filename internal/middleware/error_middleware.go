package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/app/models/dto"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
	"github.com/jobsphere/jobsphere/internal/pkg/logger"
)

// HandleAPIError translates domain errors into HTTP responses. Clients get
// the domain message verbatim; unexpected errors get a generic message, with
// the detail included only outside release mode.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrJobNotFound,
		apperrors.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeNotFound, err.Error()))

	case apperrors.Is(err, apperrors.ErrUnauthenticated,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, err.Error()))

	case apperrors.Is(err, apperrors.ErrPermissionDenied,
		apperrors.ErrRecruiterNotApproved):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, err.Error()))

	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrAlreadyApplied,
		apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeConflict, err.Error()))

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrInvalidRole,
		apperrors.ErrJobInactive,
		apperrors.ErrInvalidStatus,
		apperrors.ErrResumeRequired,
		apperrors.ErrResumeNotPDF,
		apperrors.ErrResumeTooLarge,
		apperrors.ErrNotARecruiter,
		apperrors.ErrAdminNotDeletable):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		message := "Internal server error"
		if gin.Mode() != gin.ReleaseMode {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, message))
	}
}

// HandleValidationError responds to request binding failures
func HandleValidationError(c *gin.Context, err error) {
	message := "Please provide all required fields"
	if err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, message))
}
