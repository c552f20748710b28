package services

import (
	"github.com/jobsphere/jobsphere/internal/app/auth"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
)

// decisionError translates an authorization decision into the matching
// domain error. Allowed yields nil.
func decisionError(d auth.Decision) error {
	switch d {
	case auth.Allowed:
		return nil
	case auth.DeniedUnauthenticated:
		return apperrors.ErrUnauthenticated
	case auth.DeniedUnapproved:
		return apperrors.ErrRecruiterNotApproved
	default:
		return apperrors.ErrPermissionDenied
	}
}
