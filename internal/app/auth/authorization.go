package auth

import "github.com/jobsphere/jobsphere/internal/app/models"

// Actor is the authenticated identity making a request. A nil *Actor means
// the request carried no valid token.
type Actor struct {
	ID         int64
	Role       models.RoleType
	IsApproved bool
}

// Decision is the outcome of an authorization predicate. Callers translate
// it into an HTTP status; the predicates themselves never touch transport.
type Decision int

const (
	Allowed Decision = iota
	DeniedUnauthenticated
	DeniedForbidden
	DeniedUnapproved
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case DeniedUnauthenticated:
		return "denied-unauthenticated"
	case DeniedForbidden:
		return "denied-forbidden"
	case DeniedUnapproved:
		return "denied-unapproved"
	default:
		return "unknown"
	}
}

// CanPostJobs decides whether the actor may create job postings.
// Admins always may; recruiters only once approved.
func CanPostJobs(actor *Actor) Decision {
	if actor == nil {
		return DeniedUnauthenticated
	}
	switch actor.Role {
	case models.RoleAdmin:
		return Allowed
	case models.RoleRecruiter:
		if !actor.IsApproved {
			return DeniedUnapproved
		}
		return Allowed
	default:
		return DeniedForbidden
	}
}

// CanManageJob decides whether the actor may update or delete a job owned
// by postedBy. The approval gate fires before the ownership check so an
// unapproved recruiter is refused even for their own postings.
func CanManageJob(actor *Actor, postedBy int64) Decision {
	if actor == nil {
		return DeniedUnauthenticated
	}
	switch actor.Role {
	case models.RoleAdmin:
		return Allowed
	case models.RoleRecruiter:
		if !actor.IsApproved {
			return DeniedUnapproved
		}
		if actor.ID != postedBy {
			return DeniedForbidden
		}
		return Allowed
	default:
		return DeniedForbidden
	}
}

// CanViewOwnedJobs decides whether the actor may list their own postings
func CanViewOwnedJobs(actor *Actor) Decision {
	return CanPostJobs(actor)
}

// CanReviewApplications decides whether the actor may read or update the
// applications of a job owned by postedBy
func CanReviewApplications(actor *Actor, postedBy int64) Decision {
	return CanManageJob(actor, postedBy)
}

// CanApply decides whether the actor may submit an application
func CanApply(actor *Actor) Decision {
	if actor == nil {
		return DeniedUnauthenticated
	}
	if actor.Role == models.RoleStudent || actor.Role == models.RoleAdmin {
		return Allowed
	}
	return DeniedForbidden
}

// CanViewOwnApplications decides whether the actor may list the
// applications they submitted
func CanViewOwnApplications(actor *Actor) Decision {
	return CanApply(actor)
}

// CanViewApplication decides whether the actor may read one application.
// The submitting student, the approved recruiter owning the parent job,
// and admins qualify.
func CanViewApplication(actor *Actor, studentID, jobPostedBy int64) Decision {
	if actor == nil {
		return DeniedUnauthenticated
	}
	if actor.Role == models.RoleAdmin {
		return Allowed
	}
	if actor.ID == studentID {
		return Allowed
	}
	if actor.Role == models.RoleRecruiter {
		if !actor.IsApproved {
			return DeniedUnapproved
		}
		if actor.ID == jobPostedBy {
			return Allowed
		}
	}
	return DeniedForbidden
}

// CanModerate decides whether the actor may use the admin endpoints
func CanModerate(actor *Actor) Decision {
	if actor == nil {
		return DeniedUnauthenticated
	}
	if actor.Role == models.RoleAdmin {
		return Allowed
	}
	return DeniedForbidden
}
