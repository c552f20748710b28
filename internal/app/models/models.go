package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleRecruiter RoleType = "recruiter"
	RoleAdmin     RoleType = "admin"
)

// ValidRegistrationRole reports whether a role may be chosen at registration.
// Admin accounts are seeded, never self-registered.
func ValidRegistrationRole(role RoleType) bool {
	return role == RoleStudent || role == RoleRecruiter
}

// JobType defines the employment type of a job posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

// ValidJobType reports whether the value is one of the five job types
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

// ExperienceLevel defines the required experience for a job posting
type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "fresher"
	ExperienceJunior  ExperienceLevel = "1-2 years"
	ExperienceMid     ExperienceLevel = "2-5 years"
	ExperienceSenior  ExperienceLevel = "5+ years"
)

// ValidExperienceLevel reports whether the value is one of the four levels
func ValidExperienceLevel(e ExperienceLevel) bool {
	switch e {
	case ExperienceFresher, ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

// ApplicationStatus defines the review state of an application
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusReviewed    ApplicationStatus = "Reviewed"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// ValidApplicationStatus reports whether the value is one of the five statuses.
// Any valid status may replace any other; there is no forward-only progression.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}
