package service

import (
	"errors"
	"fmt"
)

// ErrForbidden is the base error for every role or ownership policy
// violation. Specific violations wrap it so callers can match either the
// broad class or the exact rule.
var ErrForbidden = errors.New("forbidden")

// Policy violation errors
var (
	// ErrUpdateOtherUser indicates an attempt to edit a profile other than
	// the authenticated user's own.
	ErrUpdateOtherUser = fmt.Errorf("%w: users can only update their own profile", ErrForbidden)

	// ErrOnlyCompanyCanCreateJob indicates an applicant account tried to
	// post a job.
	ErrOnlyCompanyCanCreateJob = fmt.Errorf("%w: only company users can create jobs", ErrForbidden)

	// ErrOnlyJobOwnerCanDeleteJob indicates a delete attempt by a user who
	// does not own the job.
	ErrOnlyJobOwnerCanDeleteJob = fmt.Errorf("%w: only the job owner can delete a job", ErrForbidden)

	// ErrOnlyApplicantCanRespond indicates a company account tried to submit
	// a response to a job.
	ErrOnlyApplicantCanRespond = fmt.Errorf("%w: only applicant users can respond to jobs", ErrForbidden)

	// ErrOnlyApplicantResponses indicates a company account requested the
	// applicant-facing response listing.
	ErrOnlyApplicantResponses = fmt.Errorf("%w: only applicant users can list their responses", ErrForbidden)

	// ErrOnlyCompanyResponses indicates an applicant account requested the
	// company-facing response listing.
	ErrOnlyCompanyResponses = fmt.Errorf("%w: only company users can list responses to their jobs", ErrForbidden)
)

// IsForbiddenError checks if the error is any kind of policy violation.
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}
