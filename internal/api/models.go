package api

import "github.com/google/uuid"

// Common request structures. Responses reuse the domain entities directly;
// their JSON tags already exclude credentials.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Name      string `json:"name"       validate:"required"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	IsCompany bool   `json:"is_company"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the payload for the token refresh endpoint.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateUserRequest defines the payload for the profile update endpoint.
// Omitted fields are left unchanged. Role and password are not updatable
// through this endpoint.
type UpdateUserRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name"  validate:"omitempty"`
}

// CreateJobRequest defines the payload for the job creation endpoint.
type CreateJobRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	SalaryFrom  int    `json:"salary_from" validate:"gte=0"`
	SalaryTo    int    `json:"salary_to"   validate:"gte=0"`
}

// CreateResponseRequest defines the payload for submitting a job application.
type CreateResponseRequest struct {
	JobID   uuid.UUID `json:"job_id"  validate:"required"`
	Message string    `json:"message" validate:"required"`
}
