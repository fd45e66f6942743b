package domain

import "errors"

// Account errors
var (
	ErrUserExists         = errors.New("user already exists")             // 409
	ErrUserNotFound       = errors.New("user not found")                  // 404
	ErrInvalidCredentials = errors.New("invalid email or password")       // 401
	ErrMissingCredentials = errors.New("email and password are required") // 400
	ErrInvalidRole        = errors.New("invalid role")                    // 400
)

// Token and access errors
var (
	ErrMissingToken = errors.New("token is missing")             // 401
	ErrInvalidToken = errors.New("token is invalid")             // 401
	ErrForbidden    = errors.New("cannot perform that function") // 403
	ErrRateLimited  = errors.New("too many requests")            // 429
)

// Content errors
var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInsightNotFound     = errors.New("insight not found")
	ErrCaseStudyNotFound   = errors.New("case study not found")
	ErrTeamMemberNotFound  = errors.New("team member not found")
	ErrContentTypeNotFound = errors.New("content type not found")
)
