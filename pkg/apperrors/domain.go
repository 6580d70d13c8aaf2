package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for common business-logic and domain
errors of the placement portal.
*/

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and the
// repo sentinels) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the domain does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Applications ---

// ErrInvalidStatusField rejects a status field outside the six recognized
// flags. The write is never attempted.
var ErrInvalidStatusField = New(
	CodeInvalidStatusField,
	"application",
	"Invalid status field",
	http.StatusBadRequest,
)

// ErrApplicationNotFound is returned when the target application id does not exist.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrAlreadyApplied rejects a second application for the same student+job pair.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrNotApplicationOwner is raised when a flag mutation or step completion
// comes from someone who neither owns the posting nor is a TPO.
var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"Only the posting company or a TPO may change application status",
	http.StatusForbidden,
)

// --- Jobs ---

// ErrJobNotFound is returned when the job posting does not exist.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrJobNotOpen rejects applications against inactive or unverified postings.
var ErrJobNotOpen = New(
	CodeInvalidOperation,
	"job",
	"Job posting is not open for applications",
	http.StatusBadRequest,
)

// ErrNotJobOwner is raised when a company modifies a posting it does not own.
var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Not authorized to modify this job",
	http.StatusForbidden,
)

// --- Auth & users ---

// ErrWeakPassword rejects short passwords at registration.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists rejects registration with a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials keeps login failures indistinguishable.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers expired and malformed refresh tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole is used when an operation is not defined for the
// caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrUserNotFound is returned when the target user does not exist.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Uploads ---

// ErrFileTooLarge rejects resume files over the configured size limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType rejects MIME types outside the configured whitelist.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
