package models

type UserStatus string
type UserRole string
type Stage string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleStudent UserRole = "student"
	UserRoleCompany UserRole = "company"
	UserRoleTPO     UserRole = "tpo"
)

// Stage is the single human-readable label derived from an application's
// status flag combination.
const (
	StageApplied     Stage = "Applied"
	StageShortlisted Stage = "Shortlisted"
	StageInterview   Stage = "Interview"
	StageTechnical   Stage = "Technical"
	StageOffer       Stage = "Offer"
	StageAccepted    Stage = "Accepted"
	StageUnknown     Stage = "Unknown"
)
