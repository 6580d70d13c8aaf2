package dto

import "time"

// --- Job Requests ---

type ProcessStepInput struct {
	StepNumber      int        `json:"stepNumber" validate:"required,min=1"`
	StepName        string     `json:"stepName" validate:"required,max=200"`
	Description     string     `json:"description" validate:"omitempty,max=2000"`
	FromDate        *time.Time `json:"fromDate,omitempty"`
	TillDate        *time.Time `json:"tillDate,omitempty"`
	Location        string     `json:"location" validate:"omitempty,max=200"`
	DurationMinutes *int       `json:"durationMinutes,omitempty" validate:"omitempty,min=1"`
}

type CreateJobRequest struct {
	JobTitle            string             `json:"jobTitle" validate:"required,min=2,max=200"`
	Description         string             `json:"description" validate:"omitempty,max=10000"`
	Location            string             `json:"location" validate:"omitempty,max=200"`
	ImgURL              string             `json:"imgurl" validate:"omitempty,url"`
	Salary              *float64           `json:"salary,omitempty" validate:"omitempty,min=0"`
	ApplicationDeadline *time.Time         `json:"applicationDeadline,omitempty"`
	Degree              string             `json:"degree" validate:"omitempty,max=100"`
	MinCGPA             *float64           `json:"minCgpa,omitempty" validate:"omitempty,min=0,max=10"`
	MinExperienceMonths *int               `json:"minExperienceMonths,omitempty" validate:"omitempty,min=0"`
	Branches            []string           `json:"branches,omitempty" validate:"omitempty,dive,max=100"`
	Skills              []string           `json:"skills,omitempty" validate:"omitempty,dive,max=100"`
	ProcessSteps        []ProcessStepInput `json:"processSteps,omitempty" validate:"omitempty,dive"`
}

type UpdateJobRequest struct {
	JobTitle            *string    `json:"jobTitle,omitempty" validate:"omitempty,min=2,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,max=10000"`
	Location            *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	ImgURL              *string    `json:"imgurl,omitempty" validate:"omitempty,url"`
	Salary              *float64   `json:"salary,omitempty" validate:"omitempty,min=0"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Active              *bool      `json:"active,omitempty"`
	Degree              *string    `json:"degree,omitempty" validate:"omitempty,max=100"`
	MinCGPA             *float64   `json:"minCgpa,omitempty" validate:"omitempty,min=0,max=10"`
	MinExperienceMonths *int       `json:"minExperienceMonths,omitempty" validate:"omitempty,min=0"`
}

type VerifyJobRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// JobListQuery filters the open job listing.
type JobListQuery struct {
	Branch   string   `form:"branch" validate:"omitempty,max=100"`
	Degree   string   `form:"degree" validate:"omitempty,max=100"`
	Location string   `form:"location" validate:"omitempty,max=200"`
	MaxCGPA  *float64 `form:"maxCgpa" validate:"omitempty,min=0,max=10"`
}
