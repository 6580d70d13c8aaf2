package dto

import "placement_backend/internal/models"

// --- Application Requests ---

type ApplyRequest struct {
	JobID    string `json:"jobId" validate:"required,uuid"`
	ResumeID string `json:"resumeId" validate:"omitempty,uuid"`
}

// UpdateStatusRequest names exactly one of the six status flags and the
// value to set it to. The field whitelist is enforced in the service, not
// here, so an unknown name maps to the dedicated invalid-field error.
type UpdateStatusRequest struct {
	StatusField string `json:"statusField" validate:"required"`
	Value       *bool  `json:"value" validate:"required"`
}

type CompleteStepRequest struct {
	StepID string `json:"stepId" validate:"required,uuid"`
}

// ApplicationListQuery filters an application listing by projected stage.
type ApplicationListQuery struct {
	Stage string `form:"stage" validate:"omitempty,is-stage"`
}

// --- Application Responses ---

// ApplicationResponse is an application plus its projected stage. The stage
// is derived on read and never stored.
type ApplicationResponse struct {
	models.Application
	Stage models.Stage `json:"stage"`
}

func ApplicationFromModel(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		Application: *app,
		Stage:       app.Stage(),
	}
}

func ApplicationsFromModels(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, ApplicationFromModel(&apps[i]))
	}
	return out
}
