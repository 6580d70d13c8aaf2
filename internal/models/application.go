package models

import "time"

// Application is a student's submission for one job posting. Progress
// through the hiring pipeline is tracked as six independent boolean flags;
// the flags are not mutually exclusive and no monotonic ordering is
// enforced, so a later-stage flag may be set while an earlier one is false.
type Application struct {
	BaseModel
	StudentID       string    `gorm:"not null;index" json:"studentId"`
	JobID           string    `gorm:"not null;index" json:"jobId"`
	ResumeID        string    `json:"resumeId"`
	ApplicationDate time.Time `gorm:"not null" json:"applicationDate"`

	StatusApplied            bool `gorm:"default:false" json:"statusApplied"`
	StatusShortlisted        bool `gorm:"default:false" json:"statusShortlisted"`
	StatusInterviewScheduled bool `gorm:"default:false" json:"statusInterviewScheduled"`
	StatusTechnicalRound     bool `gorm:"default:false" json:"statusTechnicalRound"`
	StatusOfferMade          bool `gorm:"default:false" json:"statusOfferMade"`
	StatusOfferAccepted      bool `gorm:"default:false" json:"statusOfferAccepted"`

	Job         *JobPosting             `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Completions []ProcessStepCompletion `gorm:"foreignKey:ApplicationID" json:"driveProcessCompletions,omitempty"`
}

// ProcessStepCompletion marks that a given process step occurred for a
// given application. One row per (application, step) pair: repeated
// completion calls return the existing record.
type ProcessStepCompletion struct {
	BaseModel
	ApplicationID  string    `gorm:"not null;index:idx_completion_app_step,unique" json:"applicationId"`
	StepID         string    `gorm:"not null;index:idx_completion_app_step,unique" json:"stepId"`
	Status         bool      `gorm:"default:true" json:"status"`
	CompletionDate time.Time `gorm:"not null" json:"completionDate"`
}

// The six recognized status field names, as they appear on the wire.
const (
	FieldStatusApplied            = "statusApplied"
	FieldStatusShortlisted        = "statusShortlisted"
	FieldStatusInterviewScheduled = "statusInterviewScheduled"
	FieldStatusTechnicalRound     = "statusTechnicalRound"
	FieldStatusOfferMade          = "statusOfferMade"
	FieldStatusOfferAccepted      = "statusOfferAccepted"
)

// StatusFieldColumns maps wire field names to database columns. Membership
// in this map is the whitelist for PATCH /applications/:id/status.
var StatusFieldColumns = map[string]string{
	FieldStatusApplied:            "status_applied",
	FieldStatusShortlisted:        "status_shortlisted",
	FieldStatusInterviewScheduled: "status_interview_scheduled",
	FieldStatusTechnicalRound:     "status_technical_round",
	FieldStatusOfferMade:          "status_offer_made",
	FieldStatusOfferAccepted:      "status_offer_accepted",
}

// IsStatusField reports whether name is one of the six recognized flags.
func IsStatusField(name string) bool {
	_, ok := StatusFieldColumns[name]
	return ok
}

// Stage projects the flag set onto a single display label. Highest
// seniority wins, independent of the order the flags were set in.
func (a *Application) Stage() Stage {
	switch {
	case a.StatusOfferAccepted:
		return StageAccepted
	case a.StatusOfferMade:
		return StageOffer
	case a.StatusTechnicalRound:
		return StageTechnical
	case a.StatusInterviewScheduled:
		return StageInterview
	case a.StatusShortlisted:
		return StageShortlisted
	case a.StatusApplied:
		return StageApplied
	default:
		return StageUnknown
	}
}
