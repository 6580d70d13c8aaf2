package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStage(t *testing.T) {
	tests := []struct {
		name string
		app  Application
		want Stage
	}{
		{"no flags", Application{}, StageUnknown},
		{"applied only", Application{StatusApplied: true}, StageApplied},
		{"shortlisted", Application{StatusApplied: true, StatusShortlisted: true}, StageShortlisted},
		{"interview", Application{StatusApplied: true, StatusInterviewScheduled: true}, StageInterview},
		{"technical", Application{StatusApplied: true, StatusTechnicalRound: true}, StageTechnical},
		{
			"offer outranks earlier flags",
			Application{StatusApplied: true, StatusShortlisted: true, StatusOfferMade: true},
			StageOffer,
		},
		{
			"accepted outranks everything",
			Application{
				StatusApplied:            true,
				StatusShortlisted:        true,
				StatusInterviewScheduled: true,
				StatusTechnicalRound:     true,
				StatusOfferMade:          true,
				StatusOfferAccepted:      true,
			},
			StageAccepted,
		},
		// Flags are independent, so sparse combinations still project.
		{"accepted without offer made", Application{StatusOfferAccepted: true}, StageAccepted},
		{"technical without interview", Application{StatusApplied: true, StatusTechnicalRound: true}, StageTechnical},
		{"shortlisted cleared after offer", Application{StatusApplied: true, StatusOfferMade: true}, StageOffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.app.Stage())
		})
	}
}

func TestIsStatusField(t *testing.T) {
	for _, name := range []string{
		FieldStatusApplied,
		FieldStatusShortlisted,
		FieldStatusInterviewScheduled,
		FieldStatusTechnicalRound,
		FieldStatusOfferMade,
		FieldStatusOfferAccepted,
	} {
		assert.True(t, IsStatusField(name), name)
	}

	for _, name := range []string{
		"",
		"statusHired",
		"status_applied",
		"StatusApplied",
		"stage",
	} {
		assert.False(t, IsStatusField(name), name)
	}
}
