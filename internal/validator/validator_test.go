package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleInput struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

type stageInput struct {
	Stage string `json:"stage" validate:"omitempty,is-stage"`
}

type statusFieldInput struct {
	StatusField string `json:"statusField" validate:"required,is-status-field"`
}

func TestUserRoleTag(t *testing.T) {
	v := New()

	for _, role := range []string{"student", "company", "tpo"} {
		assert.NoError(t, v.Validate(&roleInput{Role: role}), role)
	}

	err := v.Validate(&roleInput{Role: "admin"})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "role")
}

func TestStageTag(t *testing.T) {
	v := New()

	for _, stage := range []string{
		"Applied", "Shortlisted", "Interview", "Technical", "Offer", "Accepted", "Unknown",
	} {
		assert.NoError(t, v.Validate(&stageInput{Stage: stage}), stage)
	}

	// Empty passes because the field is optional
	assert.NoError(t, v.Validate(&stageInput{}))

	assert.Error(t, v.Validate(&stageInput{Stage: "Hired"}))
	assert.Error(t, v.Validate(&stageInput{Stage: "applied"}))
}

func TestStatusFieldTag(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&statusFieldInput{StatusField: "statusOfferMade"}))
	assert.Error(t, v.Validate(&statusFieldInput{StatusField: "statusHired"}))
	assert.Error(t, v.Validate(&statusFieldInput{StatusField: ""}))
}

func TestValidationErrorUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&statusFieldInput{StatusField: "bogus"})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "statusField")
}
