package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"placement_backend/internal/models"
	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplication_StudentFlow walks the student path: apply, duplicate
// rejection, listing with the derived stage.
func TestApplication_StudentFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")
	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)

	// Apply
	res, body := ts.SendRequest(t, "POST", "/api/v1/applications", studentToken, map[string]interface{}{
		"jobId": job.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"statusApplied":true`)
	assert.Contains(t, body, `"stage":"Applied"`)

	// Applying twice is a conflict
	res, body = ts.SendRequest(t, "POST", "/api/v1/applications", studentToken, map[string]interface{}{
		"jobId": job.ID,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// Own applications include the job and the stage
	res, body = ts.SendRequest(t, "GET", "/api/v1/applications/my-applications", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, `"stage":"Applied"`)
}

func TestApplication_ApplyClosedJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	// Unverified posting is not open for applications
	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Hidden Role", false)

	res, body := ts.SendRequest(t, "POST", "/api/v1/applications", studentToken, map[string]interface{}{
		"jobId": job.ID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

// TestApplication_StatusFlags covers the six-flag mutation contract:
// single-field persistence, whitelist rejection, ownership, projection.
func TestApplication_StatusFlags(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	otherCompanyToken, _ := helpers.CreateAndLoginCompany(t, ts, "other@test.com")
	tpoToken, _ := helpers.CreateAndLoginTPO(t, ts, "tpo@test.com")
	_, studentUser := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)
	application := helpers.CreateTestApplication(t, ts.DB, studentUser.ID, job.ID)

	statusURL := "/api/v1/applications/" + application.ID + "/status"

	// Owning company sets shortlisted
	res, body := ts.SendRequest(t, "PATCH", statusURL, companyToken, map[string]interface{}{
		"statusField": "statusShortlisted",
		"value":       true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"statusShortlisted":true`)
	assert.Contains(t, body, `"statusApplied":true`)
	assert.Contains(t, body, `"stage":"Shortlisted"`)

	// Unknown field is rejected without a write
	res, body = ts.SendRequest(t, "PATCH", statusURL, companyToken, map[string]interface{}{
		"statusField": "statusHired",
		"value":       true,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "INVALID_STATUS_FIELD")

	var stored models.Application
	require.NoError(t, ts.DB.First(&stored, "id = ?", application.ID).Error)
	assert.True(t, stored.StatusShortlisted)
	assert.False(t, stored.StatusOfferMade)

	// A company that does not own the posting may not mutate
	res, body = ts.SendRequest(t, "PATCH", statusURL, otherCompanyToken, map[string]interface{}{
		"statusField": "statusOfferMade",
		"value":       true,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// A TPO may
	res, body = ts.SendRequest(t, "PATCH", statusURL, tpoToken, map[string]interface{}{
		"statusField": "statusOfferMade",
		"value":       true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"stage":"Offer"`)

	// Flags are independent: clearing an earlier one keeps the later one
	res, body = ts.SendRequest(t, "PATCH", statusURL, companyToken, map[string]interface{}{
		"statusField": "statusShortlisted",
		"value":       false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"statusShortlisted":false`)
	assert.Contains(t, body, `"stage":"Offer"`)

	// Unknown application id
	res, body = ts.SendRequest(t, "PATCH", "/api/v1/applications/00000000-0000-0000-0000-000000000000/status", companyToken, map[string]interface{}{
		"statusField": "statusApplied",
		"value":       true,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

// TestApplication_CompleteStep proves the completion ledger upserts.
func TestApplication_CompleteStep(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	_, studentUser := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)

	var jobWithSteps models.JobPosting
	require.NoError(t, ts.DB.Preload("ProcessSteps").First(&jobWithSteps, "id = ?", job.ID).Error)
	require.Len(t, jobWithSteps.ProcessSteps, 1)
	stepID := jobWithSteps.ProcessSteps[0].ID

	application := helpers.CreateTestApplication(t, ts.DB, studentUser.ID, job.ID)
	completeURL := "/api/v1/applications/" + application.ID + "/complete-step"

	res, body := ts.SendRequest(t, "POST", completeURL, companyToken, map[string]interface{}{
		"stepId": stepID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var first models.ProcessStepCompletion
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	assert.Equal(t, application.ID, first.ApplicationID)
	assert.Equal(t, stepID, first.StepID)

	// Repeating the call returns the same record, no duplicate row
	res, body = ts.SendRequest(t, "POST", completeURL, companyToken, map[string]interface{}{
		"stepId": stepID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var second models.ProcessStepCompletion
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.Equal(t, first.ID, second.ID)

	var count int64
	ts.DB.Model(&models.ProcessStepCompletion{}).Where("application_id = ?", application.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Completion never touches status flags
	var stored models.Application
	require.NoError(t, ts.DB.First(&stored, "id = ?", application.ID).Error)
	assert.True(t, stored.StatusApplied)
	assert.False(t, stored.StatusShortlisted)
}

// TestApplication_StageFilter exercises ?stage= on the job listing.
func TestApplication_StageFilter(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	_, studentA := helpers.CreateAndLoginStudent(t, ts, "a@test.com")
	_, studentB := helpers.CreateAndLoginStudent(t, ts, "b@test.com")

	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)
	helpers.CreateTestApplication(t, ts.DB, studentA.ID, job.ID)
	shortlisted := helpers.CreateTestApplication(t, ts.DB, studentB.ID, job.ID)
	require.NoError(t, ts.DB.Model(shortlisted).Update("status_shortlisted", true).Error)

	res, body := ts.SendRequest(t, "GET", "/api/v1/applications/jobs/"+job.ID, companyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":2`)

	res, body = ts.SendRequest(t, "GET", "/api/v1/applications/jobs/"+job.ID+"?stage=Shortlisted", companyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, shortlisted.ID)

	// An unknown stage value fails validation
	res, body = ts.SendRequest(t, "GET", "/api/v1/applications/jobs/"+job.ID+"?stage=Hired", companyToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
