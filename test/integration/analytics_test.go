package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_Overview(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	tpoToken, _ := helpers.CreateAndLoginTPO(t, ts, "tpo@test.com")
	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	_, studentA := helpers.CreateAndLoginStudent(t, ts, "a@test.com")
	_, studentB := helpers.CreateAndLoginStudent(t, ts, "b@test.com")

	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)
	helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Unverified Role", false)

	helpers.CreateTestApplication(t, ts.DB, studentA.ID, job.ID)
	app := helpers.CreateTestApplication(t, ts.DB, studentB.ID, job.ID)
	require.NoError(t, ts.DB.Model(app).Update("status_offer_made", true).Error)

	res, body := ts.SendRequest(t, "GET", "/api/v1/analytics/overview", tpoToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var overview struct {
		TotalStudents       int64            `json:"totalStudents"`
		TotalCompanies      int64            `json:"totalCompanies"`
		ActiveJobs          int64            `json:"activeJobs"`
		VerifiedJobs        int64            `json:"verifiedJobs"`
		TotalApplications   int64            `json:"totalApplications"`
		ApplicationsByStage map[string]int64 `json:"applicationsByStage"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &overview))

	assert.Equal(t, int64(2), overview.TotalStudents)
	assert.Equal(t, int64(1), overview.TotalCompanies)
	assert.Equal(t, int64(2), overview.ActiveJobs)
	assert.Equal(t, int64(1), overview.VerifiedJobs)
	assert.Equal(t, int64(2), overview.TotalApplications)
	assert.Equal(t, int64(1), overview.ApplicationsByStage["Applied"])
	assert.Equal(t, int64(1), overview.ApplicationsByStage["Offer"])

	// The dashboard is TPO only
	res, body = ts.SendRequest(t, "GET", "/api/v1/analytics/overview", companyToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}
