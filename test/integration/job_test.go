package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJob_CreateVerifyBrowse covers the posting lifecycle from creation
// through TPO approval to public visibility.
func TestJob_CreateVerifyBrowse(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, _ := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	tpoToken, _ := helpers.CreateAndLoginTPO(t, ts, "tpo@test.com")

	res, body := ts.SendRequest(t, "POST", "/api/v1/jobs", companyToken, map[string]interface{}{
		"jobTitle":    "Backend Engineer",
		"description": "Build services",
		"location":    "Pune",
		"degree":      "B.Tech",
		"branches":    []string{"Computer Science"},
		"skills":      []string{"Go", "SQL"},
		"processSteps": []map[string]interface{}{
			{"stepNumber": 1, "stepName": "Online Test"},
			{"stepNumber": 2, "stepName": "Technical Interview"},
		},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"verified":false`)
	assert.Contains(t, body, "Online Test")

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Unverified postings are invisible to public browsing
	res, body = ts.SendRequest(t, "GET", "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, "Backend Engineer")

	// Only a TPO may verify
	res, body = ts.SendRequest(t, "PATCH", "/api/v1/jobs/"+created.ID+"/verify", companyToken, map[string]interface{}{
		"verified": true,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, "PATCH", "/api/v1/jobs/"+created.ID+"/verify", tpoToken, map[string]interface{}{
		"verified": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"verified":true`)

	res, body = ts.SendRequest(t, "GET", "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Backend Engineer")
}

// TestJob_UpdateClearsVerification checks that edits send a posting
// back for TPO review.
func TestJob_UpdateClearsVerification(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	otherToken, _ := helpers.CreateAndLoginCompany(t, ts, "other@test.com")

	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)

	// Another company may not touch it
	res, body := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+job.ID, otherToken, map[string]interface{}{
		"jobTitle": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, "PUT", "/api/v1/jobs/"+job.ID, companyToken, map[string]interface{}{
		"jobTitle": "Senior Backend Engineer",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Senior Backend Engineer")
	assert.Contains(t, body, `"verified":false`)
}

func TestJob_Delete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	otherToken, _ := helpers.CreateAndLoginCompany(t, ts, "other@test.com")
	tpoToken, _ := helpers.CreateAndLoginTPO(t, ts, "tpo@test.com")

	first := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "First Role", true)
	second := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Second Role", true)

	res, body := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+first.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+first.ID, companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// A TPO may remove any posting
	res, body = ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+second.ID, tpoToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, "GET", "/api/v1/jobs/"+second.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

// TestJob_Matching matches students against branch, degree and the
// CGPA cutoff from their profile.
func TestJob_Matching(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	res, body := ts.SendRequest(t, "PUT", "/api/v1/users/profile", studentToken, map[string]interface{}{
		"firstName": "Asha",
		"degree":    "B.Tech",
		"branch":    "Computer Science",
		"cgpa":      7.5,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	cgpaSix := 6.0
	cgpaNine := 9.0
	fit := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Fitting Role", true)
	require.NoError(t, ts.DB.Model(fit).Updates(map[string]interface{}{
		"degree": "B.Tech", "min_cgpa": cgpaSix,
	}).Error)

	tooStrict := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Strict Role", true)
	require.NoError(t, ts.DB.Model(tooStrict).Updates(map[string]interface{}{
		"degree": "B.Tech", "min_cgpa": cgpaNine,
	}).Error)

	wrongDegree := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "MBA Role", true)
	require.NoError(t, ts.DB.Model(wrongDegree).Update("degree", "MBA").Error)

	res, body = ts.SendRequest(t, "GET", "/api/v1/jobs/matching", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Fitting Role")
	assert.NotContains(t, body, "Strict Role")
	assert.NotContains(t, body, "MBA Role")
}
