package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducation_InfoUpsert(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	// Before any write the info endpoint reports zero values, not 404
	res, body := ts.SendRequest(t, "GET", "/api/v1/education/info", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"degree":""`)
	assert.Contains(t, body, `"cgpa":0`)

	res, body = ts.SendRequest(t, "PUT", "/api/v1/education/info", studentToken, map[string]interface{}{
		"degree":           "B.Tech",
		"branch":           "Computer Science",
		"yearOfGraduation": 2026,
		"cgpa":             8.4,
		"rollno":           "CS-042",
		"universityName":   "Pune University",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"degree":"B.Tech"`)
	assert.Contains(t, body, `"cgpa":8.4`)

	// Partial update leaves the other fields alone
	res, body = ts.SendRequest(t, "PUT", "/api/v1/education/info", studentToken, map[string]interface{}{
		"cgpa": 8.9,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"cgpa":8.9`)
	assert.Contains(t, body, `"rollno":"CS-042"`)
}

func TestEducation_Certificates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "a@test.com")
	otherToken, _ := helpers.CreateAndLoginStudent(t, ts, "b@test.com")

	res, body := ts.SendRequest(t, "POST", "/api/v1/education/certificates", studentToken, map[string]interface{}{
		"certificationName": "AWS Solutions Architect",
		"organization":      "Amazon",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var cert struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &cert))

	res, body = ts.SendRequest(t, "GET", "/api/v1/education/certificates", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, "AWS Solutions Architect")

	// Certificates are scoped to their owner
	res, body = ts.SendRequest(t, "GET", "/api/v1/education/certificates", otherToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":0`)

	res, body = ts.SendRequest(t, "DELETE", "/api/v1/education/certificates/"+cert.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, "DELETE", "/api/v1/education/certificates/"+cert.ID, studentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestEducation_StudentOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, _ := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")

	res, body := ts.SendRequest(t, "GET", "/api/v1/education/info", companyToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}
