package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProfile_ComposedAndInvalidated exercises the composed profile
// read path and checks mutations show up on the next read.
func TestProfile_ComposedAndInvalidated(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	res, body := ts.SendRequest(t, "PUT", "/api/v1/users/profile", studentToken, map[string]interface{}{
		"firstName": "Asha",
		"lastName":  "Rao",
		"branch":    "Computer Science",
		"cgpa":      8.2,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Composed profile reflects the update and is cached from here on
	res, body = ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"firstName":"Asha"`)
	assert.Contains(t, body, `"email":"student@test.com"`)

	res, body = ts.SendRequest(t, "POST", "/api/v1/users/skills", studentToken, map[string]interface{}{
		"skillName": "Go",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var skill struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &skill))

	// The mutation invalidated the cached composition
	res, body = ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"skillName":"Go"`)

	res, body = ts.SendRequest(t, "DELETE", "/api/v1/users/skills/"+skill.ID, studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, `"skillName":"Go"`)
}

// TestProfile_RefreshBypassesCache changes a row behind the cache's
// back and checks ?refresh=true picks it up.
func TestProfile_RefreshBypassesCache(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, studentUser := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	res, body := ts.SendRequest(t, "PUT", "/api/v1/users/profile", studentToken, map[string]interface{}{
		"firstName": "Before",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Prime the cache
	res, body = ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"firstName":"Before"`)

	// Out-of-band write the service never sees
	require.NoError(t, ts.DB.Exec(
		"UPDATE student_profiles SET first_name = ? WHERE user_id = ?",
		"After", studentUser.ID,
	).Error)

	res, body = ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"firstName":"Before"`)

	res, body = ts.SendRequest(t, "GET", "/api/v1/users/profile?refresh=true", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"firstName":"After"`)
}

func TestProfile_CompanyUpdateAndListing(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, _ := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")

	res, body := ts.SendRequest(t, "PUT", "/api/v1/users/profile", companyToken, map[string]interface{}{
		"companyName": "Acme Corp",
		"description": "We make everything",
		"website":     "https://acme.example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"companyName":"Acme Corp"`)

	// Public company directory
	res, body = ts.SendRequest(t, "GET", "/api/v1/companies", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Acme Corp")
}

func TestProfile_StudentOnlyCollections(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, _ := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")

	res, body := ts.SendRequest(t, "POST", "/api/v1/users/skills", companyToken, map[string]interface{}{
		"skillName": "Go",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}
