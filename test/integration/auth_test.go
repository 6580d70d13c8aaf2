package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "new@test.com",
		"password": "a-strong-pass-1",
		"role":     "student",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"accessToken"`)
	assert.Contains(t, body, `"refreshToken"`)
	assert.Contains(t, body, `"email":"new@test.com"`)

	// Same email again conflicts
	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "new@test.com",
		"password": "a-strong-pass-1",
		"role":     "student",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// Login with the registered credentials
	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "new@test.com",
		"password": "a-strong-pass-1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var auth struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &auth))
	require.NotEmpty(t, auth.AccessToken)

	// Token works against /auth/me
	res, body = ts.SendRequest(t, "GET", "/api/v1/auth/me", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"userType":"student"`)
}

func TestAuth_RegisterRejectsTPO(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "rogue@test.com",
		"password": "a-strong-pass-1",
		"role":     "tpo",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestAuth_LoginFailures(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "student@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "whatever-pass-1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

// TestAuth_RefreshRotation makes sure a refresh token is single use.
func TestAuth_RefreshRotation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "rotate@test.com",
		"password": "a-strong-pass-1",
		"role":     "student",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var auth struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &auth))
	require.NotEmpty(t, auth.RefreshToken)

	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": auth.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var rotated struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rotated))
	assert.NotEqual(t, auth.RefreshToken, rotated.RefreshToken)

	// The consumed token is dead
	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": auth.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestAuth_ProtectedRouteWithoutToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}
