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

// TestNotification_ApplicationFlow checks notifications are produced as
// a side effect of applying and of favorable status changes.
func TestNotification_ApplicationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	companyToken, companyUser := helpers.CreateAndLoginCompany(t, ts, "acme@test.com")
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")
	job := helpers.CreateTestJob(t, ts.DB, companyUser.ID, "Backend Engineer", true)

	res, body := ts.SendRequest(t, "POST", "/api/v1/applications", studentToken, map[string]interface{}{
		"jobId": job.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var app struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &app))

	res, body = ts.SendRequest(t, "PATCH", "/api/v1/applications/"+app.ID+"/status", companyToken, map[string]interface{}{
		"statusField": "statusShortlisted",
		"value":       true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, "GET", "/api/v1/users/notifications", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":2`)
	assert.Contains(t, body, "Backend Engineer")
}

func TestNotification_MarkRead(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, studentUser := helpers.CreateAndLoginStudent(t, ts, "a@test.com")
	otherToken, _ := helpers.CreateAndLoginStudent(t, ts, "b@test.com")

	n := &models.Notification{UserID: studentUser.ID, Title: "Welcome", Message: "Hello"}
	require.NoError(t, ts.DB.Create(n).Error)

	// Only the owner may mark it
	res, body := ts.SendRequest(t, "PUT", "/api/v1/users/notifications/"+n.ID+"/read", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, "PUT", "/api/v1/users/notifications/"+n.ID+"/read", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"read":true`)
}

func TestNotification_MarkAllRead(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, studentUser := helpers.CreateAndLoginStudent(t, ts, "a@test.com")

	for _, title := range []string{"One", "Two", "Three"} {
		require.NoError(t, ts.DB.Create(&models.Notification{
			UserID: studentUser.ID, Title: title, Message: "msg",
		}).Error)
	}

	res, body := ts.SendRequest(t, "PUT", "/api/v1/users/notifications/read-all", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var unread int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", studentUser.ID, false).
		Count(&unread)
	assert.Equal(t, int64(0), unread)
}
