package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"placement_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password when a raw one is given.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "hashing the test password must not fail")
		user.PasswordHash = string(hashed)
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	require.NoError(t, db.Create(user).Error, "creating test user %s must not fail", user.Email)
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+body)

	var loginResponse struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginStudent is a convenience wrapper for student accounts.
func CreateAndLoginStudent(t *testing.T, ts *TestServer, email string) (string, *models.User) {
	return CreateAndLoginUser(t, ts, email, "student-pass-123", models.UserRoleStudent)
}

// CreateAndLoginCompany is a convenience wrapper for company accounts.
func CreateAndLoginCompany(t *testing.T, ts *TestServer, email string) (string, *models.User) {
	return CreateAndLoginUser(t, ts, email, "company-pass-123", models.UserRoleCompany)
}

// CreateAndLoginTPO is a convenience wrapper for TPO accounts.
func CreateAndLoginTPO(t *testing.T, ts *TestServer, email string) (string, *models.User) {
	return CreateAndLoginUser(t, ts, email, "tpo-pass-12345", models.UserRoleTPO)
}

// CreateTestJob inserts a posting directly, with one process step.
func CreateTestJob(t *testing.T, db *gorm.DB, companyID, title string, verified bool) *models.JobPosting {
	deadline := time.Now().Add(14 * 24 * time.Hour)
	job := &models.JobPosting{
		CompanyID:           companyID,
		JobTitle:            title,
		Description:         "Test posting",
		Location:            "Pune",
		PostedDate:          time.Now(),
		ApplicationDeadline: &deadline,
		Active:              true,
		Verified:            verified,
		ProcessSteps: []models.ProcessStep{
			{StepNumber: 1, StepName: "Technical Interview"},
		},
	}
	require.NoError(t, db.Create(job).Error, "creating test job must not fail")
	return job
}

// CreateTestApplication inserts an application directly with applied set.
func CreateTestApplication(t *testing.T, db *gorm.DB, studentID, jobID string) *models.Application {
	app := &models.Application{
		StudentID:       studentID,
		JobID:           jobID,
		ApplicationDate: time.Now(),
		StatusApplied:   true,
	}
	require.NoError(t, db.Create(app).Error, "creating test application must not fail")
	return app
}
