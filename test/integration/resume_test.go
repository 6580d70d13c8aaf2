package integration_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadResume posts a multipart form with a single "file" part.
func uploadResume(t *testing.T, ts *helpers.TestServer, token, fileName, contentType, content string) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest("POST", ts.Server.URL+"/api/v1/resumes", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var body bytes.Buffer
	_, err = body.ReadFrom(res.Body)
	require.NoError(t, err)
	return res, body.String()
}

func TestResume_UploadListDelete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	res, body := uploadResume(t, ts, studentToken, "cv.pdf", "application/pdf", "%PDF-1.4 fake")
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"fileName":"cv.pdf"`)

	var resume struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resume))

	res, body = ts.SendRequest(t, "GET", "/api/v1/resumes", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":1`)

	res, body = ts.SendRequest(t, "GET", "/api/v1/resumes/"+resume.ID+"/download", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"url"`)

	res, body = ts.SendRequest(t, "DELETE", "/api/v1/resumes/"+resume.ID, studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, "GET", "/api/v1/resumes", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"total":0`)
}

func TestResume_RejectsUnsupportedType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "student@test.com")

	res, body := uploadResume(t, ts, studentToken, "cv.exe", "application/octet-stream", "MZ")
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)
}

func TestResume_OwnerScoped(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, _ := helpers.CreateAndLoginStudent(t, ts, "a@test.com")
	otherToken, _ := helpers.CreateAndLoginStudent(t, ts, "b@test.com")

	res, body := uploadResume(t, ts, ownerToken, "cv.pdf", "application/pdf", "%PDF-1.4 fake")
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resume struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resume))

	res, body = ts.SendRequest(t, "GET", "/api/v1/resumes/"+resume.ID+"/download", otherToken, nil)
	assert.NotEqual(t, http.StatusOK, res.StatusCode, body)
}
