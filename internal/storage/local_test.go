package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	key := "resumes/u1/file.pdf"
	require.NoError(t, s.Save(ctx, key, strings.NewReader("pdf bytes"), "application/pdf"))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))

	require.NoError(t, s.Delete(ctx, key))

	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	s := newTestLocalStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "resumes/u1/gone.pdf"))
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	for _, key := range []string{
		"../outside.txt",
		"a/../../outside.txt",
		"/etc/passwd",
	} {
		err := s.Save(ctx, key, strings.NewReader("x"), "text/plain")
		assert.Error(t, err, key)

		_, err = s.Get(ctx, key)
		assert.Error(t, err, key)
	}
}

func TestLocalStorageURLs(t *testing.T) {
	ctx := context.Background()

	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com/"})
	require.NoError(t, err)

	url, err := s.GetURL(ctx, "resumes/u1/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/resumes/u1/file.pdf", url)

	signed, err := s.GetSignedURL(ctx, "resumes/u1/file.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, url, signed)

	bare := newTestLocalStorage(t)
	url, err = bare.GetURL(ctx, "resumes/u1/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/u1/file.pdf", url)
}
