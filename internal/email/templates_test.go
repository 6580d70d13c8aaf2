package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKnownTemplates(t *testing.T) {
	data := TemplateData{
		"Name":        "Asha",
		"JobTitle":    "Backend Engineer",
		"CompanyName": "Acme",
		"StatusText":  "you have been shortlisted",
	}

	for _, name := range []string{
		TemplateApplicationReceived,
		TemplateStatusChanged,
		TemplateJobVerified,
		TemplateWelcome,
	} {
		body, err := Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, body, "Asha", name)
	}
}

func TestRenderSubstitutesFields(t *testing.T) {
	body, err := Render(TemplateStatusChanged, TemplateData{
		"Name":       "Asha",
		"JobTitle":   "Backend Engineer",
		"StatusText": "an offer has been made",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "an offer has been made")
}

func TestRenderEscapesHTML(t *testing.T) {
	body, err := Render(TemplateWelcome, TemplateData{
		"Name": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("no_such_template", nil)
	assert.Error(t, err)
}
