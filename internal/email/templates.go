package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in templates for placement notifications.
const (
	TemplateApplicationReceived = "application_received"
	TemplateStatusChanged       = "status_changed"
	TemplateJobVerified         = "job_verified"
	TemplateWelcome             = "welcome"
)

var templateSources = map[string]string{
	TemplateApplicationReceived: `<html><body>
<p>Hi {{.Name}},</p>
<p>Your application for <b>{{.JobTitle}}</b> at {{.CompanyName}} has been received.</p>
<p>You can track its progress from your dashboard.</p>
</body></html>`,

	TemplateStatusChanged: `<html><body>
<p>Hi {{.Name}},</p>
<p>Your application for <b>{{.JobTitle}}</b> at {{.CompanyName}} was updated: {{.StatusText}}.</p>
</body></html>`,

	TemplateJobVerified: `<html><body>
<p>Hi {{.Name}},</p>
<p>Your job posting <b>{{.JobTitle}}</b> has been verified and is now visible to students.</p>
</body></html>`,

	TemplateWelcome: `<html><body>
<p>Hi {{.Name}},</p>
<p>Welcome to the placement portal. Complete your profile to start applying.</p>
</body></html>`,
}

var (
	templateOnce sync.Once
	templates    map[string]*template.Template
	templateErr  error
)

func parseTemplates() {
	templates = make(map[string]*template.Template, len(templateSources))
	for name, src := range templateSources {
		tpl, err := template.New(name).Parse(src)
		if err != nil {
			templateErr = fmt.Errorf("parse template %s: %w", name, err)
			return
		}
		templates[name] = tpl
	}
}

// Render executes a built-in template with the given data.
func Render(name string, data TemplateData) (string, error) {
	templateOnce.Do(parseTemplates)
	if templateErr != nil {
		return "", templateErr
	}

	tpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
