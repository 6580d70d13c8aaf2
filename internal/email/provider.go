package email

// Message is an outgoing email.
type Message struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData holds values substituted into an email template.
type TemplateData map[string]interface{}

// Provider sends emails.
type Provider interface {
	// Send delivers a message as-is.
	Send(msg *Message) error

	// SendTemplate renders a named template and delivers the result.
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// NoopProvider drops all messages. Used when email is not configured.
type NoopProvider struct{}

func (NoopProvider) Send(*Message) error { return nil }

func (NoopProvider) SendTemplate([]string, string, string, TemplateData) error { return nil }

func (NoopProvider) Validate() error { return nil }

func (NoopProvider) Close() error { return nil }
