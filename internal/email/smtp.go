package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// SMTPProvider delivers messages over SMTP.
type SMTPProvider struct {
	config SMTPConfig
	auth   smtp.Auth
}

// NewSMTPProvider creates an SMTP provider from configuration.
func NewSMTPProvider(config SMTPConfig) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPProvider{
		config: config,
		auth:   auth,
	}
}

// Send delivers a message. The From header falls back to the configured sender.
func (p *SMTPProvider) Send(msg *Message) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if msg.From == "" {
		msg.From = p.fromHeader()
	}

	message := p.buildMessage(msg)
	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)

	if p.config.UseTLS {
		tlsConfig := &tls.Config{ServerName: p.config.Host}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("dial smtp tls: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, p.config.Host)
		if err != nil {
			return fmt.Errorf("create smtp client: %w", err)
		}
		defer client.Close()

		return p.sendWithClient(client, msg, message)
	}

	return smtp.SendMail(addr, p.auth, p.config.From, msg.To, message)
}

// SendTemplate renders a built-in template and delivers the result.
func (p *SMTPProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	htmlBody, err := Render(templateName, data)
	if err != nil {
		return fmt.Errorf("render template %s: %w", templateName, err)
	}

	return p.Send(&Message{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

// Validate checks the SMTP configuration.
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

// Close is a no-op; SMTP connections are per-send.
func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) fromHeader() string {
	if p.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", p.config.FromName, p.config.From)
	}
	return p.config.From
}

func (p *SMTPProvider) buildMessage(msg *Message) []byte {
	builder := &strings.Builder{}

	builder.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ",")))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	builder.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTMLBody != "" {
		builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		builder.WriteString(msg.HTMLBody)
	} else {
		builder.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		builder.WriteString(msg.Body)
	}

	return []byte(builder.String())
}

func (p *SMTPProvider) sendWithClient(client *smtp.Client, msg *Message, message []byte) error {
	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(p.config.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}

	for _, recipient := range msg.To {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("set recipient %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}

	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	return w.Close()
}
