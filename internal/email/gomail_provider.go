package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider implements Provider over SMTP using gomail.
type GomailProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

// NewGomailProvider creates a new SMTP provider
func NewGomailProvider(config *SMTPConfig, renderer TemplateRenderer) *GomailProvider {
	return &GomailProvider{
		config:   config,
		renderer: renderer,
	}
}

// Send sends an email message
func (p *GomailProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		m.SetAddressHeader("From", from, p.config.FromName)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(
		p.config.Host,
		p.config.Port,
		p.config.Username,
		p.config.Password,
	)

	return d.DialAndSend(m)
}

// SendVerification sends the email-verification message
func (p *GomailProvider) SendVerification(to string, token string) error {
	return p.sendTemplate(to, "Confirm your GymFit account", TemplateVerification, TemplateData{
		"FirstName":       "",
		"VerificationURL": fmt.Sprintf("%s/verify-email?token=%s", p.config.FrontendBaseURL, token),
	})
}

// SendPasswordReset sends the password-reset message
func (p *GomailProvider) SendPasswordReset(to string, token string) error {
	return p.sendTemplate(to, "Reset your GymFit password", TemplatePasswordReset, TemplateData{
		"ResetURL": fmt.Sprintf("%s/reset-password?token=%s", p.config.FrontendBaseURL, token),
	})
}

// Validate checks the SMTP configuration
func (p *GomailProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

func (p *GomailProvider) sendTemplate(to, subject, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}
