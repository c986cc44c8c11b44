package email

// Provider - outbound email delivery. Callers treat sends as fire-and-forget:
// a delivery failure must never abort the flow that triggered it.
type Provider interface {
	// Send sends a plain email message
	Send(email *Email) error

	// SendVerification sends the email-verification message with its token link
	SendVerification(to string, token string) error

	// SendPasswordReset sends the password-reset message with its token link
	SendPasswordReset(to string, token string) error

	// Validate checks the provider configuration
	Validate() error
}

// TemplateRenderer renders named HTML templates with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
