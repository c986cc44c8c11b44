package email

import "time"

// SMTPConfig holds the SMTP server configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration

	// Base URL of the web frontend, used to build verification/reset links.
	FrontendBaseURL string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:            "localhost",
		Port:            587,
		UseTLS:          true,
		Timeout:         30 * time.Second,
		FrontendBaseURL: "http://localhost:4200",
	}
}
