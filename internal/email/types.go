package email

// Email represents an outbound message
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData holds the data passed into email templates
type TemplateData map[string]interface{}
