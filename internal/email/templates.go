package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateManager implements TemplateRenderer over html/template.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager creates a template manager preloaded with the built-in
// verification and reset templates. Templates loaded from disk with the same
// name override the built-ins.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Built-in fallbacks so the service works without a templates directory.
	_ = tm.AddTemplate(TemplateVerification, builtinVerificationTemplate)
	_ = tm.AddTemplate(TemplatePasswordReset, builtinPasswordResetTemplate)

	return tm
}

// Render renders a template with data
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate adds a template to the manager
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates loads *.html templates from a directory
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".html")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}

		return nil
	})
}

// Template names used by the auth flows.
const (
	TemplateVerification  = "email_verification"
	TemplatePasswordReset = "password_reset"
)

const builtinVerificationTemplate = `<html>
<body>
  <h2>Welcome to GymFit!</h2>
  <p>Hi {{.FirstName}},</p>
  <p>Please confirm your email address by clicking the link below:</p>
  <p><a href="{{.VerificationURL}}">Verify my email</a></p>
  <p>If you did not create an account, you can ignore this message.</p>
</body>
</html>`

const builtinPasswordResetTemplate = `<html>
<body>
  <h2>Password reset</h2>
  <p>We received a request to reset the password for your GymFit account.</p>
  <p><a href="{{.ResetURL}}">Reset my password</a></p>
  <p>The link is valid for one hour. If you did not request a reset, you can
  ignore this message and your password will not change.</p>
</body>
</html>`
