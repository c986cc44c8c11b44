package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltinsRender(t *testing.T) {
	t.Parallel()

	tm := NewTemplateManager()

	html, err := tm.Render(TemplateVerification, TemplateData{
		"FirstName":       "Aida",
		"VerificationURL": "http://localhost:4200/verify-email?token=abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "verify-email?token=abc")

	html, err = tm.Render(TemplatePasswordReset, TemplateData{
		"ResetURL": "http://localhost:4200/reset-password?token=xyz",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "reset-password?token=xyz")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	t.Parallel()

	tm := NewTemplateManager()

	_, err := tm.Render("no-such-template", nil)
	assert.Error(t, err)
}

func TestTemplateManager_AddTemplateOverridesBuiltin(t *testing.T) {
	t.Parallel()

	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate(TemplateVerification, `custom {{.VerificationURL}}`))

	html, err := tm.Render(TemplateVerification, TemplateData{"VerificationURL": "u"})
	require.NoError(t, err)
	assert.Equal(t, "custom u", html)
}

func TestGomailProvider_Validate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Host = ""
	assert.Error(t, NewGomailProvider(cfg, NewTemplateManager()).Validate())

	cfg = DefaultConfig()
	cfg.Host = "smtp.example.com"
	cfg.Port = 0
	assert.Error(t, NewGomailProvider(cfg, NewTemplateManager()).Validate())

	cfg = DefaultConfig()
	cfg.Host = "smtp.example.com"
	assert.NoError(t, NewGomailProvider(cfg, NewTemplateManager()).Validate())
}
