package email

import "sync"

// MockProvider records sent messages instead of delivering them. Used when no
// SMTP server is configured and in tests.
type MockProvider struct {
	mu sync.Mutex

	Sent               []*Email
	VerificationTokens map[string]string
	ResetTokens        map[string]string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		VerificationTokens: make(map[string]string),
		ResetTokens:        make(map[string]string),
	}
}

func (p *MockProvider) Send(email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, email)
	return nil
}

func (p *MockProvider) SendVerification(to string, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.VerificationTokens[to] = token
	return nil
}

func (p *MockProvider) SendPasswordReset(to string, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ResetTokens[to] = token
	return nil
}

func (p *MockProvider) Validate() error { return nil }

// VerificationTokenFor returns the last verification token recorded for the
// address, or "".
func (p *MockProvider) VerificationTokenFor(to string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.VerificationTokens[to]
}

// ResetTokenFor returns the last reset token recorded for the address, or "".
func (p *MockProvider) ResetTokenFor(to string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ResetTokens[to]
}

// SentCount returns how many raw messages were recorded via Send.
func (p *MockProvider) SentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Sent)
}
