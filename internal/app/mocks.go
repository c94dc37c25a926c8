package app

import (
	"bountyboard_backend/internal/email"
	"bountyboard_backend/internal/logger"
)

// MockEmailProvider логирует письма вместо отправки.
// Используется в окружениях без настроенного SMTP.
type MockEmailProvider struct{}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{}
}

func (p *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("mock email send", "to", e.To, "subject", e.Subject)
	return nil
}

func (p *MockEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	logger.Info("mock email send", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *MockEmailProvider) Validate() error {
	return nil
}

func (p *MockEmailProvider) Close() error {
	return nil
}
