package email

// Email - простое сообщение
type Email struct {
	From     string
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// SMTPConfig - конфигурация SMTP провайдера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// TemplateData - данные для рендеринга шаблона
type TemplateData map[string]interface{}
