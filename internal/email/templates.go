package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Имена встроенных шаблонов
const (
	TemplateApplicationApproved = "application_approved"
	TemplateApplicationRejected = "application_rejected"
)

var builtinTemplates = map[string]string{
	TemplateApplicationApproved: `
<h2>Welcome to BountyBoard, {{.FirstName}}!</h2>
<p>Your creator application has been approved. You can now browse open briefs and submit videos.</p>
{{if .Notes}}<p>Note from our team: {{.Notes}}</p>{{end}}
`,
	TemplateApplicationRejected: `
<h2>Hi {{.FirstName}},</h2>
<p>Thanks for applying to BountyBoard. Unfortunately we can't approve your application at this time.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>You're welcome to apply again later.</p>
`,
}

// HTMLRenderer рендерит встроенные html/template шаблоны
type HTMLRenderer struct {
	templates map[string]*template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	r := &HTMLRenderer{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		tmpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

func (r *HTMLRenderer) Render(templateName string, data TemplateData) (string, error) {
	tmpl, ok := r.templates[templateName]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", templateName, err)
	}
	return buf.String(), nil
}
