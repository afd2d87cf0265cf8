// Package template renders notification subjects and bodies from the embedded files/*.tmpl set.
// Each file defines a "subject" and a "body" block and is named after its template key.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"hotel/internal/domains/notification/model"
)

//go:embed files/*.tmpl
var files embed.FS

type Renderer interface {
	Render(notification model.Notification) (subject, body string, err error)
}

type rendererImpl struct {
	templates map[string]*template.Template
}

// New parses every embedded template and panics on a malformed one.
func New() Renderer {
	entries, err := files.ReadDir("files")
	if err != nil {
		panic(err)
	}

	templates := make(map[string]*template.Template, len(entries))

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))

		tmpl, err := template.New(name).Option("missingkey=zero").ParseFS(files, path.Join("files", entry.Name()))
		if err != nil {
			panic(fmt.Errorf("failed to parse notification template %s: %w", name, err))
		}

		templates[name] = tmpl
	}

	return &rendererImpl{templates: templates}
}

func (r *rendererImpl) Render(notification model.Notification) (string, string, error) {
	tmpl, ok := r.templates[notification.Template]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", model.ErrUnknownTemplate, notification.Template)
	}

	var subject, body bytes.Buffer

	if err := tmpl.ExecuteTemplate(&subject, "subject", notification.Data); err != nil {
		return "", "", fmt.Errorf("failed to render subject of %s: %w", notification.Template, err)
	}

	if err := tmpl.ExecuteTemplate(&body, "body", notification.Data); err != nil {
		return "", "", fmt.Errorf("failed to render body of %s: %w", notification.Template, err)
	}

	return strings.TrimSpace(subject.String()), strings.TrimSpace(body.String()), nil
}
