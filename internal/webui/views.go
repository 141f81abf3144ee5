package webui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Views holds the template set, parsed once at startup and immutable after.
type Views struct {
	templates *template.Template
}

// LoadViews parses every .html file in dir. A load failure here is fatal to
// the caller; there is no lazy re-parse at request time.
func LoadViews(dir string) (*Views, error) {
	templates, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return &Views{templates: templates}, nil
}

// Render executes the named template into a buffer before touching the
// response, so a mid-render failure still yields a clean error status instead
// of a half-written page.
func (v *Views) Render(w http.ResponseWriter, statusCode int, name string, data any) error {
	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
	return nil
}
