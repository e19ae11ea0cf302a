// Package title fills the project-name placeholder of a window title.
package title

import (
	"fmt"
	"strings"
	"text/template"
)

const Placeholder = "{{projectName}}"

// Render expands {{projectName}} in tmpl. With an empty name the title is returned as
// is, placeholder included, the way an ungenerated project shows it.
func Render(tmpl, name string) (string, error) {
	if name == "" {
		return tmpl, nil
	}
	t, err := template.New("title").
		Funcs(template.FuncMap{"projectName": func() string { return name }}).
		Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("title %q: %w", tmpl, err)
	}
	var b strings.Builder
	if err := t.Execute(&b, nil); err != nil {
		return "", fmt.Errorf("title %q: %w", tmpl, err)
	}
	return b.String(), nil
}
