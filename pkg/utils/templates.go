package utils

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// ApplyTemplate renders t with data. Missing keys are an error so a typo in a
// template does not silently produce "<no value>".
func ApplyTemplate(name, t string, data interface{}, funcs ...template.FuncMap) (string, error) {
	tmpl := template.New(name).Option("missingkey=error")
	for _, f := range funcs {
		tmpl = tmpl.Funcs(f)
	}
	tmpl, err := tmpl.Parse(t)
	if err != nil {
		return "", errors.Wrapf(err, "parsing template %s", name)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "executing template %s", name)
	}

	return buf.String(), nil
}
