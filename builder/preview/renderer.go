package preview

import (
	"context"
	"html/template"
	"strings"

	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/errx"
)

// Printer turns rendered HTML into PDF bytes. Injected so handlers and
// tests can swap the real print pipeline for a stub.
type Printer interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// Renderer projects a resume document to HTML. It is a pure projection:
// sections render in a fixed order and empty sections are omitted
// entirely, headers included.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("resume").Funcs(template.FuncMap{
		"joinNonEmpty": joinNonEmpty,
	}).Parse(resumeTemplate))
	return &Renderer{tmpl: tmpl}
}

// Render produces the preview HTML for a document
func (r *Renderer) Render(doc *resume.Document) (string, error) {
	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return "", errx.Wrap(err, "failed to render resume preview", errx.TypeInternal)
	}
	return buf.String(), nil
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
