package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/mazenS1/Resume-Builder/internal/model"
	"github.com/mazenS1/Resume-Builder/internal/view"
)

//go:embed templates/resume.html.tmpl
var templatesFS embed.FS

var resumeTmpl = template.Must(template.New("resume.html.tmpl").
	Funcs(template.FuncMap{
		"sectionTitle": view.SectionDisplayTitle,
		"dateRange": func(e model.Entry) string {
			return view.FormatDateRange(e.StartDate, e.EndDate, e.IsCurrent)
		},
		"join": strings.Join,
	}).
	ParseFS(templatesFS, "templates/resume.html.tmpl"))

// htmlData is the template payload: the snapshot plus its position-sorted
// sections and the text-direction flag.
type htmlData struct {
	Resume   *model.Resume
	Sections []model.Section
	Dir      string
}

// RenderHTML renders the document to a standalone HTML page. The same output
// is used as the live preview document and as the input to the PDF exporter.
func RenderHTML(r *model.Resume, isRTL bool) (string, error) {
	dir := "ltr"
	if isRTL {
		dir = "rtl"
	}
	data := htmlData{
		Resume:   r,
		Sections: view.SortSections(r.Sections),
		Dir:      dir,
	}
	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render resume html: %w", err)
	}
	return buf.String(), nil
}
