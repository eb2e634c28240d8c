package biography

import (
	"html/template"
	"io"
	"sync"

	"github.com/cradoe/biodata/assets"
	"github.com/cradoe/biodata/internal/funcs"
)

const templatePath = "templates/biography.tmpl"

var (
	parseOnce sync.Once
	page      *template.Template
	parseErr  error
)

func loadTemplate() (*template.Template, error) {
	parseOnce.Do(func() {
		page, parseErr = template.New("").Funcs(template.FuncMap(funcs.TemplateFuncs)).ParseFS(assets.EmbeddedFiles, templatePath)
	})
	return page, parseErr
}

// Render writes doc as a standalone printable HTML page.
func Render(w io.Writer, doc Document) error {
	tmpl, err := loadTemplate()
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "page", doc)
}
