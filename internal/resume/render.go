package resume

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

var resumeTemplate = template.Must(template.ParseFS(templateFS, "templates/resume.html.tmpl"))

// Render produces the downloadable HTML document. Every field is escaped.
func Render(data ResumeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename lowercases the name and joins its words with dashes.
func Filename(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if slug == "" {
		slug = "candidate"
	}
	return "resume-" + slug + ".html"
}
