package content

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

var resumeTmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join":  strings.Join,
	"addr":  func(u string) string { return strings.TrimPrefix(u, "mailto:") },
	"upper": strings.ToUpper,
}).Parse(`{{.Name}}
{{.Tagline}}
{{range .Socials}}{{.Label}}: {{addr .URL}}
{{end}}
ABOUT
{{range .About}}{{.}}

{{end}}SKILLS
{{range .Skills}}- {{.Title}}: {{join .Skills ", "}}
{{end}}
PROJECTS
{{range .Projects}}{{upper .Title}} ({{.Tag}})
{{.Description}}
Tech: {{join .Tech ", "}}
Code: {{.RepoURL}}

{{end}}Full resume: {{.ResumeURL}}
`))

// Resume writes a plain-text resume built from the profile.
func (p Profile) Resume(w io.Writer) error {
	if err := resumeTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render resume: %w", err)
	}
	return nil
}
