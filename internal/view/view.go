package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"circus-admin/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"localDateTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
	"roleLabel": func(r model.Role) string {
		switch r {
		case model.RoleSuperAdmin:
			return "Super admin"
		case model.RoleBoss:
			return "Boss"
		case model.RoleEmployee:
			return "Employee"
		case model.RoleVisitor:
			return "Visitor"
		}
		return string(r)
	},
}

// Templates parses every page template. Page names look like "animals/list".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static serves the embedded assets under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
