// Package views holds the default page and partial templates for the
// portfolio site. Templates are parsed once from the embedded templates
// directory and exposed as templ components.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/portfolio"
	"github.com/eringen/portfolio/carousel"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("views").Funcs(template.FuncMap{
	"thumb":       portfolio.ThumbURL,
	"perPage":     carousel.ItemsPerPage,
	"filterClass": FilterClass,
	"jsonLD":      jsonLD,
	"nav":         newNavView,
	"add1":        func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html"))

// navView is the input of the shared carousel controls template.
type navView struct {
	Section   string
	Target    string
	CsrfToken string
	Page      carousel.Page[struct{}]
}

func newNavView(section, target string, index, total int, csrf string) navView {
	return navView{
		Section:   section,
		Target:    target,
		CsrfToken: csrf,
		Page:      carousel.Page[struct{}]{Index: index, Total: total},
	}
}

type errorView struct {
	Title   string
	Message string
}

// jsonLD marks an already-encoded JSON-LD document as safe script content.
func jsonLD(s string) template.JS {
	return template.JS(s)
}

// FilterClass returns CSS classes for a category filter link, with active variant.
func FilterClass(active bool) string {
	if active {
		return "filter filter--active"
	}
	return "filter"
}

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

// Home renders the full page.
func Home(v portfolio.HomeView) templ.Component {
	return component("home", v)
}

// Certifications renders the certifications carousel partial.
func Certifications(v portfolio.CertificationsView) templ.Component {
	return component("certifications", v)
}

// Projects renders the filter bar and project gallery partial.
func Projects(v portfolio.ProjectsView) templ.Component {
	return component("projects", v)
}

// Skills renders the skills grid partial.
func Skills(skills []portfolio.SkillCategory) templ.Component {
	return component("skills", skills)
}

func NotFound() templ.Component {
	return component("error", errorView{
		Title:   "Page not found",
		Message: "The page you are looking for does not exist.",
	})
}

func ServerError() templ.Component {
	return component("error", errorView{
		Title:   "Something went wrong",
		Message: "Please try again in a moment.",
	})
}

// Default returns the ViewFuncs backed by the bundled templates.
func Default() portfolio.ViewFuncs {
	return portfolio.ViewFuncs{
		Home:           Home,
		Certifications: Certifications,
		Projects:       Projects,
		Skills:         Skills,
		NotFound:       NotFound,
		ServerError:    ServerError,
	}
}
