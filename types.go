package portfolio

import "github.com/eringen/portfolio/carousel"

// AllCategories is the project filter sentinel meaning no filtering.
const AllCategories = "All"

// Certification is one card in the certifications carousel.
type Certification struct {
	Title        string `yaml:"title"`
	Issuer       string `yaml:"issuer"`
	Date         string `yaml:"date"`
	CredentialID string `yaml:"credential_id"`
	VerifyURL    string `yaml:"verify_url"`
	Description  string `yaml:"description"`
	Image        string `yaml:"image"`
}

// Project is one card in the project gallery.
type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Technologies []string `yaml:"technologies"`
	LiveURL      string   `yaml:"live_url"`
	GithubURL    string   `yaml:"github_url"`
	Date         string   `yaml:"date"`
	Category     string   `yaml:"category"`
}

// Skill is a named proficiency level in percent.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

// Content is the complete display dataset for the site.
type Content struct {
	ProfileURL     string          `yaml:"profile_url"`
	Categories     []string        `yaml:"categories"`
	Certifications []Certification `yaml:"certifications"`
	Projects       []Project       `yaml:"projects"`
	Skills         []SkillCategory `yaml:"skills"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website"
}

// CertificationsView is the render input for the certifications carousel.
type CertificationsView struct {
	Page      carousel.Page[Certification]
	CsrfToken string
}

// ProjectsView is the render input for the filtered project gallery.
type ProjectsView struct {
	Page           carousel.Page[Project]
	Categories     []string
	ActiveCategory string
	ProfileURL     string
	CsrfToken      string
}

// HomeView is the render input for the full page.
type HomeView struct {
	Site           SiteConfig
	Meta           PageMeta
	JsonLD         string
	Certifications CertificationsView
	Projects       ProjectsView
	Skills         []SkillCategory
	ViewportWidth  int
}
