package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/carousel"
)

// PartialHeader marks requests that want a section fragment instead of a page.
const PartialHeader = "X-Partial"

// Carousel sections addressable by the navigation routes.
const (
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
)

func isPartial(c echo.Context) bool {
	return c.Request().Header.Get(PartialHeader) == "true"
}

func (a *App) handleHome(c echo.Context) error {
	v := a.loadVisitor(c)
	if cat, ok := c.QueryParams()["category"]; ok {
		v = v.withCategory(cat[0])
	}
	rv, overridden := renderState(c, v)
	home, rv, err := a.homeView(c, rv)
	if err != nil {
		return err
	}
	if !overridden {
		v = rv
	}
	if err := saveVisitor(c, v); err != nil {
		return err
	}
	return Render(c, a.Views.Home(home))
}

func (a *App) handleCertifications(c echo.Context) error {
	if !isPartial(c) {
		return c.Redirect(http.StatusSeeOther, "/#certifications")
	}
	v := a.loadVisitor(c)
	rv, overridden := renderState(c, v)
	view, rv, err := a.certificationsView(c, rv)
	if err != nil {
		return err
	}
	if !overridden {
		v = rv
	}
	if err := saveVisitor(c, v); err != nil {
		return err
	}
	return Render(c, a.Views.Certifications(view))
}

func (a *App) handleProjects(c echo.Context) error {
	v := a.loadVisitor(c)
	if cat, ok := c.QueryParams()["category"]; ok {
		v = v.withCategory(cat[0])
	}
	if !isPartial(c) {
		if err := saveVisitor(c, v); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/?category="+url.QueryEscape(v.Category)+"#projects")
	}
	rv, overridden := renderState(c, v)
	view, rv, err := a.projectsView(c, rv)
	if err != nil {
		return err
	}
	if !overridden {
		v = rv
	}
	if err := saveVisitor(c, v); err != nil {
		return err
	}
	return Render(c, a.Views.Projects(view))
}

func (a *App) handleSkills(c echo.Context) error {
	if !isPartial(c) {
		return c.Redirect(http.StatusSeeOther, "/#skills")
	}
	skills, err := a.Cache.Skills()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Skills(skills))
}

// handleViewport records the width reported by the browser. A width that
// lands in a different breakpoint resets both carousels to their first page.
func (a *App) handleViewport(c echo.Context) error {
	width, err := strconv.Atoi(c.FormValue("width"))
	if err != nil || width < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "width must be a non-negative integer")
	}
	v := a.loadVisitor(c)
	v.Width = width
	v = v.resize()
	if err := saveVisitor(c, v); err != nil {
		return err
	}
	if isPartial(c) {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleNext(c echo.Context) error {
	return a.navigate(c, func(s carousel.State, total int) (carousel.State, error) {
		return s.Next(total), nil
	})
}

func (a *App) handlePrevious(c echo.Context) error {
	return a.navigate(c, func(s carousel.State, _ int) (carousel.State, error) {
		return s.Previous(), nil
	})
}

func (a *App) handleJump(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "page index must be an integer")
	}
	return a.navigate(c, func(s carousel.State, total int) (carousel.State, error) {
		if !carousel.InRange(index, total) {
			return s, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("page %d out of range", index))
		}
		return s.JumpTo(index), nil
	})
}

// navigate applies one transition to the carousel named by the :section
// parameter, stores the result and answers with the section partial, or a
// redirect back to the section for plain form posts.
func (a *App) navigate(c echo.Context, step func(s carousel.State, total int) (carousel.State, error)) error {
	section := c.Param("section")
	v := a.loadVisitor(c)

	var err error
	switch section {
	case SectionCertifications:
		var certs []Certification
		if certs, err = a.Cache.Certifications(); err != nil {
			return err
		}
		cur := carousel.New(certs, v.Certifications).State()
		v.Certifications, err = step(cur, carousel.TotalPages(len(certs), cur.PerPage))
	case SectionProjects:
		var projects []Project
		if projects, err = a.Cache.Projects(v.Category); err != nil {
			return err
		}
		cur := carousel.New(projects, v.Projects).State()
		v.Projects, err = step(cur, carousel.TotalPages(len(projects), cur.PerPage))
	default:
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	if err := saveVisitor(c, v); err != nil {
		return err
	}

	if !isPartial(c) {
		return c.Redirect(http.StatusSeeOther, "/#"+section)
	}
	if section == SectionCertifications {
		view, _, err := a.certificationsView(c, v)
		if err != nil {
			return err
		}
		return Render(c, a.Views.Certifications(view))
	}
	view, _, err := a.projectsView(c, v)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Projects(view))
}

func (a *App) certificationsView(c echo.Context, v visitorState) (CertificationsView, visitorState, error) {
	certs, err := a.Cache.Certifications()
	if err != nil {
		return CertificationsView{}, v, err
	}
	car := carousel.New(certs, v.Certifications)
	v.Certifications = car.State()
	return CertificationsView{Page: car.Page(), CsrfToken: CsrfToken(c)}, v, nil
}

func (a *App) projectsView(c echo.Context, v visitorState) (ProjectsView, visitorState, error) {
	projects, err := a.Cache.Projects(v.Category)
	if err != nil {
		return ProjectsView{}, v, err
	}
	categories, err := a.Cache.Categories()
	if err != nil {
		return ProjectsView{}, v, err
	}
	car := carousel.New(projects, v.Projects)
	v.Projects = car.State()
	return ProjectsView{
		Page:           car.Page(),
		Categories:     categories,
		ActiveCategory: v.Category,
		ProfileURL:     a.profileURL(),
		CsrfToken:      CsrfToken(c),
	}, v, nil
}

func (a *App) homeView(c echo.Context, v visitorState) (HomeView, visitorState, error) {
	certs, v, err := a.certificationsView(c, v)
	if err != nil {
		return HomeView{}, v, err
	}
	projects, v, err := a.projectsView(c, v)
	if err != nil {
		return HomeView{}, v, err
	}
	skills, err := a.Cache.Skills()
	if err != nil {
		return HomeView{}, v, err
	}
	return HomeView{
		Site: a.Config,
		Meta: PageMeta{
			Title:       a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "website",
		},
		JsonLD:         PersonJsonLD(a.Config, a.profileURL()),
		Certifications: certs,
		Projects:       projects,
		Skills:         skills,
		ViewportWidth:  v.Width,
	}, v, nil
}

func (a *App) profileURL() string {
	return a.content.ProfileURL
}

func (a *App) handleThumb(c echo.Context) error {
	data, err := a.thumbs.Get(c.Param("*"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	categories, err := a.Cache.Categories()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, categories)
}

func (a *App) handleFeed(c echo.Context) error {
	projects, err := a.Cache.Projects(AllCategories)
	if err != nil {
		return err
	}
	return a.renderRSS(c, projects)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
