package portfolio

import (
	"strconv"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/carousel"
)

const sessionName = "portfolio_session"

// Session keys. Values are stored as plain ints and strings so the cookie
// codec needs no type registration.
const (
	keyWidth       = "vw"
	keyCertPerPage = "cert_per_page"
	keyCertIndex   = "cert_index"
	keyProjPerPage = "proj_per_page"
	keyProjIndex   = "proj_index"
	keyCategory    = "category"
)

// visitorState is the UI state of one visitor: the reported viewport width,
// both carousel positions and the active project category.
type visitorState struct {
	Width          int
	Certifications carousel.State
	Projects       carousel.State
	Category       string
}

// ViewportWidth implements carousel.WidthSource.
func (v visitorState) ViewportWidth() int { return v.Width }

// resize re-resolves both carousels' page sizes from the current width.
func (v visitorState) resize() visitorState {
	r := carousel.NewResolver(v)
	v.Certifications = r.Apply(v.Certifications)
	v.Projects = r.Apply(v.Projects)
	return v
}

// withCategory switches the project filter. An empty category means all
// projects. A different category moves the project carousel back to its
// first page.
func (v visitorState) withCategory(category string) visitorState {
	if category == "" {
		category = AllCategories
	}
	if category != v.Category {
		v.Category = category
		v.Projects = v.Projects.Reset()
	}
	return v
}

// loadVisitor reads the visitor's state from the session. Missing values
// fall back to the configured default width, the first page and all
// categories. A cookie that fails to decode (e.g. signed with an old
// secret) reads as a new visitor.
func (a *App) loadVisitor(c echo.Context) visitorState {
	v := visitorState{Category: AllCategories}
	if sess, _ := session.Get(sessionName, c); sess != nil {
		v.Width = intValue(sess.Values[keyWidth])
		v.Certifications = carousel.State{
			PerPage: intValue(sess.Values[keyCertPerPage]),
			Index:   intValue(sess.Values[keyCertIndex]),
		}
		v.Projects = carousel.State{
			PerPage: intValue(sess.Values[keyProjPerPage]),
			Index:   intValue(sess.Values[keyProjIndex]),
		}
		if cat, ok := sess.Values[keyCategory].(string); ok && cat != "" {
			v.Category = cat
		}
	}
	if v.Width <= 0 {
		v.Width = a.Config.DefaultViewportWidth
	}
	return v.resize()
}

// renderState returns the state to render with. A valid ?vw= query value
// replaces the width for this response only, which lets clients without
// script pick a layout through a link. The second result reports whether
// the width was overridden; overridden states are not saved.
func renderState(c echo.Context, v visitorState) (visitorState, bool) {
	w, err := strconv.Atoi(c.QueryParam("vw"))
	if err != nil || w < 0 {
		return v, false
	}
	v.Width = w
	return v.resize(), true
}

// saveVisitor writes v back into the session cookie. A session whose cookie
// failed to decode is still usable and replaces the rejected cookie.
func saveVisitor(c echo.Context, v visitorState) error {
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return err
	}
	sess.Values[keyWidth] = v.Width
	sess.Values[keyCertPerPage] = v.Certifications.PerPage
	sess.Values[keyCertIndex] = v.Certifications.Index
	sess.Values[keyProjPerPage] = v.Projects.PerPage
	sess.Values[keyProjIndex] = v.Projects.Index
	sess.Values[keyCategory] = v.Category
	return sess.Save(c.Request(), c.Response())
}

func intValue(v interface{}) int {
	n, _ := v.(int)
	return n
}
