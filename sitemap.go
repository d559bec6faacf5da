package portfolio

import (
	"encoding/xml"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists the home page and one filtered gallery view per category.
func (a *App) renderSitemap(c echo.Context, categories []string) error {
	base := BuildURL(a.Config.URL)
	urls := []sitemapURL{
		{Loc: base},
	}
	for _, cat := range categories {
		if cat == AllCategories {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc: base + "?category=" + url.QueryEscape(cat),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
