package portfolio

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// renderRSS writes the project list as an RSS 2.0 feed. Items link to the
// live demo when there is one, otherwise to the source repository.
func (a *App) renderRSS(c echo.Context, projects []Project) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		pubDate := ""
		if t, ok := ParseMonth(p.Date); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := p.LiveURL
		if link == "" {
			link = p.GithubURL
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			Category:    p.Category,
			PubDate:     pubDate,
			GUID:        BuildURL(base) + "#" + strings.ReplaceAll(strings.ToLower(p.Title), " ", "-"),
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
