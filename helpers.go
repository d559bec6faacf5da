package portfolio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// monthLayouts covers the dataset's date styles ("Aug 2024", "April 2025").
var monthLayouts = []string{"January 2006", "Jan 2006"}

// ParseMonth parses a month-and-year date, ignoring surrounding whitespace.
// Unknown layouts report false.
func ParseMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ThumbURL maps an /images/... path to its card-sized rendition under /thumbs/.
// Other references, including absolute URLs, are returned unchanged.
func ThumbURL(image string) string {
	if rest, ok := strings.CutPrefix(image, "/images/"); ok {
		return "/thumbs/" + rest
	}
	return image
}

// PersonJsonLD returns a JSON-LD string for a Person schema using SiteConfig.
func PersonJsonLD(cfg SiteConfig, profileURL string) string {
	name := cfg.Author
	if name == "" {
		name = cfg.Name
	}
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if profileURL != "" {
		data["sameAs"] = []string{profileURL}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
