package portfolio

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadEmbeddedContent(t *testing.T) {
	c, err := LoadContent("")
	if err != nil {
		t.Fatalf("LoadContent failed: %v", err)
	}
	if len(c.Certifications) != 6 {
		t.Errorf("expected 6 certifications, got %d", len(c.Certifications))
	}
	if len(c.Projects) != 5 {
		t.Errorf("expected 5 projects, got %d", len(c.Projects))
	}
	if len(c.Skills) != 4 {
		t.Errorf("expected 4 skill categories, got %d", len(c.Skills))
	}
	if c.Categories[0] != AllCategories {
		t.Errorf("expected %q first, got %q", AllCategories, c.Categories[0])
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Content)
		want   string
	}{
		{"missing All", func(c *Content) { c.Categories = []string{"React", "MERN"} }, "must include"},
		{"untitled certification", func(c *Content) { c.Certifications[0].Title = "" }, "certification 0"},
		{"unknown category", func(c *Content) { c.Projects[1].Category = "Go" }, `unknown category "Go"`},
		{"project in All", func(c *Content) { c.Projects[0].Category = AllCategories }, "unknown category"},
		{"level above 100", func(c *Content) { c.Skills[0].Skills[0].Level = 101 }, "outside 0..100"},
		{"negative level", func(c *Content) { c.Skills[1].Skills[0].Level = -1 }, "outside 0..100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContent()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidContent) {
				t.Fatalf("expected ErrInvalidContent, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseContentBadYAML(t *testing.T) {
	if _, err := ParseContent([]byte("categories: [")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFilterProjectsAllReturnsSameSlice(t *testing.T) {
	projects := testContent().Projects
	got := FilterProjects(projects, AllCategories)
	if len(got) != len(projects) || &got[0] != &projects[0] {
		t.Fatal("expected the input slice itself for All")
	}
}

func TestFilterProjectsKeepsOrder(t *testing.T) {
	got := FilterProjects(testContent().Projects, "MERN")
	if len(got) != 2 || got[0].Title != "Rent" || got[1].Title != "Shop" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestFilterProjectsUnknownCategory(t *testing.T) {
	got := FilterProjects(testContent().Projects, "Rust")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if got := FilterProjects(nil, "React"); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %d", len(got))
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in    string
		month string
		ok    bool
	}{
		{"Aug 2024", "August 2024", true},
		{"July 2025", "July 2025", true},
		{"April 2025 ", "April 2025", true},
		{"2025-04-01", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMonth(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseMonth(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format("January 2006") != tt.month {
			t.Errorf("ParseMonth(%q) = %s, want %s", tt.in, got.Format("January 2006"), tt.month)
		}
	}
}

func TestThumbURL(t *testing.T) {
	if got := ThumbURL("/images/projects/a.webp"); got != "/thumbs/projects/a.webp" {
		t.Errorf("ThumbURL = %q", got)
	}
	if got := ThumbURL("https://cdn.example/a.png"); got != "https://cdn.example/a.png" {
		t.Errorf("ThumbURL changed an absolute URL: %q", got)
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://me.example"); got != "https://me.example/" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("https://me.example/", "projects"); got != "https://me.example/projects/" {
		t.Errorf("BuildURL = %q", got)
	}
}

func TestPersonJsonLD(t *testing.T) {
	got := PersonJsonLD(SiteConfig{Name: "Site", Author: "Jane Doe", URL: "https://me.example"}, "https://github.com/jane")
	for _, want := range []string{`"@type":"Person"`, `"name":"Jane Doe"`, `"sameAs":["https://github.com/jane"]`, `"url":"https://me.example/"`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD %s missing %s", got, want)
		}
	}
}
