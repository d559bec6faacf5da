package portfolio

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func testContent() Content {
	return Content{
		ProfileURL: "https://github.com/example",
		Categories: []string{AllCategories, "React", "MERN"},
		Certifications: []Certification{
			{Title: "First", Issuer: "IBM", Date: "Aug 2024"},
			{Title: "Second", Issuer: "Meta", Date: "July 2025"},
		},
		Projects: []Project{
			{Title: "Rent", Category: "MERN", Technologies: []string{"React.js", "MongoDB"}},
			{Title: "Flix", Category: "React", Technologies: []string{"React.js"}},
			{Title: "Shop", Category: "MERN"},
		},
		Skills: []SkillCategory{
			{Title: "Frontend", Skills: []Skill{{Name: "React", Level: 85}, {Name: "CSS", Level: 90}}},
			{Title: "Backend", Skills: []Skill{{Name: "Node.js", Level: 80}}},
		},
	}
}

func setupTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Seed(testContent()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	for name, path := range map[string]string{
		"memory": MemoryDatabase,
		"file":   filepath.Join(t.TempDir(), "data", "portfolio.db"),
	} {
		t.Run(name, func(t *testing.T) {
			s := setupTestStore(t, path)
			want := testContent()

			certs, err := s.ListCertifications()
			if err != nil {
				t.Fatalf("ListCertifications failed: %v", err)
			}
			if !reflect.DeepEqual(certs, want.Certifications) {
				t.Fatalf("certifications = %+v, want %+v", certs, want.Certifications)
			}

			projects, err := s.ListProjects()
			if err != nil {
				t.Fatalf("ListProjects failed: %v", err)
			}
			if len(projects) != 3 || projects[0].Title != "Rent" || projects[2].Title != "Shop" {
				t.Fatalf("projects out of order: %+v", projects)
			}
			if !reflect.DeepEqual(projects[0].Technologies, []string{"React.js", "MongoDB"}) {
				t.Fatalf("technologies = %v", projects[0].Technologies)
			}
			if projects[2].Technologies != nil {
				t.Fatalf("expected no technologies, got %v", projects[2].Technologies)
			}

			categories, err := s.ListProjectCategories()
			if err != nil {
				t.Fatalf("ListProjectCategories failed: %v", err)
			}
			if !reflect.DeepEqual(categories, want.Categories) {
				t.Fatalf("categories = %v", categories)
			}

			skills, err := s.ListSkillCategories()
			if err != nil {
				t.Fatalf("ListSkillCategories failed: %v", err)
			}
			if !reflect.DeepEqual(skills, want.Skills) {
				t.Fatalf("skills = %+v", skills)
			}
		})
	}
}

func TestSeedReplacesData(t *testing.T) {
	s := setupTestStore(t, MemoryDatabase)

	smaller := testContent()
	smaller.Certifications = smaller.Certifications[:1]
	if err := s.Seed(smaller); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	certs, err := s.ListCertifications()
	if err != nil {
		t.Fatalf("ListCertifications failed: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("expected 1 certification after reseed, got %d", len(certs))
	}
}

func TestSeedRejectsDuplicateCategory(t *testing.T) {
	s := setupTestStore(t, MemoryDatabase)

	bad := testContent()
	bad.Categories = append(bad.Categories, "React")
	if err := s.Seed(bad); err == nil {
		t.Fatal("expected duplicate category to fail")
	}
	// The failed transaction must leave the previous data in place.
	certs, _ := s.ListCertifications()
	if len(certs) != 2 {
		t.Fatalf("expected rollback to keep 2 certifications, got %d", len(certs))
	}
}

func TestTechnologiesRoundTripVerbatim(t *testing.T) {
	s := setupTestStore(t, MemoryDatabase)

	c := testContent()
	c.Projects[0].Technologies = []string{"Node.js, Express", " React ", `Say "hi"`}
	c.Projects[1].Technologies = []string{}
	if err := s.Seed(c); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	projects, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if !reflect.DeepEqual(projects[0].Technologies, c.Projects[0].Technologies) {
		t.Fatalf("technologies = %q, want %q", projects[0].Technologies, c.Projects[0].Technologies)
	}
	if projects[1].Technologies == nil || len(projects[1].Technologies) != 0 {
		t.Fatalf("expected empty non-nil technologies, got %#v", projects[1].Technologies)
	}
	if projects[2].Technologies != nil {
		t.Fatalf("expected nil technologies, got %#v", projects[2].Technologies)
	}
}

func TestContentCache(t *testing.T) {
	s := setupTestStore(t, MemoryDatabase)
	cache := NewContentCache(s, time.Minute)

	all, err := cache.Projects(AllCategories)
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(all))
	}
	mern, err := cache.Projects("MERN")
	if err != nil {
		t.Fatalf("Projects(MERN) failed: %v", err)
	}
	if len(mern) != 2 || mern[0].Title != "Rent" || mern[1].Title != "Shop" {
		t.Fatalf("unexpected MERN projects: %+v", mern)
	}

	// A reseed is invisible until the cache is invalidated.
	smaller := testContent()
	smaller.Projects = smaller.Projects[:1]
	if err := s.Seed(smaller); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if all, _ = cache.Projects(AllCategories); len(all) != 3 {
		t.Fatalf("expected cached 3 projects, got %d", len(all))
	}
	cache.Invalidate()
	if all, _ = cache.Projects(AllCategories); len(all) != 1 {
		t.Fatalf("expected 1 project after invalidate, got %d", len(all))
	}
}

func TestContentCacheExpires(t *testing.T) {
	s := setupTestStore(t, MemoryDatabase)
	cache := NewContentCache(s, 10*time.Millisecond)

	if certs, _ := cache.Certifications(); len(certs) != 2 {
		t.Fatalf("expected 2 certifications, got %d", len(certs))
	}
	smaller := testContent()
	smaller.Certifications = nil
	if err := s.Seed(smaller); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if certs, _ := cache.Certifications(); len(certs) != 0 {
		t.Fatalf("expected reload after ttl, got %d certifications", len(certs))
	}
}
