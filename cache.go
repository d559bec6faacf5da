package portfolio

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested section or resource does not exist.
var ErrNotFound = errors.New("not found")

// snapshot is one consistent read of the whole dataset.
type snapshot struct {
	certifications []Certification
	projects       []Project
	categories     []string
	skills         []SkillCategory
}

// ContentCache is an in-memory cache of the dataset with TTL.
type ContentCache struct {
	mu      sync.RWMutex
	data    *snapshot
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.data != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	certs, err := c.store.ListCertifications()
	if err != nil {
		return err
	}
	projects, err := c.store.ListProjects()
	if err != nil {
		return err
	}
	categories, err := c.store.ListProjectCategories()
	if err != nil {
		return err
	}
	skills, err := c.store.ListSkillCategories()
	if err != nil {
		return err
	}
	c.data = &snapshot{
		certifications: certs,
		projects:       projects,
		categories:     categories,
		skills:         skills,
	}
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached snapshot after ensuring it is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) ensureLoaded() (*snapshot, error) {
	c.mu.RLock()
	if c.valid() {
		data := c.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.data, nil
}

// Certifications returns all certifications in display order.
func (c *ContentCache) Certifications() ([]Certification, error) {
	data, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return data.certifications, nil
}

// Projects returns the projects in category (AllCategories for every project).
func (c *ContentCache) Projects(category string) ([]Project, error) {
	data, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return FilterProjects(data.projects, category), nil
}

// Categories returns the project filter labels.
func (c *ContentCache) Categories() ([]string, error) {
	data, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return data.categories, nil
}

// Skills returns the skill categories.
func (c *ContentCache) Skills() ([]SkillCategory, error) {
	data, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return data.skills, nil
}
