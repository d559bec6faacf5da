package portfolio

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidContent is returned when the dataset is missing required fields.
var ErrInvalidContent = errors.New("invalid content")

// LoadContent reads the dataset from path, or the embedded default dataset
// when path is empty, and validates it.
func LoadContent(path string) (Content, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = EmbeddedAssets.ReadFile("embedded/content.yaml")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return Content{}, fmt.Errorf("read content: %w", err)
	}
	return ParseContent(raw)
}

// ParseContent decodes a YAML dataset and validates it.
func ParseContent(raw []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Validate checks field presence. It does not look at URLs or dates.
func (c Content) Validate() error {
	if !slices.Contains(c.Categories, AllCategories) {
		return fmt.Errorf("%w: categories must include %q", ErrInvalidContent, AllCategories)
	}
	for i, cert := range c.Certifications {
		if cert.Title == "" {
			return fmt.Errorf("%w: certification %d has no title", ErrInvalidContent, i)
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidContent, i)
		}
		if p.Category == AllCategories || !slices.Contains(c.Categories, p.Category) {
			return fmt.Errorf("%w: project %q has unknown category %q", ErrInvalidContent, p.Title, p.Category)
		}
	}
	for _, cat := range c.Skills {
		if cat.Title == "" {
			return fmt.Errorf("%w: skill category has no title", ErrInvalidContent)
		}
		for _, s := range cat.Skills {
			if s.Name == "" {
				return fmt.Errorf("%w: skill in %q has no name", ErrInvalidContent, cat.Title)
			}
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("%w: skill %q level %d outside 0..100", ErrInvalidContent, s.Name, s.Level)
			}
		}
	}
	return nil
}
