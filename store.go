package portfolio

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryDatabase is the DSN of a private in-memory database.
const MemoryDatabase = ":memory:"

// Store wraps a SQLite database holding the display dataset. Rows are written
// once by Seed and only read afterwards.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database at path and ensures the schema exists.
// MemoryDatabase keeps everything in process memory on a single connection.
func NewStore(path string) (*Store, error) {
	memory := path == "" || path == MemoryDatabase
	if memory {
		path = MemoryDatabase
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if memory {
		// Each connection to :memory: is its own database.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		if _, err := db.Exec(`
			PRAGMA journal_mode=WAL;
			PRAGMA busy_timeout=5000;
			PRAGMA synchronous=NORMAL;
		`); err != nil {
			db.Close()
			return nil, err
		}
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS certifications (
    position INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    issuer TEXT NOT NULL,
    date TEXT NOT NULL,
    credential_id TEXT NOT NULL,
    verify_url TEXT NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS projects (
    position INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL,
    technologies TEXT NOT NULL, -- JSON array
    live_url TEXT NOT NULL,
    github_url TEXT NOT NULL,
    date TEXT NOT NULL,
    category TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS project_categories (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS skills (
    category_position INTEGER NOT NULL,
    category TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    level INTEGER NOT NULL,
    PRIMARY KEY (category_position, position)
);
`)
	return err
}

// Seed replaces the stored dataset with c in a single transaction.
func (s *Store) Seed(c Content) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"certifications", "projects", "project_categories", "skills"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for i, cert := range c.Certifications {
		if _, err := tx.Exec(`INSERT INTO certifications (position, title, issuer, date, credential_id, verify_url, description, image) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, cert.Title, cert.Issuer, cert.Date, cert.CredentialID, cert.VerifyURL, cert.Description, cert.Image); err != nil {
			return fmt.Errorf("insert certification %q: %w", cert.Title, err)
		}
	}
	for i, p := range c.Projects {
		techs, err := encodeList(p.Technologies)
		if err != nil {
			return fmt.Errorf("encode technologies of %q: %w", p.Title, err)
		}
		if _, err := tx.Exec(`INSERT INTO projects (position, title, description, image, technologies, live_url, github_url, date, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.Title, p.Description, p.Image, techs, p.LiveURL, p.GithubURL, p.Date, p.Category); err != nil {
			return fmt.Errorf("insert project %q: %w", p.Title, err)
		}
	}
	for i, name := range c.Categories {
		if _, err := tx.Exec(`INSERT INTO project_categories (position, name) VALUES (?, ?)`, i, name); err != nil {
			return fmt.Errorf("insert category %q: %w", name, err)
		}
	}
	for ci, cat := range c.Skills {
		for si, sk := range cat.Skills {
			if _, err := tx.Exec(`INSERT INTO skills (category_position, category, position, name, level) VALUES (?, ?, ?, ?, ?)`,
				ci, cat.Title, si, sk.Name, sk.Level); err != nil {
				return fmt.Errorf("insert skill %q: %w", sk.Name, err)
			}
		}
	}
	return tx.Commit()
}

// ListCertifications returns certifications in dataset order.
func (s *Store) ListCertifications() ([]Certification, error) {
	rows, err := s.db.Query(`SELECT title, issuer, date, credential_id, verify_url, description, image FROM certifications ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []Certification
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.Title, &c.Issuer, &c.Date, &c.CredentialID, &c.VerifyURL, &c.Description, &c.Image); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// ListProjects returns projects in dataset order.
func (s *Store) ListProjects() ([]Project, error) {
	rows, err := s.db.Query(`SELECT title, description, image, technologies, live_url, github_url, date, category FROM projects ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var techs string
		if err := rows.Scan(&p.Title, &p.Description, &p.Image, &techs, &p.LiveURL, &p.GithubURL, &p.Date, &p.Category); err != nil {
			return nil, err
		}
		if p.Technologies, err = decodeList(techs); err != nil {
			return nil, fmt.Errorf("decode technologies of %q: %w", p.Title, err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListProjectCategories returns the filter labels in dataset order.
func (s *Store) ListProjectCategories() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM project_categories ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListSkillCategories returns skill groups and their skills in dataset order.
func (s *Store) ListSkillCategories() ([]SkillCategory, error) {
	rows, err := s.db.Query(`SELECT category_position, category, name, level FROM skills ORDER BY category_position, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []SkillCategory
	last := -1
	for rows.Next() {
		var pos, level int
		var category, name string
		if err := rows.Scan(&pos, &category, &name, &level); err != nil {
			return nil, err
		}
		if pos != last {
			cats = append(cats, SkillCategory{Title: category})
			last = pos
		}
		cur := &cats[len(cats)-1]
		cur.Skills = append(cur.Skills, Skill{Name: name, Level: level})
	}
	return cats, rows.Err()
}

// encodeList stores a string list as a JSON array column. A nil list is
// stored as null so it reads back as nil.
func encodeList(vals []string) (string, error) {
	b, err := json.Marshal(vals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList reads a JSON array column written by encodeList.
func decodeList(s string) ([]string, error) {
	var vals []string
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil, err
	}
	return vals, nil
}
