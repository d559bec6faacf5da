package portfolio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "PORTFOLIO_"

// Default configuration values.
const (
	DefaultName          = "Portfolio"
	DefaultURL           = "http://localhost:3000"
	DefaultAddr          = ":3000"
	DefaultViewportWidth = 1024
	DefaultThumbWidth    = 640
	DefaultNavRateLimit  = 60
	DefaultCacheTTL      = 5 * time.Minute
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "Portfolio")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Meta description
	Author      string `koanf:"author"`      // Person name for JSON-LD

	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path"` // SQLite path (default in-memory)
	ContentPath  string `koanf:"content_path"`  // YAML dataset; empty uses the embedded one
	StaticDir    string `koanf:"static_dir"`    // User-owned assets (default "public")

	SessionSecret string `koanf:"session_secret"` // Cookie signing secret; random per process when empty
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	DefaultViewportWidth int           `koanf:"default_viewport_width"` // Width assumed before the browser reports one
	ThumbWidth           int           `koanf:"thumb_width"`            // Max card image width in pixels
	NavRateLimit         int           `koanf:"nav_rate_limit"`         // Navigation POSTs per IP per minute
	ContentCacheTTL      time.Duration `koanf:"content_cache_ttl"`      // Content cache TTL (default 5m)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.DatabasePath == "" {
		c.DatabasePath = MemoryDatabase
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DefaultViewportWidth <= 0 {
		c.DefaultViewportWidth = DefaultViewportWidth
	}
	if c.ThumbWidth <= 0 {
		c.ThumbWidth = DefaultThumbWidth
	}
	if c.NavRateLimit <= 0 {
		c.NavRateLimit = DefaultNavRateLimit
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = DefaultCacheTTL
	}
}

// LoadConfig builds a SiteConfig from, lowest to highest precedence:
// defaults, the YAML file at path (skipped when path is empty), PORTFOLIO_*
// environment variables and flags that were explicitly set.
func LoadConfig(path string, flags *pflag.FlagSet) (SiteConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"name":                   DefaultName,
		"url":                    DefaultURL,
		"addr":                   DefaultAddr,
		"database_path":          MemoryDatabase,
		"static_dir":             "public",
		"default_viewport_width": DefaultViewportWidth,
		"thumb_width":            DefaultThumbWidth,
		"nav_rate_limit":         DefaultNavRateLimit,
		"content_cache_ttl":      DefaultCacheTTL.String(),
	}, "."), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return SiteConfig{}, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return SiteConfig{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	// PORTFOLIO_SESSION_SECRET -> session_secret
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return SiteConfig{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithContent serves c instead of loading the dataset from Config.ContentPath.
func WithContent(c Content) Option {
	return func(a *App) {
		a.content = &c
	}
}
