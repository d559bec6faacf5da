// Package portfolio is a server-rendered personal portfolio site built with
// Go, Echo, and templ. It serves a certifications carousel, a filterable
// project gallery and a skills display from a fixed dataset.
//
// Callers provide templ components via the ViewFuncs struct; the package
// owns handlers, middleware, per-visitor carousel state and the content store.
package portfolio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// ViewFuncs holds the templ components the app calls when rendering pages
// and section partials.
type ViewFuncs struct {
	Home           func(v HomeView) templ.Component
	Certifications func(v CertificationsView) templ.Component
	Projects       func(v ProjectsView) templ.Component
	Skills         func(skills []SkillCategory) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central portfolio application. It wires together the store,
// cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache
	Views  ViewFuncs

	content      *Content
	navLimiter   *RateLimiter
	thumbs       *ThumbCache
	customRoutes []func(*App)
	initialized  bool
}

// New creates a portfolio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads the dataset into the store and sets up the cache, middleware
// and routes. Start and Serve call it; tests call it directly and drive
// a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}

	content := a.content
	if content == nil {
		c, err := LoadContent(a.Config.ContentPath)
		if err != nil {
			return fmt.Errorf("portfolio: load content: %w", err)
		}
		content = &c
	} else if err := content.Validate(); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	a.content = content

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	if err := store.Seed(*content); err != nil {
		store.Close()
		return fmt.Errorf("portfolio: seed store: %w", err)
	}
	a.Store = store
	a.Cache = NewContentCache(store, a.Config.ContentCacheTTL)

	if a.Config.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("portfolio: generate session secret: %w", err)
		}
		a.Config.SessionSecret = secret
		a.Echo.Logger.Warn("session_secret not set; visitor state resets on restart")
	}

	a.navLimiter = NewRateLimiter(a.Config.NavRateLimit, time.Minute)
	a.thumbs = NewThumbCache(a.Config.StaticDir+"/images", a.Config.ThumbWidth)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app and listens on Config.Addr until the server stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Serve initializes the app and serves until ctx is cancelled, then shuts
// down gracefully.
func (a *App) Serve(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		a.Echo.Logger.Infof("listening on %s (%s)", a.Config.Addr, a.Config.URL)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded script, then the user's static assets.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/portfolio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.Config.StaticDir)
	e.Static("/images", a.Config.StaticDir+"/images")
	e.GET("/thumbs/*", a.handleThumb)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Page and section partials
	e.GET("/", a.handleHome)
	e.GET("/certifications/", a.handleCertifications)
	e.GET("/projects/", a.handleProjects)
	e.GET("/skills/", a.handleSkills)

	// State transitions
	e.POST("/viewport/", a.handleViewport, a.limitNav)
	e.POST("/:section/next/", a.handleNext, a.limitNav)
	e.POST("/:section/prev/", a.handlePrevious, a.limitNav)
	e.POST("/:section/page/:index/", a.handleJump, a.limitNav)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.navLimiter != nil {
		a.navLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
