package api

import (
	"net"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ulysse/cms-api/docs"
	"github.com/ulysse/cms-api/internal/api/handler"
	"github.com/ulysse/cms-api/internal/api/middleware"
	"github.com/ulysse/cms-api/internal/core/ports"
	"github.com/ulysse/cms-api/internal/infrastructure/http/handlers"
)

// RateLimits holds one limiter store per throttled route set. A nil store
// leaves that set unthrottled. Default and Daily cover every /api route
// except register and login, which only answer to their own stores.
type RateLimits struct {
	Default  echomiddleware.RateLimiterStore
	Daily    echomiddleware.RateLimiterStore
	Register echomiddleware.RateLimiterStore
	Login    echomiddleware.RateLimiterStore
}

// Options carries the dependencies the router wires into handlers.
type Options struct {
	Log zerolog.Logger

	Users    ports.UserStore
	Tokens   ports.TokenVerifier
	Auth     ports.AuthService
	Content  ports.ContentService
	Contacts handler.ContactQueue

	Readiness map[string]handlers.Check

	CORSOrigins []string
	BodyLimit   string
	RateLimits  RateLimits

	// TrustedProxies enables X-Forwarded-For for requests arriving from
	// these ranges. Empty identifies clients by socket address only.
	TrustedProxies []*net.IPNet

	// Registry receives request metrics and backs /metrics. Nil disables both.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)
	e.IPExtractor = clientIP(opts.TrustedProxies)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(opts.CORSOrigins),
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			middleware.TokenHeader,
		},
	}))
	if opts.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(opts.BodyLimit))
	}

	if opts.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "cmsapi",
			Registerer: opts.Registry,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: opts.Registry,
		}))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth, no rate limit) ---
	health := handlers.NewHealthHandler()
	ready := handlers.NewReadinessHandler(opts.Readiness)
	e.GET("/api/health", health.Liveness)       // liveness
	e.GET("/api/health/ready", ready.Readiness) // readiness

	// --- Auth (route limits replace the defaults) ---
	authHandler := handler.NewAuthHandler(opts.Auth)
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, limit(opts.RateLimits.Register)...)
	auth.POST("/login", authHandler.Login, limit(opts.RateLimits.Login)...)

	api := e.Group("/api", limit(opts.RateLimits.Default, opts.RateLimits.Daily)...)
	gate := middleware.Auth(opts.Tokens, opts.Users)
	admin := middleware.RequireAdmin()

	api.GET("/me", authHandler.Me, gate)

	// --- Content ---
	content := handler.NewContentHandler(opts.Content)
	api.GET("/services", content.ListServices)
	api.GET("/services/:id", content.GetService)
	api.POST("/services", content.CreateService, gate, admin)

	api.GET("/insights", content.ListInsights)
	api.GET("/insights/:id", content.GetInsight)
	api.GET("/insights/category/:category", content.InsightsByCategory)
	api.POST("/insights", content.CreateInsight, gate, admin)

	api.GET("/case-studies", content.ListCaseStudies)
	api.GET("/case-studies/:id", content.GetCaseStudy)

	api.GET("/team", content.ListTeam)
	api.GET("/team/:id", content.GetTeamMember)

	api.GET("/cms/content/:type", content.ContentByType)

	// --- Contact ---
	contact := handler.NewContactHandler(opts.Contacts, opts.Log)
	api.POST("/contact", contact.Submit)

	return e
}

func limit(stores ...echomiddleware.RateLimiterStore) []echo.MiddlewareFunc {
	var mw []echo.MiddlewareFunc
	for _, store := range stores {
		if store != nil {
			mw = append(mw, middleware.RateLimit(store))
		}
	}
	return mw
}

// clientIP reads the socket address unless trusted proxies are configured.
// Forwarded headers from anyone outside those ranges are ignored.
func clientIP(proxies []*net.IPNet) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range proxies {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
