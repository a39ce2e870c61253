package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/reservation-system/internal/api/docs"
	"github.com/99minutos/reservation-system/internal/api/handler"
	"github.com/99minutos/reservation-system/internal/api/metrics"
	"github.com/99minutos/reservation-system/internal/api/middleware"
	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
	"github.com/99minutos/reservation-system/internal/infrastructure/http/handlers"
	"github.com/99minutos/reservation-system/internal/ui"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Accounts     ports.AccountDirectory
	Sessions     ports.SessionManager
	Reservations ports.ReservationService
	Tokens       handler.TokenCodec
	// Health lists the dependencies checked by the readiness probe.
	Health map[string]ports.Pinger
	// Registry receives the HTTP metrics; nil means the default registry.
	Registry      *prometheus.Registry
	SecureCookies bool
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	// Both the JSON API and the page go through the instrumented services.
	accounts := metrics.InstrumentAccounts(deps.Accounts)
	sessions := metrics.InstrumentSessions(deps.Sessions)
	reservations := metrics.InstrumentReservations(deps.Reservations)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Operational routes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the store up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- HTML page ---
	controller := ui.NewController(accounts, sessions, reservations, deps.Log)
	page := handler.NewUIHandler(controller, deps.Tokens, deps.SecureCookies)
	e.GET("/", page.Index)
	e.POST("/register", page.Register)
	e.POST("/login", page.Login)
	e.POST("/logout", page.Logout)
	e.POST("/reservations", page.CreateReservation)
	e.POST("/reservations/:id/edit", page.EditReservation)
	e.POST("/reservations/:id/delete", page.DeleteReservation)

	// --- JSON API ---
	accountHandler := handler.NewAccountHandler(accounts)
	sessionHandler := handler.NewSessionHandler(sessions, deps.Tokens)
	reservationHandler := handler.NewReservationHandler(reservations)

	v1 := e.Group("/v1")
	v1.POST("/accounts", accountHandler.Register)
	v1.POST("/sessions", sessionHandler.Login)

	authed := v1.Group("",
		middleware.Auth(deps.Tokens, handler.SessionCookie),
		middleware.Session(sessions),
	)
	authed.GET("/sessions/current", sessionHandler.Current)
	authed.DELETE("/sessions/current", sessionHandler.Logout)
	authed.GET("/reservations", reservationHandler.List)
	authed.POST("/reservations", reservationHandler.Create)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	authed.PATCH("/reservations/:id", reservationHandler.Update, adminOnly)
	authed.DELETE("/reservations/:id", reservationHandler.Delete, adminOnly)

	return e, nil
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
