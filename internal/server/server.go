package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/handlers"
)

// ServerParams holds the dependencies needed for the API server
type ServerParams struct {
	fx.In

	Logger *zap.Logger
	Port   int `name:"port"`

	ProjectHandler    *handlers.ProjectHandler
	GPSHandler        *handlers.GPSHandler
	FinancialHandler  *handlers.FinancialHandler
	ReferenceHandler  *handlers.ReferenceHandler
	MonitoringHandler *handlers.MonitoringHandler
}

// NewServer builds the HTTP server with all API routes mounted.
func NewServer(p ServerParams) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handlers.RequestLogger(p.Logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", p.ProjectHandler.List)
			r.Post("/", p.ProjectHandler.Create)
			r.Get("/{id}", p.ProjectHandler.Get)
			r.Put("/{id}", p.ProjectHandler.Update)
			r.Delete("/{id}", p.ProjectHandler.Delete)
		})

		r.Route("/gps", func(r chi.Router) {
			r.Get("/", p.GPSHandler.List)
			r.Post("/", p.GPSHandler.Create)
			r.Get("/realtime", p.GPSHandler.Realtime)
			r.Post("/realtime", p.GPSHandler.RealtimeAction)
		})

		r.Route("/financial", func(r chi.Router) {
			r.Get("/", p.FinancialHandler.List)
			r.Post("/", p.FinancialHandler.Create)
		})

		r.Get("/users", p.ReferenceHandler.Users)
		r.Get("/provinces", p.ReferenceHandler.Provinces)
		r.Get("/work-types", p.ReferenceHandler.WorkTypes)
		r.Get("/contractors", p.ReferenceHandler.Contractors)
	})

	r.Route("/api/monitoring", func(r chi.Router) {
		r.Get("/", p.MonitoringHandler.Get)
		r.Post("/", p.MonitoringHandler.Post)
	})
	r.Get("/api/database/status", p.MonitoringHandler.DatabaseStatus)

	p.Logger.Info("Starting server", zap.Int("port", p.Port), zap.String("host", "0.0.0.0"))

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", p.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Lifecycle starts the server in the background on app start and shuts
// it down gracefully on stop.
func Lifecycle(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() { // non-blocking server start
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
