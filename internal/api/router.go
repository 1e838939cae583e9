package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Balerion769/Disaster-Response-Platform/internal/api/handlers/http/disasters"
	"github.com/Balerion769/Disaster-Response-Platform/internal/api/handlers/http/feeds"
	"github.com/Balerion769/Disaster-Response-Platform/internal/api/handlers/http/reports"
	"github.com/Balerion769/Disaster-Response-Platform/internal/api/handlers/http/system"
	"github.com/Balerion769/Disaster-Response-Platform/internal/config"
	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/internal/middleware"
	"github.com/Balerion769/Disaster-Response-Platform/internal/notify"
	"github.com/Balerion769/Disaster-Response-Platform/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *notify.Hub) *Server {
	disasterHandler := disasters.NewHandler(logger, svc.Disasters)
	reportHandler := reports.NewHandler(logger, svc.Reports)
	feedHandler := feeds.NewHandler(logger, svc.Feeds)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(disasterHandler, reportHandler, feedHandler, systemHandler, hub, middleware.DefaultDirectory(), logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	disasterHandler *disasters.Handler,
	reportHandler *reports.Handler,
	feedHandler *feeds.Handler,
	systemHandler *system.Handler,
	hub *notify.Hub,
	directory map[string]domain.User,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", systemHandler.SystemHealth)

		// Everything below requires a known identity.
		api.Group(func(priv chi.Router) {
			priv.Use(middleware.Identify(directory, logger))
			priv.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			priv.Route("/disasters", func(dr chi.Router) {
				dr.Post("/", disasterHandler.DisasterCreate)
				dr.Get("/", disasterHandler.DisasterList)
				dr.Put("/{id}", disasterHandler.DisasterUpdate)
				dr.With(middleware.AdminOnly(logger)).Delete("/{id}", disasterHandler.DisasterDelete)
				dr.Get("/{id}/social-media", feedHandler.SocialMedia)
			})

			priv.Post("/reports", reportHandler.ReportCreate)
			priv.With(middleware.AdminOnly(logger)).Post("/verify-image", reportHandler.VerifyImage)

			priv.Get("/official-updates", feedHandler.OfficialUpdates)
			priv.Get("/resources", feedHandler.Resources)
		})
	})

	// Notification side channel for real-time subscribers.
	r.Get("/ws", hub.HandleWS)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
