package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"youthhub/internal/config"
	"youthhub/internal/db"
	"youthhub/internal/handlers"
	"youthhub/internal/handlers/api"
	"youthhub/internal/middleware"
	"youthhub/internal/workflow"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, coordinator *workflow.Coordinator, site *config.SiteConfig) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.SessionStore, database)

	// Initialize handlers
	sparkHandler := api.NewSparkHandler(database, coordinator)
	supervisionHandler := api.NewSupervisionHandler(database, coordinator)
	eventHandler := api.NewEventHandler(database)
	clubHandler := api.NewClubHandler(database, site)
	userHandler := api.NewUserHandler(database)
	profileHandler := api.NewProfileHandler()
	centerHandler := api.NewCenterHandler(site)
	adminHandler := handlers.NewAdminHandler(database, s.Cfg)
	probeHandler := handlers.NewProbeHandler(database)

	// Auth routes - OIDC is always required for frontend access
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. All users must be authenticated.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Public API - centers and categories come from static site config
	s.App.Get("/api/centers", centerHandler.List)
	s.App.Get("/api/categories", centerHandler.Categories)

	// Sparks API
	s.App.Get("/api/sparks", authMiddleware.RequireAuth, sparkHandler.ListPublic)
	s.App.Get("/api/sparks/mine", authMiddleware.RequireAuth, sparkHandler.GetMine)
	s.App.Post("/api/sparks", authMiddleware.RequireAuth, sparkHandler.Create)
	s.App.Put("/api/sparks/mine", authMiddleware.RequireAuth, sparkHandler.Update)
	s.App.Delete("/api/sparks/:id", authMiddleware.RequireAuth, sparkHandler.Delete)

	// Supervision workflow - member side
	s.App.Get("/api/supervisors", authMiddleware.RequireAuth, sparkHandler.ListSupervisors)
	s.App.Post("/api/supervision/requests", authMiddleware.RequireAuth, sparkHandler.RequestSupervision)
	s.App.Delete("/api/supervision/requests/:id", authMiddleware.RequireAuth, sparkHandler.CancelRequest)

	// Supervision workflow - supervisor side
	s.App.Get("/api/supervision/pending", authMiddleware.RequireAuth, authMiddleware.RequireSupervisor, supervisionHandler.PendingQueue)
	s.App.Post("/api/supervision/requests/:id/respond", authMiddleware.RequireAuth, authMiddleware.RequireSupervisor, supervisionHandler.Respond)

	// Events API
	s.App.Get("/api/events", authMiddleware.RequireAuth, eventHandler.List)
	s.App.Get("/api/events/:id", authMiddleware.RequireAuth, eventHandler.Get)
	s.App.Post("/api/events", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, eventHandler.Create)
	s.App.Delete("/api/events/:id", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, eventHandler.Delete)

	// Clubs API
	s.App.Get("/api/clubs", authMiddleware.RequireAuth, clubHandler.List)
	s.App.Get("/api/clubs/:id", authMiddleware.RequireAuth, clubHandler.Get)
	s.App.Post("/api/clubs", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, clubHandler.Create)
	s.App.Delete("/api/clubs/:id", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, clubHandler.Delete)

	// Profile API
	s.App.Get("/api/me", authMiddleware.RequireAuth, profileHandler.Me)

	// User administration (admin only)
	s.App.Get("/api/users", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, userHandler.List)
	s.App.Post("/api/users/:id/role", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, userHandler.UpdateRole)

	// Admin dashboard (server-rendered)
	s.App.Get("/admin", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, adminHandler.Dashboard)

	return nil
}
