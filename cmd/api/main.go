package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/growthops/checkin-api/internal/cache"
	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/handlers"
	"github.com/growthops/checkin-api/internal/importer"
	"github.com/growthops/checkin-api/internal/mailer"
	"github.com/growthops/checkin-api/internal/repository"
	"github.com/growthops/checkin-api/internal/service"
	"github.com/growthops/checkin-api/pkg/config"
	"github.com/growthops/checkin-api/pkg/database"
	"github.com/growthops/checkin-api/pkg/events"
	"github.com/growthops/checkin-api/pkg/logger"
	mw "github.com/growthops/checkin-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database.URL, database.Options{
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		MaxLifetime: cfg.Database.MaxLifetime,
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	statsCache, err := cache.New(cfg.Redis.URL, cfg.Redis.StatsTTL)
	if err != nil {
		logger.Warn("Stats cache disabled", "error", err)
		statsCache = nil
	} else {
		defer statsCache.Close()
	}

	var bus events.Publisher
	if natsBus, err := events.NewNATSEventBus(cfg.NATS.URL); err != nil {
		logger.Warn("Event bus disabled", "error", err)
		bus = events.NoopPublisher{}
	} else {
		bus = natsBus
		defer natsBus.Close()
	}

	// Repositories
	participantRepo := repository.NewParticipantRepository(pool)
	checkinRepo := repository.NewCheckInRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Services
	checkinService := service.NewCheckInService(checkinRepo, participantRepo, bus, statsCache)
	participantService := service.NewParticipantService(participantRepo)
	analyticsService := service.NewAnalyticsService(checkinRepo, participantRepo, statsRepo, statsCache)
	userService := service.NewUserService(userRepo, mailer.FromConfig(cfg.Email), cfg)
	authService := service.NewAuthService(userRepo, cfg)
	imp := importer.New(participantRepo, bus)

	h := handlers.New(checkinService, participantService, analyticsService, userService, authService, imp, cfg)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Post("/login", h.Login)

	// Staff check-in routes
	r.Route("/checkin", func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Get("/participants", h.SearchParticipants)
		r.Post("/", h.SubmitCheckIn)
		r.Patch("/{participantID}/{day}", h.UpdateCheckIn)
	})

	// Admin routes, each gated by its capability flag
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.With(h.RequirePermission(domain.CanViewDashboard)).Get("/dashboard", h.Dashboard)

		r.Route("/participants", func(r chi.Router) {
			r.Use(h.RequirePermission(domain.CanViewParticipants))
			r.Get("/", h.ListParticipants)
			r.Post("/", h.CreateParticipant)
			r.Get("/{id}", h.GetParticipant)
			r.Patch("/{id}", h.UpdateParticipant)
		})

		r.With(h.RequirePermission(domain.CanImportData)).Post("/import", h.ImportParticipants)

		r.Route("/seminars", func(r chi.Router) {
			r.Use(h.RequirePermission(domain.CanViewAnalytics))
			r.Get("/", h.ListSeminars)
			r.Get("/{eventCode}/analytics", h.SeminarAnalytics)
			r.Get("/{eventCode}/stats", h.GetSeminarStats)
			r.Put("/{eventCode}/stats", h.UpdateSeminarStats)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequirePermission(domain.CanManageUsers))
			r.Get("/", h.ListUsers)
			r.Post("/invite", h.InviteUser)
			r.Patch("/{id}/role", h.ChangeUserRole)
			r.Patch("/{id}/permissions", h.SetUserPermission)
			r.Delete("/{id}", h.DeleteUser)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down check-in API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting check-in API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
