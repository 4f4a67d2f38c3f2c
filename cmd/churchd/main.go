// cmd/churchd/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/auth"
	"github.com/Braham27/churchflow-sub002/internal/config"
	"github.com/Braham27/churchflow-sub002/internal/db"
	"github.com/Braham27/churchflow-sub002/internal/email"
	"github.com/Braham27/churchflow-sub002/internal/handler"
	"github.com/Braham27/churchflow-sub002/internal/metrics"
	"github.com/Braham27/churchflow-sub002/internal/middleware"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var rootCmd = &cobra.Command{
	Use:   "churchd",
	Short: "ChurchFlow API server",
	Long:  `churchd serves the multi-tenant ChurchFlow API and manages its database schema.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		sqlDB, err := sql.Open("postgres", dsnFor(cfg))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer sqlDB.Close()

		if err := db.RunMigrations(sqlDB); err != nil {
			return err
		}
		fmt.Println("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	gdb, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gdb)
	membershipRepo := repository.NewMembershipRepository(gdb)
	churchRepo := repository.NewChurchRepository(gdb)
	invitationRepo := repository.NewInvitationRepository(gdb)
	memberRepo := repository.NewMemberRepository(gdb)
	eventRepo := repository.NewEventRepository(gdb)
	groupRepo := repository.NewGroupRepository(gdb)
	fundRepo := repository.NewFundRepository(gdb)
	donationRepo := repository.NewDonationRepository(gdb)
	pageRepo := repository.NewPageRepository(gdb)
	notificationRepo := repository.NewNotificationRepository(gdb)
	activityLogRepo := repository.NewActivityLogRepository(gdb)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Tenant resolution and audit trail
	resolver := tenant.NewResolver(membershipRepo)
	recorder := audit.NewDBRecorder(activityLogRepo)

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager)
	churchService := service.NewChurchService(churchRepo, membershipRepo, invitationRepo, emailService, recorder, cfg.BaseURL)
	memberService := service.NewMemberService(memberRepo, recorder)
	eventService := service.NewEventService(eventRepo, memberRepo, recorder)
	groupService := service.NewGroupService(groupRepo, memberRepo, recorder)
	donationService := service.NewDonationService(fundRepo, donationRepo, memberRepo, recorder)
	pageService := service.NewPageService(pageRepo, recorder)
	commService := service.NewCommunicationService(notificationRepo, memberRepo, emailService, recorder)
	activityService := service.NewActivityService(activityLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	churchHandler := handler.NewChurchHandler(churchService)
	memberHandler := handler.NewMemberHandler(memberService)
	eventHandler := handler.NewEventHandler(eventService)
	groupHandler := handler.NewGroupHandler(groupService)
	donationHandler := handler.NewDonationHandler(donationService)
	pageHandler := handler.NewPageHandler(pageService)
	commHandler := handler.NewCommunicationHandler(commService)
	activityHandler := handler.NewActivityHandler(activityService)

	httpMetrics := metrics.NewHTTPMetrics()

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(httpMetrics.Middleware())
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/metrics", metrics.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/signup", authHandler.SignupHandler)
				r.Post("/login", authHandler.LoginHandler)
			})
		})

		// Authenticated but not yet tenant-bound. Church creation and
		// invitation acceptance are how a user acquires a tenant.
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Post("/churches", churchHandler.CreateChurch)
			r.Post("/invitations/accept", churchHandler.AcceptInvitation)
		})

		// Tenant-scoped routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))
			r.Use(middleware.TenantMiddleware(resolver))

			r.Route("/church", func(r chi.Router) {
				r.Get("/", churchHandler.GetChurch)
				r.Put("/settings", churchHandler.UpdateSettings)
				r.Post("/invitations", churchHandler.Invite)
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", memberHandler.List)
				r.Post("/", memberHandler.Create)
				r.Get("/{id}", memberHandler.Get)
				r.Put("/{id}", memberHandler.Update)
				r.Delete("/{id}", memberHandler.Delete)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)
				r.Post("/", eventHandler.Create)
				r.Get("/{id}", eventHandler.Get)
				r.Put("/{id}", eventHandler.Update)
				r.Delete("/{id}", eventHandler.Delete)
				r.Post("/{id}/check-in", eventHandler.CheckIn)
				r.Get("/{id}/attendance", eventHandler.Attendance)
			})

			r.Route("/groups", func(r chi.Router) {
				r.Get("/", groupHandler.List)
				r.Post("/", groupHandler.Create)
				r.Get("/{id}", groupHandler.Get)
				r.Put("/{id}", groupHandler.Update)
				r.Delete("/{id}", groupHandler.Delete)
				r.Get("/{id}/members", groupHandler.Members)
				r.Post("/{id}/members", groupHandler.AddMember)
				r.Delete("/{id}/members/{memberID}", groupHandler.RemoveMember)
			})

			r.Route("/funds", func(r chi.Router) {
				r.Get("/", donationHandler.ListFunds)
				r.Post("/", donationHandler.CreateFund)
			})

			r.Route("/donations", func(r chi.Router) {
				r.Get("/", donationHandler.List)
				r.Post("/", donationHandler.Create)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", pageHandler.List)
				r.Post("/", pageHandler.Create)
				r.Get("/{id}", pageHandler.Get)
				r.Put("/{id}", pageHandler.Update)
				r.Delete("/{id}", pageHandler.Delete)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", commHandler.ListNotifications)
				r.Post("/", commHandler.Broadcast)
				r.Post("/email", commHandler.EmailMembers)
			})

			r.Get("/activity", activityHandler.List)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func dsnFor(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Unique violations come back as gorm.ErrDuplicatedKey so the
		// allocator and repositories can react to them.
		TranslateError: true,
	}

	gdb, err := gorm.Open(postgres.Open(dsnFor(cfg)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return gdb, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
