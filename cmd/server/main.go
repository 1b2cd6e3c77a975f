package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	grpcapi "moto-rentals-backend/internal/api/grpc"
	httpapi "moto-rentals-backend/internal/api/http"
	"moto-rentals-backend/internal/config"
	"moto-rentals-backend/internal/jobs"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/repository"
	"moto-rentals-backend/internal/repository/memory"
	"moto-rentals-backend/internal/repository/postgres"
	"moto-rentals-backend/internal/repository/seed"
	"moto-rentals-backend/internal/scheduler"
	"moto-rentals-backend/internal/security"
	"moto-rentals-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Moto Rentals Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Catalog configuration", "source", cfg.Catalog.Source, "projector_cache_size", cfg.Catalog.ProjectorCap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// gRPC health comes up first and reports NOT_SERVING until the catalog is loaded
	healthServer := grpcapi.NewHealthServer()
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}
	go func() {
		logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
		if err := healthServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", "error", err)
		}
	}()

	// Initialize Repositories
	vehicleRepo, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open catalog", "error", err)
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer closeCatalog()

	contentRepo, err := seed.NewDefaultContentRepository()
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	sessionRepo := memory.NewSessionRepository()

	// Initialize Services
	catalogSvc, err := service.NewCatalogService(ctx, vehicleRepo, cfg.Catalog.ProjectorCap)
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		log.Fatalf("Failed to load catalog: %v", err)
	}
	sessionSvc := service.NewSessionService(sessionRepo, catalogSvc)
	contentSvc := service.NewContentService(contentRepo)
	healthServer.MarkServing()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Secret, time.Duration(cfg.Session.IdleMinutes)*time.Minute)

	// Scheduled jobs
	jobRunner := jobs.NewJobRunner(sessionSvc, sessionRepo, cfg)
	sched, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Catalog:  catalogSvc,
		Sessions: sessionSvc,
		Content:  contentSvc,
		Tokens:   tokenManager,
	}, cfg.HTTP)
	server := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP shutdown error", "error", err)
		}
	}()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}

	sched.Stop()
	healthServer.Stop()
	logger.Info("Server stopped")
}

// openCatalog selects the vehicle source. The returned close func is always
// safe to call.
func openCatalog(ctx context.Context, cfg *config.Config) (repository.VehicleRepository, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("Database connection established")
		store := postgres.NewStore(db)
		return store.VehicleRepository, func() { db.Close() }, nil

	default:
		if cfg.Catalog.SeedFile != "" {
			logger.Info("Loading catalog seed file", "path", cfg.Catalog.SeedFile)
			repo, err := seed.NewVehicleRepositoryFromFile(cfg.Catalog.SeedFile)
			return repo, noop, err
		}
		repo, err := seed.NewDefaultVehicleRepository()
		return repo, noop, err
	}
}
