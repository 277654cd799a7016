package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	v1 "github.com/mvillarin/patrol_dispatch_system/internal/handler/http/v1"
	"github.com/mvillarin/patrol_dispatch_system/internal/push"
	"github.com/mvillarin/patrol_dispatch_system/internal/repository"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
	"github.com/mvillarin/patrol_dispatch_system/pkg/clock"
	"github.com/mvillarin/patrol_dispatch_system/pkg/logger"
	"github.com/mvillarin/patrol_dispatch_system/pkg/postgres"
	redisclient "github.com/mvillarin/patrol_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/mvillarin/patrol_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Patrol Dispatch System API
// @version 1.0
// @description Citizen incident report routing and patrol dispatch lifecycle API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	pushPublisher := push.NewRedisPublisher(redisClient)

	pushWorker := push.NewWorker(redisClient, log, cfg)
	pushWorker.Start(ctx)

	reportRepo := repository.NewReportRepository(dbpool)
	dispatchRepo := repository.NewDispatchRepository(dbpool)
	stationRepo := repository.NewStationRepository(dbpool, redisClient)
	barangayRepo := repository.NewBarangayRepository(dbpool, redisClient)
	officerRepo := repository.NewOfficerRepository(dbpool)

	clk := clock.Real()
	index := service.NewContainmentIndex(barangayRepo)
	resolver := service.NewAssignmentResolver(stationRepo, barangayRepo, index, cfg, log)
	selector := service.NewOfficerSelector(officerRepo, clk,
		time.Duration(cfg.OfficerFreshFixMinutes)*time.Minute, log)

	reportService := service.NewReportService(reportRepo, stationRepo, resolver, clk, log)
	dispatchService := service.NewDispatchService(dispatchRepo, reportRepo, officerRepo,
		resolver, selector, pushPublisher, clk, cfg.PushTTLSeconds, log)
	rosterService := service.NewRosterService(stationRepo, barangayRepo, officerRepo, index, clk, log)

	handler := v1.NewHandler(reportService, dispatchService, rosterService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
