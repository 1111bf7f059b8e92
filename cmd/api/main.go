package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sports-association-admin/config"
	httpHandler "sports-association-admin/internal/adapter/http/handler"
	"sports-association-admin/internal/adapter/storage/audited"
	pgStorage "sports-association-admin/internal/adapter/storage/postgres"
	redisStorage "sports-association-admin/internal/adapter/storage/redis"
	"sports-association-admin/internal/audit"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/internal/service"
	"sports-association-admin/pkg/logger"

	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Sports Association Admin")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	clubRepo := pgStorage.NewClubRepo(pool)
	playerRepo := pgStorage.NewPlayerRepo(pool)
	officialRepo := pgStorage.NewOfficialRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Audit pipeline: recorder -> interceptor -> audited repositories.
	// Every mutation through the audited decorators produces a record.
	auditSvc := service.NewAuditService(auditRepo, userRepo, log, cfg.Audit.WriteTimeout)
	interceptor := audit.NewInterceptor(auditSvc, log)

	auditedUsers := audited.NewUserRepository(userRepo, interceptor)
	auditedClubs := audited.NewClubRepository(clubRepo, interceptor)
	auditedPlayers := audited.NewPlayerRepository(playerRepo, interceptor)
	auditedOfficials := audited.NewOfficialRepository(officialRepo, interceptor)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(auditedUsers, hashSvc, tokenSvc)
	clubSvc := service.NewClubService(auditedClubs)
	playerSvc := service.NewPlayerService(auditedPlayers, auditedClubs)
	officialSvc := service.NewOfficialService(auditedOfficials)
	userSvc := service.NewUserService(auditedUsers)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Retention pruner: daily job removing audit records past the window.
	// retention_days <= 0 keeps records forever.
	var pruner *cron.Cron
	if cfg.Audit.RetentionDays > 0 {
		pruner = cron.New()
		_, err := pruner.AddFunc("@daily", func() {
			cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Audit.RetentionDays)
			jobCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			n, err := auditRepo.DeleteOlderThan(jobCtx, cutoff)
			if err != nil {
				log.Error().Err(err).Msg("audit retention prune failed")
				return
			}
			log.Info().Int64("pruned", n).Time("cutoff", cutoff).Msg("audit retention prune complete")
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule audit retention job")
		}
		pruner.Start()
		defer pruner.Stop()
		log.Info().Int("retention_days", cfg.Audit.RetentionDays).Msg("Audit retention pruner scheduled")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		ClubSvc:        clubSvc,
		PlayerSvc:      playerSvc,
		OfficialSvc:    officialSvc,
		UserSvc:        userSvc,
		AuditSvc:       auditSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
