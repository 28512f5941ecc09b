package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agencyops/backoffice/internal/api"
	"github.com/agencyops/backoffice/internal/api/handler"
	"github.com/agencyops/backoffice/internal/core/scope"
	"github.com/agencyops/backoffice/internal/core/service"
	"github.com/agencyops/backoffice/internal/infrastructure/config"
	mongodb "github.com/agencyops/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/agencyops/backoffice/internal/infrastructure/db/redis"
	"github.com/agencyops/backoffice/internal/infrastructure/scheduler"
	"github.com/agencyops/backoffice/pkg/logger"
)

// @title           Agency Back-Office API
// @version         1.0
// @description     Multi-tenant agency back-office: clients, projects, invoices, hosting, reminders, and notifications.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("starting backoffice")

	ctx := context.Background()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	agencyRepo := mongodb.NewAgencyRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)
	hostingRepo := mongodb.NewHostingRepository(db)
	reminderRepo := mongodb.NewReminderRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	for name, fn := range map[string]func(context.Context) error{
		"users":         userRepo.EnsureIndexes,
		"agencies":      agencyRepo.EnsureIndexes,
		"clients":       clientRepo.EnsureIndexes,
		"projects":      projectRepo.EnsureIndexes,
		"invoices":      invoiceRepo.EnsureIndexes,
		"hosting":       hostingRepo.EnsureIndexes,
		"reminders":     reminderRepo.EnsureIndexes,
		"notifications": notificationRepo.EnsureIndexes,
	} {
		if err := fn(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Tenant scope resolution ---
	var cache scope.Cache
	if cfg.Scope.UseRedis {
		cache = redisdb.NewScopeCache(rdb, cfg.Scope.CacheTTL)
	} else {
		cache = scope.NewMemoryCache(cfg.Scope.CacheTTL)
	}
	resolver := scope.NewResolver(userRepo, agencyRepo, cache, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	agencyService := service.NewAgencyService(agencyRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, log)
	hostingService := service.NewHostingCatalog(hostingRepo, log)
	reminderService := service.NewReminderService(reminderRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)
	sweepService := service.NewSweepService(reminderRepo, invoiceRepo, projectRepo, hostingRepo, notificationRepo, log)

	// --- Scheduled sweep ---
	sched := scheduler.New(agencyRepo, sweepService, log)
	if err := sched.Start(cfg.Sweep.Schedule); err != nil {
		log.Fatal().Err(err).Msg("sweep scheduler failed to start")
	}
	defer sched.Stop()

	// --- HTTP ---
	e := api.NewRouter(api.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Agency:       handler.NewAgencyHandler(agencyService),
		Client:       handler.NewClientHandler(clientService, resolver),
		Project:      handler.NewProjectHandler(projectService, resolver),
		Invoice:      handler.NewInvoiceHandler(invoiceService, resolver),
		Hosting:      handler.NewHostingHandler(hostingService, resolver),
		Reminder:     handler.NewReminderHandler(reminderService, resolver),
		Notification: handler.NewNotificationHandler(notificationService, sweepService, resolver),
		Health:       handler.NewHealthHandler(db, rdb),
	}, cfg.JWTSecret)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	log.Info().Msg("backoffice stopped")
}
