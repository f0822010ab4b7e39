package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"qrattendance/config"
	"qrattendance/jobs"
	"qrattendance/routes"
	"qrattendance/services"
	"qrattendance/services/logger"
	"qrattendance/services/notification"
)

func main() {
	config.LoadEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	if cfg.LogDir != "" {
		fileLogger, closer, err := logger.NewFileLogger(logger.ParseLevel(cfg.LogLevel), cfg.LogDir)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer closer.Close()
		appLogger = fileLogger
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, m, c, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	store, err := config.NewStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect %s store: %v", cfg.StoreDriver, err)
	}

	auth, err := services.NewAdminAuthenticator(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		log.Fatalf("Invalid admin credentials: %v", err)
	}

	notifier := notification.NewMelodyService(m)
	attendance := services.NewAttendanceService(services.AttendanceServiceOptions{
		Store:    store,
		Location: cfg.Location,
		Logger:   appLogger,
		Notifier: notifier,
	})
	registration := services.NewRegistrationService(services.RegistrationServiceOptions{
		Store:    store,
		Logger:   appLogger,
		Notifier: notifier,
	})

	if cfg.PrecreateColumns {
		if err := jobs.InitCronJobs(c, attendance, appLogger); err != nil {
			log.Fatalf("Failed to initialize cron jobs: %v", err)
		}
		defer c.Stop()
	}

	routes.SetupRoutes(router, routes.Dependencies{
		Auth:         auth,
		Registration: registration,
		Attendance:   attendance,
		Melody:       m,
		Logger:       appLogger,
		SiteURL:      cfg.SiteURL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server starting on port %s (store=%s, timezone=%s)", cfg.Port, cfg.StoreDriver, cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = m.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown: %v", err)
	}
}
