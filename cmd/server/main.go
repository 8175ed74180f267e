package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/bootstrap"
	"github.com/mamadbah2/herd/internal/config"
	"github.com/mamadbah2/herd/internal/scheduler"
	"github.com/mamadbah2/herd/internal/server/handlers"
	"github.com/mamadbah2/herd/internal/server/router"
	commandsvc "github.com/mamadbah2/herd/internal/service/commands"
	reportingsvc "github.com/mamadbah2/herd/internal/service/reporting"
	whatsappsvc "github.com/mamadbah2/herd/internal/service/whatsapp"
	whatsappclient "github.com/mamadbah2/herd/pkg/clients/whatsapp"
	"github.com/mamadbah2/herd/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	backend, err := bootstrap.OpenBackend(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to open cattle backend", zap.Error(err), zap.String("source", cfg.Reporting.Source))
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close backend", zap.Error(err))
		}
	}()

	reportingSvc := reportingsvc.NewService(backend.Source, backend.Store, baseLogger.Named("svc.reporting"))
	commandDispatcher := commandsvc.NewService(reportingSvc, baseLogger.Named("svc.commands"))

	// Left nil when unconfigured so the messaging service reports itself disabled.
	var whatsClient whatsappclient.Client
	if cfg.WhatsApp.Enabled() {
		whatsClient = whatsappclient.NewClient(cfg.WhatsApp)
	} else {
		baseLogger.Warn("whatsapp credentials missing, outbound messaging disabled")
	}

	messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, commandDispatcher, baseLogger.Named("svc.whatsapp"))
	webhookHandler := handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp"))
	reportHandler := handlers.NewReportHandler(reportingSvc, messagingSvc, cfg.WhatsApp.ManagerID, baseLogger.Named("handlers.reports"))
	engine := router.New(webhookHandler, reportHandler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(*cfg, reportingSvc, messagingSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("source", cfg.Reporting.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
