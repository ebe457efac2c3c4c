package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/aps-console/api/swagger"
	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/handler"
	internalmiddleware "github.com/noah-isme/aps-console/internal/middleware"
	"github.com/noah-isme/aps-console/internal/models"
	"github.com/noah-isme/aps-console/internal/service"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	"github.com/noah-isme/aps-console/pkg/config"
	"github.com/noah-isme/aps-console/pkg/logger"
	corsmiddleware "github.com/noah-isme/aps-console/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/aps-console/pkg/middleware/requestid"
	"github.com/noah-isme/aps-console/pkg/storage"
)

// @title APS Console API
// @version 0.1.0
// @description Session-scoped console for the APS production scheduling backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsSvc *service.MetricsService
	if cfg.Observability.MetricsEnabled {
		metricsSvc = service.NewMetricsService()
	}

	client := apsclient.New(cfg.Backend.BaseURL,
		apsclient.WithLogger(logr.Named("apsclient")),
		apsclient.WithHook(metricsSvc.ObserveBackendCall),
		apsclient.WithRequestEditor(func(ctx context.Context, req *http.Request) {
			if id := reqidmiddleware.FromContext(ctx); id != "" {
				req.Header.Set(reqidmiddleware.HeaderKey, id)
			}
		}),
	)

	validate := validator.New()
	models.RegisterValidation(validate)

	store, err := storage.NewLocalStorage(cfg.Downloads.Dir)
	if err != nil {
		logr.Fatal("failed to prepare downloads dir", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Downloads.SignedURLSecret, cfg.Downloads.SignedURLTTL)
	downloads := service.NewDownloadService(store, signer, service.DownloadConfig{
		CleanupInterval: cfg.Downloads.CleanupInterval,
	}, logr.Named("downloads"))
	downloads.StartCleanup(ctx)

	factory := func(id string) *session.Controller {
		return session.New(session.Config{
			ID: id,
			Calendar: calendar.AdapterConfig{
				HourStart: cfg.Calendar.HourStart,
				HourEnd:   cfg.Calendar.HourEnd,
				Location:  cfg.Calendar.Location(),
			},
			NotificationTTL: cfg.Session.NotificationTTL,
			MaxUploadBytes:  cfg.Upload.MaxFileSizeBytes,
			PrintFontPath:   cfg.Print.FontPath,
		}, client, confirm.NewDeferred(cfg.Session.ConfirmationTTL), downloads, validate, logr)
	}
	sessions := service.NewSessionService(factory, metricsSvc, service.SessionConfig{TTL: cfg.Session.TTL}, logr.Named("sessions"))
	sessions.StartSweeper(ctx)
	defer sessions.CloseAll()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.Routes{
		Sessions:       handler.NewSessionHandler(sessions, int(cfg.Session.TTL/time.Second), cfg.Env == config.EnvProduction),
		Calendar:       handler.NewCalendarHandler(),
		Schedule:       handler.NewScheduleHandler(cfg.Upload.MaxFileSizeBytes),
		Downloads:      handler.NewDownloadHandler(downloads),
		Metrics:        handler.NewMetricsHandler(metricsSvc, sessions),
		RequireSession: internalmiddleware.Session(sessions),
		MetricsEnabled: cfg.Observability.MetricsEnabled,
	}.Register(r)

	if cfg.Observability.DocsEnabled && cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
	logr.Info("server stopped")
}
