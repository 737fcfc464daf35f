package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"leadcapture/configs"
	"leadcapture/database"
	"leadcapture/metrics"
	"leadcapture/middlewares"
	leads_module "leadcapture/modules/leads-module"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetOutput(os.Stdout)

	cfg, err := configs.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("configuration error")
	}
	log.SetLevel(log.InfoLevel)
	if cfg.Debug() {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{
		"env":  cfg.AppEnv,
		"port": cfg.AppPort,
		"dsn":  cfg.Database.DSNMasked(),
	}).Info("configuration loaded")

	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.Timeout)
	err = database.InitializeSchema(ctx, db)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to initialize schema")
	}
	log.Info("schema initialized")

	controller := leads_module.NewController(leads_module.NewRepository(db, cfg.Database.Timeout))
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newRouter(cfg, controller),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to run server")
		}
	}()
	log.WithField("addr", srv.Addr).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func newRouter(cfg configs.Config, controller *leads_module.Controller) *gin.Engine {
	if cfg.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(metrics.Handler())
	controller.RegisterRoutes(r)
	return r
}
