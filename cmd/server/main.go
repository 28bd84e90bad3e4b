package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-post-service/internal/config"
	delivery_http "blog-post-service/internal/delivery/http"
	post_http "blog-post-service/internal/delivery/http/post"
	metrics_server "blog-post-service/internal/delivery/metrics"
	"blog-post-service/internal/logger"
	prometheus_metrics "blog-post-service/internal/metrics/prometheus"
	post_postgres "blog-post-service/internal/repository/post/postgres"
	post_service "blog-post-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	postService := post_service.NewPostService(postRepo, log, metrics)

	if err := postService.SeedInitialPosts(ctx); err != nil {
		log.Error("Failed to seed initial posts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	postHTTPApi := post_http.NewPostHTTPService(postService, log)
	httpServer := delivery_http.NewServer(
		postHTTPApi,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		cfg.Static.Dir,
		log,
		metrics,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
