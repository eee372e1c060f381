package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/shenikar/mineguard/docs"
	"github.com/shenikar/mineguard/internal/config"
	v1 "github.com/shenikar/mineguard/internal/handler/http/v1"
	"github.com/shenikar/mineguard/internal/handler/ws"
	"github.com/shenikar/mineguard/internal/notify"
	"github.com/shenikar/mineguard/internal/repository"
	"github.com/shenikar/mineguard/internal/roster"
	"github.com/shenikar/mineguard/internal/service"
	"github.com/shenikar/mineguard/pkg/logger"
	natsclient "github.com/shenikar/mineguard/pkg/nats"
	"github.com/shenikar/mineguard/pkg/postgres"
	redisclient "github.com/shenikar/mineguard/pkg/redis"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, websocket hub and webhook worker",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on start")
	serveCmd.Flags().StringVar(&migrationsDir, "migrations", "migrations", "directory with SQL migrations")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if !skipMigrations {
		if err := runMigrations(cfg, log, "up"); err != nil {
			return err
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	workers, err := roster.Load(cfg.WorkersFile)
	if err != nil {
		return err
	}

	// Каналы рассылки событий
	hub := ws.NewHub(log, cfg.AllowedOrigins)
	defer hub.Close()
	publisher := notify.NewFanout().
		Add("websocket", hub).
		Add("webhook", notify.NewRedisWebhookPublisher(redisClient))

	if cfg.NATSURL != "" {
		conn, err := natsclient.Connect(cfg.NATSURL, log)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer conn.Drain()
		publisher.Add("nats", notify.NewNATSPublisher(conn, cfg.NATSSubjectPrefix))
		log.Info("Successfully connected to NATS")
	}

	// Инициализация репозиториев
	hazardRepo := repository.NewHazardRepository(dbpool, redisClient, cfg.HazardCacheTTL)
	sensorRepo := repository.NewSensorRepository(dbpool)

	// Инициализация сервисов
	hazardService := service.NewHazardService(hazardRepo, workers, publisher, log, cfg)
	sensorService := service.NewSensorService(sensorRepo, hazardService, publisher, log, cfg.SensorReadingsLimit)

	// Инициализация хэндлеров
	handler := v1.NewHandler(hazardService, sensorService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	api.GET("/ws", hub.ServeWS(hazardService))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return notify.NewWebhookWorker(redisClient, log, cfg).Run(gCtx)
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Server stopped with error")
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}
