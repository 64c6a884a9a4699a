package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/cup-organizer/config"
	"github.com/Dosada05/cup-organizer/db"
	"github.com/Dosada05/cup-organizer/handlers"
	"github.com/Dosada05/cup-organizer/metrics"
	"github.com/Dosada05/cup-organizer/middleware"
	"github.com/Dosada05/cup-organizer/repositories"
	api "github.com/Dosada05/cup-organizer/routes"
	"github.com/Dosada05/cup-organizer/services"
	"github.com/Dosada05/cup-organizer/storage"
	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Value: true,
				Usage: "apply database migrations on start (postgres store only)",
			},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	// Настройка логгера
	logger, err := newLogger(c)
	if err != nil {
		return err
	}

	// Загрузка конфигурации
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		return err
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("store", cfg.StoreBackend))

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Хранилище турниров
	store, closeStore, err := openStore(ctx, cfg, logger, c.Bool("migrate"))
	if err != nil {
		logger.Error("failed to open tournament store", slog.Any("error", err))
		return err
	}
	defer closeStore()

	repo := repositories.NewTournamentRepositoryWithDefaults(store, logger, cfg.TournamentDefaults())
	m := metrics.New()
	svc := services.New(services.Deps{
		Repo:    repo,
		Metrics: m,
		Logger:  logger,
	})
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	h := api.Handlers{
		Tournament:  handlers.NewTournamentHandler(svc.Snapshot),
		Participant: handlers.NewParticipantHandler(svc.Participants),
		Ordering:    handlers.NewOrderingHandler(svc.Ordering),
		Club:        handlers.NewClubHandler(svc.Clubs),
		Draw:        handlers.NewDrawHandler(svc.Draw),
		Standings:   handlers.NewStandingsHandler(svc.Standings),
		Bracket:     handlers.NewBracketHandler(svc.Bracket),
		Settings:    handlers.NewSettingsHandler(svc.Settings),
		Reveal:      handlers.NewRevealHandler(svc.Reveal, m, logger, cfg.RevealFrameInterval, cfg.CORSAllowedOrigins),
		Metrics:     m.Handler(),
	}
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, h, api.Options{
		Auth:           middleware.NewAuthenticator(cfg.JWTSecretKey, logger),
		Limiter:        middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	logger.Info("Routes configured")

	// WriteTimeout не ставим: поток показа живёт дольше обычного запроса
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return err
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		return err
	}
	logger.Info("application exited")
	return nil
}

// openStore выбирает бэкенд по конфигурации. Возвращаемая функция освобождает ресурсы.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, runMigrations bool) (repositories.TournamentStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		if runMigrations {
			version, err := db.MigrateUp(cfg.DatabaseURL)
			if err != nil {
				return nil, nil, err
			}
			logger.Info("database migrations applied", slog.Uint64("version", uint64(version)))
		}
		// Подключение к базе данных
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("database connection established")
		closeFn := func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}
		return repositories.NewPostgresStore(dbConn, cfg.DatabaseURL, logger), closeFn, nil

	case config.StoreR2:
		objects, err := storage.NewCloudflareR2Store(ctx, storage.CloudflareR2Config{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			Endpoint:        cfg.R2.Endpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Cloudflare R2 store initialized", slog.String("bucket", cfg.R2.BucketName))
		return repositories.NewObjectStore(objects, cfg.R2.Prefix), func() {}, nil

	default:
		logger.Warn("using in-memory store, data is lost on restart")
		return repositories.NewMemoryStore(), func() {}, nil
	}
}
