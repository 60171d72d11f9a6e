// Package sportcomplex собирает приложение: хранилище, кэш, очередь
// событий, сервисы и HTTP-сервер.
package sportcomplex

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/sport-complex/internal/cache"
	"github.com/magabrotheeeer/sport-complex/internal/config"
	jwtlib "github.com/magabrotheeeer/sport-complex/internal/lib/jwt"
	"github.com/magabrotheeeer/sport-complex/internal/migrations"
	"github.com/magabrotheeeer/sport-complex/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/sport-complex/internal/services/auth"
	classservice "github.com/magabrotheeeer/sport-complex/internal/services/class"
	enrollmentservice "github.com/magabrotheeeer/sport-complex/internal/services/enrollment"
	notifierservice "github.com/magabrotheeeer/sport-complex/internal/services/notifier"
	scheduleservice "github.com/magabrotheeeer/sport-complex/internal/services/schedule"
	sportservice "github.com/magabrotheeeer/sport-complex/internal/services/sport"
	userservice "github.com/magabrotheeeer/sport-complex/internal/services/user"
	"github.com/magabrotheeeer/sport-complex/internal/storage"
	"github.com/magabrotheeeer/sport-complex/internal/ws"
)

// App агрегирует ресурсы приложения и управляет их жизненным циклом.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *storage.Storage
	cache      *cache.Cache
	rabbitConn *amqp.Connection
	rabbitCh   *amqp.Channel
	notifier   *notifierservice.Service
}

// New инициализирует все зависимости и собирает приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.RabbitConnectionString, 5, 3*time.Second)
	if err != nil {
		return nil, err
	}
	rabbitCh, err := rabbitmq.SetupChannel(rabbitConn)
	if err != nil {
		return nil, err
	}

	tokens := jwtlib.NewMaker(
		cfg.Tokens.AccessSecretKey,
		cfg.Tokens.RefreshSecretKey,
		cfg.Tokens.AccessTokenTTL,
		cfg.Tokens.RefreshTokenTTL,
	)

	authService, err := authservice.New(logger, db, tokens)
	if err != nil {
		return nil, err
	}
	userService := userservice.New(logger, db)
	sportService := sportservice.New(logger, db, cacheRedis)
	classService := classservice.New(logger, db, cacheRedis)
	scheduleService := scheduleservice.New(logger, db)
	enrollmentService := enrollmentservice.New(logger, db, enrollmentservice.NewRabbitPublisher(rabbitCh))

	hub := ws.NewHub(logger)
	wsHandler := ws.NewHandler(logger, hub, tokens)
	notifier := notifierservice.New(logger, rabbitCh, hub)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, tokens, cfg.Tokens.RefreshTokenTTL, &Services{
		Auth:       authService,
		User:       userService,
		Sport:      sportService,
		Class:      classService,
		Schedule:   scheduleService,
		Enrollment: enrollmentService,
	}, wsHandler)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		cache:      cacheRedis,
		rabbitConn: rabbitConn,
		rabbitCh:   rabbitCh,
		notifier:   notifier,
	}, nil
}

// Run запускает потребителя уведомлений и HTTP-сервер.
// Блокируется до отмены контекста или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	if err := a.notifier.Run(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.rabbitCh.Close()
		_ = a.rabbitConn.Close()
		_ = a.cache.Db.Close()
		_ = a.db.Close()
		return err
	}
}
