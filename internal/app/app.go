package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/VenueBooker/internal/activity"
	"github.com/stpnv0/VenueBooker/internal/auth"
	"github.com/stpnv0/VenueBooker/internal/config"
	"github.com/stpnv0/VenueBooker/internal/handler"
	"github.com/stpnv0/VenueBooker/internal/middleware"
	"github.com/stpnv0/VenueBooker/internal/notification"
	"github.com/stpnv0/VenueBooker/internal/payment"
	"github.com/stpnv0/VenueBooker/internal/repository"
	"github.com/stpnv0/VenueBooker/internal/router"
	"github.com/stpnv0/VenueBooker/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	journal    activity.Journal
	// closers are released in reverse order on shutdown.
	closers []io.Closer
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"VenueBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initJournal(); err != nil {
		app.closeAll()
		return nil, fmt.Errorf("init activity journal: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeAll()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	tunePool(db.Master, a.cfg.Postgres)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
		logger.Duration("conn_max_lifetime", a.cfg.Postgres.ConnMaxLifetime),
	)

	return nil
}

// tunePool applies the pool limits from config, including the connection
// lifetime that dbpg.Options does not carry.
func tunePool(db *sql.DB, cfg config.PostgresConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

func (a *App) initJournal() error {
	ctx := context.Background()
	cfg := a.cfg.Activity

	var journal activity.Journal
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("ping redis: %w", err)
		}
		a.closers = append(a.closers, client)
		journal = activity.NewRedisJournal(client, cfg.RedisKey)

	case "memory":
		journal = activity.NewMemoryJournal()

	default:
		fj, err := activity.NewFileJournal(cfg.FilePath)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, fj)
		journal = fj
	}

	if a.cfg.RabbitMQ.URL != "" {
		pub, err := activity.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Queue)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pub)
		journal = activity.NewMirrorJournal(journal, pub, a.log)
	}

	a.journal = journal
	a.log.LogAttrs(ctx, logger.InfoLevel, "activity journal ready",
		logger.String("backend", cfg.Backend),
		logger.Any("mirror", a.cfg.RabbitMQ.URL != ""),
	)

	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Activity.Location()
	if err != nil {
		return err
	}
	activityLog := activity.NewLog(a.journal, activity.WithLocation(loc))

	eventRepo := repository.NewEventRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	statsRepo := repository.NewStatsRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	eventService := service.NewEventService(eventRepo, activityLog)
	userService := service.NewUserService(userRepo, bookingRepo, activityLog, a.cfg.Auth.BcryptCost, a.log)
	bookingService := service.NewBookingService(
		bookingRepo,
		eventRepo,
		userRepo,
		activityLog,
		payment.NewSimulatedGateway(),
		n,
		a.log,
	)
	statsService := service.NewStatsService(statsRepo, activityLog)

	if _, err = userService.EnsureAdmin(
		context.Background(),
		a.cfg.Admin.Name,
		a.cfg.Admin.Email,
		a.cfg.Admin.Password,
	); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	h := handler.NewHandler(eventService, bookingService, userService, statsService, tokens)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Authenticate(tokens),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeAll()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeAll()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeAll releases the journal backends and the database pool.
func (a *App) closeAll() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close resource failed",
				logger.String("error", err.Error()),
			)
		}
	}
	a.closers = nil

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close db failed",
				logger.String("error", err.Error()),
			)
			return
		}
		a.db = nil
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
