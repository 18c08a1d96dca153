package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventPlanner/internal/config"
	"github.com/stpnv0/EventPlanner/internal/handler"
	"github.com/stpnv0/EventPlanner/internal/listing"
	"github.com/stpnv0/EventPlanner/internal/middleware"
	"github.com/stpnv0/EventPlanner/internal/notification"
	"github.com/stpnv0/EventPlanner/internal/repository"
	"github.com/stpnv0/EventPlanner/internal/router"
	"github.com/stpnv0/EventPlanner/internal/scheduler"
	"github.com/stpnv0/EventPlanner/internal/service"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	lifecycle  *service.EventLifecycle
	publisher  *listing.Publisher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventPlanner",
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

	if err = app.initServices(); err != nil {
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

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	venueRepo := repository.NewVenueRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	versionRepo := repository.NewVersionRepo(a.db)
	approvalRepo := repository.NewApprovalRepo(a.db)
	auditRepo := repository.NewAuditRepo(a.db)
	notificationRepo := repository.NewNotificationRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	var listingPublisher ports.ListingPublisher
	if a.cfg.RabbitMQ.URL != "" {
		a.publisher, err = listing.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("init listing publisher: %w", err)
		}
		listingPublisher = a.publisher
	} else {
		a.log.Warn("rabbitmq url is empty, listing publication disabled")
	}

	audit := service.NewAuditRecorder(auditRepo, a.log)
	versions := service.NewVersionStore(versionRepo)
	notifications := service.NewNotificationQueue(notificationRepo, userRepo, eventRepo, n, a.log)
	reviewers := service.NewReviewerResolver(eventRepo, venueRepo, userRepo, audit, notifications, a.log)

	a.lifecycle = service.NewEventLifecycle(
		eventRepo,
		venueRepo,
		approvalRepo,
		listingPublisher,
		versions,
		reviewers,
		audit,
		notifications,
		service.LifecycleOptions{
			DefaultDuration:          a.cfg.Lifecycle.DefaultDuration,
			AllowDecisionOnRevisions: a.cfg.Lifecycle.AllowDecisionOnRevisions,
		},
		a.log,
	)
	eventService := service.NewEventService(eventRepo, venueRepo, versions, approvalRepo)
	userService := service.NewUserService(userRepo)

	a.scheduler = scheduler.New(
		notifications,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.BatchSize,
		a.log,
	)

	h := handler.NewHandler(a.lifecycle, eventService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Actor(userService, a.log),
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

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(gctx)
		return nil
	})

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdown()
	})

	return g.Wait()
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

	// Background notifications and listing publishes finish before their
	// dependencies go away.
	a.lifecycle.Wait()

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close listing publisher",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
