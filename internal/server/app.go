// Package server wires storage, services and the gRPC transport into a
// process with a defined start and teardown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/logging"
	"github.com/dmitrijs2005/gophmatch/internal/server/config"
	"github.com/dmitrijs2005/gophmatch/internal/server/events"
	"github.com/dmitrijs2005/gophmatch/internal/server/media"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophmatch/internal/server/services"

	gs "github.com/dmitrijs2005/gophmatch/internal/server/grpc"
)

// seams for tests
var (
	openDB               = repomanager.OpenPostgres
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
	newRedisPublisher    = func(ctx context.Context, c *config.Config) (events.Publisher, error) {
		return events.NewRedisPublisher(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB, c.MatchEventsChannel)
	}
	startupTimeout = 10 * time.Second
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	publisher    events.Publisher
	authService  *services.AuthService
	matchService *services.MatchService
	avatars      *media.Presigner
}

// NewApp opens the database, applies migrations and builds the services.
// On error every resource opened so far is released.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (app *App, err error) {
	if logger == nil {
		logger = logging.NewJSONLogger(os.Stdout, c.LogLevel)
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	db, err := openDB(ctx, c.DatabaseDSN, startupTimeout)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	defer func() {
		if err != nil {
			_ = db.Close()
		}
	}()

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var publisher events.Publisher
	if c.RedisAddr != "" {
		publisher, err = newRedisPublisher(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
	} else {
		publisher = events.NewLogPublisher(logger)
	}

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		publisher:    publisher,
		authService:  services.NewAuthService(db, rm, logger, c),
		matchService: services.NewMatchService(db, rm, publisher, logger, c),
		avatars:      media.NewPresigner(c),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.matchService, app.avatars)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// runSessionJanitor purges expired sessions every SessionCleanupInterval.
func (app *App) runSessionJanitor(ctx context.Context) {
	interval := app.config.SessionCleanupInterval
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := app.authService.PurgeExpired(ctx, now)
			if err != nil {
				app.logger.Warn(ctx, "session cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "expired sessions purged", "count", n)
			}
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// tears everything down.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.runSessionJanitor(ctx)
	}()

	<-ctx.Done()
	wg.Wait()

	app.close(context.Background())
}

func (app *App) close(ctx context.Context) {
	app.matchService.Wait()

	if err := app.publisher.Close(); err != nil {
		app.logger.Warn(ctx, "publisher close error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
