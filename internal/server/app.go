// Package server wires the storage backends, the employee data source and
// both transports, and runs them until a signal or context cancellation.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/transferbench/internal/logging"
	"github.com/dmitrijs2005/transferbench/internal/server/cache"
	"github.com/dmitrijs2005/transferbench/internal/server/chat"
	"github.com/dmitrijs2005/transferbench/internal/server/config"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	"github.com/dmitrijs2005/transferbench/internal/server/storage"

	gs "github.com/dmitrijs2005/transferbench/internal/server/grpc"
	hs "github.com/dmitrijs2005/transferbench/internal/server/http"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     storage.Store
	employees *employees.Service
	hub       *chat.Hub
	closers   []func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	store, err := app.initStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	app.store = store

	repo, err := app.initRepository(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var pageCache employees.Cache
	if c.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB, c.PageCacheTTL)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("cache init error: %w", err)
		}
		app.closers = append(app.closers, rc.Close)
		pageCache = rc
	}

	app.employees = employees.NewService(repo, pageCache, logger)
	app.hub = chat.NewHub(c.ChatQueueSize, logger)

	return app, nil
}

func (app *App) initStore(ctx context.Context) (storage.Store, error) {
	if app.config.S3Bucket == "" {
		app.logger.Info(ctx, "using disk store", "dir", app.config.UploadsDir)
		return storage.NewDiskStore(app.config.UploadsDir)
	}

	app.logger.Info(ctx, "using S3 store", "bucket", app.config.S3Bucket)
	return storage.NewS3Store(ctx, storage.S3Config{
		Bucket:       app.config.S3Bucket,
		Region:       app.config.S3Region,
		AccessKey:    app.config.S3AccessKey,
		SecretKey:    app.config.S3SecretKey,
		BaseEndpoint: app.config.S3BaseEndpoint,
	})
}

func (app *App) initRepository(ctx context.Context) (employees.Repository, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Info(ctx, "using synthetic employees", "rows", app.config.SyntheticRows)
		return employees.NewSynthetic(app.config.SyntheticRows), nil
	}

	db, err := employees.OpenPostgres(ctx, app.config.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, db.Close)
	return employees.NewPostgresRepository(db), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.store, app.employees, app.hub, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.employees, app.store, app.config.PresignTTL, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a transport fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.Close()

	app.logger.Info(context.Background(), "App stopped")
}

// Close releases database and cache connections.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.closers = nil
}
