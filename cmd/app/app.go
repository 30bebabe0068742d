package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/eventhub/internal/api"
	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/config"
	"github.com/vietanh2810/eventhub/internal/db"
	"github.com/vietanh2810/eventhub/internal/logger"
	"github.com/vietanh2810/eventhub/internal/repository"
	"github.com/vietanh2810/eventhub/internal/repository/dao"
)

const shutdownTimeout = 10 * time.Second

func Start(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags -> %w", err)
	}
	path, _ := flags.GetString("config")

	conf, err := config.Load(path, flags)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	conf.Watch(func(next *config.AppConfig) {
		if err := logger.SetLevel(next.Log.Level); err != nil {
			zap.L().Warn("invalid log level in config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("log_level", logger.Level()))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	persister, err := newPersister(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	open := repository.Open
	if conf.Store.Strict {
		open = repository.OpenStrict
	}
	store, err := open(ctx, persister)
	if err != nil {
		return fmt.Errorf("failed to load store -> %w", err)
	}

	go reloadOnHangup(ctx, store)

	s := api.NewServer(conf, store, clock.Real())

	// The bridge only ever serves the local desktop shell.
	addr := net.JoinHostPort(conf.API.Host, conf.API.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr), zap.String("store", conf.Store.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

func newPersister(conf *config.AppConfig) (repository.Persister, error) {
	switch conf.Store.Driver {
	case config.StoreDriverPostgres:
		var postgresDB *gorm.DB
		var err error
		if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
			postgresDB, err = db.OpenPostgresWithURL(dbURL)
		} else {
			postgresDB, err = db.OpenPostgres(conf.Postgres)
		}
		if err != nil {
			return nil, err
		}
		return repository.NewPostgresPersister(dao.NewSnapshotDAO(postgresDB)), nil
	case config.StoreDriverMemory:
		return repository.NewMemoryPersister(nil), nil
	default:
		fs := afero.NewOsFs()
		if err := fs.MkdirAll(conf.Store.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("fs.MkdirAll -> %w", err)
		}
		return repository.NewFilePersister(fs, conf.Store.Dir), nil
	}
}

// reloadOnHangup re-reads storage on SIGHUP, for edits made to the data
// files while the app runs.
func reloadOnHangup(ctx context.Context, store *repository.Store) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := store.Reload(ctx); err != nil {
				zap.L().Error("reload failed, keeping current state", zap.Error(err))
				continue
			}
			zap.L().Info("store reloaded")
		}
	}
}
