package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/server"
	"github.com/MKhiriev/go-trace-warnings/internal/service"
	"github.com/MKhiriev/go-trace-warnings/internal/workers"
	"github.com/MKhiriev/go-trace-warnings/models"
)

var errNoServices = errors.New("client services are not configured")

// Closer releases resources held by the app, typically the storages.
type Closer interface {
	Close() error
}

type App struct {
	services *service.Services
	server   server.Server
	closer   Closer
	cfg      config.Workers
	logger   *logger.Logger
}

// NewApp assembles the client. srv and closer may be nil: the control
// server is optional and tests run without storages.
func NewApp(services *service.Services, srv server.Server, closer Closer, cfg config.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || services.DownloadJob == nil || services.Downloader == nil {
		return nil, errNoServices
	}

	return &App{
		services: services,
		server:   srv,
		closer:   closer,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.services.Downloader.OnStatusChange(func(status models.DownloadStatus) {
		a.logger.Debug().Str("func", "App.Run").Str("status", string(status)).Msg("download status changed")
	})

	jobs := []workers.Worker{
		workers.WorkerFunc(a.runDownloadJob),
	}
	if a.server != nil {
		jobs = append(jobs, workers.WorkerFunc(a.server.RunServer))
	}

	a.logger.Info().Dur("sync_interval", a.cfg.SyncInterval).Bool("control_server", a.server != nil).Msg("client started")
	runErr := workers.New(jobs...).Run(ctx)

	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close storages")
			runErr = errors.Join(runErr, fmt.Errorf("close storages: %w", err))
		}
	}

	a.logger.Info().Msg("client stopped")
	return runErr
}

func (a *App) runDownloadJob(ctx context.Context) error {
	a.services.DownloadJob.Start(ctx, a.cfg.SyncInterval)
	<-ctx.Done()
	a.services.DownloadJob.Stop()
	return nil
}
