package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-trace-warnings/internal/adapter"
	"github.com/MKhiriev/go-trace-warnings/internal/client"
	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/handler"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/metrics"
	"github.com/MKhiriev/go-trace-warnings/internal/server"
	"github.com/MKhiriev/go-trace-warnings/internal/service"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	log := logger.NewLogger("trace-warnings-client")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	packageAdapter, err := adapter.NewHTTPWarningPackageAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating package adapter")
	}

	verifier, err := crypto.LoadPackageVerifier(cfg.Warnings.PublicKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading package signing key")
	}

	m := metrics.New()
	services := service.NewServices(cfg.Warnings, storages, packageAdapter, verifier, m, log)

	var srv server.Server
	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	switch {
	case handler.IsDisabled(err):
		log.Info().Msg("control server disabled")
	case err != nil:
		log.Fatal().Err(err).Msg("error creating handlers")
	default:
		if srv, err = server.NewServer(handlers, cfg.Server, log); err != nil {
			log.Fatal().Err(err).Msg("error creating server")
		}
	}

	app, err := client.NewApp(services, srv, storages, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
