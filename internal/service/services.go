package service

import (
	"github.com/MKhiriev/go-trace-warnings/internal/adapter"
	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/metrics"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
)

type Services struct {
	Checkins    CheckinService
	Matcher     TraceWarningMatcher
	Downloader  TraceWarningDownloader
	Submission  ClientSubmissionService
	DownloadJob ClientDownloadJob
}

func NewServices(cfg config.Warnings, storages *store.Storages, packageAdapter adapter.WarningPackageAdapter,
	verifier crypto.PackageVerifier, m *metrics.Metrics, logger *logger.Logger) *Services {
	warningCrypto := crypto.NewWarningCrypto()
	matcher := NewTraceWarningMatcher(storages.CheckinRepository, storages.MatchRepository, warningCrypto, m)
	downloader := NewTraceWarningDownloader(
		DownloaderConfig{Regions: cfg.Regions, RevokedETags: cfg.RevokedETags},
		DownloaderDeps{
			Adapter:         packageAdapter,
			Verifier:        verifier,
			Matcher:         matcher,
			Checkins:        storages.CheckinRepository,
			PackageMetadata: storages.PackageMetadataRepository,
			DownloadState:   storages.DownloadStateRepository,
			Metrics:         m,
			Logger:          logger,
		},
	)

	return &Services{
		Checkins:    NewCheckinService(storages.CheckinRepository, warningCrypto),
		Matcher:     matcher,
		Downloader:  downloader,
		Submission:  NewClientSubmissionService(storages.CheckinRepository, packageAdapter, warningCrypto),
		DownloadJob: NewClientDownloadJob(downloader),
	}
}
