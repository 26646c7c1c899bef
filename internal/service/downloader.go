// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-trace-warnings/internal/adapter"
	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/metrics"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
	"github.com/MKhiriev/go-trace-warnings/internal/utils"
	"github.com/MKhiriev/go-trace-warnings/models"
)

// DownloaderConfig lists the regions to download and the package versions
// that must be dropped from the local cache.
type DownloaderConfig struct {
	Regions      []string
	RevokedETags []string
}

// DownloaderDeps groups the collaborators of the downloader.
type DownloaderDeps struct {
	Adapter         adapter.WarningPackageAdapter
	Verifier        crypto.PackageVerifier
	Matcher         TraceWarningMatcher
	Checkins        store.CheckinRepository
	PackageMetadata store.PackageMetadataRepository
	DownloadState   store.DownloadStateRepository
	Metrics         *metrics.Metrics
	Logger          *logger.Logger
}

type traceWarningDownloader struct {
	cfg  DownloaderConfig
	deps DownloaderDeps
	now  func() time.Time

	mu        sync.Mutex
	status    models.DownloadStatus
	observers []func(models.DownloadStatus)
}

// NewTraceWarningDownloader constructs an idle [TraceWarningDownloader].
func NewTraceWarningDownloader(cfg DownloaderConfig, deps DownloaderDeps) TraceWarningDownloader {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &traceWarningDownloader{
		cfg:    cfg,
		deps:   deps,
		now:    time.Now,
		status: models.StatusIdle,
	}
}

// Status implements [TraceWarningDownloader].
func (d *traceWarningDownloader) Status() models.DownloadStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// OnStatusChange implements [TraceWarningDownloader]. Observers are called
// synchronously, outside the status lock, in registration order.
func (d *traceWarningDownloader) OnStatusChange(fn func(models.DownloadStatus)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, fn)
}

// transition moves the status from `from` to `to` and notifies observers.
// It fails if the current status is not `from`.
func (d *traceWarningDownloader) transition(from, to models.DownloadStatus) bool {
	d.mu.Lock()
	if d.status != from {
		d.mu.Unlock()
		return false
	}
	d.status = to
	observers := slices.Clone(d.observers)
	d.mu.Unlock()

	for _, fn := range observers {
		fn(to)
	}
	return true
}

// StartDownload implements [TraceWarningDownloader].
func (d *traceWarningDownloader) StartDownload(ctx context.Context) (models.DownloadOutcome, error) {
	if !d.transition(models.StatusIdle, models.StatusCheckingForNewPackages) {
		return "", ErrDownloadAlreadyRunning
	}
	defer func() {
		if !d.transition(models.StatusDownloading, models.StatusIdle) {
			d.transition(models.StatusCheckingForNewPackages, models.StatusIdle)
		}
	}()

	ctx, log := d.deps.Logger.WithFields(ctx, map[string]string{"cycle_id": utils.NewID()})
	started := d.now()

	outcome, err := d.runCycle(ctx)

	label := string(outcome)
	if err != nil {
		label = "error"
		log.Err(err).Str("func", "traceWarningDownloader.StartDownload").Msg("download cycle failed")
	} else {
		log.Info().Str("func", "traceWarningDownloader.StartDownload").Str("outcome", label).Msg("download cycle finished")
	}
	d.deps.Metrics.ObserveCycle(label, d.now().Sub(started))

	return outcome, err
}

func (d *traceWarningDownloader) runCycle(ctx context.Context) (models.DownloadOutcome, error) {
	log := logger.FromContext(ctx)

	checkins, err := d.deps.Checkins.ListCheckins(ctx)
	if err != nil {
		return "", d.recordFailure(ctx, fmt.Errorf("list checkins: %w", err))
	}

	if len(checkins) == 0 {
		log.Info().Str("func", "traceWarningDownloader.runCycle").Msg("no checkins, purging package metadata")
		if err = d.deps.PackageMetadata.DeleteAllPackageMetadata(ctx); err != nil {
			return "", d.recordFailure(ctx, fmt.Errorf("purge package metadata: %w", err))
		}
		return models.OutcomeNoCheckins, nil
	}

	wasSuccessful, err := d.deps.DownloadState.WasRecentDownloadSuccessful(ctx)
	if err != nil {
		return "", d.recordFailure(ctx, fmt.Errorf("read download state: %w", err))
	}

	cached, err := d.deps.PackageMetadata.ListPackageMetadata(ctx)
	if err != nil {
		return "", d.recordFailure(ctx, fmt.Errorf("list package metadata: %w", err))
	}

	// no shared context: a failing region must not cancel its siblings
	plans := make([]regionPlan, len(d.cfg.Regions))
	var pg errgroup.Group
	for i, region := range d.cfg.Regions {
		regionCached := metadataOfRegion(cached, region)
		pg.Go(func() error {
			plan, err := d.planRegion(ctx, region, checkins, regionCached, wasSuccessful)
			if err != nil {
				return fmt.Errorf("region %s: %w", region, err)
			}
			plans[i] = plan
			return nil
		})
	}
	planErr := pg.Wait()

	// the cycle owns the status; regions only report what they would fetch
	if slices.ContainsFunc(plans, func(p regionPlan) bool { return len(p.toDownload) > 0 }) {
		d.transition(models.StatusCheckingForNewPackages, models.StatusDownloading)
	}

	outcomes := make([]models.DownloadOutcome, len(plans))
	var dg errgroup.Group
	for i, plan := range plans {
		switch {
		case plan.region == "":
			// planning failed, the error is already in planErr
		case len(plan.toDownload) == 0:
			outcomes[i] = plan.outcome
		default:
			dg.Go(func() error {
				outcome, err := d.downloadRegion(ctx, plan)
				if err != nil {
					return fmt.Errorf("region %s: %w", plan.region, err)
				}
				outcomes[i] = outcome
				return nil
			})
		}
	}
	downloadErr := dg.Wait()

	cycleErr := planErr
	if cycleErr == nil {
		cycleErr = downloadErr
	}

	if err = d.deps.DownloadState.SetRecentDownloadSuccessful(ctx, cycleErr == nil); err != nil {
		log.Err(err).Str("func", "traceWarningDownloader.runCycle").Msg("failed to record download state")
		if cycleErr == nil {
			cycleErr = fmt.Errorf("record download state: %w", err)
		}
	}
	if cycleErr != nil {
		return "", cycleErr
	}

	return coarsest(outcomes), nil
}

// recordFailure marks the cycle unsuccessful before it fails, so the next
// rate-limit check does not trust a stale success flag, and returns cause.
func (d *traceWarningDownloader) recordFailure(ctx context.Context, cause error) error {
	if err := d.deps.DownloadState.SetRecentDownloadSuccessful(ctx, false); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "traceWarningDownloader.recordFailure").
			Msg("failed to record download state")
	}
	return cause
}

// regionPlan is the result of steps 1 to 6 for one region: either a final
// outcome or the package ids still to fetch.
type regionPlan struct {
	region     string
	outcome    models.DownloadOutcome
	toDownload []int64
}

func (d *traceWarningDownloader) planRegion(ctx context.Context, region string, checkins []models.Checkin,
	cached []models.TraceWarningPackageMetadata, wasSuccessful bool) (regionPlan, error) {
	ctx, log := logger.FromContext(ctx).WithFields(ctx, map[string]string{"region": region})
	plan := regionPlan{region: region, outcome: models.OutcomeOrdinary}

	// 1. soft rate limit
	lastCompletedHour := models.UnixHours(d.now()) - 1
	if wasSuccessful && containsPackage(cached, lastCompletedHour) {
		log.Info().
			Str("func", "traceWarningDownloader.planRegion").
			Int64("last_completed_hour", lastCompletedHour).
			Msg("packages up to date, skipping region")
		return plan, nil
	}

	// 2. revocation
	revoked := make([]int64, 0)
	for _, meta := range cached {
		if slices.Contains(d.cfg.RevokedETags, meta.ETag) {
			revoked = append(revoked, meta.ID)
		}
	}
	if len(revoked) > 0 {
		if err := d.deps.PackageMetadata.DeletePackageMetadata(ctx, region, revoked...); err != nil {
			return regionPlan{}, fmt.Errorf("delete revoked metadata: %w", err)
		}
		cached = withoutPackages(cached, revoked)
		log.Info().Str("func", "traceWarningDownloader.planRegion").Ints64("ids", revoked).Msg("revoked packages removed")
	}

	// 3. discovery
	discovery, err := d.deps.Adapter.Discover(ctx, region)
	if err != nil {
		return regionPlan{}, fmt.Errorf("discover packages: %w", err)
	}
	if len(discovery.AvailableIDs) == 0 {
		log.Info().Str("func", "traceWarningDownloader.planRegion").Msg("server offers no packages")
		plan.outcome = models.OutcomeEmptyDiscovery
		return plan, nil
	}
	d.logRateLimitDivergence(ctx, discovery, lastCompletedHour, wasSuccessful)

	// 4. earliest relevant package
	earliest, err := d.EarliestRelevantPackageID(checkins)
	if err != nil {
		return regionPlan{}, err
	}

	// 5. outdated metadata
	threshold := max(discovery.OldestID, earliest)
	outdated := make([]int64, 0)
	for _, meta := range cached {
		if meta.ID < threshold {
			outdated = append(outdated, meta.ID)
		}
	}
	if len(outdated) > 0 {
		if err = d.deps.PackageMetadata.DeletePackageMetadata(ctx, region, outdated...); err != nil {
			return regionPlan{}, fmt.Errorf("delete outdated metadata: %w", err)
		}
		cached = withoutPackages(cached, outdated)
	}

	// 6. delta
	plan.toDownload = d.DeterminePackagesToDownload(discovery.AvailableIDs, earliest, cached)
	log.Debug().
		Str("func", "traceWarningDownloader.planRegion").
		Int64("earliest", earliest).
		Int("available", len(discovery.AvailableIDs)).
		Int("to_download", len(plan.toDownload)).
		Msg("download delta computed")

	return plan, nil
}

// downloadRegion runs step 7 for a planned region: all packages are fetched
// concurrently and the region fails on the first hard error once every
// fetch has finished.
func (d *traceWarningDownloader) downloadRegion(ctx context.Context, plan regionPlan) (models.DownloadOutcome, error) {
	ctx, log := logger.FromContext(ctx).WithFields(ctx, map[string]string{"region": plan.region})

	outcomes := make([]models.DownloadOutcome, len(plan.toDownload))
	var g errgroup.Group
	for i, id := range plan.toDownload {
		g.Go(func() error {
			outcome, err := d.downloadPackage(ctx, plan.region, id)
			if errors.Is(err, ErrVerification) {
				log.Warn().Err(err).Str("func", "traceWarningDownloader.downloadRegion").Int64("package_id", id).Msg("package skipped")
				d.deps.Metrics.IncrementPackage(plan.region, metrics.PackageVerificationFailed)
				outcomes[i] = models.OutcomeOrdinary
				return nil
			}
			if err != nil {
				d.deps.Metrics.IncrementPackage(plan.region, metrics.PackageFailed)
				return fmt.Errorf("package %d: %w", id, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return coarsest(outcomes), nil
}

// downloadPackage fetches, verifies and matches one package and records it
// as processed.
func (d *traceWarningDownloader) downloadPackage(ctx context.Context, region string, id int64) (models.DownloadOutcome, error) {
	pkg, err := d.deps.Adapter.Download(ctx, region, id)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	if pkg.IsEmpty {
		d.deps.Metrics.IncrementPackage(region, metrics.PackageEmpty)
		return models.OutcomeEmptyPackage, nil
	}
	if pkg.ETag == "" {
		return "", ErrIdentification
	}
	if !d.deps.Verifier.Verify(pkg.Payload, pkg.Signature) {
		return "", ErrVerification
	}

	contents, err := adapter.DecodePackage(pkg.Payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPackageDecoding, err)
	}

	if err = d.deps.Matcher.MatchAndStore(ctx, id, contents); err != nil {
		return "", fmt.Errorf("match: %w", err)
	}

	meta := models.TraceWarningPackageMetadata{ID: id, Region: region, ETag: pkg.ETag}
	if err = d.deps.PackageMetadata.CreatePackageMetadata(ctx, meta); err != nil {
		return "", fmt.Errorf("store package metadata: %w", err)
	}

	d.deps.Metrics.IncrementPackage(region, metrics.PackageMatched)
	return models.OutcomeOrdinary, nil
}

// logRateLimitDivergence reports when the local "last completed hour"
// assumption disagrees with the newest package the server offers. The check
// is informational only.
func (d *traceWarningDownloader) logRateLimitDivergence(ctx context.Context, discovery models.DiscoveryResult,
	lastCompletedHour int64, wasSuccessful bool) {
	latest := discovery.AvailableIDs[len(discovery.AvailableIDs)-1]
	if latest == lastCompletedHour {
		return
	}
	logger.FromContext(ctx).Warn().
		Str("func", "traceWarningDownloader.logRateLimitDivergence").
		Int64("server_latest", latest).
		Int64("last_completed_hour", lastCompletedHour).
		Bool("recent_download_successful", wasSuccessful).
		Msg("rate limit check diverges from server")
}

// DeterminePackagesToDownload implements [TraceWarningDownloader].
func (d *traceWarningDownloader) DeterminePackagesToDownload(available []int64, earliest int64,
	cached []models.TraceWarningPackageMetadata) []int64 {
	result := make([]int64, 0, len(available))
	for _, id := range available {
		if id < earliest || containsPackage(cached, id) {
			continue
		}
		result = append(result, id)
	}
	slices.Sort(result)
	return slices.Compact(result)
}

// EarliestRelevantPackageID implements [TraceWarningDownloader].
func (d *traceWarningDownloader) EarliestRelevantPackageID(checkins []models.Checkin) (int64, error) {
	if len(checkins) == 0 {
		return 0, ErrNoEarliestRelevantPackage
	}
	earliest := checkins[0].CheckinStartDate
	for _, c := range checkins[1:] {
		if c.CheckinStartDate.Before(earliest) {
			earliest = c.CheckinStartDate
		}
	}
	return models.UnixHours(earliest), nil
}

func metadataOfRegion(all []models.TraceWarningPackageMetadata, region string) []models.TraceWarningPackageMetadata {
	var result []models.TraceWarningPackageMetadata
	for _, meta := range all {
		if meta.Region == region {
			result = append(result, meta)
		}
	}
	return result
}

func containsPackage(metadata []models.TraceWarningPackageMetadata, id int64) bool {
	return slices.ContainsFunc(metadata, func(m models.TraceWarningPackageMetadata) bool { return m.ID == id })
}

func withoutPackages(metadata []models.TraceWarningPackageMetadata, ids []int64) []models.TraceWarningPackageMetadata {
	return slices.DeleteFunc(slices.Clone(metadata), func(m models.TraceWarningPackageMetadata) bool {
		return slices.Contains(ids, m.ID)
	})
}

func coarsest(outcomes []models.DownloadOutcome) models.DownloadOutcome {
	result := models.OutcomeOrdinary
	for _, o := range outcomes {
		result = result.Coarsest(o)
	}
	return result
}
