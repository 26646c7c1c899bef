package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-trace-warnings/internal/logger"
)

const defaultDownloadInterval = time.Hour

type clientDownloadJob struct {
	downloader TraceWarningDownloader

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientDownloadJob creates a clientDownloadJob that calls
// downloader.StartDownload on a ticker. The job is idle until Start is called.
func NewClientDownloadJob(downloader TraceWarningDownloader) ClientDownloadJob {
	return &clientDownloadJob{downloader: downloader}
}

// Start implements ClientDownloadJob. It stops any previously running job,
// then launches a background goroutine that runs a download cycle right away
// and every interval after that. If interval is zero or negative it defaults
// to one hour. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientDownloadJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultDownloadInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

// run executes one cycle. Cycles cannot be cancelled midway, so the cycle
// gets a context that outlives Stop; jobCtx only ends the ticker loop.
func (j *clientDownloadJob) run(ctx context.Context) {
	log := logger.FromContext(ctx)

	_, err := j.downloader.StartDownload(context.WithoutCancel(ctx))
	switch {
	case errors.Is(err, ErrDownloadAlreadyRunning):
		log.Debug().Str("func", "clientDownloadJob.run").Msg("download already running, tick skipped")
	case err != nil:
		log.Err(err).Str("func", "clientDownloadJob.run").Msg("scheduled download failed")
	}
}

// Stop implements ClientDownloadJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited, letting a cycle
// that is already running finish first. Safe to call when
// the job is not running (no-op in that case).
func (j *clientDownloadJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
