// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker counts runs and waits for its context.
type blockingWorker struct {
	runCount atomic.Int64
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- New(w1, w2, w3).Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
}

func TestWorkers_Run_SkipsNil(t *testing.T) {
	var called atomic.Bool
	err := New(nil, WorkerFunc(func(context.Context) error {
		called.Store(true)
		return nil
	})).Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, called.Load())
}

func TestWorkers_Run_ErrorStopsSiblings(t *testing.T) {
	boom := errors.New("listener failed")
	sibling := &blockingWorker{}

	err := New(sibling, WorkerFunc(func(context.Context) error { return boom })).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), sibling.runCount.Load())
}
