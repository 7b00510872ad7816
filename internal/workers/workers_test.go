// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker runs until its context ends and counts how often it ran.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func runWithTimeout(t *testing.T, ws *Workers, ctx context.Context) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Workers.Run did not return")
		return nil
	}
}

func TestWorkers_Run_FinishingWorkerStopsOthers(t *testing.T) {
	ws := New(logger.Nop())
	server := &blockingWorker{}
	ws.Add("server", server)
	ws.Add("driver", WorkerFunc(func(ctx context.Context) error { return nil }))

	err := runWithTimeout(t, ws, context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), server.runs.Load())
}

func TestWorkers_Run_ReturnsFirstError(t *testing.T) {
	boom := errors.New("listen failed")
	ws := New(logger.Nop())
	ws.Add("driver", &blockingWorker{})
	ws.Add("server", WorkerFunc(func(ctx context.Context) error { return boom }))

	err := runWithTimeout(t, ws, context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_ParentCancellation(t *testing.T) {
	ws := New(logger.Nop())
	a, b := &blockingWorker{}, &blockingWorker{}
	ws.Add("a", a)
	ws.Add("b", b)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	err := runWithTimeout(t, ws, ctx)

	require.NoError(t, err)
	assert.Equal(t, int32(1), a.runs.Load())
	assert.Equal(t, int32(1), b.runs.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New(logger.Nop())

	assert.NoError(t, runWithTimeout(t, ws, context.Background()))
}
