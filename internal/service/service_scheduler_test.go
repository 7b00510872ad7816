package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/models"
)

func task(id int64) models.DownloadTask {
	return models.DownloadTask{Entry: file(id, "f.mkv", 1), TargetPath: "/data/f.mkv"}
}

func TestScheduler_NeverExceedsMaxConcurrency(t *testing.T) {
	var running, maxSeen atomic.Int32
	gate := make(chan struct{})

	transfer := transferFunc(func(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error) {
		n := running.Add(1)
		for {
			m := maxSeen.Load()
			if n <= m || maxSeen.CompareAndSwap(m, n) {
				break
			}
		}
		<-gate
		running.Add(-1)
		return models.TransferRecord{}, nil
	})

	s := service.NewDownloadScheduler(2, transfer, noCompletion, service.NopMetrics{}, logger.Nop())
	for id := int64(1); id <= 4; id++ {
		s.Enqueue(context.Background(), task(id))
	}

	require.Eventually(t, func() bool { return running.Load() == 2 }, time.Second, time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Active)
	assert.Equal(t, 2, snap.Queued)
	assert.Equal(t, 2, snap.MaxConcurrency)
	assert.Equal(t, 4, snap.TotalEnqueued)
	require.Len(t, snap.Slots, 2)
	assert.Equal(t, models.SlotState{Slot: 0, Busy: true, FileID: 1, Name: "f.mkv", Sequence: 1}, snap.Slots[0])
	assert.Equal(t, models.SlotState{Slot: 1, Busy: true, FileID: 2, Name: "f.mkv", Sequence: 2}, snap.Slots[1])
	assert.False(t, s.Drained())

	close(gate)
	s.Wait()

	assert.Equal(t, int32(2), maxSeen.Load())
	assert.True(t, s.Drained())
	snap = s.Snapshot()
	assert.Zero(t, snap.Active)
	assert.Zero(t, snap.Queued)
	assert.False(t, snap.Slots[0].Busy)
	assert.False(t, snap.Slots[1].Busy)
}

func TestScheduler_FIFOAndSequenceNumbers(t *testing.T) {
	var (
		mu    sync.Mutex
		order []int64
		seqs  []int
	)
	gate := make(chan struct{})

	transfer := transferFunc(func(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error) {
		<-gate
		mu.Lock()
		order = append(order, task.Entry.ID)
		seqs = append(seqs, task.Sequence)
		mu.Unlock()
		assert.Equal(t, 0, slot)
		return models.TransferRecord{}, nil
	})

	s := service.NewDownloadScheduler(1, transfer, noCompletion, service.NopMetrics{}, logger.Nop())
	for _, id := range []int64{30, 10, 20} {
		s.Enqueue(context.Background(), task(id))
	}
	close(gate)
	s.Wait()

	assert.Equal(t, []int64{30, 10, 20}, order)
	assert.Equal(t, []int{1, 2, 3}, seqs)
}

func TestScheduler_ResetRestartsSequence(t *testing.T) {
	var (
		mu   sync.Mutex
		seqs []int
	)
	transfer := transferFunc(func(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error) {
		mu.Lock()
		seqs = append(seqs, task.Sequence)
		mu.Unlock()
		return models.TransferRecord{}, nil
	})

	s := service.NewDownloadScheduler(1, transfer, noCompletion, service.NopMetrics{}, logger.Nop())
	s.Enqueue(context.Background(), task(1))
	s.Wait()
	s.Reset()
	assert.Zero(t, s.Snapshot().TotalEnqueued)

	s.Enqueue(context.Background(), task(2))
	s.Wait()

	assert.Equal(t, []int{1, 1}, seqs)
}

func TestScheduler_SlotReleasedBeforeCompletion(t *testing.T) {
	secondStarted := make(chan struct{})
	gate := make(chan struct{})

	transfer := transferFunc(func(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error) {
		switch task.Entry.ID {
		case 1:
			<-gate
		case 2:
			close(secondStarted)
		}
		return models.TransferRecord{FileID: task.Entry.ID}, nil
	})

	var completed []int64
	var mu sync.Mutex
	completion := completionFunc(func(ctx context.Context, task models.DownloadTask, record models.TransferRecord, err error) {
		if task.Entry.ID == 1 {
			select {
			case <-secondStarted:
			case <-time.After(2 * time.Second):
				t.Error("next task did not start while the completion hook was running")
			}
		}
		mu.Lock()
		completed = append(completed, record.FileID)
		mu.Unlock()
	})

	s := service.NewDownloadScheduler(1, transfer, completion, service.NopMetrics{}, logger.Nop())
	var drainedCalls atomic.Int32
	s.SetHooks(service.SchedulerHooks{OnDrained: func() { drainedCalls.Add(1) }})

	// hold the first transfer until both tasks are queued
	s.Enqueue(context.Background(), task(1))
	s.Enqueue(context.Background(), task(2))
	close(gate)
	s.Wait()

	mu.Lock()
	assert.ElementsMatch(t, []int64{1, 2}, completed)
	mu.Unlock()
	assert.True(t, s.Drained())
	assert.Equal(t, int32(1), drainedCalls.Load())
}

func TestScheduler_DrainedCountsFinishingTasks(t *testing.T) {
	inCompletion := make(chan struct{})
	release := make(chan struct{})

	transfer := transferFunc(func(context.Context, int, models.DownloadTask) (models.TransferRecord, error) {
		return models.TransferRecord{}, nil
	})
	completion := completionFunc(func(context.Context, models.DownloadTask, models.TransferRecord, error) {
		close(inCompletion)
		<-release
	})

	s := service.NewDownloadScheduler(1, transfer, completion, service.NopMetrics{}, logger.Nop())
	s.Enqueue(context.Background(), task(1))

	<-inCompletion
	snap := s.Snapshot()
	assert.Zero(t, snap.Active)
	assert.False(t, s.Drained())

	close(release)
	s.Wait()
	assert.True(t, s.Drained())
}

func TestScheduler_OnEnqueueHook(t *testing.T) {
	var calls atomic.Int32
	transfer := transferFunc(func(context.Context, int, models.DownloadTask) (models.TransferRecord, error) {
		return models.TransferRecord{}, nil
	})

	s := service.NewDownloadScheduler(0, transfer, noCompletion, service.NopMetrics{}, logger.Nop())
	s.SetHooks(service.SchedulerHooks{OnEnqueue: func() { calls.Add(1) }})

	s.Enqueue(context.Background(), task(1))
	s.Enqueue(context.Background(), task(2))
	s.Wait()

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 1, s.Snapshot().MaxConcurrency)
}
