package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// SchedulerHooks are callbacks the scheduler invokes outside its lock.
type SchedulerHooks struct {
	// OnEnqueue runs after every accepted task.
	OnEnqueue func()
	// OnDrained runs when the last queued, running or completing task is done.
	OnDrained func()
}

type queuedTask struct {
	ctx  context.Context
	task models.DownloadTask
}

type slotEntry struct {
	busy bool
	task models.DownloadTask
}

type downloadScheduler struct {
	transfer   Transferer
	completion CompletionHandler
	metrics    MetricsRecorder

	mu        sync.Mutex
	queue     []queuedTask
	active    int
	max       int
	total     int
	finishing int
	slots     []slotEntry
	hooks     SchedulerHooks

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewDownloadScheduler creates a Scheduler running at most maxConcurrency
// transfers at once. Values below 1 are treated as 1.
func NewDownloadScheduler(maxConcurrency int, transfer Transferer, completion CompletionHandler, metrics MetricsRecorder, logger *logger.Logger) Scheduler {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return &downloadScheduler{
		transfer:   transfer,
		completion: completion,
		metrics:    metrics,
		max:        maxConcurrency,
		slots:      make([]slotEntry, maxConcurrency),
		logger:     logger,
	}
}

// SetHooks implements Scheduler.
func (s *downloadScheduler) SetHooks(hooks SchedulerHooks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = hooks
}

// Enqueue implements Enqueuer. The task gets the next sequence number and is
// appended to the FIFO queue; if a slot is free the head of the queue is
// dispatched into the lowest free slot right away.
func (s *downloadScheduler) Enqueue(ctx context.Context, task models.DownloadTask) {
	s.mu.Lock()
	s.total++
	task.Sequence = s.total
	s.queue = append(s.queue, queuedTask{ctx: ctx, task: task})

	var starts []int
	var items []queuedTask
	for s.active < s.max && len(s.queue) > 0 {
		slot := s.freeSlot()
		item := s.pop()
		s.active++
		s.slots[slot] = slotEntry{busy: true, task: item.task}
		starts = append(starts, slot)
		items = append(items, item)
	}
	active, queued := s.active, len(s.queue)
	onEnqueue := s.hooks.OnEnqueue
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "downloadScheduler.Enqueue").
		Int64("file_id", task.Entry.ID).
		Int("sequence", task.Sequence).
		Int("active", active).
		Int("queued", queued).
		Msg("task enqueued")
	s.metrics.SchedulerChanged(active, queued)

	if onEnqueue != nil {
		onEnqueue()
	}
	for i, slot := range starts {
		s.start(slot, items[i])
	}
}

// Drained implements Scheduler.
func (s *downloadScheduler) Drained() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drained()
}

// Reset implements Scheduler. Only the enqueue counter is cleared; queued and
// running tasks are kept, since a new cycle starts only after draining.
func (s *downloadScheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.drained() {
		s.logger.Warn().
			Str("func", "downloadScheduler.Reset").
			Int("active", s.active).
			Int("queued", len(s.queue)).
			Msg("reset while tasks are pending")
	}
	s.total = 0
}

// Snapshot implements Scheduler.
func (s *downloadScheduler) Snapshot() models.SchedulerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]models.SlotState, len(s.slots))
	for i, entry := range s.slots {
		slots[i] = models.SlotState{Slot: i, Busy: entry.busy}
		if entry.busy {
			slots[i].FileID = entry.task.Entry.ID
			slots[i].Name = entry.task.Entry.Name
			slots[i].Sequence = entry.task.Sequence
		}
	}

	return models.SchedulerSnapshot{
		Queued:         len(s.queue),
		Active:         s.active,
		MaxConcurrency: s.max,
		TotalEnqueued:  s.total,
		Slots:          slots,
	}
}

// Wait implements Scheduler.
func (s *downloadScheduler) Wait() {
	s.wg.Wait()
}

func (s *downloadScheduler) start(slot int, item queuedTask) {
	s.wg.Add(1)
	go s.run(slot, item)
}

// run executes one task. The slot is released before the completion hook
// runs, so the next queued task starts without waiting for it.
func (s *downloadScheduler) run(slot int, item queuedTask) {
	defer s.wg.Done()

	record, err := s.transfer.Transfer(item.ctx, slot, item.task)

	next, hasNext := s.release(slot)
	if hasNext {
		s.start(slot, next)
	}

	s.completion.OnTransferComplete(item.ctx, item.task, record, err)
	s.finish()
}

// release frees slot or hands it to the head of the queue. The task that
// held the slot is counted as finishing until its completion hook returns.
func (s *downloadScheduler) release(slot int) (queuedTask, bool) {
	s.mu.Lock()
	s.finishing++

	next, hasNext := queuedTask{}, len(s.queue) > 0
	if hasNext {
		next = s.pop()
		s.slots[slot] = slotEntry{busy: true, task: next.task}
	} else {
		s.active--
		s.slots[slot] = slotEntry{}
	}
	active, queued := s.active, len(s.queue)
	s.mu.Unlock()

	s.metrics.SchedulerChanged(active, queued)
	return next, hasNext
}

func (s *downloadScheduler) finish() {
	s.mu.Lock()
	s.finishing--
	drained := s.drained()
	onDrained := s.hooks.OnDrained
	s.mu.Unlock()

	if drained && onDrained != nil {
		onDrained()
	}
}

func (s *downloadScheduler) drained() bool {
	return len(s.queue) == 0 && s.active == 0 && s.finishing == 0
}

func (s *downloadScheduler) freeSlot() int {
	for i, entry := range s.slots {
		if !entry.busy {
			return i
		}
	}

	// unreachable while active < max
	return len(s.slots) - 1
}

func (s *downloadScheduler) pop() queuedTask {
	item := s.queue[0]
	s.queue[0] = queuedTask{}
	s.queue = s.queue[1:]
	return item
}
