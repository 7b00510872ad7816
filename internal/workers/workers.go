package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"golang.org/x/sync/errgroup"
)

type namedWorker struct {
	name string
	Worker
}

type Workers struct {
	workers []namedWorker
	logger  *logger.Logger
}

func New(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers a worker. Workers must be added before Run.
func (w *Workers) Add(name string, worker Worker) {
	w.workers = append(w.workers, namedWorker{name: name, Worker: worker})
}

// Run starts every worker and blocks until all of them returned. The first
// worker to return, with or without an error, cancels the others. The first
// error other than context cancellation is returned.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			defer cancel()

			err := worker.Run(gctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Err(err).Str("func", "*Workers.Run").Str("worker", worker.name).Msg("worker failed")
				return err
			}

			w.logger.Debug().Str("func", "*Workers.Run").Str("worker", worker.name).Msg("worker finished")
			return nil
		})
	}

	return g.Wait()
}
