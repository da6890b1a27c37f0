package workers

import "context"

// Workers aggregates background workers behind a single lifecycle.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker. It does not block.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker and blocks until all have exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
