package workers

import "context"

// Workers starts its workers in order and stops them in reverse order.
type Workers struct {
	workers []Worker
}

// New returns a Workers aggregate over ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Add appends a worker. It must be called before Start.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
