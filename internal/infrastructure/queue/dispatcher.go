package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/api/metrics"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// LabelProcessor is the service-side of the labeling pipeline.
type LabelProcessor interface {
	ProcessLabelJob(ctx context.Context, job ports.LabelJob) error
}

// Dispatcher routes labeling jobs to a fixed set of workers using consistent
// hashing on the image id, so repeat jobs for one image stay ordered.
type Dispatcher struct {
	workers []chan ports.LabelJob
	service LabelProcessor
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service LabelProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LabelJob, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LabelJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its image id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.LabelJob) {
	idx := d.shardIndex(job.ImageID)
	d.workers[idx] <- job
	metrics.LabelQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an image id deterministically to a worker index.
func (d *Dispatcher) shardIndex(imageID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(imageID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LabelJob) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.LabelQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.ProcessLabelJob(ctx, job); err != nil {
				d.log.Error().Err(err).
					Str("image_id", job.ImageID).
					Int("worker_id", id).
					Msg("labeling job failed")
			}
		}
	}
}
