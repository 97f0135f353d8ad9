package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/unerg-ais/reporting-system/internal/api/metrics"
	"github.com/unerg-ais/reporting-system/internal/core/domain"
	"github.com/unerg-ais/reporting-system/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
	sendTimeout    = 30 * time.Second
)

// Dispatcher delivers new-report notifications off the request path. The
// creating request returns as soon as the job is buffered; delivery failures
// are logged and counted, never surfaced to the submitter.
type Dispatcher struct {
	jobs       chan domain.Report
	notifier   ports.Notifier
	numWorkers int
	log        zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:       make(chan domain.Report, channelBuffer),
		notifier:   notifier,
		numWorkers: numWorkers,
		log:        log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.numWorkers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue buffers a notification job. When the buffer is full the job is
// dropped with a log entry rather than blocking the creating request.
func (d *Dispatcher) Enqueue(report domain.Report) {
	select {
	case d.jobs <- report:
	default:
		metrics.NotificationErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("report_id", report.ID).Msg("notification queue full, dropping job")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, id, report)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, report domain.Report) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.notifier.Notify(sendCtx, &report); err != nil {
		metrics.NotificationErrorsTotal.WithLabelValues("send_failed").Inc()
		d.log.Error().Err(err).
			Str("report_id", report.ID).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	metrics.NotificationsSentTotal.Inc()
	d.log.Info().Str("report_id", report.ID).Msg("notification delivered")
}
