package milestones

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const defaultJobTimeout = 30 * time.Second

type detector interface {
	Detect(ctx context.Context, job Job) ([]Milestone, error)
}

type PublisherParams struct {
	QueueSize  int
	Workers    int
	JobTimeout time.Duration
}

// Publisher runs milestone detection in the background. Enqueue never blocks:
// when the queue is full the job is dropped and counted.
type Publisher struct {
	detector       detector
	metricsManager *metrics.Manager
	jobTimeout     time.Duration

	jobs chan Job
	errs chan error
	wg   sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewPublisher(detector detector, metricsManager *metrics.Manager, params PublisherParams) *Publisher {
	if params.QueueSize <= 0 {
		params.QueueSize = 100
	}
	if params.Workers <= 0 {
		params.Workers = 1
	}
	if params.JobTimeout <= 0 {
		params.JobTimeout = defaultJobTimeout
	}

	p := &Publisher{
		detector:       detector,
		metricsManager: metricsManager,
		jobTimeout:     params.JobTimeout,
		jobs:           make(chan Job, params.QueueSize),
		errs:           make(chan error, params.QueueSize),
	}

	p.wg.Add(params.Workers)
	for i := 0; i < params.Workers; i++ {
		go p.work(i)
	}

	log.Debugf("milestone publisher started: %d workers, queue size %d", params.Workers, params.QueueSize)
	return p
}

// Enqueue schedules detection for job and reports whether it was accepted.
func (p *Publisher) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		log.Warnf("milestone publisher stopped, dropping job for log %s", job.LogID)
		return false
	}

	select {
	case p.jobs <- job:
		p.metricsManager.GaugeMilestoneQueueDepth.Set(float64(len(p.jobs)))
		return true
	default:
		p.metricsManager.CounterMilestoneJobsDropped.Inc()
		log.Warnf("milestone queue full, dropping job for log %s", job.LogID)
		return false
	}
}

// Errors reports detection failures. It is closed by Stop.
func (p *Publisher) Errors() <-chan error {
	return p.errs
}

// Stop rejects new jobs, waits for queued ones to finish and closes Errors.
func (p *Publisher) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.errs)
	log.Debugln("milestone publisher stopped")
}

func (p *Publisher) work(workerID int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.metricsManager.GaugeMilestoneQueueDepth.Set(float64(len(p.jobs)))
		p.process(workerID, job)
	}
}

func (p *Publisher) process(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()

	begin := time.Now()
	published, err := p.detector.Detect(ctx, job)
	p.metricsManager.HistMilestoneDetectSeconds.Observe(time.Since(begin).Seconds())

	for _, m := range published {
		p.metricsManager.CounterMilestonesPublished.WithLabelValues(string(m.Type)).Inc()
		log.Debugf("worker %d: milestone %s published for user %d", workerID, m.Type, m.UserID)
	}

	if err == nil {
		return
	}

	p.metricsManager.CounterMilestonePublishFailures.Inc()
	err = fmt.Errorf("milestones for user %d, log %s: %w", job.UserID, job.LogID, err)
	select {
	case p.errs <- err:
	default:
		log.Errorf("milestone error channel full: %s", err)
	}
}
