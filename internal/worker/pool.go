package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueEmail = "jobs:email"

	JobTypeEmail = "email"

	// MaxAttempts is how many times a job is processed before it moves to the DLQ.
	MaxAttempts = 3
)

// Job is the envelope stored in the Redis lists.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Attempt int             `json:"attempt"`
}

// Processor handles one job type. Returning an error schedules a retry
// unless the error is wrapped with Permanent.
type Processor interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Permanent marks an error that retrying cannot fix (bad payload).
func Permanent(err error) error { return permanentError{err: err} }

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb redis.Cmdable
}

func NewDispatcher(rdb redis.Cmdable) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, job EmailJob) error {
	return d.enqueue(ctx, QueueEmail, JobTypeEmail, job)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool runs the consumer goroutines.
type Pool struct {
	rdb         redis.Cmdable
	handlers    map[string]Processor
	queues      []string
	pollTimeout time.Duration
	// backoff is the pause after a failed BRPOP while redis is unreachable.
	backoff time.Duration
	down    atomic.Bool
	wg      sync.WaitGroup
}

func NewPool(rdb redis.Cmdable, handlers map[string]Processor) *Pool {
	return &Pool{
		rdb:         rdb,
		handlers:    handlers,
		queues:      []string{QueueEmail},
		pollTimeout: 5 * time.Second,
		backoff:     2 * time.Second,
	}
}

// Start launches numWorkers goroutines. Each goroutine blocks on BRPOP
// and checks ctx between polls.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.run(ctx, id)
		}(i)
	}
	log.Info().Int("workers", numWorkers).Strs("queues", p.queues).Msg("worker pool started")
}

// Wait blocks until every worker has returned after ctx was cancelled.
func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("worker shutting down")
			return
		default:
			p.next(ctx)
		}
	}
}

// next pops and processes at most one job. It reports whether a job was found.
func (p *Pool) next(ctx context.Context) bool {
	result, err := p.rdb.BRPop(ctx, p.pollTimeout, p.queues...).Result()
	switch {
	case errors.Is(err, redis.Nil):
		p.markUp()
		return false // idle poll
	case err != nil:
		if ctx.Err() != nil {
			return false
		}
		if p.down.CompareAndSwap(false, true) {
			log.Error().Err(err).Strs("queues", p.queues).Dur("backoff", p.backoff).Msg("redis unavailable, pausing workers")
		}
		select {
		case <-ctx.Done():
		case <-time.After(p.backoff):
		}
		return false
	case len(result) < 2:
		return false
	}
	p.markUp()
	p.processJob(ctx, result[0], result[1])
	return true
}

func (p *Pool) markUp() {
	if p.down.CompareAndSwap(true, false) {
		log.Info().Strs("queues", p.queues).Msg("redis reachable again, workers resumed")
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		bury(ctx, p.rdb, queue, Job{Type: "unknown", Payload: json.RawMessage(fmt.Sprintf("%q", raw))}, err.Error())
		return
	}
	job.Attempt++

	h, ok := p.handlers[job.Type]
	if !ok {
		bury(ctx, p.rdb, queue, job, "no handler for job type")
		return
	}

	err := h.Process(ctx, job.Payload)
	if err == nil {
		return
	}
	var perm permanentError
	if errors.As(err, &perm) || job.Attempt >= MaxAttempts {
		bury(ctx, p.rdb, queue, job, err.Error())
		return
	}

	log.Warn().Err(err).Str("queue", queue).Str("type", job.Type).Int("attempt", job.Attempt).Msg("job failed, requeueing")
	encoded, mErr := json.Marshal(job)
	if mErr != nil {
		log.Error().Err(mErr).Msg("failed to marshal job for retry")
		return
	}
	if pErr := p.rdb.LPush(ctx, queue, encoded).Err(); pErr != nil {
		log.Error().Err(pErr).Str("queue", queue).Msg("failed to requeue job")
	}
}
