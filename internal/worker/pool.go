// Package worker warms the artist ID cache in the background.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
	"github.com/ewilliams-labs/moodmix/internal/metrics"
)

const jobTimeout = 30 * time.Second

// Job asks for one artist to be resolved in one market.
type Job struct {
	Artist string
	Market domain.Market
}

// Pool manages background workers that resolve artist IDs ahead of requests.
type Pool struct {
	resolver ports.ArtistResolver
	jobs     chan Job
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool creates a worker pool with the given queue size.
func NewPool(resolver ports.ArtistResolver, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{resolver: resolver, jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines. Jobs stop early once ctx is done.
func (p *Pool) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(ctx, job)
			}
		}()
	}
}

// Stop closes the queue and waits for workers to drain it.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit queues a job without blocking. It reports false when the job was dropped.
func (p *Pool) Submit(job Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		metrics.WarmupJobs.WithLabelValues("dropped").Inc()
		logging.Warn().Str("artist", job.Artist).Str("market", job.Market.String()).Msg("worker: dropping warm-up job")
		return false
	}
}

// WarmSeeds enqueues every seed artist for its language's market and returns
// how many jobs were accepted.
func (p *Pool) WarmSeeds(seeds domain.SeedTable) int {
	accepted := 0
	for _, lang := range domain.Languages {
		seen := map[string]bool{}
		for _, mood := range domain.Moods {
			for _, name := range seeds.Artists(lang, mood) {
				if seen[name] {
					continue
				}
				seen[name] = true
				if p.Submit(Job{Artist: name, Market: lang.Market()}) {
					accepted++
				}
			}
		}
	}
	return accepted
}

func (p *Pool) processJob(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		metrics.WarmupJobs.WithLabelValues("failed").Inc()
		return
	}

	jctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	id, err := p.resolver.ResolveArtistID(jctx, job.Artist, job.Market)
	if err != nil {
		metrics.WarmupJobs.WithLabelValues("failed").Inc()
		logging.Warn().Err(err).Str("artist", job.Artist).Str("market", job.Market.String()).Msg("worker: warm-up failed")
		return
	}
	metrics.WarmupJobs.WithLabelValues("resolved").Inc()
	logging.Debug().Str("artist", job.Artist).Str("id", id).Msg("worker: warmed artist")
}
