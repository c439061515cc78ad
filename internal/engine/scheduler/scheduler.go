// Package scheduler runs batches of transform jobs through the cache.
package scheduler

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// JobStatus represents the status of a job.
type JobStatus string

const (
	// StatusPending indicates the job is waiting to be executed.
	StatusPending JobStatus = "Pending"
	// StatusRunning indicates the job is currently executing.
	StatusRunning JobStatus = "Running"
	// StatusCompleted indicates the job has finished successfully.
	StatusCompleted JobStatus = "Completed"
	// StatusFailed indicates the job failed.
	StatusFailed JobStatus = "Failed"
	// StatusCanceled indicates the job never ran because the run was canceled.
	StatusCanceled JobStatus = "Canceled"
)

// Job is one file to transform.
type Job struct {
	// Path identifies the job, usually the source file.
	Path string
	// Request is handed to the cache.
	Request *domain.Request
	// CacheEnabled is handed to the cache.
	CacheEnabled bool
}

// Result is the outcome of a Job.
type Result struct {
	Path   string
	Output string
	Err    error
}

// Scheduler runs jobs through a TransformCache with bounded parallelism.
type Scheduler struct {
	cache ports.TransformCache

	mu        sync.RWMutex
	jobStatus map[string]JobStatus
}

// New creates a new Scheduler.
func New(cache ports.TransformCache) *Scheduler {
	return &Scheduler{
		cache:     cache,
		jobStatus: make(map[string]JobStatus),
	}
}

// Status returns the status of the job identified by path.
func (s *Scheduler) Status(path string) JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobStatus[path]
}

func (s *Scheduler) updateStatus(path string, status JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobStatus[path] = status
}

// Run executes jobs with at most parallelism concurrent computations.
// A parallelism below one uses the number of CPUs.
//
// A failing job does not stop the others. Results are returned in job order; the
// returned error joins every job failure and the context error, if any.
func (s *Scheduler) Run(ctx context.Context, jobs []Job, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	for _, job := range jobs {
		s.updateStatus(job.Path, StatusPending)
	}

	results := make([]Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, job := range jobs {
		if ctx.Err() != nil {
			results[i] = Result{Path: job.Path, Err: ctx.Err()}
			s.updateStatus(job.Path, StatusCanceled)
			continue
		}

		g.Go(func() error {
			results[i] = s.runJob(ctx, job)
			return nil
		})
	}
	_ = g.Wait()

	var errs error
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
			continue
		}
		errs = errors.Join(errs, zerr.With(zerr.Wrap(res.Err, "transform failed"), "file", res.Path))
	}
	if ctx.Err() != nil {
		errs = errors.Join(errs, ctx.Err())
	}

	return results, errs
}

func (s *Scheduler) runJob(ctx context.Context, job Job) Result {
	if ctx.Err() != nil {
		s.updateStatus(job.Path, StatusCanceled)
		return Result{Path: job.Path, Err: ctx.Err()}
	}

	s.updateStatus(job.Path, StatusRunning)

	output, err := s.cache.Compute(ctx, job.Request, job.CacheEnabled)
	if err != nil {
		s.updateStatus(job.Path, StatusFailed)
		return Result{Path: job.Path, Err: err}
	}

	s.updateStatus(job.Path, StatusCompleted)
	return Result{Path: job.Path, Output: output}
}
