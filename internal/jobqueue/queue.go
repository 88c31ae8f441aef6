// Package jobqueue runs sync jobs from a durable SQLite-backed queue.
//
// Each record is claimed by a single dispatcher goroutine and run on its own
// goroutine with a cancellable context. Enqueueing under a unique name that
// already has a live record replaces it: the old record is CANCELLED and its
// run context cancelled. Failed runs are retried with exponential backoff
// until the attempt budget is spent.
package jobqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultMaxAttempts     = 3
	defaultInitialBackoff  = 30 * time.Second
	defaultMaxBackoff      = 15 * time.Minute
	exponentialBackoffBase = 2
)

// ErrUnknownFamily is returned when enqueueing a family with no body.
var ErrUnknownFamily = errors.New("no body registered for job family")

// PermanentError marks a run failure that retrying cannot fix.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }

func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the run fails without retry.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Body is the work run for a record. A returned error fails the run; it is
// retried unless wrapped with Permanent.
type Body func(ctx context.Context, rec domain.JobRecord) error

// Store persists job records.
type Store interface {
	Replace(ctx context.Context, rec domain.JobRecord) ([]domain.JobRecord, error)
	ClaimDue(ctx context.Context, now time.Time) ([]domain.JobRecord, error)
	Finish(ctx context.Context, id string, status domain.JobStatus, errMsg *string, now time.Time) (bool, error)
	Retry(ctx context.Context, id, errMsg string, notBefore, now time.Time) (bool, error)
	RecoverRunning(ctx context.Context, now time.Time) ([]domain.JobRecord, error)
	Get(ctx context.Context, id string) (*domain.JobRecord, error)
	History(ctx context.Context, family domain.JobFamily, limit int) ([]domain.JobRecord, error)
}

// Notifier receives every record update.
type Notifier interface {
	Publish(rec domain.JobRecord) error
}

type runHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Queue dispatches durable job records to the registered bodies.
type Queue struct {
	log      logger.Logger
	store    Store
	notifier Notifier
	metrics  *Metrics
	now      func() time.Time

	bodies map[domain.JobFamily]Body

	pollInterval   time.Duration
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	textfilePath   string

	running   map[string]*runHandle
	runningMu sync.Mutex

	// claimMu serializes claiming with replacing, so a claimed record always
	// has its handle registered before a replace can look for it.
	claimMu sync.Mutex

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a queue over store. Register bodies before calling Start.
func New(store Store, log logger.Logger, opts ...Option) *Queue {
	if log == nil {
		log = logger.NewNop()
	}

	q := &Queue{
		log:            log,
		store:          store,
		now:            time.Now,
		bodies:         make(map[domain.JobFamily]Body),
		pollInterval:   defaultPollInterval,
		maxAttempts:    defaultMaxAttempts,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
		running:        make(map[string]*runHandle),
		wake:           make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Register sets the body run for family.
func (q *Queue) Register(family domain.JobFamily, body Body) {
	q.bodies[family] = body
}

// Start re-enqueues records left RUNNING by a previous process and starts
// the dispatcher. It returns once the dispatcher is running.
func (q *Queue) Start(ctx context.Context) error {
	q.ctx, q.cancel = context.WithCancel(ctx)

	recovered, err := q.store.RecoverRunning(q.ctx, q.clock())
	if err != nil {
		q.cancel()
		return fmt.Errorf("recover running jobs: %w", err)
	}
	for _, rec := range recovered {
		q.log.Info("Re-enqueued interrupted job",
			logger.JobID(rec.ID),
			logger.Family(string(rec.Family)),
			logger.Int("attempt", rec.Attempt),
		)
		q.publish(rec)
	}

	q.wg.Add(1)
	go q.dispatchLoop()

	q.log.Info("Job queue started",
		logger.Duration("poll_interval", q.pollInterval),
		logger.Int("max_attempts", q.maxAttempts),
		logger.Int("recovered", len(recovered)),
	)
	q.notify()
	return nil
}

// Stop cancels running bodies and waits for them. Interrupted records stay
// RUNNING and are recovered by the next Start.
func (q *Queue) Stop() {
	if q.cancel == nil {
		return
	}

	q.log.Info("Stopping job queue")
	q.cancel()
	q.wg.Wait()
	q.log.Info("Job queue stopped")
}

// Enqueue creates an ENQUEUED record for family under uniqueName, replacing
// any live record with the same name. A replaced run is cancelled and Enqueue
// waits for its body to return, or for ctx to end, before the new record can
// be claimed.
func (q *Queue) Enqueue(ctx context.Context, uniqueName string, family domain.JobFamily) (domain.JobRecord, error) {
	if _, ok := q.bodies[family]; !ok {
		return domain.JobRecord{}, fmt.Errorf("%w: %s", ErrUnknownFamily, family)
	}

	now := q.clock()
	rec := domain.JobRecord{
		ID:         uuid.NewString(),
		UniqueName: uniqueName,
		Family:     family,
		Status:     domain.JobStatusEnqueued,
		NotBefore:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	q.claimMu.Lock()
	defer q.claimMu.Unlock()

	cancelled, err := q.store.Replace(ctx, rec)
	if err != nil {
		return domain.JobRecord{}, fmt.Errorf("enqueue %s: %w", uniqueName, err)
	}

	for _, old := range cancelled {
		if done := q.cancelRun(old.ID); done != nil {
			select {
			case <-done:
			case <-ctx.Done():
			}
		}
		q.metrics.finished(old.Family, domain.JobStatusCancelled)
		q.log.Info("Replaced live job",
			logger.JobID(old.ID),
			logger.String("unique_name", uniqueName),
			logger.String("replaced_by", rec.ID),
		)
		q.publish(old)
	}

	q.metrics.enqueued(family)
	q.log.Debug("Job enqueued",
		logger.JobID(rec.ID),
		logger.Family(string(family)),
		logger.String("unique_name", uniqueName),
	)
	q.publish(rec)
	q.notify()

	return rec, nil
}

// Get returns the record identified by id.
func (q *Queue) Get(ctx context.Context, id string) (*domain.JobRecord, error) {
	return q.store.Get(ctx, id)
}

// History lists the records of family, most recent first.
func (q *Queue) History(ctx context.Context, family domain.JobFamily, limit int) ([]domain.JobRecord, error) {
	return q.store.History(ctx, family, limit)
}

// Backoff returns the delay before the run following attempt.
func (q *Queue) Backoff(attempt int) time.Duration {
	delay := q.initialBackoff
	for i := 1; i < attempt; i++ {
		delay *= exponentialBackoffBase
		if delay >= q.maxBackoff {
			return q.maxBackoff
		}
	}
	return min(delay, q.maxBackoff)
}

func (q *Queue) dispatchLoop() {
	defer q.wg.Done()

	ticker := time.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-q.ctx.Done():
			return
		case <-ticker.C:
			q.dispatch()
		case <-q.wake:
			q.dispatch()
		}
	}
}

func (q *Queue) dispatch() {
	q.claimMu.Lock()
	defer q.claimMu.Unlock()

	claimed, err := q.store.ClaimDue(q.ctx, q.clock())
	if err != nil && q.ctx.Err() == nil {
		q.log.Error("Failed to claim due jobs", logger.Error(err))
	}

	for _, rec := range claimed {
		runCtx, cancel := context.WithCancel(q.ctx)
		h := &runHandle{cancel: cancel, done: make(chan struct{})}

		q.runningMu.Lock()
		q.running[rec.ID] = h
		q.runningMu.Unlock()

		q.publish(rec)
		q.metrics.started()

		q.wg.Add(1)
		go q.run(runCtx, rec, h)
	}
}

func (q *Queue) run(ctx context.Context, rec domain.JobRecord, h *runHandle) {
	defer q.wg.Done()
	defer close(h.done)

	log := q.log.With(logger.JobID(rec.ID), logger.Family(string(rec.Family)))
	log.Info("Running job", logger.Int("attempt", rec.Attempt))

	start := q.clock()
	err := q.invoke(ctx, rec)
	runCtxErr := ctx.Err()

	q.cancelRun(rec.ID)
	q.metrics.stopped(rec.Family, q.clock().Sub(start).Seconds())

	if q.ctx.Err() != nil {
		log.Info("Job interrupted by shutdown")
		return
	}
	if runCtxErr != nil {
		log.Info("Job cancelled")
		return
	}

	q.complete(rec, err, log)
	q.exportMetrics()
}

func (q *Queue) invoke(ctx context.Context, rec domain.JobRecord) (err error) {
	body, ok := q.bodies[rec.Family]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFamily, rec.Family)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()

	return body(ctx, rec)
}

func (q *Queue) complete(rec domain.JobRecord, runErr error, log logger.Logger) {
	ctx := context.WithoutCancel(q.ctx)
	now := q.clock()

	if runErr == nil {
		q.finish(ctx, rec, domain.JobStatusSucceeded, nil, now, log)
		return
	}

	msg := runErr.Error()
	if q.retryable(rec, runErr) {
		notBefore := now.Add(q.Backoff(rec.Attempt))
		ok, err := q.store.Retry(ctx, rec.ID, msg, notBefore, now)
		if err != nil {
			log.Error("Failed to schedule job retry", logger.Error(err))
			return
		}
		if !ok {
			return
		}

		log.Warn("Job failed, retry scheduled",
			logger.Error(runErr),
			logger.Int("attempt", rec.Attempt),
			logger.Time("not_before", notBefore),
		)
		q.metrics.retried(rec.Family)

		rec.Status = domain.JobStatusEnqueued
		rec.Error = &msg
		rec.NotBefore = notBefore
		rec.UpdatedAt = now
		q.publish(rec)
		return
	}

	log.Error("Job failed", logger.Error(runErr), logger.Int("attempt", rec.Attempt))
	q.finish(ctx, rec, domain.JobStatusFailed, &msg, now, log)
}

func (q *Queue) retryable(rec domain.JobRecord, err error) bool {
	var permanent *PermanentError
	if errors.As(err, &permanent) || errors.Is(err, ErrUnknownFamily) {
		return false
	}
	return rec.Attempt < q.maxAttempts
}

func (q *Queue) finish(ctx context.Context, rec domain.JobRecord, status domain.JobStatus, msg *string, now time.Time, log logger.Logger) {
	ok, err := q.store.Finish(ctx, rec.ID, status, msg, now)
	if err != nil {
		log.Error("Failed to record job result", logger.String("status", string(status)), logger.Error(err))
		return
	}
	if !ok {
		return
	}

	if status == domain.JobStatusSucceeded {
		log.Info("Job succeeded", logger.Int("attempt", rec.Attempt))
	}
	q.metrics.finished(rec.Family, status)

	rec.Status = status
	rec.Error = msg
	rec.UpdatedAt = now
	q.publish(rec)
}

// cancelRun cancels the run of id, if any, and returns a channel closed when
// its body has returned.
func (q *Queue) cancelRun(id string) <-chan struct{} {
	q.runningMu.Lock()
	h, ok := q.running[id]
	delete(q.running, id)
	q.runningMu.Unlock()

	if !ok {
		return nil
	}
	h.cancel()
	return h.done
}

func (q *Queue) publish(rec domain.JobRecord) {
	if q.notifier == nil {
		return
	}
	if err := q.notifier.Publish(rec); err != nil {
		q.log.Warn("Failed to publish job update", logger.JobID(rec.ID), logger.Error(err))
	}
}

func (q *Queue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) exportMetrics() {
	if q.metrics == nil || q.textfilePath == "" {
		return
	}
	if err := q.metrics.WriteTextfile(q.textfilePath); err != nil {
		q.log.Warn("Failed to export job metrics", logger.Error(err))
	}
}

func (q *Queue) clock() time.Time {
	return q.now().UTC()
}
