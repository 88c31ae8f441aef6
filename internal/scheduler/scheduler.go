// Package scheduler exposes the two sync jobs: starting them on demand,
// starting them periodically, and observing their records.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// Queue is the durable job queue the scheduler enqueues into.
type Queue interface {
	Enqueue(ctx context.Context, uniqueName string, family domain.JobFamily) (domain.JobRecord, error)
	History(ctx context.Context, family domain.JobFamily, limit int) ([]domain.JobRecord, error)
}

// Watcher streams job record updates.
type Watcher interface {
	Subscribe(ctx context.Context, families ...domain.JobFamily) (<-chan domain.JobRecord, func())
}

// Scheduler starts sync jobs. Starting a job while one of the same family is
// live replaces it.
type Scheduler struct {
	log     logger.Logger
	queue   Queue
	watcher Watcher

	cron    *cron.Cron
	entries map[domain.JobFamily]cron.EntryID
	periods map[domain.JobFamily]time.Duration
	mu      sync.Mutex
	ctx     context.Context
}

// New creates a scheduler. Periodic entries only fire between Start and Stop.
func New(queue Queue, watcher Watcher, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.NewNop()
	}

	return &Scheduler{
		log:     log,
		queue:   queue,
		watcher: watcher,
		cron:    cron.New(cron.WithLogger(cronLogger{log: log})),
		entries: make(map[domain.JobFamily]cron.EntryID),
		periods: make(map[domain.JobFamily]time.Duration),
		ctx:     context.Background(),
	}
}

// Start starts firing periodic entries. Jobs they enqueue use ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.cron.Start()
	s.log.Info("Periodic sync scheduler started")
}

// Stop stops firing periodic entries and waits for a firing in progress.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Periodic sync scheduler stopped")
}

// StartSync enqueues a reference data sync.
func (s *Scheduler) StartSync(ctx context.Context) (domain.JobRecord, error) {
	return s.start(ctx, domain.FamilyReferenceSync)
}

// StartDataSync enqueues a bulk data sync.
func (s *Scheduler) StartDataSync(ctx context.Context) (domain.JobRecord, error) {
	return s.start(ctx, domain.FamilyBulkSync)
}

// Watch streams record updates for families, or for all families when none
// is given, until ctx is done or the returned cancel is called.
func (s *Scheduler) Watch(ctx context.Context, families ...domain.JobFamily) (<-chan domain.JobRecord, func()) {
	return s.watcher.Subscribe(ctx, families...)
}

// History lists the records of family, most recent first.
func (s *Scheduler) History(ctx context.Context, family domain.JobFamily, limit int) ([]domain.JobRecord, error) {
	if !family.IsValid() {
		return nil, fmt.Errorf("unknown job family %q", family)
	}
	return s.queue.History(ctx, family, limit)
}

// SchedulePeriodic replaces the periodic entries with the periodicities of
// settings. A zero periodicity leaves its job unscheduled. Entries whose
// periodicity did not change keep their next run.
func (s *Scheduler) SchedulePeriodic(settings domain.DataSyncSettings) error {
	periods := map[domain.JobFamily]time.Duration{
		domain.FamilyReferenceSync: settings.EssentialPeriodicity,
		domain.FamilyBulkSync:      settings.SyncPeriodicity,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, family := range domain.Families() {
		every := max(periods[family], 0)
		if prev, ok := s.periods[family]; ok && prev == every {
			continue
		}

		if id, ok := s.entries[family]; ok {
			s.cron.Remove(id)
			delete(s.entries, family)
		}
		delete(s.periods, family)

		if every == 0 {
			s.periods[family] = 0
			s.log.Info("Periodic sync disabled", logger.Family(string(family)))
			continue
		}

		id, err := s.cron.AddFunc("@every "+every.String(), s.fire(family))
		if err != nil {
			return fmt.Errorf("schedule %s every %s: %w", family, every, err)
		}
		s.entries[family] = id
		s.periods[family] = every

		s.log.Info("Periodic sync scheduled",
			logger.Family(string(family)),
			logger.Duration("every", every),
		)
	}

	return nil
}

// Next returns the next periodic run of family, if one is scheduled and the
// scheduler is running.
func (s *Scheduler) Next(family domain.JobFamily) (time.Time, bool) {
	s.mu.Lock()
	id, ok := s.entries[family]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}

	next := s.cron.Entry(id).Next
	return next, !next.IsZero()
}

func (s *Scheduler) start(ctx context.Context, family domain.JobFamily) (domain.JobRecord, error) {
	rec, err := s.queue.Enqueue(ctx, uniqueName(family), family)
	if err != nil {
		return domain.JobRecord{}, fmt.Errorf("start %s: %w", family, err)
	}

	s.log.Info("Sync job started", logger.Family(string(family)), logger.JobID(rec.ID))
	return rec, nil
}

func (s *Scheduler) fire(family domain.JobFamily) func() {
	return func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if _, err := s.start(ctx, family); err != nil {
			s.log.Error("Periodic sync failed to start", logger.Family(string(family)), logger.Error(err))
		}
	}
}

func uniqueName(family domain.JobFamily) string {
	if family == domain.FamilyBulkSync {
		return domain.UniqueNameBulkSync
	}
	return domain.UniqueNameReferenceSync
}

// cronLogger routes cron's own logging to the structured logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, kvFields(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(kvFields(keysAndValues), logger.Error(err))...)
}

func kvFields(keysAndValues []any) []logger.Field {
	fields := make([]logger.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields = append(fields, logger.Any(key, keysAndValues[i+1]))
	}
	return fields
}
