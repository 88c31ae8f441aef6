// Package broker fans job record updates out to watchers.
package broker

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

const (
	// DefaultEventBufferSize is the size of the publish queue.
	DefaultEventBufferSize = 256
	// DefaultSubscriberBufferSize is the per-watcher queue size.
	DefaultSubscriberBufferSize = 32
	// DefaultShutdownTimeout bounds how long Stop waits.
	DefaultShutdownTimeout = 5 * time.Second
)

// Option configures a Broker.
type Option func(*Broker)

// WithEventBufferSize sets the publish queue size.
func WithEventBufferSize(size int) Option {
	return func(b *Broker) {
		if size > 0 {
			b.eventBufferSize = size
		}
	}
}

// WithSubscriberBufferSize sets the per-watcher queue size.
func WithSubscriberBufferSize(size int) Option {
	return func(b *Broker) {
		if size > 0 {
			b.subscriberBufferSize = size
		}
	}
}

// Broker distributes job records to subscribers filtered by family.
// Subscribers that fall behind are disconnected rather than slowing down
// publishers.
type Broker struct {
	log         logger.Logger
	subscribers map[string]*subscriber
	mu          sync.RWMutex

	publish chan domain.JobRecord

	cancel context.CancelFunc
	wg     sync.WaitGroup

	eventBufferSize      int
	subscriberBufferSize int
	shutdownTimeout      time.Duration
}

// New creates a broker. Call Start before publishing.
func New(log logger.Logger, opts ...Option) *Broker {
	if log == nil {
		log = logger.NewNop()
	}
	b := &Broker{
		log:                  log,
		subscribers:          make(map[string]*subscriber),
		eventBufferSize:      DefaultEventBufferSize,
		subscriberBufferSize: DefaultSubscriberBufferSize,
		shutdownTimeout:      DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.publish = make(chan domain.JobRecord, b.eventBufferSize)
	return b
}

// Start begins distributing published records until ctx is done or Stop is
// called.
func (b *Broker) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)

	b.wg.Add(1)
	go b.broadcastLoop(ctx)

	b.log.Debug("Job status broker started",
		logger.Int("event_buffer_size", b.eventBufferSize),
		logger.Int("subscriber_buffer_size", b.subscriberBufferSize),
	)
}

// Stop disconnects every subscriber and waits for the broadcast loop.
func (b *Broker) Stop() {
	if b.cancel != nil {
		b.cancel()
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(b.shutdownTimeout):
		b.log.Warn("Job status broker shutdown timeout exceeded")
	}
}

// Publish queues rec for distribution without blocking.
func (b *Broker) Publish(rec domain.JobRecord) error {
	select {
	case b.publish <- rec:
		return nil
	default:
		return fmt.Errorf("publish buffer full (dropped job %s status %s)", rec.ID, rec.Status)
	}
}

// Subscribe returns a channel of records for families, or for every family
// when none is given. The channel is closed when ctx is done, when cancel is
// called, or when the subscriber falls behind.
func (b *Broker) Subscribe(ctx context.Context, families ...domain.JobFamily) (records <-chan domain.JobRecord, cancel func()) {
	s := newSubscriber(ctx, b.subscriberBufferSize, families)

	b.mu.Lock()
	b.subscribers[s.id] = s
	total := len(b.subscribers)
	b.mu.Unlock()

	b.log.Debug("Job status watcher subscribed",
		logger.String("subscriber_id", s.id),
		logger.Int("total_subscribers", total),
	)

	go func() {
		<-s.ctx.Done()
		b.remove(s.id)
	}()

	return s.records, func() { b.remove(s.id) }
}

// SubscriberCount returns the number of connected subscribers.
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

func (b *Broker) broadcastLoop(ctx context.Context) {
	defer b.wg.Done()

	for {
		select {
		case rec := <-b.publish:
			b.broadcast(rec)
		case <-ctx.Done():
			b.disconnectAll()
			return
		}
	}
}

func (b *Broker) broadcast(rec domain.JobRecord) {
	b.mu.RLock()
	subscribers := make([]*subscriber, 0, len(b.subscribers))
	for _, s := range b.subscribers {
		subscribers = append(subscribers, s)
	}
	b.mu.RUnlock()

	for _, s := range subscribers {
		if !s.send(rec) {
			b.log.Warn("Watcher buffer full, closing slow subscriber",
				logger.String("subscriber_id", s.id),
				logger.JobID(rec.ID),
			)
			b.remove(s.id)
		}
	}
}

func (b *Broker) remove(id string) {
	b.mu.Lock()
	s, exists := b.subscribers[id]
	delete(b.subscribers, id)
	b.mu.Unlock()

	if exists {
		s.close()
	}
}

func (b *Broker) disconnectAll() {
	b.mu.Lock()
	subscribers := b.subscribers
	b.subscribers = make(map[string]*subscriber)
	b.mu.Unlock()

	for _, s := range subscribers {
		s.close()
	}
}

type subscriber struct {
	id       string
	records  chan domain.JobRecord
	families []domain.JobFamily
	ctx      context.Context
	cancel   context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func newSubscriber(ctx context.Context, bufferSize int, families []domain.JobFamily) *subscriber {
	subCtx, cancel := context.WithCancel(ctx)
	return &subscriber{
		id:       uuid.NewString(),
		records:  make(chan domain.JobRecord, bufferSize),
		families: families,
		ctx:      subCtx,
		cancel:   cancel,
	}
}

// send delivers rec if it matches the filter. It reports false only when the
// buffer is full.
func (s *subscriber) send(rec domain.JobRecord) bool {
	if len(s.families) > 0 && !slices.Contains(s.families, rec.Family) {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.records <- rec:
		return true
	default:
		return false
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	close(s.records)
}
