package jobqueue

import "time"

// Option configures a Queue.
type Option func(*Queue)

// WithPollInterval sets how often the dispatcher looks for due records.
// Default: 5 seconds
func WithPollInterval(interval time.Duration) Option {
	return func(q *Queue) {
		if interval > 0 {
			q.pollInterval = interval
		}
	}
}

// WithRetry sets the attempt budget and the backoff bounds. A failed run is
// retried after initial, doubling on each attempt up to max.
func WithRetry(maxAttempts int, initial, maxBackoff time.Duration) Option {
	return func(q *Queue) {
		if maxAttempts > 0 {
			q.maxAttempts = maxAttempts
		}
		if initial > 0 {
			q.initialBackoff = initial
		}
		if maxBackoff > 0 {
			q.maxBackoff = maxBackoff
		}
	}
}

// WithNotifier sets where record updates are published.
func WithNotifier(n Notifier) Option {
	return func(q *Queue) {
		q.notifier = n
	}
}

// WithMetrics sets the queue metrics.
func WithMetrics(m *Metrics) Option {
	return func(q *Queue) {
		q.metrics = m
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

// WithTextfile makes the queue export its metrics to path after every run.
func WithTextfile(path string) Option {
	return func(q *Queue) {
		q.textfilePath = path
	}
}
