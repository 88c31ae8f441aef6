// Package usecase holds the application operations and the executor that runs
// them off the caller's goroutine.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/result"
)

// Result is the outcome of a use case.
type Result[V any] = result.Result[failure.Failure, V]

// UseCase is one application operation.
type UseCase[P, V any] interface {
	Run(ctx context.Context, params P) Result[V]
}

// Func adapts a function to UseCase.
type Func[P, V any] func(ctx context.Context, params P) Result[V]

// Run calls f.
func (f Func[P, V]) Run(ctx context.Context, params P) Result[V] { return f(ctx, params) }

// None is the parameter type of use cases that take no input.
type None struct{}

// Task is a handle on a running use case.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	cancelled bool
	delivered bool
}

// Cancel stops the task. Once Cancel returns, the result callback will not
// be called unless delivery had already started. Cancel may be called from
// the callback itself.
func (t *Task) Cancel() {
	t.mu.Lock()
	if !t.delivered {
		t.cancelled = true
	}
	t.mu.Unlock()
	t.cancel()
}

// deliver reports whether the result may be delivered and, if so, marks it
// delivered. Once it returns true, a later Cancel has no effect on delivery.
func (t *Task) deliver(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled || ctx.Err() != nil {
		return false
	}
	t.delivered = true
	return true
}

// Done is closed when the task has finished, delivered or not.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task has finished.
func (t *Task) Wait() { <-t.done }

// Invoke runs uc on its own goroutine bound to scope. onResult is called
// exactly once with the result, unless scope is cancelled or the task is
// cancelled first, in which case it is never called.
func Invoke[P, V any](scope context.Context, uc UseCase[P, V], params P, onResult func(Result[V])) *Task {
	ctx, cancel := context.WithCancel(scope)
	task := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		defer cancel()

		res := run(ctx, uc, params)

		if task.deliver(ctx) && onResult != nil {
			onResult(res)
		}
	}()

	return task
}

// Execute runs uc on the calling goroutine.
func Execute[P, V any](ctx context.Context, uc UseCase[P, V], params P) Result[V] {
	return run(ctx, uc, params)
}

func run[P, V any](ctx context.Context, uc UseCase[P, V], params P) (res Result[V]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Failure[failure.Failure, V](failure.StorageFailure{Cause: fmt.Errorf("use case panic: %v", r)})
		}
	}()
	return uc.Run(ctx, params)
}
