package rawconv

import (
	"context"
	"sync"
)

// Awaitable is implemented by raw values that are delivered later, such as
// lazily loaded provider references.
type Awaitable interface {
	AwaitAny(ctx context.Context) (any, error)
}

// Future is a value of type T delivered asynchronously. Struct fields hold it
// as *Future[T].
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// Ready returns a Future already resolved to v.
func Ready[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: v}
	close(f.done)

	return f
}

// Failed returns a Future already resolved to err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)

	return f
}

// Go runs fn in a new goroutine and returns a Future for its result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		v, err := fn(ctx)
		f.resolve(v, err)
	}()

	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.done)
	})
}

// Await blocks until the value is available or ctx is done. A nil Future
// yields the zero value.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	if f == nil {
		var zero T
		return zero, nil
	}

	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitAny implements Awaitable.
func (f *Future[T]) AwaitAny(ctx context.Context) (any, error) {
	return f.Await(ctx)
}

// Await resolves v when it is Awaitable and returns it unchanged otherwise.
// Failures are recorded on d and yield nil.
func Await(d *Decoder, v any) any {
	a, ok := v.(Awaitable)
	if !ok {
		return v
	}

	out, err := a.AwaitAny(d.ctx)
	if err != nil {
		d.Fail(err)
		return nil
	}

	return out
}

// Resolve waits for f on behalf of an encode call. Failures are recorded on e.
func Resolve[T any](e *Encoder, f *Future[T]) T {
	v, err := f.Await(e.ctx)
	if err != nil {
		e.Fail(err)
		var zero T
		return zero
	}

	return v
}
