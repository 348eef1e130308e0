package concurrent

import "context"

type Limiter interface {
	// Acquire enqueue one working credential, gives up when ctx is done.
	Acquire(ctx context.Context) error
	// TryAcquire enqueue one working credential without blocking.
	TryAcquire() bool
	// Release dequeue one working credential.
	Release()
}

type limiter struct {
	working chan struct{}
}

// NewLimiter returns a Limiter admitting at most maxConcurrency holders, a value below 1 means 1.
func NewLimiter(maxConcurrency int) Limiter {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &limiter{
		working: make(chan struct{}, maxConcurrency),
	}
}

// NewMutex returns a Limiter that behaves as a context aware mutex.
func NewMutex() Limiter {
	return NewLimiter(1)
}

func (in *limiter) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case in.working <- struct{}{}:
	}
	// ctx may expire at the same moment the slot frees up
	if err := ctx.Err(); err != nil {
		in.Release()
		return err
	}
	return nil
}

func (in *limiter) TryAcquire() bool {
	select {
	case in.working <- struct{}{}:
		return true
	default:
		return false
	}
}

func (in *limiter) Release() {
	select {
	case <-in.working:
	default:
	}
}
