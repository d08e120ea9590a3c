package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrTooManyUploads is returned when no slot frees up before the wait timeout.
var ErrTooManyUploads = errors.New("too many concurrent uploads")

// DefaultMaxConcurrent is used when a non-positive limit is configured.
const DefaultMaxConcurrent = 5

// Limiter is a counting semaphore with a bounded wait.
type Limiter struct {
	slots   chan struct{}
	timeout time.Duration
}

// New creates a limiter allowing max concurrent holders. Acquire waits at most timeout.
func New(max int, timeout time.Duration) *Limiter {
	if max <= 0 {
		max = DefaultMaxConcurrent
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Limiter{slots: make(chan struct{}, max), timeout: timeout}
}

// Acquire takes a slot, waiting up to the configured timeout.
func (l *Limiter) Acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	default:
	}

	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrTooManyUploads
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot taken by Acquire.
func (l *Limiter) Release() {
	select {
	case <-l.slots:
	default:
	}
}

// Active returns the number of held slots.
func (l *Limiter) Active() int {
	return len(l.slots)
}

// Max returns the slot capacity.
func (l *Limiter) Max() int {
	return cap(l.slots)
}

// Handler guards the wrapped route, answering 429 when the limiter is saturated.
func (l *Limiter) Handler(onReject func()) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := l.Acquire(c.UserContext()); err != nil {
			if onReject != nil {
				onReject()
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "too_many_uploads",
				"message": "Too many uploads in progress, try again later",
			})
		}
		defer l.Release()
		return c.Next()
	}
}
