package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler handles graceful shutdown.
type Handler struct {
	timeout time.Duration
	hooks   []func(context.Context) error
	mu      sync.Mutex
	done    chan struct{}
	once    sync.Once
	err     error
	signals []os.Signal

	// Signal is the signal that triggered shutdown, nil when the
	// context was cancelled instead. Valid after Wait returns.
	Signal os.Signal
}

// NewHandler creates a new shutdown handler.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		hooks:   make([]func(context.Context) error, 0),
		done:    make(chan struct{}),
		signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}
}

// OnShutdown registers a shutdown hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Wait blocks until a termination signal arrives, ctx is done or Abort
// has run, then executes the hooks. Errors from all hooks are joined.
// Hooks run at most once per Handler.
func (h *Handler) Wait(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, h.signals...)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		h.Signal = sig
	case <-ctx.Done():
	case <-h.done:
	}

	return h.Trigger()
}

// Trigger executes the hooks immediately, giving them the configured
// timeout to finish in-flight work.
func (h *Handler) Trigger() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	return h.run(ctx, false)
}

// Abort executes the hooks with an already cancelled context, so they
// release their resources without waiting for in-flight work. Hook errors
// caused by the cancellation are not reported.
func (h *Handler) Abort() error {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	return h.run(ctx, true)
}

func (h *Handler) run(ctx context.Context, aborted bool) error {
	h.once.Do(func() {
		h.mu.Lock()
		hooks := make([]func(context.Context) error, len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			err := hooks[i](ctx)
			if err == nil || (aborted && errors.Is(err, context.Canceled)) {
				continue
			}
			errs = append(errs, err)
		}

		h.err = errors.Join(errs...)
		close(h.done)
	})
	return h.err
}
