// Package shutdown cancels a context when the process is asked to stop.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler owns a context that is canceled on SIGINT, SIGTERM or an
// explicit call to Shutdown. Hooks registered with BeforeShutdown run
// once, before the context is canceled.
type Handler struct {
	mut     sync.Mutex
	hooks   []func()
	once    sync.Once
	cancel  context.CancelFunc
	signals chan os.Signal
	done    chan struct{}
}

// New starts listening for signals and returns the handler together with
// its context.
func New(parent context.Context) (*Handler, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	h := &Handler{
		cancel:  cancel,
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}

	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-h.signals:
			slog.Warn("Received " + sig.String() + ", shutting down...")
			h.Shutdown()
		case <-ctx.Done():
			h.Shutdown()
		case <-h.done:
		}
	}()

	return h, ctx
}

// BeforeShutdown registers a function to be called before the context is
// canceled. Hooks registered after shutdown has begun never run.
func (h *Handler) BeforeShutdown(f func()) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, f)
}

// Shutdown runs the hooks and cancels the context. Only the first call
// has any effect.
func (h *Handler) Shutdown() {
	h.once.Do(func() {
		signal.Stop(h.signals)
		close(h.done)

		h.mut.Lock()
		hooks := h.hooks
		h.hooks = nil
		h.mut.Unlock()

		for _, hook := range hooks {
			hook()
		}

		h.cancel()
	})
}
