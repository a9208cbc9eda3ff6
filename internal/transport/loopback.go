package transport

import (
	"context"
	"log/slog"
	"sync"

	"github.com/triviarena/triviarena/internal/metrics"
)

// Loopback delivers envelopes synchronously to handlers registered in the
// same process. It is the wiring for single-node deployments and tests.
//
// An envelope addressed to a shard with no handler is dropped, matching the
// lost-message behavior of the real substrate.
type Loopback struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewLoopback creates an empty in-process messenger.
func NewLoopback() *Loopback {
	return &Loopback{
		handlers: make(map[string]Handler),
	}
}

// Register installs the handler for a shard's inbound envelopes.
func (l *Loopback) Register(shard string, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handlers[shard] = h
}

// Send dispatches the envelope to the target shard's handler, if any.
func (l *Loopback) Send(ctx context.Context, env *Envelope) error {
	metrics.MessagesSent.WithLabelValues(string(env.Kind)).Inc()

	l.mu.RLock()
	h, ok := l.handlers[env.Target]
	l.mu.RUnlock()

	if !ok {
		slog.WarnContext(ctx, "transport: no handler for target, envelope dropped",
			"target", env.Target,
			"kind", env.Kind,
			"envelope_id", env.ID,
		)
		return nil
	}

	if err := h(ctx, env); err != nil {
		metrics.MessagesHandled.WithLabelValues(string(env.Kind), "error").Inc()
		slog.ErrorContext(ctx, "transport: handler failed",
			"target", env.Target,
			"kind", env.Kind,
			"envelope_id", env.ID,
			"error", err,
		)
		return nil
	}

	metrics.MessagesHandled.WithLabelValues(string(env.Kind), "ok").Inc()
	return nil
}
