package transport

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/triviarena/triviarena/internal/transport Messenger

// Messenger sends one-way envelopes to other shards. Send returns once the
// envelope has been handed to the delivery substrate; nothing confirms the
// target ever processed it.
type Messenger interface {
	Send(ctx context.Context, env *Envelope) error
}

// Handler processes one inbound envelope. The hosting environment guarantees
// a shard handles one envelope at a time; handler effects are atomic from the
// shard's point of view.
type Handler func(ctx context.Context, env *Envelope) error
