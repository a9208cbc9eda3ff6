package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/triviarena/triviarena/internal/metrics"
)

const (
	inboxKeyPrefix = "shard_inbox:"
	envelopeField  = "envelope"
	readBlock      = 5 * time.Second
)

// RedisMessenger delivers envelopes through per-shard redis streams.
type RedisMessenger struct {
	client *redis.Client
}

// NewRedisMessenger creates a stream-backed messenger.
func NewRedisMessenger(client *redis.Client) (*RedisMessenger, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &RedisMessenger{client: client}, nil
}

// Send appends the envelope to the target shard's inbox stream.
func (m *RedisMessenger) Send(ctx context.Context, env *Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	err = m.client.XAdd(ctx, &redis.XAddArgs{
		Stream: inboxKey(env.Target),
		Values: map[string]any{envelopeField: body},
	}).Err()
	if err != nil {
		return fmt.Errorf("append to inbox %s: %w", env.Target, err)
	}

	metrics.MessagesSent.WithLabelValues(string(env.Kind)).Inc()
	return nil
}

// ConsumerConfig holds configuration for a shard inbox consumer.
type ConsumerConfig struct {
	// Client is the redis client
	Client *redis.Client

	// Shard is the shard whose inbox is drained
	Shard string

	// Handler receives each inbound envelope
	Handler Handler

	// StartID is the stream id to read after; defaults to "$" (new
	// messages only)
	StartID string
}

// Consumer drains one shard's inbox stream and feeds envelopes to its
// handler one at a time, preserving the shard's serial execution model.
type Consumer struct {
	client  *redis.Client
	shard   string
	handler Handler
	lastID  string
}

// NewConsumer creates a consumer for the given shard.
func NewConsumer(cfg *ConsumerConfig) (*Consumer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Shard == "" {
		return nil, errors.New("shard cannot be empty")
	}

	if cfg.Handler == nil {
		return nil, errors.New("handler cannot be nil")
	}

	lastID := cfg.StartID
	if lastID == "" {
		lastID = "$"
	}

	return &Consumer{
		client:  cfg.Client,
		shard:   cfg.Shard,
		handler: cfg.Handler,
		lastID:  lastID,
	}, nil
}

// Run blocks reading the inbox until the context is canceled. A failed
// handler does not stop consumption: the envelope is logged and dropped, the
// same liveness-over-safety tradeoff the protocol makes for lost messages.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		streams, err := c.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{inboxKey(c.shard), c.lastID},
			Block:   readBlock,
		}).Result()

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read inbox %s: %w", c.shard, err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.lastID = msg.ID
				c.dispatch(ctx, msg)
			}
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg redis.XMessage) {
	raw, ok := msg.Values[envelopeField].(string)
	if !ok {
		slog.WarnContext(ctx, "transport: malformed inbox entry", "shard", c.shard, "entry_id", msg.ID)
		return
	}

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		slog.WarnContext(ctx, "transport: undecodable envelope", "shard", c.shard, "entry_id", msg.ID, "error", err)
		return
	}

	if err := c.handler(ctx, &env); err != nil {
		metrics.MessagesHandled.WithLabelValues(string(env.Kind), "error").Inc()
		slog.ErrorContext(ctx, "transport: handler failed",
			"shard", c.shard,
			"kind", env.Kind,
			"envelope_id", env.ID,
			"error", err,
		)
		return
	}

	metrics.MessagesHandled.WithLabelValues(string(env.Kind), "ok").Inc()
}

func inboxKey(shard string) string {
	return fmt.Sprintf("%s%s", inboxKeyPrefix, shard)
}
