// Package transport carries one-way messages between shards.
//
// Delivery is fire-and-forget: there are no retries and no acknowledgments.
// Replies are correlated to requests only through the envelope's
// CorrelationID, and the core assumes at most one question-supply request is
// in flight per room.
package transport

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies the payload type of an envelope.
type Kind string

const (
	// Room shard inbound
	KindReceiveQuestions Kind = "trivia.receive_questions"

	// Question bank shard inbound
	KindRequestQuestions Kind = "trivia.request_questions"
	KindSendProtocolFee  Kind = "trivia.send_protocol_fee"

	// Balance ledger shard inbound
	KindNotifyDebt    Kind = "bankroll.notify_debt"
	KindUpdateBalance Kind = "bankroll.update_balance"
	KindDebtNotif     Kind = "bankroll.debt_notif"
	KindDebtPaid      Kind = "bankroll.debt_paid"
	KindTokenPot      Kind = "bankroll.token_pot"
	KindTokenUpdate   Kind = "bankroll.token_update"

	// Room event announcements (joins, rounds, game end)
	KindRoomEvent Kind = "trivia.room_event"
)

// Envelope wraps a cross-shard message.
type Envelope struct {
	// ID uniquely identifies this envelope
	ID string `json:"id"`

	// CorrelationID ties a reply to its originating request; empty for
	// unsolicited messages
	CorrelationID string `json:"correlation_id,omitempty"`

	// Source is the sending shard
	Source string `json:"source"`

	// Target is the receiving shard
	Target string `json:"target"`

	// Kind identifies the payload type
	Kind Kind `json:"kind"`

	// Payload is the kind-specific message body
	Payload json.RawMessage `json:"payload"`

	// Sender is the identity the sending shard attributed the message to,
	// when one applies
	Sender string `json:"sender,omitempty"`

	// SentAt is when the envelope was produced
	SentAt time.Time `json:"sent_at"`
}

// Decode unmarshals the payload into v.
func (e *Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Kind, err)
	}
	return nil
}

// NewEnvelope builds an envelope with a marshaled payload.
func NewEnvelope(id, source, target string, kind Kind, payload any, sentAt time.Time) (*Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", kind, err)
	}

	return &Envelope{
		ID:      id,
		Source:  source,
		Target:  target,
		Kind:    kind,
		Payload: body,
		SentAt:  sentAt,
	}, nil
}
