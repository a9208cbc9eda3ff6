package transport

import (
	"time"

	"github.com/triviarena/triviarena/internal/models"
)

// RequestQuestions asks the question bank for a batch of questions.
type RequestQuestions struct {
	Count int `json:"count"`
}

// ReceiveQuestions delivers a question batch to the requesting room.
type ReceiveQuestions struct {
	QuestionIDs []uint64           `json:"question_ids"`
	Questions   []*models.Question `json:"questions"`
}

// SendProtocolFee moves a settlement fee into the question bank treasury.
type SendProtocolFee struct {
	Amount models.Amount `json:"amount"`
}

// NotifyDebt tells the balance ledger to reserve a wager against a player.
type NotifyDebt struct {
	Debtor      string        `json:"debtor"`
	Amount      models.Amount `json:"amount"`
	TargetShard string        `json:"target_shard"`
}

// UpdateBalance instructs the balance ledger to credit the winner.
type UpdateBalance struct {
	Owner  string        `json:"owner"`
	Amount models.Amount `json:"amount"`
}

// DebtNotif informs a target shard that a debt was recorded for it.
type DebtNotif struct {
	DebtID    uint64        `json:"debt_id"`
	Amount    models.Amount `json:"amount"`
	CreatedAt time.Time     `json:"created_at"`
}

// DebtPaid confirms a recorded debt was paid.
type DebtPaid struct {
	DebtID uint64        `json:"debt_id"`
	Amount models.Amount `json:"amount"`
	PaidAt time.Time     `json:"paid_at"`
}

// TokenPot delivers a pot transfer to a target shard.
type TokenPot struct {
	Amount models.Amount `json:"amount"`
}

// TokenUpdate reports a shard's public balance snapshot.
type TokenUpdate struct {
	Amount models.Amount `json:"amount"`
}

// RoomEventType labels room announcements.
type RoomEventType string

const (
	RoomEventPlayerJoined RoomEventType = "player_joined"
	RoomEventGameStarted  RoomEventType = "game_started"
	RoomEventNextQuestion RoomEventType = "next_question"
	RoomEventGameEnded    RoomEventType = "game_ended"
)

// RoomEvent announces battle progress to room watchers.
type RoomEvent struct {
	Type RoomEventType `json:"type"`

	// Player and Name are set for player_joined
	Player string `json:"player,omitempty"`
	Name   string `json:"name,omitempty"`

	// QuestionIDs is set for game_started
	QuestionIDs []uint64 `json:"question_ids,omitempty"`

	// QuestionIndex and QuestionID are set for next_question
	QuestionIndex int    `json:"question_index,omitempty"`
	QuestionID    uint64 `json:"question_id,omitempty"`

	// Winner and Payout are set for game_ended
	Winner string        `json:"winner,omitempty"`
	Payout models.Amount `json:"payout,omitempty"`
}
