package models

import (
	"time"
)

// BattleStatus represents the lifecycle state of a battle
type BattleStatus string

const (
	// BattleStatusWaiting indicates a battle is accepting joins
	BattleStatusWaiting BattleStatus = "waiting"

	// BattleStatusInProgress indicates question rounds are running
	BattleStatusInProgress BattleStatus = "in_progress"

	// BattleStatusFinished indicates the battle has been settled; terminal
	BattleStatusFinished BattleStatus = "finished"
)

// Battle represents one room's trivia game instance
type Battle struct {
	// RoomName is the human-readable name of the room
	RoomName string

	// Owner is the identity of the player who opened the room
	Owner string

	// MaxPlayers is the roster capacity
	MaxPlayers int

	// Wager is the per-player stake collected at game start
	Wager Amount

	// Secret is the optional join secret; empty means the room is open
	Secret string

	// Players is the ordered roster; join order is preserved and used for
	// deterministic tie-breaking at settlement
	Players []*PlayerInBattle

	// QuestionIDs is the ordered id sequence of the active batch
	QuestionIDs []uint64

	// Questions holds the full records for the active batch
	Questions []*Question

	// CurrentQuestionIndex is the round currently open; never decreases
	CurrentQuestionIndex int

	// RoundStartedAt is when the current round opened
	RoundStartedAt *time.Time

	// QuestionTimeout bounds each round
	QuestionTimeout time.Duration

	// Pot is the accumulated stake, reset to zero at settlement
	Pot Amount

	// Status is the lifecycle state
	Status BattleStatus

	// StartedAt is when the game left the Waiting state
	StartedAt *time.Time

	// PendingSupplyID is the correlation id of the in-flight question-supply
	// request; empty when none is outstanding. At most one request is ever
	// in flight per room.
	PendingSupplyID string

	// CreatedAt is when the room was opened
	CreatedAt time.Time

	// UpdatedAt is when the battle was last mutated
	UpdatedAt time.Time
}

// PlayerInBattle represents a player's participation in a battle
type PlayerInBattle struct {
	// Owner is the player's identity
	Owner string

	// Name is the display name chosen at join time
	Name string

	// Score is the cumulative score in this battle
	Score uint64

	// HasAnsweredCurrent reports whether the player answered the open round
	HasAnsweredCurrent bool

	// LastAnswerAt is when the player last submitted an answer
	LastAnswerAt *time.Time
}

// FindPlayer returns the roster entry for the given identity, or nil.
func (b *Battle) FindPlayer(owner string) *PlayerInBattle {
	for _, p := range b.Players {
		if p.Owner == owner {
			return p
		}
	}
	return nil
}

// AllAnswered reports whether every enrolled player answered the open round.
func (b *Battle) AllAnswered() bool {
	for _, p := range b.Players {
		if !p.HasAnsweredCurrent {
			return false
		}
	}
	return len(b.Players) > 0
}

// ClearAnswers resets every player's answered flag for a new round.
func (b *Battle) ClearAnswers() {
	for _, p := range b.Players {
		p.HasAnsweredCurrent = false
		p.LastAnswerAt = nil
	}
}

// Live reports whether the battle still occupies the room shard. A finished
// battle can be replaced by a new OpenRoom.
func (b *Battle) Live() bool {
	return b.Status == BattleStatusWaiting || b.Status == BattleStatusInProgress
}
