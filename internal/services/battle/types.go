package battle

import (
	"time"

	"github.com/triviarena/triviarena/internal/common/clock"
	"github.com/triviarena/triviarena/internal/common/uuid"
	"github.com/triviarena/triviarena/internal/models"
	battleRepo "github.com/triviarena/triviarena/internal/repositories/battle"
	leaderboardRepo "github.com/triviarena/triviarena/internal/repositories/leaderboard"
	"github.com/triviarena/triviarena/internal/transport"
)

// Scoring constants. The base award is granted only for a correct answer;
// whether the speed bonus also requires correctness is configurable (the
// legacy rule granted it to any answer).
const (
	BaseAward  = 100
	SpeedBonus = 20
)

// Default game tuning
const (
	DefaultQuestionBatchSize = 10
	DefaultQuestionTimeout   = 30 * time.Second
)

// Config holds configuration for the battle service
type Config struct {
	// ShardID identifies this room shard
	ShardID string

	// QuestionBankShard addresses the question-supply shard
	QuestionBankShard string

	// BankrollShard addresses the balance-ledger shard
	BankrollShard string

	// QuestionBatchSize is the batch requested at game start
	QuestionBatchSize int

	// QuestionTimeout bounds each round
	QuestionTimeout time.Duration

	// SpeedBonusAlways restores the legacy rule granting the speed bonus
	// regardless of correctness
	SpeedBonusAlways bool

	// Repository dependencies
	BattleRepo      battleRepo.Repository
	LeaderboardRepo leaderboardRepo.Repository

	// Infrastructure dependencies
	Messenger transport.Messenger
	Clock     clock.Clock
	UUID      uuid.UUID
}

type OpenRoomInput struct {
	// Caller is the authenticated identity opening the room
	Caller string

	RoomName    string
	MaxPlayers  int
	Wager       models.Amount
	Secret      string
	DisplayName string
}

type OpenRoomOutput struct {
	Battle *models.Battle
}

type JoinRoomInput struct {
	// Caller is the authenticated identity joining
	Caller string

	Secret      string
	DisplayName string
}

type JoinRoomOutput struct {
	Battle *models.Battle
}

type StartGameInput struct {
	// Caller must be the room owner
	Caller string
}

type StartGameOutput struct {
	// Pot is the escrowed total after start
	Pot models.Amount
}

type SubmitAnswerInput struct {
	// Caller is the authenticated identity answering
	Caller string

	QuestionIndex int
	ChoiceIndex   int
}

type SubmitAnswerOutput struct {
	// Correct reports whether the choice matched
	Correct bool

	// Points awarded for this answer
	Points uint64

	// TotalScore is the caller's cumulative score after this answer
	TotalScore uint64
}

type TickInput struct {
}

type TickOutput struct {
	// Advanced reports whether the round moved forward
	Advanced bool

	// Settled reports whether the tick ended the game
	Settled bool
}

type GetBattleInput struct {
}

type GetBattleOutput struct {
	Battle *models.Battle
}

type GetLeaderboardInput struct {
}

type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}
