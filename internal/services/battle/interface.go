package battle

import (
	"context"

	"github.com/triviarena/triviarena/internal/transport"
)

// Service drives one room shard's battle state machine
type Service interface {
	// OpenRoom creates a battle in the Waiting state and enrolls the owner
	OpenRoom(ctx context.Context, input *OpenRoomInput) (*OpenRoomOutput, error)

	// JoinRoom enrolls a player while the battle is Waiting
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartGame escrows wagers, requests the question batch and moves the
	// battle to InProgress
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitAnswer records a player's answer for the current round
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// Tick re-evaluates the round timeout; rooms only advance inside a
	// handler, so a stalled round needs this external nudge
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// HandleMessage processes an inbound cross-shard envelope
	HandleMessage(ctx context.Context, env *transport.Envelope) error

	// GetBattle returns the current battle for read surfaces
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// GetLeaderboard returns the global standings for read surfaces
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
