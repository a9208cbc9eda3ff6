package battle

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/triviarena/triviarena/internal/repositories/battle Repository

import (
	"context"

	"github.com/triviarena/triviarena/internal/models"
)

// Repository persists the single battle owned by a room shard
type Repository interface {
	// SaveBattle persists a battle under its room shard
	SaveBattle(ctx context.Context, input *SaveBattleInput) error

	// GetBattle retrieves the battle for a room shard
	GetBattle(ctx context.Context, input *GetBattleInput) (*models.Battle, error)

	// DeleteBattle removes the battle for a room shard
	DeleteBattle(ctx context.Context, input *DeleteBattleInput) error
}
