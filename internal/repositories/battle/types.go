package battle

import "github.com/triviarena/triviarena/internal/models"

type SaveBattleInput struct {
	// ShardID is the room shard owning the battle
	ShardID string

	Battle *models.Battle
}

type GetBattleInput struct {
	ShardID string
}

type DeleteBattleInput struct {
	ShardID string
}
