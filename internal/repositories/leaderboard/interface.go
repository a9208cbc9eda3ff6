package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/triviarena/triviarena/internal/repositories/leaderboard Repository

import (
	"context"

	"github.com/triviarena/triviarena/internal/models"
)

// Repository persists the global leaderboard
type Repository interface {
	// GetLeaderboard retrieves the global standings; an empty leaderboard is
	// returned when none has been stored yet
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)

	// SaveLeaderboard persists the global standings
	SaveLeaderboard(ctx context.Context, input *SaveLeaderboardInput) error
}
