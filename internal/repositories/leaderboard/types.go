package leaderboard

import "github.com/triviarena/triviarena/internal/models"

type GetLeaderboardInput struct {
}

type SaveLeaderboardInput struct {
	Leaderboard *models.Leaderboard
}
