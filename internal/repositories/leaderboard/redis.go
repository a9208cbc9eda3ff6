package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/triviarena/triviarena/internal/models"
)

const leaderboardKey = "leaderboard:global"

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetLeaderboard retrieves the global standings from Redis. The stored value
// is the full ordered entry list; order is owned by the settlement step, not
// by this repository.
func (r *redisRepository) GetLeaderboard(ctx context.Context, _ *GetLeaderboardInput) (*models.Leaderboard, error) {
	boardJSON, err := r.client.Get(ctx, leaderboardKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.Leaderboard{}, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var board models.Leaderboard
	if err := json.Unmarshal([]byte(boardJSON), &board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return &board, nil
}

// SaveLeaderboard persists the global standings to Redis
func (r *redisRepository) SaveLeaderboard(ctx context.Context, input *SaveLeaderboardInput) error {
	if input == nil || input.Leaderboard == nil {
		return errors.New("input and leaderboard cannot be nil")
	}

	boardJSON, err := json.Marshal(input.Leaderboard)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := r.client.Set(ctx, leaderboardKey, boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}
