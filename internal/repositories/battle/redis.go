package battle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/triviarena/triviarena/internal/models"
)

const (
	battleKeyPrefix = "battle:"
	liveRoomsKey    = "live_rooms"
)

// ErrBattleNotFound is returned when a room shard has no battle
var ErrBattleNotFound = errors.New("battle not found")

// Config holds configuration for the Redis battle repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed battle repository
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

// SaveBattle persists a battle to Redis and maintains the live-rooms index
func (r *redisRepository) SaveBattle(ctx context.Context, input *SaveBattleInput) error {
	if input == nil || input.Battle == nil {
		return errors.New("input and battle cannot be nil")
	}

	if input.ShardID == "" {
		return errors.New("shard ID cannot be empty")
	}

	battleJSON, err := json.Marshal(input.Battle)
	if err != nil {
		return fmt.Errorf("failed to marshal battle: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, battleKey(input.ShardID), battleJSON, 0)

	if input.Battle.Live() {
		pipe.SAdd(ctx, liveRoomsKey, input.ShardID)
	} else {
		pipe.SRem(ctx, liveRoomsKey, input.ShardID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save battle: %w", err)
	}

	return nil
}

// GetBattle retrieves a battle by room shard from Redis
func (r *redisRepository) GetBattle(ctx context.Context, input *GetBattleInput) (*models.Battle, error) {
	if input == nil || input.ShardID == "" {
		return nil, errors.New("input and shard ID cannot be empty")
	}

	battleJSON, err := r.client.Get(ctx, battleKey(input.ShardID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}

	var battle models.Battle
	if err := json.Unmarshal([]byte(battleJSON), &battle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal battle: %w", err)
	}

	return &battle, nil
}

// DeleteBattle removes a battle from Redis
func (r *redisRepository) DeleteBattle(ctx context.Context, input *DeleteBattleInput) error {
	if input == nil || input.ShardID == "" {
		return errors.New("input and shard ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, battleKey(input.ShardID))
	pipe.SRem(ctx, liveRoomsKey, input.ShardID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete battle: %w", err)
	}

	return nil
}

func battleKey(shardID string) string {
	return fmt.Sprintf("%s%s", battleKeyPrefix, shardID)
}
