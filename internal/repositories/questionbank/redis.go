package questionbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/triviarena/triviarena/internal/models"
)

// Each register of the root state maps to its own key, so the catalog blob
// is not rewritten when only a counter moves.
const (
	catalogKey    = "qbank:catalog"
	nextIDKey     = "qbank:next_question_id"
	requestSeqKey = "qbank:request_seq"
	treasuryKey   = "qbank:treasury"
	adminKey      = "qbank:admin"
)

// Config holds configuration for the Redis question-bank repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed question-bank repository
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

// GetState retrieves the question-bank state from Redis
func (r *redisRepository) GetState(ctx context.Context, _ *GetStateInput) (*models.QuestionBankState, error) {
	values, err := r.client.MGet(ctx, catalogKey, nextIDKey, requestSeqKey, treasuryKey, adminKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get question bank state: %w", err)
	}

	state := &models.QuestionBankState{}

	if raw, ok := values[0].(string); ok {
		if err := json.Unmarshal([]byte(raw), &state.Catalog); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
		}
	}

	if state.NextQuestionID, err = parseCounter(values[1]); err != nil {
		return nil, fmt.Errorf("failed to parse next question id: %w", err)
	}

	if state.RequestSeq, err = parseCounter(values[2]); err != nil {
		return nil, fmt.Errorf("failed to parse request seq: %w", err)
	}

	treasury, err := parseCounter(values[3])
	if err != nil {
		return nil, fmt.Errorf("failed to parse treasury: %w", err)
	}
	state.Treasury = models.Amount(treasury)

	if admin, ok := values[4].(string); ok {
		state.Admin = admin
	}

	return state, nil
}

// SaveState persists the question-bank state to Redis
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	catalogJSON, err := json.Marshal(input.State.Catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, catalogKey, catalogJSON, 0)
	pipe.Set(ctx, nextIDKey, strconv.FormatUint(input.State.NextQuestionID, 10), 0)
	pipe.Set(ctx, requestSeqKey, strconv.FormatUint(input.State.RequestSeq, 10), 0)
	pipe.Set(ctx, treasuryKey, strconv.FormatUint(uint64(input.State.Treasury), 10), 0)
	pipe.Set(ctx, adminKey, input.State.Admin, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save question bank state: %w", err)
	}

	return nil
}

func parseCounter(v any) (uint64, error) {
	raw, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
