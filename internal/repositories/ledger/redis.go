package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/triviarena/triviarena/internal/models"
)

const (
	accountsKey       = "ledger:accounts"
	debtKeyPrefix     = "ledger:debt:"
	nextDebtIDKey     = "ledger:next_debt_id"
	potKeyPrefix      = "ledger:pot:"
	nextPotIDKey      = "ledger:next_pot_id"
	bonusClaimsKey    = "ledger:bonus_claims"
	publicBalancesKey = "ledger:public_balances"
)

// ErrDebtNotFound is returned when a debt record is not found
var ErrDebtNotFound = errors.New("debt record not found")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

// GetBalance retrieves an identity's balance from the accounts hash
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (models.Amount, error) {
	if input == nil || input.Owner == "" {
		return 0, errors.New("input and owner cannot be empty")
	}

	raw, err := r.client.HGet(ctx, accountsKey, input.Owner).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance: %w", err)
	}

	return models.Amount(value), nil
}

// SetBalance stores an identity's balance in the accounts hash
func (r *redisRepository) SetBalance(ctx context.Context, input *SetBalanceInput) error {
	if input == nil || input.Owner == "" {
		return errors.New("input and owner cannot be empty")
	}

	err := r.client.HSet(ctx, accountsKey, input.Owner, strconv.FormatUint(uint64(input.Amount), 10)).Err()
	if err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}

	return nil
}

// NextDebtID allocates the next monotonic debt id
func (r *redisRepository) NextDebtID(ctx context.Context) (uint64, error) {
	id, err := r.client.Incr(ctx, nextDebtIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate debt id: %w", err)
	}

	return uint64(id), nil
}

// SaveDebt persists a debt record
func (r *redisRepository) SaveDebt(ctx context.Context, input *SaveDebtInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal debt record: %w", err)
	}

	if err := r.client.Set(ctx, debtKey(input.Record.ID), recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save debt record: %w", err)
	}

	return nil
}

// GetDebt retrieves a debt record by id
func (r *redisRepository) GetDebt(ctx context.Context, input *GetDebtInput) (*models.DebtRecord, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	recordJSON, err := r.client.Get(ctx, debtKey(input.DebtID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("failed to get debt record: %w", err)
	}

	var record models.DebtRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debt record: %w", err)
	}

	return &record, nil
}

// NextPotID allocates the next monotonic pot id
func (r *redisRepository) NextPotID(ctx context.Context) (uint64, error) {
	id, err := r.client.Incr(ctx, nextPotIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate pot id: %w", err)
	}

	return uint64(id), nil
}

// SavePot persists a pot record
func (r *redisRepository) SavePot(ctx context.Context, input *SavePotInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal pot record: %w", err)
	}

	if err := r.client.Set(ctx, potKey(input.Record.ID), recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save pot record: %w", err)
	}

	return nil
}

// GetLastBonusClaim retrieves when an identity last claimed the daily bonus
func (r *redisRepository) GetLastBonusClaim(ctx context.Context, input *GetLastBonusClaimInput) (*time.Time, error) {
	if input == nil || input.Owner == "" {
		return nil, errors.New("input and owner cannot be empty")
	}

	raw, err := r.client.HGet(ctx, bonusClaimsKey, input.Owner).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bonus claim: %w", err)
	}

	unixNano, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bonus claim: %w", err)
	}

	claimedAt := time.Unix(0, unixNano).UTC()
	return &claimedAt, nil
}

// SetLastBonusClaim stores an identity's last bonus claim time
func (r *redisRepository) SetLastBonusClaim(ctx context.Context, input *SetLastBonusClaimInput) error {
	if input == nil || input.Owner == "" {
		return errors.New("input and owner cannot be empty")
	}

	err := r.client.HSet(ctx, bonusClaimsKey, input.Owner, strconv.FormatInt(input.ClaimedAt.UnixNano(), 10)).Err()
	if err != nil {
		return fmt.Errorf("failed to set bonus claim: %w", err)
	}

	return nil
}

// SetPublicBalance stores a shard's reported public balance
func (r *redisRepository) SetPublicBalance(ctx context.Context, input *SetPublicBalanceInput) error {
	if input == nil || input.ShardID == "" {
		return errors.New("input and shard ID cannot be empty")
	}

	err := r.client.HSet(ctx, publicBalancesKey, input.ShardID, strconv.FormatUint(uint64(input.Amount), 10)).Err()
	if err != nil {
		return fmt.Errorf("failed to set public balance: %w", err)
	}

	return nil
}

// GetPublicBalances retrieves all reported public balances by shard
func (r *redisRepository) GetPublicBalances(ctx context.Context) (map[string]models.Amount, error) {
	raw, err := r.client.HGetAll(ctx, publicBalancesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get public balances: %w", err)
	}

	balances := make(map[string]models.Amount, len(raw))
	for shard, value := range raw {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public balance for %s: %w", shard, err)
		}
		balances[shard] = models.Amount(parsed)
	}

	return balances, nil
}

func debtKey(id uint64) string {
	return fmt.Sprintf("%s%d", debtKeyPrefix, id)
}

func potKey(id uint64) string {
	return fmt.Sprintf("%s%d", potKeyPrefix, id)
}
