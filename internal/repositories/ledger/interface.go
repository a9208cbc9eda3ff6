package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/triviarena/triviarena/internal/repositories/ledger Repository

import (
	"context"
	"time"

	"github.com/triviarena/triviarena/internal/models"
)

// Repository persists the balance-ledger shard's state: per-identity
// balances, the debt and pot logs, daily-bonus claims and per-shard public
// balance snapshots
type Repository interface {
	// GetBalance retrieves an identity's balance; zero if absent
	GetBalance(ctx context.Context, input *GetBalanceInput) (models.Amount, error)

	// SetBalance stores an identity's balance
	SetBalance(ctx context.Context, input *SetBalanceInput) error

	// NextDebtID allocates the next monotonic debt id
	NextDebtID(ctx context.Context) (uint64, error)

	// SaveDebt persists a debt record
	SaveDebt(ctx context.Context, input *SaveDebtInput) error

	// GetDebt retrieves a debt record by id
	GetDebt(ctx context.Context, input *GetDebtInput) (*models.DebtRecord, error)

	// NextPotID allocates the next monotonic pot id
	NextPotID(ctx context.Context) (uint64, error)

	// SavePot persists a pot record
	SavePot(ctx context.Context, input *SavePotInput) error

	// GetLastBonusClaim retrieves when an identity last claimed the daily
	// bonus; nil if never
	GetLastBonusClaim(ctx context.Context, input *GetLastBonusClaimInput) (*time.Time, error)

	// SetLastBonusClaim stores an identity's last bonus claim time
	SetLastBonusClaim(ctx context.Context, input *SetLastBonusClaimInput) error

	// SetPublicBalance stores a shard's reported public balance
	SetPublicBalance(ctx context.Context, input *SetPublicBalanceInput) error

	// GetPublicBalances retrieves all reported public balances by shard
	GetPublicBalances(ctx context.Context) (map[string]models.Amount, error)
}
