package bankroll

import (
	"time"

	"github.com/triviarena/triviarena/internal/common/clock"
	"github.com/triviarena/triviarena/internal/common/uuid"
	"github.com/triviarena/triviarena/internal/models"
	ledgerRepo "github.com/triviarena/triviarena/internal/repositories/ledger"
	"github.com/triviarena/triviarena/internal/transport"
)

// CreditPolicy picks the semantics of a balance update.
type CreditPolicy string

const (
	// CreditPolicyAdditive adds the amount to the existing balance
	CreditPolicyAdditive CreditPolicy = "additive"

	// CreditPolicyOverwrite replaces the balance with the amount
	CreditPolicyOverwrite CreditPolicy = "overwrite"
)

// Default bonus tuning
const (
	DefaultDailyBonus  = models.Amount(100)
	DefaultBonusPeriod = 24 * time.Hour
)

// Config holds configuration for the balance ledger service
type Config struct {
	// ShardID identifies this balance-ledger shard
	ShardID string

	// CreditPolicy governs UpdateBalance; defaults to additive
	CreditPolicy CreditPolicy

	// DailyBonus is the amount auto-claimed on a Balance read; zero
	// disables the bonus
	DailyBonus models.Amount

	// BonusPeriod is the minimum time between bonus claims
	BonusPeriod time.Duration

	// Repository dependencies
	LedgerRepo ledgerRepo.Repository

	// Infrastructure dependencies
	Messenger transport.Messenger
	Clock     clock.Clock
	UUID      uuid.UUID
}

type BalanceInput struct {
	// Owner is the identity being read
	Owner string
}

type BalanceOutput struct {
	// Balance is the owner's balance after any bonus claim
	Balance models.Amount

	// BonusClaimed reports whether this read claimed the daily bonus
	BonusClaimed bool
}

type UpdateBalanceInput struct {
	Owner  string
	Amount models.Amount
}

type UpdateBalanceOutput struct {
	// Balance is the owner's balance after the update
	Balance models.Amount
}

type NotifyDebtInput struct {
	// Debtor is the identity the funds are expected from
	Debtor string

	// Amount is the wager being escrowed
	Amount models.Amount

	// TargetShard is the room shard the escrow is reserved for
	TargetShard string
}

type NotifyDebtOutput struct {
	// DebtID is the id assigned to the new record
	DebtID uint64
}

type TransferPotInput struct {
	// Amount is the pot being transferred
	Amount models.Amount

	// TargetShard is the destination shard
	TargetShard string
}

type TransferPotOutput struct {
	// PotID is the id assigned to the transfer record
	PotID uint64
}

type GetPublicBalancesInput struct {
}

type GetPublicBalancesOutput struct {
	// Balances maps shard id to its last reported public balance
	Balances map[string]models.Amount
}
