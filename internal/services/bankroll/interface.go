package bankroll

import (
	"context"

	"github.com/triviarena/triviarena/internal/transport"
)

// Service manages player balances, wager escrow records and pot transfers
type Service interface {
	// Balance reads an owner's balance, auto-claiming the daily bonus when
	// the claim period has elapsed
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	// UpdateBalance applies a balance update under the configured credit
	// policy. Zero amounts are rejected.
	UpdateBalance(ctx context.Context, input *UpdateBalanceInput) (*UpdateBalanceOutput, error)

	// NotifyDebt records an escrow notice and informs the target shard.
	// Zero amounts are rejected.
	NotifyDebt(ctx context.Context, input *NotifyDebtInput) (*NotifyDebtOutput, error)

	// TransferPot logs an outgoing pot transfer and notifies the target
	// shard. Zero amounts are rejected.
	TransferPot(ctx context.Context, input *TransferPotInput) (*TransferPotOutput, error)

	// HandleMessage processes an inbound cross-shard envelope
	HandleMessage(ctx context.Context, env *transport.Envelope) error

	// GetPublicBalances returns the per-shard public balance snapshots
	GetPublicBalances(ctx context.Context, input *GetPublicBalancesInput) (*GetPublicBalancesOutput, error)
}
