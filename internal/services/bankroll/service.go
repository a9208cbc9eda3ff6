package bankroll

import (
	"context"
	"log/slog"

	"github.com/triviarena/triviarena/internal/models"
	ledgerRepo "github.com/triviarena/triviarena/internal/repositories/ledger"
	"github.com/triviarena/triviarena/internal/transport"
)

// service implements the Service interface
type service struct {
	config     *Config
	ledgerRepo ledgerRepo.Repository
	messenger  transport.Messenger
}

// New creates a new balance ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	if cfg.ShardID == "" {
		return nil, ErrMissingShardID
	}

	switch cfg.CreditPolicy {
	case "":
		cfg.CreditPolicy = CreditPolicyAdditive
	case CreditPolicyAdditive, CreditPolicyOverwrite:
	default:
		return nil, ErrUnknownCreditPolicy
	}

	if cfg.BonusPeriod <= 0 {
		cfg.BonusPeriod = DefaultBonusPeriod
	}

	return &service{
		config:     cfg,
		ledgerRepo: cfg.LedgerRepo,
		messenger:  cfg.Messenger,
	}, nil
}

// Balance reads the owner's balance, claiming the daily bonus when due
func (s *service) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil || input.Owner == "" {
		return nil, ErrInvalidInput
	}

	balance, err := s.ledgerRepo.GetBalance(ctx, &ledgerRepo.GetBalanceInput{Owner: input.Owner})
	if err != nil {
		return nil, err
	}

	if s.config.DailyBonus.IsZero() {
		return &BalanceOutput{Balance: balance}, nil
	}

	lastClaim, err := s.ledgerRepo.GetLastBonusClaim(ctx, &ledgerRepo.GetLastBonusClaimInput{Owner: input.Owner})
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	if lastClaim != nil && now.Sub(*lastClaim) < s.config.BonusPeriod {
		return &BalanceOutput{Balance: balance}, nil
	}

	balance = balance.SaturatingAdd(s.config.DailyBonus)

	err = s.ledgerRepo.SetBalance(ctx, &ledgerRepo.SetBalanceInput{
		Owner:  input.Owner,
		Amount: balance,
	})
	if err != nil {
		return nil, err
	}

	err = s.ledgerRepo.SetLastBonusClaim(ctx, &ledgerRepo.SetLastBonusClaimInput{
		Owner:     input.Owner,
		ClaimedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{Balance: balance, BonusClaimed: true}, nil
}

// UpdateBalance applies a credit under the configured policy
func (s *service) UpdateBalance(ctx context.Context, input *UpdateBalanceInput) (*UpdateBalanceOutput, error) {
	if input == nil || input.Owner == "" {
		return nil, ErrInvalidInput
	}

	if input.Amount.IsZero() {
		return nil, ErrZeroAmount
	}

	balance := input.Amount
	if s.config.CreditPolicy == CreditPolicyAdditive {
		current, err := s.ledgerRepo.GetBalance(ctx, &ledgerRepo.GetBalanceInput{Owner: input.Owner})
		if err != nil {
			return nil, err
		}
		balance = current.SaturatingAdd(input.Amount)
	}

	err := s.ledgerRepo.SetBalance(ctx, &ledgerRepo.SetBalanceInput{
		Owner:  input.Owner,
		Amount: balance,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateBalanceOutput{Balance: balance}, nil
}

// NotifyDebt records a pending escrow entry and informs the target shard
func (s *service) NotifyDebt(ctx context.Context, input *NotifyDebtInput) (*NotifyDebtOutput, error) {
	if input == nil || input.Debtor == "" || input.TargetShard == "" {
		return nil, ErrInvalidInput
	}

	if input.Amount.IsZero() {
		return nil, ErrZeroAmount
	}

	id, err := s.ledgerRepo.NextDebtID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	record := &models.DebtRecord{
		ID:          id,
		Debtor:      input.Debtor,
		Amount:      input.Amount,
		TargetShard: input.TargetShard,
		Status:      models.DebtStatusPending,
		CreatedAt:   now,
	}

	err = s.ledgerRepo.SaveDebt(ctx, &ledgerRepo.SaveDebtInput{Record: record})
	if err != nil {
		return nil, err
	}

	s.send(ctx, input.TargetShard, transport.KindDebtNotif, &transport.DebtNotif{
		DebtID:    id,
		Amount:    input.Amount,
		CreatedAt: now,
	})

	return &NotifyDebtOutput{DebtID: id}, nil
}

// TransferPot logs an outgoing pot and delivers it to the target shard
func (s *service) TransferPot(ctx context.Context, input *TransferPotInput) (*TransferPotOutput, error) {
	if input == nil || input.TargetShard == "" {
		return nil, ErrInvalidInput
	}

	if input.Amount.IsZero() {
		return nil, ErrZeroAmount
	}

	id, err := s.ledgerRepo.NextPotID(ctx)
	if err != nil {
		return nil, err
	}

	record := &models.PotRecord{
		ID:          id,
		Amount:      input.Amount,
		TargetShard: input.TargetShard,
		CreatedAt:   s.config.Clock.Now(),
	}

	err = s.ledgerRepo.SavePot(ctx, &ledgerRepo.SavePotInput{Record: record})
	if err != nil {
		return nil, err
	}

	s.send(ctx, input.TargetShard, transport.KindTokenPot, &transport.TokenPot{
		Amount: input.Amount,
	})

	return &TransferPotOutput{PotID: id}, nil
}

// HandleMessage processes an inbound cross-shard envelope
func (s *service) HandleMessage(ctx context.Context, env *transport.Envelope) error {
	switch env.Kind {
	case transport.KindNotifyDebt:
		return s.handleNotifyDebt(ctx, env)
	case transport.KindUpdateBalance:
		return s.handleUpdateBalance(ctx, env)
	case transport.KindDebtNotif:
		return s.handleDebtNotif(ctx, env)
	case transport.KindDebtPaid:
		return s.handleDebtPaid(ctx, env)
	case transport.KindTokenPot:
		return s.handleTokenPot(ctx, env)
	case transport.KindTokenUpdate:
		return s.handleTokenUpdate(ctx, env)
	default:
		return ErrUnexpectedMessage
	}
}

func (s *service) handleNotifyDebt(ctx context.Context, env *transport.Envelope) error {
	var notify transport.NotifyDebt
	if err := env.Decode(&notify); err != nil {
		return err
	}

	_, err := s.NotifyDebt(ctx, &NotifyDebtInput{
		Debtor:      notify.Debtor,
		Amount:      notify.Amount,
		TargetShard: notify.TargetShard,
	})
	return err
}

func (s *service) handleUpdateBalance(ctx context.Context, env *transport.Envelope) error {
	var update transport.UpdateBalance
	if err := env.Decode(&update); err != nil {
		return err
	}

	_, err := s.UpdateBalance(ctx, &UpdateBalanceInput{
		Owner:  update.Owner,
		Amount: update.Amount,
	})
	return err
}

// handleDebtNotif records an escrow notice sent to this shard by another
// ledger. The record keeps the originating shard's debt id.
func (s *service) handleDebtNotif(ctx context.Context, env *transport.Envelope) error {
	var notif transport.DebtNotif
	if err := env.Decode(&notif); err != nil {
		return err
	}

	return s.ledgerRepo.SaveDebt(ctx, &ledgerRepo.SaveDebtInput{
		Record: &models.DebtRecord{
			ID:          notif.DebtID,
			Debtor:      env.Source,
			Amount:      notif.Amount,
			TargetShard: s.config.ShardID,
			Status:      models.DebtStatusPending,
			CreatedAt:   notif.CreatedAt,
		},
	})
}

func (s *service) handleDebtPaid(ctx context.Context, env *transport.Envelope) error {
	var paid transport.DebtPaid
	if err := env.Decode(&paid); err != nil {
		return err
	}

	record, err := s.ledgerRepo.GetDebt(ctx, &ledgerRepo.GetDebtInput{DebtID: paid.DebtID})
	if err != nil {
		return err
	}

	paidAt := paid.PaidAt
	if paidAt.IsZero() {
		paidAt = s.config.Clock.Now()
	}

	record.Status = models.DebtStatusPaid
	record.PaidAt = &paidAt

	return s.ledgerRepo.SaveDebt(ctx, &ledgerRepo.SaveDebtInput{Record: record})
}

func (s *service) handleTokenPot(ctx context.Context, env *transport.Envelope) error {
	var pot transport.TokenPot
	if err := env.Decode(&pot); err != nil {
		return err
	}

	id, err := s.ledgerRepo.NextPotID(ctx)
	if err != nil {
		return err
	}

	return s.ledgerRepo.SavePot(ctx, &ledgerRepo.SavePotInput{
		Record: &models.PotRecord{
			ID:          id,
			Amount:      pot.Amount,
			TargetShard: s.config.ShardID,
			CreatedAt:   s.config.Clock.Now(),
		},
	})
}

func (s *service) handleTokenUpdate(ctx context.Context, env *transport.Envelope) error {
	var update transport.TokenUpdate
	if err := env.Decode(&update); err != nil {
		return err
	}

	return s.ledgerRepo.SetPublicBalance(ctx, &ledgerRepo.SetPublicBalanceInput{
		ShardID: env.Source,
		Amount:  update.Amount,
	})
}

// GetPublicBalances returns the per-shard public balance snapshots
func (s *service) GetPublicBalances(ctx context.Context, _ *GetPublicBalancesInput) (*GetPublicBalancesOutput, error) {
	balances, err := s.ledgerRepo.GetPublicBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &GetPublicBalancesOutput{Balances: balances}, nil
}

func (s *service) send(ctx context.Context, target string, kind transport.Kind, payload any) {
	env, err := transport.NewEnvelope(s.config.UUID.NewUUID(), s.config.ShardID, target, kind, payload, s.config.Clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "bankroll: build envelope failed", "kind", kind, "error", err)
		return
	}

	if err := s.messenger.Send(ctx, env); err != nil {
		slog.ErrorContext(ctx, "bankroll: send failed",
			"kind", kind,
			"target", target,
			"error", err,
		)
	}
}
