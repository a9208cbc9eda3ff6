package bankroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	clockMocks "github.com/triviarena/triviarena/internal/common/clock/mocks"
	uuidMocks "github.com/triviarena/triviarena/internal/common/uuid/mocks"
	"github.com/triviarena/triviarena/internal/models"
	ledgerRepo "github.com/triviarena/triviarena/internal/repositories/ledger"
	ledgerMocks "github.com/triviarena/triviarena/internal/repositories/ledger/mocks"
	"github.com/triviarena/triviarena/internal/transport"
	transportMocks "github.com/triviarena/triviarena/internal/transport/mocks"
	"go.uber.org/mock/gomock"
)

type BankrollServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockLedgerRepo *ledgerMocks.MockRepository
	mockMessenger  *transportMocks.MockMessenger
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	service        Service
	ctx            context.Context

	testTime  time.Time
	testOwner string
}

func (s *BankrollServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockMessenger = transportMocks.NewMockMessenger(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testOwner = "alice-owner"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("generated-id").AnyTimes()

	s.service = s.newService(&Config{
		ShardID:    "bankroll",
		DailyBonus: 100,
	})
}

func (s *BankrollServiceTestSuite) newService(cfg *Config) Service {
	cfg.LedgerRepo = s.mockLedgerRepo
	cfg.Messenger = s.mockMessenger
	cfg.Clock = s.mockClock
	cfg.UUID = s.mockUUID

	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *BankrollServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBankrollServiceSuite(t *testing.T) {
	suite.Run(t, new(BankrollServiceTestSuite))
}

func (s *BankrollServiceTestSuite) TestNew_UnknownPolicy() {
	_, err := New(&Config{
		ShardID:      "bankroll",
		CreditPolicy: "sideways",
		LedgerRepo:   s.mockLedgerRepo,
		Messenger:    s.mockMessenger,
		Clock:        s.mockClock,
		UUID:         s.mockUUID,
	})

	s.Equal(ErrUnknownCreditPolicy, err)
}

func (s *BankrollServiceTestSuite) TestBalance_ClaimsBonusFirstRead() {
	s.mockLedgerRepo.EXPECT().
		GetBalance(s.ctx, &ledgerRepo.GetBalanceInput{Owner: s.testOwner}).
		Return(models.Amount(0), nil)
	s.mockLedgerRepo.EXPECT().
		GetLastBonusClaim(s.ctx, &ledgerRepo.GetLastBonusClaimInput{Owner: s.testOwner}).
		Return(nil, nil)
	s.mockLedgerRepo.EXPECT().
		SetBalance(s.ctx, &ledgerRepo.SetBalanceInput{Owner: s.testOwner, Amount: 100}).
		Return(nil)
	s.mockLedgerRepo.EXPECT().
		SetLastBonusClaim(s.ctx, &ledgerRepo.SetLastBonusClaimInput{Owner: s.testOwner, ClaimedAt: s.testTime}).
		Return(nil)

	output, err := s.service.Balance(s.ctx, &BalanceInput{Owner: s.testOwner})

	s.Require().NoError(err)
	s.True(output.BonusClaimed)
	s.Equal(models.Amount(100), output.Balance)
}

func (s *BankrollServiceTestSuite) TestBalance_BonusNotDueYet() {
	recent := s.testTime.Add(-time.Hour)
	s.mockLedgerRepo.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(models.Amount(250), nil)
	s.mockLedgerRepo.EXPECT().
		GetLastBonusClaim(s.ctx, gomock.Any()).
		Return(&recent, nil)

	output, err := s.service.Balance(s.ctx, &BalanceInput{Owner: s.testOwner})

	s.Require().NoError(err)
	s.False(output.BonusClaimed)
	s.Equal(models.Amount(250), output.Balance)
}

func (s *BankrollServiceTestSuite) TestBalance_BonusDueAfterPeriod() {
	stale := s.testTime.Add(-25 * time.Hour)
	s.mockLedgerRepo.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(models.Amount(250), nil)
	s.mockLedgerRepo.EXPECT().
		GetLastBonusClaim(s.ctx, gomock.Any()).
		Return(&stale, nil)
	s.mockLedgerRepo.EXPECT().
		SetBalance(s.ctx, &ledgerRepo.SetBalanceInput{Owner: s.testOwner, Amount: 350}).
		Return(nil)
	s.mockLedgerRepo.EXPECT().
		SetLastBonusClaim(s.ctx, gomock.Any()).
		Return(nil)

	output, err := s.service.Balance(s.ctx, &BalanceInput{Owner: s.testOwner})

	s.Require().NoError(err)
	s.True(output.BonusClaimed)
	s.Equal(models.Amount(350), output.Balance)
}

func (s *BankrollServiceTestSuite) TestBalance_BonusDisabled() {
	svc := s.newService(&Config{ShardID: "bankroll"})

	s.mockLedgerRepo.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(models.Amount(5), nil)

	output, err := svc.Balance(s.ctx, &BalanceInput{Owner: s.testOwner})

	s.Require().NoError(err)
	s.False(output.BonusClaimed)
	s.Equal(models.Amount(5), output.Balance)
}

func (s *BankrollServiceTestSuite) TestUpdateBalance_Additive() {
	s.mockLedgerRepo.EXPECT().
		GetBalance(s.ctx, &ledgerRepo.GetBalanceInput{Owner: s.testOwner}).
		Return(models.Amount(50), nil)
	s.mockLedgerRepo.EXPECT().
		SetBalance(s.ctx, &ledgerRepo.SetBalanceInput{Owner: s.testOwner, Amount: 477}).
		Return(nil)

	output, err := s.service.UpdateBalance(s.ctx, &UpdateBalanceInput{
		Owner:  s.testOwner,
		Amount: 427,
	})

	s.Require().NoError(err)
	s.Equal(models.Amount(477), output.Balance)
}

func (s *BankrollServiceTestSuite) TestUpdateBalance_Overwrite() {
	svc := s.newService(&Config{
		ShardID:      "bankroll",
		CreditPolicy: CreditPolicyOverwrite,
	})

	s.mockLedgerRepo.EXPECT().
		SetBalance(s.ctx, &ledgerRepo.SetBalanceInput{Owner: s.testOwner, Amount: 427}).
		Return(nil)

	output, err := svc.UpdateBalance(s.ctx, &UpdateBalanceInput{
		Owner:  s.testOwner,
		Amount: 427,
	})

	s.Require().NoError(err)
	s.Equal(models.Amount(427), output.Balance)
}

func (s *BankrollServiceTestSuite) TestUpdateBalance_ZeroRejected() {
	_, err := s.service.UpdateBalance(s.ctx, &UpdateBalanceInput{
		Owner:  s.testOwner,
		Amount: 0,
	})

	s.Equal(ErrZeroAmount, err)
}

func (s *BankrollServiceTestSuite) TestNotifyDebt_Success() {
	s.mockLedgerRepo.EXPECT().NextDebtID(s.ctx).Return(uint64(7), nil)

	var savedRecord *models.DebtRecord
	s.mockLedgerRepo.EXPECT().
		SaveDebt(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveDebtInput) error {
			savedRecord = input.Record
			return nil
		})

	var notif transport.DebtNotif
	s.mockMessenger.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, env *transport.Envelope) error {
			s.Equal(transport.KindDebtNotif, env.Kind)
			s.Equal("room-1", env.Target)
			return env.Decode(&notif)
		})

	output, err := s.service.NotifyDebt(s.ctx, &NotifyDebtInput{
		Debtor:      s.testOwner,
		Amount:      100,
		TargetShard: "room-1",
	})

	s.Require().NoError(err)
	s.Equal(uint64(7), output.DebtID)
	s.Equal(models.DebtStatusPending, savedRecord.Status)
	s.Equal(s.testOwner, savedRecord.Debtor)
	s.Equal(uint64(7), notif.DebtID)
	s.Equal(models.Amount(100), notif.Amount)
}

func (s *BankrollServiceTestSuite) TestNotifyDebt_ZeroRejected() {
	_, err := s.service.NotifyDebt(s.ctx, &NotifyDebtInput{
		Debtor:      s.testOwner,
		Amount:      0,
		TargetShard: "room-1",
	})

	s.Equal(ErrZeroAmount, err)
}

func (s *BankrollServiceTestSuite) TestTransferPot_Success() {
	s.mockLedgerRepo.EXPECT().NextPotID(s.ctx).Return(uint64(3), nil)
	s.mockLedgerRepo.EXPECT().
		SavePot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SavePotInput) error {
			s.Equal(models.Amount(500), input.Record.Amount)
			s.Equal("room-1", input.Record.TargetShard)
			return nil
		})
	s.mockMessenger.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, env *transport.Envelope) error {
			s.Equal(transport.KindTokenPot, env.Kind)
			return nil
		})

	output, err := s.service.TransferPot(s.ctx, &TransferPotInput{
		Amount:      500,
		TargetShard: "room-1",
	})

	s.Require().NoError(err)
	s.Equal(uint64(3), output.PotID)
}

func (s *BankrollServiceTestSuite) TestTransferPot_ZeroRejected() {
	_, err := s.service.TransferPot(s.ctx, &TransferPotInput{
		Amount:      0,
		TargetShard: "room-1",
	})

	s.Equal(ErrZeroAmount, err)
}

func (s *BankrollServiceTestSuite) envelope(kind transport.Kind, payload any) *transport.Envelope {
	env, err := transport.NewEnvelope("env-1", "room-1", "bankroll", kind, payload, s.testTime)
	s.Require().NoError(err)
	return env
}

func (s *BankrollServiceTestSuite) TestHandleMessage_NotifyDebt() {
	s.mockLedgerRepo.EXPECT().NextDebtID(s.ctx).Return(uint64(1), nil)
	s.mockLedgerRepo.EXPECT().SaveDebt(s.ctx, gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().Send(s.ctx, gomock.Any()).Return(nil)

	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindNotifyDebt, &transport.NotifyDebt{
		Debtor:      s.testOwner,
		Amount:      100,
		TargetShard: "room-1",
	}))

	s.NoError(err)
}

func (s *BankrollServiceTestSuite) TestHandleMessage_UpdateBalance() {
	s.mockLedgerRepo.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(models.Amount(10), nil)
	s.mockLedgerRepo.EXPECT().
		SetBalance(s.ctx, &ledgerRepo.SetBalanceInput{Owner: s.testOwner, Amount: 200}).
		Return(nil)

	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindUpdateBalance, &transport.UpdateBalance{
		Owner:  s.testOwner,
		Amount: 190,
	}))

	s.NoError(err)
}

func (s *BankrollServiceTestSuite) TestHandleMessage_DebtPaid() {
	record := &models.DebtRecord{
		ID:     7,
		Debtor: s.testOwner,
		Amount: 100,
		Status: models.DebtStatusPending,
	}
	s.mockLedgerRepo.EXPECT().
		GetDebt(s.ctx, &ledgerRepo.GetDebtInput{DebtID: 7}).
		Return(record, nil)

	var saved *models.DebtRecord
	s.mockLedgerRepo.EXPECT().
		SaveDebt(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveDebtInput) error {
			saved = input.Record
			return nil
		})

	paidAt := s.testTime.Add(time.Minute)
	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindDebtPaid, &transport.DebtPaid{
		DebtID: 7,
		Amount: 100,
		PaidAt: paidAt,
	}))

	s.Require().NoError(err)
	s.Equal(models.DebtStatusPaid, saved.Status)
	s.Require().NotNil(saved.PaidAt)
	s.True(saved.PaidAt.Equal(paidAt))
}

func (s *BankrollServiceTestSuite) TestHandleMessage_DebtNotifRecorded() {
	var saved *models.DebtRecord
	s.mockLedgerRepo.EXPECT().
		SaveDebt(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveDebtInput) error {
			saved = input.Record
			return nil
		})

	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindDebtNotif, &transport.DebtNotif{
		DebtID:    42,
		Amount:    100,
		CreatedAt: s.testTime,
	}))

	s.Require().NoError(err)
	s.Equal(uint64(42), saved.ID)
	s.Equal("room-1", saved.Debtor)
	s.Equal(models.DebtStatusPending, saved.Status)
}

func (s *BankrollServiceTestSuite) TestHandleMessage_TokenPotLogged() {
	s.mockLedgerRepo.EXPECT().NextPotID(s.ctx).Return(uint64(9), nil)
	s.mockLedgerRepo.EXPECT().
		SavePot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SavePotInput) error {
			s.Equal(uint64(9), input.Record.ID)
			s.Equal(models.Amount(300), input.Record.Amount)
			return nil
		})

	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindTokenPot, &transport.TokenPot{
		Amount: 300,
	}))

	s.NoError(err)
}

func (s *BankrollServiceTestSuite) TestHandleMessage_TokenUpdate() {
	s.mockLedgerRepo.EXPECT().
		SetPublicBalance(s.ctx, &ledgerRepo.SetPublicBalanceInput{ShardID: "room-1", Amount: 1234}).
		Return(nil)

	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindTokenUpdate, &transport.TokenUpdate{
		Amount: 1234,
	}))

	s.NoError(err)
}

func (s *BankrollServiceTestSuite) TestHandleMessage_UnexpectedKind() {
	err := s.service.HandleMessage(s.ctx, s.envelope(transport.KindRequestQuestions, &transport.RequestQuestions{Count: 1}))

	s.Equal(ErrUnexpectedMessage, err)
}

func (s *BankrollServiceTestSuite) TestGetPublicBalances() {
	s.mockLedgerRepo.EXPECT().
		GetPublicBalances(s.ctx).
		Return(map[string]models.Amount{"room-1": 500}, nil)

	output, err := s.service.GetPublicBalances(s.ctx, &GetPublicBalancesInput{})

	s.Require().NoError(err)
	s.Equal(models.Amount(500), output.Balances["room-1"])
}
