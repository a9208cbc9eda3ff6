package questionbank

import (
	"context"
	"log/slog"

	"github.com/triviarena/triviarena/internal/metrics"
	"github.com/triviarena/triviarena/internal/models"
	bankRepo "github.com/triviarena/triviarena/internal/repositories/questionbank"
	"github.com/triviarena/triviarena/internal/transport"
)

// service implements the Service interface
type service struct {
	config    *Config
	bankRepo  bankRepo.Repository
	messenger transport.Messenger
}

// New creates a new question bank service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BankRepo == nil {
		return nil, ErrNilBankRepo
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

	if cfg.ShardID == "" || cfg.BankrollShard == "" {
		return nil, ErrMissingShardID
	}

	return &service{
		config:    cfg,
		bankRepo:  cfg.BankRepo,
		messenger: cfg.Messenger,
	}, nil
}

// Bootstrap registers the admin and installs the seed catalog
func (s *service) Bootstrap(ctx context.Context, input *BootstrapInput) (*BootstrapOutput, error) {
	if input == nil || input.Admin == "" {
		return nil, ErrInvalidInput
	}

	state, err := s.bankRepo.GetState(ctx, &bankRepo.GetStateInput{})
	if err != nil {
		return nil, err
	}

	if state.Admin != "" {
		return nil, ErrAlreadyBootstrapped
	}

	state.Admin = input.Admin
	if state.NextQuestionID == 0 {
		state.NextQuestionID = 1
	}

	for _, q := range input.Seed {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		q.ID = state.NextQuestionID
		state.NextQuestionID++
		state.Catalog = append(state.Catalog, q)
	}

	err = s.bankRepo.SaveState(ctx, &bankRepo.SaveStateInput{State: state})
	if err != nil {
		return nil, err
	}

	return &BootstrapOutput{Installed: len(input.Seed)}, nil
}

// AddQuestion appends a validated question to the catalog
func (s *service) AddQuestion(ctx context.Context, input *AddQuestionInput) (*AddQuestionOutput, error) {
	if input == nil || input.Caller == "" {
		return nil, ErrInvalidInput
	}

	state, err := s.adminState(ctx, input.Caller)
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		Text:         input.Text,
		Choices:      input.Choices,
		CorrectIndex: input.CorrectIndex,
		Category:     input.Category,
		Difficulty:   input.Difficulty,
	}
	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	question.ID = state.NextQuestionID
	state.NextQuestionID++
	state.Catalog = append(state.Catalog, question)

	err = s.bankRepo.SaveState(ctx, &bankRepo.SaveStateInput{State: state})
	if err != nil {
		return nil, err
	}

	return &AddQuestionOutput{QuestionID: question.ID}, nil
}

// Withdraw moves fees out of the treasury and credits the admin's ledger
// balance
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	if input == nil || input.Caller == "" {
		return nil, ErrInvalidInput
	}

	if input.Amount.IsZero() {
		return nil, ErrZeroAmount
	}

	state, err := s.adminState(ctx, input.Caller)
	if err != nil {
		return nil, err
	}

	if input.Amount > state.Treasury {
		return nil, ErrInsufficientTreasury
	}

	state.Treasury = state.Treasury.SaturatingSub(input.Amount)

	err = s.bankRepo.SaveState(ctx, &bankRepo.SaveStateInput{State: state})
	if err != nil {
		return nil, err
	}

	s.send(ctx, "", s.config.BankrollShard, transport.KindUpdateBalance, &transport.UpdateBalance{
		Owner:  state.Admin,
		Amount: input.Amount,
	})

	return &WithdrawOutput{Remaining: state.Treasury}, nil
}

// HandleMessage processes an inbound cross-shard envelope
func (s *service) HandleMessage(ctx context.Context, env *transport.Envelope) error {
	switch env.Kind {
	case transport.KindRequestQuestions:
		return s.handleRequestQuestions(ctx, env)
	case transport.KindSendProtocolFee:
		return s.handleSendProtocolFee(ctx, env)
	default:
		return ErrUnexpectedMessage
	}
}

// handleRequestQuestions selects a deterministic batch and replies to the
// requesting room. An empty catalog yields no reply at all: the requester
// stays stalled and the stall is only visible on the metrics surface.
func (s *service) handleRequestQuestions(ctx context.Context, env *transport.Envelope) error {
	var req transport.RequestQuestions
	if err := env.Decode(&req); err != nil {
		return err
	}

	if req.Count <= 0 {
		return ErrInvalidInput
	}

	state, err := s.bankRepo.GetState(ctx, &bankRepo.GetStateInput{})
	if err != nil {
		return err
	}

	if len(state.Catalog) == 0 {
		metrics.EmptyCatalogStalls.Inc()
		slog.WarnContext(ctx, "question supply request dropped, catalog is empty",
			"requester", env.Source,
			"correlation_id", env.CorrelationID,
		)
		return nil
	}

	// Selection is deterministic: the request sequence seeds a rotating
	// window over the catalog, wrapping when the batch outruns it.
	seed := state.RequestSeq
	batch := make([]*models.Question, 0, req.Count)
	ids := make([]uint64, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		q := state.Catalog[(seed+uint64(i))%uint64(len(state.Catalog))]
		batch = append(batch, q)
		ids = append(ids, q.ID)
	}

	state.RequestSeq++

	err = s.bankRepo.SaveState(ctx, &bankRepo.SaveStateInput{State: state})
	if err != nil {
		return err
	}

	s.send(ctx, env.CorrelationID, env.Source, transport.KindReceiveQuestions, &transport.ReceiveQuestions{
		QuestionIDs: ids,
		Questions:   batch,
	})

	return nil
}

func (s *service) handleSendProtocolFee(ctx context.Context, env *transport.Envelope) error {
	var fee transport.SendProtocolFee
	if err := env.Decode(&fee); err != nil {
		return err
	}

	state, err := s.bankRepo.GetState(ctx, &bankRepo.GetStateInput{})
	if err != nil {
		return err
	}

	state.Treasury = state.Treasury.SaturatingAdd(fee.Amount)

	return s.bankRepo.SaveState(ctx, &bankRepo.SaveStateInput{State: state})
}

// GetTreasury reports the accumulated protocol fees
func (s *service) GetTreasury(ctx context.Context, _ *GetTreasuryInput) (*GetTreasuryOutput, error) {
	state, err := s.bankRepo.GetState(ctx, &bankRepo.GetStateInput{})
	if err != nil {
		return nil, err
	}

	return &GetTreasuryOutput{Balance: state.Treasury}, nil
}

// ListQuestions returns the full catalog
func (s *service) ListQuestions(ctx context.Context, _ *ListQuestionsInput) (*ListQuestionsOutput, error) {
	state, err := s.bankRepo.GetState(ctx, &bankRepo.GetStateInput{})
	if err != nil {
		return nil, err
	}

	return &ListQuestionsOutput{Questions: state.Catalog}, nil
}

// adminState loads the state and enforces the admin check
func (s *service) adminState(ctx context.Context, caller string) (*models.QuestionBankState, error) {
	state, err := s.bankRepo.GetState(ctx, &bankRepo.GetStateInput{})
	if err != nil {
		return nil, err
	}

	if state.Admin == "" {
		return nil, ErrNotBootstrapped
	}

	if state.Admin != caller {
		return nil, ErrNotAdmin
	}

	return state, nil
}

func validateQuestion(q *models.Question) error {
	if q == nil || q.Text == "" {
		return ErrInvalidQuestion
	}
	if len(q.Choices) < 2 {
		return ErrInvalidQuestion
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return ErrInvalidQuestion
	}
	if q.Difficulty != 0 && (q.Difficulty < 1 || q.Difficulty > 5) {
		return ErrInvalidQuestion
	}
	return nil
}

func (s *service) send(ctx context.Context, correlationID, target string, kind transport.Kind, payload any) {
	env, err := transport.NewEnvelope(s.config.UUID.NewUUID(), s.config.ShardID, target, kind, payload, s.config.Clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "questionbank: build envelope failed", "kind", kind, "error", err)
		return
	}
	env.CorrelationID = correlationID

	if err := s.messenger.Send(ctx, env); err != nil {
		slog.ErrorContext(ctx, "questionbank: send failed",
			"kind", kind,
			"target", target,
			"error", err,
		)
	}
}
