package battle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/triviarena/triviarena/internal/models"
	battleRepo "github.com/triviarena/triviarena/internal/repositories/battle"
	leaderboardRepo "github.com/triviarena/triviarena/internal/repositories/leaderboard"
	"github.com/triviarena/triviarena/internal/transport"
)

// service implements the Service interface
type service struct {
	config          *Config
	battleRepo      battleRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
	messenger       transport.Messenger
}

// New creates a new battle service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BattleRepo == nil {
		return nil, ErrNilBattleRepo
	}

	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
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

	if cfg.ShardID == "" || cfg.QuestionBankShard == "" || cfg.BankrollShard == "" {
		return nil, ErrMissingShardID
	}

	if cfg.QuestionBatchSize <= 0 {
		cfg.QuestionBatchSize = DefaultQuestionBatchSize
	}

	if cfg.QuestionTimeout <= 0 {
		cfg.QuestionTimeout = DefaultQuestionTimeout
	}

	return &service{
		config:          cfg,
		battleRepo:      cfg.BattleRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		messenger:       cfg.Messenger,
	}, nil
}

// OpenRoom creates a battle in the Waiting state and enrolls the owner
func (s *service) OpenRoom(ctx context.Context, input *OpenRoomInput) (*OpenRoomOutput, error) {
	if input == nil || input.Caller == "" || input.RoomName == "" || input.DisplayName == "" {
		return nil, ErrInvalidInput
	}

	if input.MaxPlayers < 2 {
		return nil, ErrInvalidInput
	}

	existing, err := s.battleRepo.GetBattle(ctx, &battleRepo.GetBattleInput{ShardID: s.config.ShardID})
	if err != nil && !errors.Is(err, battleRepo.ErrBattleNotFound) {
		return nil, err
	}

	// A finished battle no longer occupies the shard and may be replaced.
	if existing != nil && existing.Live() {
		return nil, ErrRoomOccupied
	}

	now := s.config.Clock.Now()
	battle := &models.Battle{
		RoomName:   input.RoomName,
		Owner:      input.Caller,
		MaxPlayers: input.MaxPlayers,
		Wager:      input.Wager,
		Secret:     input.Secret,
		Players: []*models.PlayerInBattle{
			{Owner: input.Caller, Name: input.DisplayName},
		},
		QuestionTimeout: s.config.QuestionTimeout,
		Status:          models.BattleStatusWaiting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
		ShardID: s.config.ShardID,
		Battle:  battle,
	})
	if err != nil {
		return nil, err
	}

	return &OpenRoomOutput{Battle: battle}, nil
}

// JoinRoom enrolls a player while the battle is Waiting
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.Caller == "" || input.DisplayName == "" {
		return nil, ErrInvalidInput
	}

	battle, err := s.getBattle(ctx)
	if err != nil {
		return nil, err
	}

	if battle.Status != models.BattleStatusWaiting {
		return nil, ErrInvalidBattleState
	}

	if battle.Secret != "" && battle.Secret != input.Secret {
		return nil, ErrWrongSecret
	}

	if len(battle.Players) >= battle.MaxPlayers {
		return nil, ErrRoomFull
	}

	if battle.FindPlayer(input.Caller) != nil {
		return nil, ErrAlreadyJoined
	}

	battle.Players = append(battle.Players, &models.PlayerInBattle{
		Owner: input.Caller,
		Name:  input.DisplayName,
	})
	battle.UpdatedAt = s.config.Clock.Now()

	err = s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
		ShardID: s.config.ShardID,
		Battle:  battle,
	})
	if err != nil {
		return nil, err
	}

	s.announce(ctx, &transport.RoomEvent{
		Type:   transport.RoomEventPlayerJoined,
		Player: input.Caller,
		Name:   input.DisplayName,
	})

	return &JoinRoomOutput{Battle: battle}, nil
}

// StartGame escrows wagers, requests the question batch and moves the battle
// to InProgress
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.Caller == "" {
		return nil, ErrInvalidInput
	}

	battle, err := s.getBattle(ctx)
	if err != nil {
		return nil, err
	}

	if battle.Owner != input.Caller {
		return nil, ErrNotOwner
	}

	if battle.Status != models.BattleStatusWaiting {
		return nil, ErrInvalidBattleState
	}

	if len(battle.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	now := s.config.Clock.Now()

	if !battle.Wager.IsZero() {
		battle.Pot = battle.Wager.SaturatingMul(models.Amount(len(battle.Players)))
	}

	battle.Status = models.BattleStatusInProgress
	battle.StartedAt = &now
	battle.PendingSupplyID = s.config.UUID.NewUUID()
	battle.UpdatedAt = now

	// Persist before any message goes out: the supply reply may race the
	// rest of this handler on a fast substrate.
	err = s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
		ShardID: s.config.ShardID,
		Battle:  battle,
	})
	if err != nil {
		return nil, err
	}

	// Escrow is optimistic fire-and-forget: a notification that cannot be
	// delivered is not rolled back, it just leaves a reconciliation gap.
	if !battle.Wager.IsZero() {
		for _, p := range battle.Players {
			s.send(ctx, "", s.config.BankrollShard, transport.KindNotifyDebt, &transport.NotifyDebt{
				Debtor:      p.Owner,
				Amount:      battle.Wager,
				TargetShard: s.config.ShardID,
			})
		}
	}

	s.send(ctx, battle.PendingSupplyID, s.config.QuestionBankShard, transport.KindRequestQuestions, &transport.RequestQuestions{
		Count: s.config.QuestionBatchSize,
	})

	return &StartGameOutput{Pot: battle.Pot}, nil
}

// SubmitAnswer records a player's answer for the current round
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil || input.Caller == "" {
		return nil, ErrInvalidInput
	}

	battle, err := s.getBattle(ctx)
	if err != nil {
		return nil, err
	}

	if battle.Status != models.BattleStatusInProgress {
		return nil, ErrInvalidBattleState
	}

	if len(battle.Questions) == 0 || battle.CurrentQuestionIndex >= len(battle.Questions) {
		return nil, ErrNoActiveQuestion
	}

	if input.QuestionIndex != battle.CurrentQuestionIndex {
		return nil, ErrWrongQuestionIndex
	}

	player := battle.FindPlayer(input.Caller)
	if player == nil {
		return nil, ErrNotInRoom
	}

	if player.HasAnsweredCurrent {
		return nil, ErrAlreadyAnswered
	}

	question := battle.Questions[battle.CurrentQuestionIndex]
	if input.ChoiceIndex < 0 || input.ChoiceIndex >= len(question.Choices) {
		return nil, ErrInvalidChoice
	}

	now := s.config.Clock.Now()
	player.HasAnsweredCurrent = true
	player.LastAnswerAt = &now

	correct := input.ChoiceIndex == question.CorrectIndex

	var points uint64
	if correct {
		points = BaseAward + SpeedBonus
	} else if s.config.SpeedBonusAlways {
		points = SpeedBonus
	}
	player.Score += points

	battle.UpdatedAt = now

	if _, err := s.maybeAdvance(ctx, battle); err != nil {
		return nil, err
	}

	return &SubmitAnswerOutput{
		Correct:    correct,
		Points:     points,
		TotalScore: player.Score,
	}, nil
}

// Tick re-evaluates the round timeout
func (s *service) Tick(ctx context.Context, _ *TickInput) (*TickOutput, error) {
	battle, err := s.getBattle(ctx)
	if err != nil {
		return nil, err
	}

	if battle.Status != models.BattleStatusInProgress || len(battle.Questions) == 0 {
		return &TickOutput{}, nil
	}

	advanced, err := s.maybeAdvance(ctx, battle)
	if err != nil {
		return nil, err
	}

	return &TickOutput{
		Advanced: advanced,
		Settled:  battle.Status == models.BattleStatusFinished,
	}, nil
}

// HandleMessage processes an inbound cross-shard envelope
func (s *service) HandleMessage(ctx context.Context, env *transport.Envelope) error {
	switch env.Kind {
	case transport.KindReceiveQuestions:
		return s.handleReceiveQuestions(ctx, env)
	case transport.KindRoomEvent:
		// Announcements address the room's own inbox for watchers to
		// consume; the core has nothing to do with them.
		return nil
	default:
		return ErrUnexpectedMessage
	}
}

func (s *service) handleReceiveQuestions(ctx context.Context, env *transport.Envelope) error {
	battle, err := s.getBattle(ctx)
	if err != nil {
		return err
	}

	if battle.Status != models.BattleStatusInProgress {
		return ErrInvalidBattleState
	}

	if len(battle.Questions) > 0 {
		return ErrBatchInstalled
	}

	// At most one supply request is ever in flight; a reply that does not
	// carry its correlation id is stale or forged.
	if battle.PendingSupplyID == "" || env.CorrelationID != battle.PendingSupplyID {
		return ErrStaleSupplyReply
	}

	var payload transport.ReceiveQuestions
	if err := env.Decode(&payload); err != nil {
		return err
	}

	if len(payload.Questions) == 0 || len(payload.Questions) != len(payload.QuestionIDs) {
		return ErrInvalidInput
	}

	now := s.config.Clock.Now()
	battle.QuestionIDs = payload.QuestionIDs
	battle.Questions = payload.Questions
	battle.CurrentQuestionIndex = 0
	battle.RoundStartedAt = &now
	battle.PendingSupplyID = ""
	battle.ClearAnswers()
	battle.UpdatedAt = now

	err = s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
		ShardID: s.config.ShardID,
		Battle:  battle,
	})
	if err != nil {
		return err
	}

	s.announce(ctx, &transport.RoomEvent{
		Type:        transport.RoomEventGameStarted,
		QuestionIDs: battle.QuestionIDs,
	})
	s.announce(ctx, &transport.RoomEvent{
		Type:          transport.RoomEventNextQuestion,
		QuestionIndex: 0,
		QuestionID:    battle.QuestionIDs[0],
	})

	return nil
}

// GetBattle returns the current battle for read surfaces
func (s *service) GetBattle(ctx context.Context, _ *GetBattleInput) (*GetBattleOutput, error) {
	battle, err := s.getBattle(ctx)
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{Battle: battle}, nil
}

// GetLeaderboard returns the global standings for read surfaces
func (s *service) GetLeaderboard(ctx context.Context, _ *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	board, err := s.leaderboardRepo.GetLeaderboard(ctx, &leaderboardRepo.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Entries: board.Entries}, nil
}

// maybeAdvance applies the round-advance rule: move on when every player
// answered or the round timed out. It persists the battle either way and
// reports whether the round advanced.
func (s *service) maybeAdvance(ctx context.Context, battle *models.Battle) (bool, error) {
	now := s.config.Clock.Now()

	timedOut := battle.RoundStartedAt != nil && now.Sub(*battle.RoundStartedAt) >= battle.QuestionTimeout

	if !battle.AllAnswered() && !timedOut {
		err := s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
			ShardID: s.config.ShardID,
			Battle:  battle,
		})
		return false, err
	}

	return true, s.advanceRound(ctx, battle)
}

// advanceRound opens the next round, or settles when the batch is exhausted
func (s *service) advanceRound(ctx context.Context, battle *models.Battle) error {
	now := s.config.Clock.Now()
	battle.CurrentQuestionIndex++
	battle.RoundStartedAt = &now
	battle.UpdatedAt = now

	if battle.CurrentQuestionIndex >= len(battle.QuestionIDs) {
		return s.settle(ctx, battle)
	}

	battle.ClearAnswers()

	err := s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
		ShardID: s.config.ShardID,
		Battle:  battle,
	})
	if err != nil {
		return err
	}

	s.announce(ctx, &transport.RoomEvent{
		Type:          transport.RoomEventNextQuestion,
		QuestionIndex: battle.CurrentQuestionIndex,
		QuestionID:    battle.QuestionIDs[battle.CurrentQuestionIndex],
	})

	return nil
}

func (s *service) getBattle(ctx context.Context) (*models.Battle, error) {
	battle, err := s.battleRepo.GetBattle(ctx, &battleRepo.GetBattleInput{ShardID: s.config.ShardID})
	if err != nil {
		if errors.Is(err, battleRepo.ErrBattleNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return battle, nil
}

// send builds and dispatches one envelope. Delivery failures are logged,
// never propagated: cross-shard messaging is fire-and-forget.
func (s *service) send(ctx context.Context, correlationID, target string, kind transport.Kind, payload any) {
	env, err := transport.NewEnvelope(s.config.UUID.NewUUID(), s.config.ShardID, target, kind, payload, s.config.Clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "battle: build envelope failed", "kind", kind, "error", err)
		return
	}
	env.CorrelationID = correlationID

	if err := s.messenger.Send(ctx, env); err != nil {
		slog.ErrorContext(ctx, "battle: send failed, game may stall",
			"kind", kind,
			"target", target,
			"error", err,
		)
	}
}

func (s *service) announce(ctx context.Context, event *transport.RoomEvent) {
	s.send(ctx, "", s.config.ShardID, transport.KindRoomEvent, event)
}
