// Package httpapi exposes the shard services over a small JSON API: the
// operation surface for rooms, the question bank and the balance ledger,
// read-only views for watchers, and the metrics and pprof endpoints.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/triviarena/triviarena/internal/models"
	"github.com/triviarena/triviarena/internal/services/bankroll"
	"github.com/triviarena/triviarena/internal/services/battle"
	"github.com/triviarena/triviarena/internal/services/questionbank"
)

// Config holds configuration for the HTTP handler
type Config struct {
	BattleService       battle.Service
	QuestionBankService questionbank.Service
	BankrollService     bankroll.Service
}

// Handler routes HTTP requests to the shard services
type Handler struct {
	battleService       battle.Service
	questionBankService questionbank.Service
	bankrollService     bankroll.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BattleService == nil {
		return nil, errors.New("battle service cannot be nil")
	}

	if cfg.QuestionBankService == nil {
		return nil, errors.New("question bank service cannot be nil")
	}

	if cfg.BankrollService == nil {
		return nil, errors.New("bankroll service cannot be nil")
	}

	return &Handler{
		battleService:       cfg.BattleService,
		questionBankService: cfg.QuestionBankService,
		bankrollService:     cfg.BankrollService,
	}, nil
}

// Register attaches all routes to the engine.
func (h *Handler) Register(e *gin.Engine) {
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
	pprof.Register(e, "/debug/pprof")

	api := e.Group("/api")
	{
		api.GET("/battle", h.getBattle)
		api.GET("/leaderboard", h.getLeaderboard)
		api.GET("/questions", h.listQuestions)
		api.GET("/treasury", h.getTreasury)
		api.GET("/balance/:owner", h.getBalance)
		api.GET("/balances/public", h.getPublicBalances)

		api.POST("/battle/open", h.openRoom)
		api.POST("/battle/join", h.joinRoom)
		api.POST("/battle/start", h.startGame)
		api.POST("/battle/answer", h.submitAnswer)
		api.POST("/battle/tick", h.tick)

		api.POST("/questions", h.addQuestion)
		api.POST("/questions/bootstrap", h.bootstrap)
		api.POST("/treasury/withdraw", h.withdraw)

		api.POST("/ledger/debts", h.notifyDebt)
		api.POST("/ledger/pots", h.transferPot)
	}
}

func (h *Handler) getBattle(c *gin.Context) {
	output, err := h.battleService.GetBattle(c.Request.Context(), &battle.GetBattleInput{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newBattleView(output.Battle))
}

func (h *Handler) getLeaderboard(c *gin.Context) {
	output, err := h.battleService.GetLeaderboard(c.Request.Context(), &battle.GetLeaderboardInput{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": output.Entries})
}

func (h *Handler) listQuestions(c *gin.Context) {
	output, err := h.questionBankService.ListQuestions(c.Request.Context(), &questionbank.ListQuestionsInput{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": output.Questions})
}

func (h *Handler) getTreasury(c *gin.Context) {
	output, err := h.questionBankService.GetTreasury(c.Request.Context(), &questionbank.GetTreasuryInput{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": output.Balance})
}

func (h *Handler) getBalance(c *gin.Context) {
	output, err := h.bankrollService.Balance(c.Request.Context(), &bankroll.BalanceInput{
		Owner: c.Param("owner"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":       output.Balance,
		"bonus_claimed": output.BonusClaimed,
	})
}

func (h *Handler) getPublicBalances(c *gin.Context) {
	output, err := h.bankrollService.GetPublicBalances(c.Request.Context(), &bankroll.GetPublicBalancesInput{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": output.Balances})
}

func (h *Handler) openRoom(c *gin.Context) {
	var req openRoomRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.battleService.OpenRoom(c.Request.Context(), &battle.OpenRoomInput{
		Caller:      req.Caller,
		RoomName:    req.RoomName,
		MaxPlayers:  req.MaxPlayers,
		Wager:       req.Wager,
		Secret:      req.Secret,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBattleView(output.Battle))
}

func (h *Handler) joinRoom(c *gin.Context) {
	var req joinRoomRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.battleService.JoinRoom(c.Request.Context(), &battle.JoinRoomInput{
		Caller:      req.Caller,
		Secret:      req.Secret,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newBattleView(output.Battle))
}

func (h *Handler) startGame(c *gin.Context) {
	var req startGameRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.battleService.StartGame(c.Request.Context(), &battle.StartGameInput{
		Caller: req.Caller,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pot": output.Pot})
}

func (h *Handler) submitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.battleService.SubmitAnswer(c.Request.Context(), &battle.SubmitAnswerInput{
		Caller:        req.Caller,
		QuestionIndex: req.QuestionIndex,
		ChoiceIndex:   req.ChoiceIndex,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"correct":     output.Correct,
		"points":      output.Points,
		"total_score": output.TotalScore,
	})
}

func (h *Handler) tick(c *gin.Context) {
	output, err := h.battleService.Tick(c.Request.Context(), &battle.TickInput{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advanced": output.Advanced,
		"settled":  output.Settled,
	})
}

func (h *Handler) addQuestion(c *gin.Context) {
	var req addQuestionRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.questionBankService.AddQuestion(c.Request.Context(), &questionbank.AddQuestionInput{
		Caller:       req.Caller,
		Text:         req.Text,
		Choices:      req.Choices,
		CorrectIndex: req.CorrectIndex,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"question_id": output.QuestionID})
}

func (h *Handler) bootstrap(c *gin.Context) {
	var req bootstrapRequest
	if !h.bind(c, &req) {
		return
	}

	seed := make([]*models.Question, 0, len(req.Seed))
	for _, q := range req.Seed {
		seed = append(seed, &models.Question{
			Text:         q.Text,
			Choices:      q.Choices,
			CorrectIndex: q.CorrectIndex,
			Category:     q.Category,
			Difficulty:   q.Difficulty,
		})
	}

	output, err := h.questionBankService.Bootstrap(c.Request.Context(), &questionbank.BootstrapInput{
		Admin: req.Admin,
		Seed:  seed,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"installed": output.Installed})
}

func (h *Handler) withdraw(c *gin.Context) {
	var req withdrawRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.questionBankService.Withdraw(c.Request.Context(), &questionbank.WithdrawInput{
		Caller: req.Caller,
		Amount: req.Amount,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaining": output.Remaining})
}

func (h *Handler) notifyDebt(c *gin.Context) {
	var req notifyDebtRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.bankrollService.NotifyDebt(c.Request.Context(), &bankroll.NotifyDebtInput{
		Debtor:      req.Debtor,
		Amount:      req.Amount,
		TargetShard: req.TargetShard,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt_id": output.DebtID})
}

func (h *Handler) transferPot(c *gin.Context) {
	var req transferPotRequest
	if !h.bind(c, &req) {
		return
	}

	output, err := h.bankrollService.TransferPot(c.Request.Context(), &bankroll.TransferPotInput{
		Amount:      req.Amount,
		TargetShard: req.TargetShard,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pot_id": output.PotID})
}

func (h *Handler) bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// statusFor maps service sentinel errors onto HTTP statuses.
func statusFor(err error) int {
	switch err {
	case battle.ErrRoomNotFound:
		return http.StatusNotFound
	case battle.ErrRoomOccupied,
		battle.ErrRoomFull,
		battle.ErrAlreadyJoined,
		battle.ErrAlreadyAnswered,
		battle.ErrInvalidBattleState,
		battle.ErrBatchInstalled,
		questionbank.ErrAlreadyBootstrapped:
		return http.StatusConflict
	case battle.ErrNotOwner,
		battle.ErrWrongSecret,
		questionbank.ErrNotAdmin:
		return http.StatusForbidden
	case battle.ErrInvalidInput,
		battle.ErrNotEnoughPlayers,
		battle.ErrNotInRoom,
		battle.ErrWrongQuestionIndex,
		battle.ErrInvalidChoice,
		battle.ErrNoActiveQuestion,
		questionbank.ErrInvalidQuestion,
		questionbank.ErrInvalidInput,
		questionbank.ErrZeroAmount,
		questionbank.ErrInsufficientTreasury,
		questionbank.ErrNotBootstrapped,
		bankroll.ErrInvalidInput,
		bankroll.ErrZeroAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
