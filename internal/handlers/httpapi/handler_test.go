package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/triviarena/triviarena/internal/common/clock"
	"github.com/triviarena/triviarena/internal/common/uuid"
	battleRepoPkg "github.com/triviarena/triviarena/internal/repositories/battle"
	ledgerRepoPkg "github.com/triviarena/triviarena/internal/repositories/ledger"
	leaderboardRepoPkg "github.com/triviarena/triviarena/internal/repositories/leaderboard"
	bankRepoPkg "github.com/triviarena/triviarena/internal/repositories/questionbank"
	"github.com/triviarena/triviarena/internal/services/bankroll"
	"github.com/triviarena/triviarena/internal/services/battle"
	"github.com/triviarena/triviarena/internal/services/questionbank"
	"github.com/triviarena/triviarena/internal/transport"
)

// HTTPAPITestSuite wires the full stack against miniredis and the loopback
// messenger and drives a complete game through the HTTP surface.
type HTTPAPITestSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	engine *gin.Engine
}

func (s *HTTPAPITestSuite) SetupTest() {
	var err error
	s.mini, err = miniredis.Run()
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})

	battleRepo, err := battleRepoPkg.NewRedis(&battleRepoPkg.Config{RedisClient: s.client})
	s.Require().NoError(err)
	leaderboardRepo, err := leaderboardRepoPkg.NewRedis(&leaderboardRepoPkg.Config{RedisClient: s.client})
	s.Require().NoError(err)
	bankRepo, err := bankRepoPkg.NewRedis(&bankRepoPkg.Config{RedisClient: s.client})
	s.Require().NoError(err)
	ledgerRepo, err := ledgerRepoPkg.NewRedis(&ledgerRepoPkg.Config{RedisClient: s.client})
	s.Require().NoError(err)

	loopback := transport.NewLoopback()
	clk := clock.New()
	ids := uuid.New()

	battleSvc, err := battle.New(&battle.Config{
		ShardID:           "room-1",
		QuestionBankShard: "qbank",
		BankrollShard:     "bankroll",
		QuestionBatchSize: 2,
		QuestionTimeout:   30 * time.Second,
		BattleRepo:        battleRepo,
		LeaderboardRepo:   leaderboardRepo,
		Messenger:         loopback,
		Clock:             clk,
		UUID:              ids,
	})
	s.Require().NoError(err)

	bankSvc, err := questionbank.New(&questionbank.Config{
		ShardID:       "qbank",
		BankrollShard: "bankroll",
		BankRepo:      bankRepo,
		Messenger:     loopback,
		Clock:         clk,
		UUID:          ids,
	})
	s.Require().NoError(err)

	ledgerSvc, err := bankroll.New(&bankroll.Config{
		ShardID:    "bankroll",
		DailyBonus: 100,
		LedgerRepo: ledgerRepo,
		Messenger:  loopback,
		Clock:      clk,
		UUID:       ids,
	})
	s.Require().NoError(err)

	loopback.Register("room-1", battleSvc.HandleMessage)
	loopback.Register("qbank", bankSvc.HandleMessage)
	loopback.Register("bankroll", ledgerSvc.HandleMessage)

	handler, err := New(&Config{
		BattleService:       battleSvc,
		QuestionBankService: bankSvc,
		BankrollService:     ledgerSvc,
	})
	s.Require().NoError(err)

	gin.SetMode(gin.TestMode)
	s.engine = gin.New()
	handler.Register(s.engine)
}

func (s *HTTPAPITestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
	s.mini.Close()
}

func TestHTTPAPISuite(t *testing.T) {
	suite.Run(t, new(HTTPAPITestSuite))
}

func (s *HTTPAPITestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *HTTPAPITestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var m map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func (s *HTTPAPITestSuite) bootstrapBank() {
	w := s.do(http.MethodPost, "/api/questions/bootstrap", `{
		"admin": "admin-1",
		"seed": [
			{"text": "Capital of France?", "choices": ["Paris", "Lyon"], "correct_index": 0},
			{"text": "2+2?", "choices": ["3", "4"], "correct_index": 1}
		]
	}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

// Full game: two players wager 100 each, answer two questions, tie on 120
// points apiece since the wrong answers score nothing. The pot of 200 pays a
// fee of 10, and the 190 remainder goes to the earliest-joined of the tied
// players.
func (s *HTTPAPITestSuite) TestFullGameFlow() {
	s.bootstrapBank()

	w := s.do(http.MethodPost, "/api/battle/open", `{
		"caller": "alice", "room_name": "Friday Night", "max_players": 2,
		"wager": 100, "display_name": "Alice"
	}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/battle/join", `{"caller": "bob", "display_name": "Bob"}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// A third join overflows the roster.
	w = s.do(http.MethodPost, "/api/battle/join", `{"caller": "carol", "display_name": "Carol"}`)
	s.Equal(http.StatusConflict, w.Code)

	// Only the owner can start.
	w = s.do(http.MethodPost, "/api/battle/start", `{"caller": "bob"}`)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/battle/start", `{"caller": "alice"}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(float64(200), s.decode(w)["pot"])

	// The loopback supply round-trip is synchronous, so the batch is
	// already installed.
	w = s.do(http.MethodGet, "/api/battle", "")
	s.Require().Equal(http.StatusOK, w.Code)
	view := s.decode(w)
	s.Equal("in_progress", view["status"])
	s.Require().NotNil(view["current_question"])

	// Round 0: both answer correctly.
	w = s.do(http.MethodPost, "/api/battle/answer", `{"caller": "alice", "question_index": 0, "choice_index": 0}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	answer := s.decode(w)
	s.Equal(true, answer["correct"])
	s.Equal(float64(120), answer["total_score"])

	// Replay is rejected.
	w = s.do(http.MethodPost, "/api/battle/answer", `{"caller": "alice", "question_index": 0, "choice_index": 0}`)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/battle/answer", `{"caller": "bob", "question_index": 0, "choice_index": 0}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// Round 1: both answer wrong, scoring nothing, and the game settles.
	w = s.do(http.MethodPost, "/api/battle/answer", `{"caller": "alice", "question_index": 1, "choice_index": 0}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(false, s.decode(w)["correct"])

	w = s.do(http.MethodPost, "/api/battle/answer", `{"caller": "bob", "question_index": 1, "choice_index": 0}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/battle", "")
	s.Require().Equal(http.StatusOK, w.Code)
	view = s.decode(w)
	s.Equal("finished", view["status"])
	s.Equal(float64(0), view["pot"])

	// Alice wins the tie as the earlier join.
	w = s.do(http.MethodGet, "/api/leaderboard", "")
	s.Require().Equal(http.StatusOK, w.Code)
	entries := s.decode(w)["entries"].([]any)
	s.Require().Len(entries, 1)
	top := entries[0].(map[string]any)
	s.Equal("alice", top["Owner"])
	s.Equal(float64(1), top["Wins"])
	s.Equal(float64(190), top["LifetimeWinnings"])

	// Balance read claims the daily bonus on top of the payout.
	w = s.do(http.MethodGet, "/api/balance/alice", "")
	s.Require().Equal(http.StatusOK, w.Code)
	balance := s.decode(w)
	s.Equal(true, balance["bonus_claimed"])
	s.Equal(float64(290), balance["balance"])

	// A second read within the period does not claim again.
	w = s.do(http.MethodGet, "/api/balance/alice", "")
	balance = s.decode(w)
	s.Equal(false, balance["bonus_claimed"])
	s.Equal(float64(290), balance["balance"])

	// The fee landed in the treasury.
	w = s.do(http.MethodGet, "/api/treasury", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(10), s.decode(w)["balance"])

	// Admin withdraws the fee, which credits their ledger balance.
	w = s.do(http.MethodPost, "/api/treasury/withdraw", `{"caller": "admin-1", "amount": 10}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(float64(0), s.decode(w)["remaining"])

	w = s.do(http.MethodGet, "/api/balance/admin-1", "")
	balance = s.decode(w)
	// 10 withdrawn fee + 100 daily bonus claimed on this first read.
	s.Equal(float64(110), balance["balance"])

	// The finished room can be replaced.
	w = s.do(http.MethodPost, "/api/battle/open", `{
		"caller": "carol", "room_name": "Round Two", "max_players": 2,
		"display_name": "Carol"
	}`)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *HTTPAPITestSuite) TestBattleNotFound() {
	w := s.do(http.MethodGet, "/api/battle", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HTTPAPITestSuite) TestAddQuestionRequiresAdmin() {
	s.bootstrapBank()

	w := s.do(http.MethodPost, "/api/questions", `{
		"caller": "mallory", "text": "Q", "choices": ["a", "b"], "correct_index": 0
	}`)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/questions", `{
		"caller": "admin-1", "text": "Q", "choices": ["a", "b"], "correct_index": 0
	}`)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal(float64(3), s.decode(w)["question_id"])
}

func (s *HTTPAPITestSuite) TestWithdrawValidation() {
	s.bootstrapBank()

	w := s.do(http.MethodPost, "/api/treasury/withdraw", `{"caller": "admin-1", "amount": 0}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/treasury/withdraw", `{"caller": "admin-1", "amount": 5}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HTTPAPITestSuite) TestLedgerEndpoints() {
	w := s.do(http.MethodPost, "/api/ledger/debts", `{"debtor": "alice", "amount": 50, "target_shard": "room-1"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal(float64(1), s.decode(w)["debt_id"])

	w = s.do(http.MethodPost, "/api/ledger/pots", `{"amount": 500, "target_shard": "room-1"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal(float64(1), s.decode(w)["pot_id"])

	w = s.do(http.MethodPost, "/api/ledger/debts", `{"debtor": "alice", "amount": 0, "target_shard": "room-1"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HTTPAPITestSuite) TestMetricsExposed() {
	w := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "triviarena_")
}
