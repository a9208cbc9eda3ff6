package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/triviarena/triviarena/internal/common/clock"
	"github.com/triviarena/triviarena/internal/common/uuid"
	"github.com/triviarena/triviarena/internal/config"
	"github.com/triviarena/triviarena/internal/handlers/httpapi"
	"github.com/triviarena/triviarena/internal/models"
	battleRepo "github.com/triviarena/triviarena/internal/repositories/battle"
	ledgerRepo "github.com/triviarena/triviarena/internal/repositories/ledger"
	leaderboardRepo "github.com/triviarena/triviarena/internal/repositories/leaderboard"
	bankRepo "github.com/triviarena/triviarena/internal/repositories/questionbank"
	"github.com/triviarena/triviarena/internal/services/bankroll"
	"github.com/triviarena/triviarena/internal/services/battle"
	"github.com/triviarena/triviarena/internal/services/questionbank"
	"github.com/triviarena/triviarena/internal/transport"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.Default()
	if err := config.Load(os.Getenv("CONFIG_PATH"), &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Repositories
	battles, err := battleRepo.NewRedis(&battleRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create battle repository: %v", err)
	}

	leaderboards, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create leaderboard repository: %v", err)
	}

	banks, err := bankRepo.NewRedis(&bankRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create question bank repository: %v", err)
	}

	ledgers, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}

	// Transport
	var messenger transport.Messenger
	var loopback *transport.Loopback

	switch cfg.Transport.Mode {
	case "loopback", "":
		loopback = transport.NewLoopback()
		messenger = loopback
	case "redis":
		messenger, err = transport.NewRedisMessenger(redisClient)
		if err != nil {
			log.Fatalf("Failed to create redis messenger: %v", err)
		}
	default:
		log.Fatalf("Unknown transport mode %q", cfg.Transport.Mode)
	}

	clk := clock.New()
	ids := uuid.New()

	// Services
	battleSvc, err := battle.New(&battle.Config{
		ShardID:           cfg.Shards.Room,
		QuestionBankShard: cfg.Shards.QuestionBank,
		BankrollShard:     cfg.Shards.Bankroll,
		QuestionBatchSize: cfg.Game.QuestionBatchSize,
		QuestionTimeout:   cfg.Game.QuestionTimeout,
		SpeedBonusAlways:  cfg.Game.SpeedBonusAlways,
		BattleRepo:        battles,
		LeaderboardRepo:   leaderboards,
		Messenger:         messenger,
		Clock:             clk,
		UUID:              ids,
	})
	if err != nil {
		log.Fatalf("Failed to create battle service: %v", err)
	}

	bankSvc, err := questionbank.New(&questionbank.Config{
		ShardID:       cfg.Shards.QuestionBank,
		BankrollShard: cfg.Shards.Bankroll,
		BankRepo:      banks,
		Messenger:     messenger,
		Clock:         clk,
		UUID:          ids,
	})
	if err != nil {
		log.Fatalf("Failed to create question bank service: %v", err)
	}

	ledgerSvc, err := bankroll.New(&bankroll.Config{
		ShardID:      cfg.Shards.Bankroll,
		CreditPolicy: bankroll.CreditPolicy(cfg.Ledger.CreditPolicy),
		DailyBonus:   models.Amount(cfg.Ledger.DailyBonus),
		BonusPeriod:  cfg.Ledger.BonusPeriod,
		LedgerRepo:   ledgers,
		Messenger:    messenger,
		Clock:        clk,
		UUID:         ids,
	})
	if err != nil {
		log.Fatalf("Failed to create bankroll service: %v", err)
	}

	// HTTP surface
	handler, err := httpapi.New(&httpapi.Config{
		BattleService:       battleSvc,
		QuestionBankService: bankSvc,
		BankrollService:     ledgerSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 60 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(runCtx)

	handlers := map[string]transport.Handler{
		cfg.Shards.Room:         battleSvc.HandleMessage,
		cfg.Shards.QuestionBank: bankSvc.HandleMessage,
		cfg.Shards.Bankroll:     ledgerSvc.HandleMessage,
	}

	if loopback != nil {
		for shard, h := range handlers {
			loopback.Register(shard, h)
		}
	} else {
		for shard, h := range handlers {
			shard := shard
			consumer, err := transport.NewConsumer(&transport.ConsumerConfig{
				Client:  redisClient,
				Shard:   shard,
				Handler: h,
			})
			if err != nil {
				log.Fatalf("Failed to create consumer for %s: %v", shard, err)
			}

			eg.Go(func() error {
				slog.Info("consumer started", "shard", shard)
				return consumer.Run(egCtx)
			})
		}
	}

	eg.Go(func() error {
		slog.Info(fmt.Sprintf("HTTP listening on %s", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		slog.Error("shutdown with error", "error", err)
		os.Exit(1)
	}

	slog.Info("shutdown completed")
}
