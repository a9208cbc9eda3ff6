package battle

import (
	"context"

	"github.com/triviarena/triviarena/internal/metrics"
	"github.com/triviarena/triviarena/internal/models"
	battleRepo "github.com/triviarena/triviarena/internal/repositories/battle"
	leaderboardRepo "github.com/triviarena/triviarena/internal/repositories/leaderboard"
	"github.com/triviarena/triviarena/internal/transport"
)

// Protocol fee is one twentieth of the pot, taken before the tier multiplier.
const protocolFeeDivisor = 20

// settle closes the battle: picks the winner, splits the pot into fee and
// payout, records the result on the global leaderboard and notifies the
// ledger shards. The battle is persisted as Finished before any message is
// sent.
func (s *service) settle(ctx context.Context, battle *models.Battle) error {
	winner := pickWinner(battle)

	fee := battle.Pot / protocolFeeDivisor
	base := battle.Pot.SaturatingSub(fee)
	mult := tierMultiplier(winner.Score)
	payout := base.SaturatingMul(models.Amount(mult)) / 100

	board, err := s.leaderboardRepo.GetLeaderboard(ctx, &leaderboardRepo.GetLeaderboardInput{})
	if err != nil {
		return err
	}

	board.Record(winner.Owner, winner.Name, winner.Score, payout)

	err = s.leaderboardRepo.SaveLeaderboard(ctx, &leaderboardRepo.SaveLeaderboardInput{
		Leaderboard: board,
	})
	if err != nil {
		return err
	}

	battle.Pot = 0
	battle.Status = models.BattleStatusFinished

	err = s.battleRepo.SaveBattle(ctx, &battleRepo.SaveBattleInput{
		ShardID: s.config.ShardID,
		Battle:  battle,
	})
	if err != nil {
		return err
	}

	if !payout.IsZero() {
		s.send(ctx, "", s.config.BankrollShard, transport.KindUpdateBalance, &transport.UpdateBalance{
			Owner:  winner.Owner,
			Amount: payout,
		})
	}

	if !fee.IsZero() {
		s.send(ctx, "", s.config.QuestionBankShard, transport.KindSendProtocolFee, &transport.SendProtocolFee{
			Amount: fee,
		})
	}

	s.announce(ctx, &transport.RoomEvent{
		Type:   transport.RoomEventGameEnded,
		Winner: winner.Owner,
		Payout: payout,
	})

	metrics.Settlements.Inc()

	return nil
}

// pickWinner returns the highest-scoring player; ties go to whoever joined
// first.
func pickWinner(battle *models.Battle) *models.PlayerInBattle {
	winner := battle.Players[0]
	for _, p := range battle.Players[1:] {
		if p.Score > winner.Score {
			winner = p
		}
	}
	return winner
}

// tierMultiplier maps a winning score onto a payout percentage.
func tierMultiplier(score uint64) uint64 {
	switch {
	case score >= 1000:
		return 200
	case score >= 500:
		return 150
	case score >= 200:
		return 125
	default:
		return 100
	}
}
