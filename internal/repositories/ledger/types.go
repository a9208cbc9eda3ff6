package ledger

import (
	"time"

	"github.com/triviarena/triviarena/internal/models"
)

type GetBalanceInput struct {
	Owner string
}

type SetBalanceInput struct {
	Owner  string
	Amount models.Amount
}

type SaveDebtInput struct {
	Record *models.DebtRecord
}

type GetDebtInput struct {
	DebtID uint64
}

type SavePotInput struct {
	Record *models.PotRecord
}

type GetLastBonusClaimInput struct {
	Owner string
}

type SetLastBonusClaimInput struct {
	Owner     string
	ClaimedAt time.Time
}

type SetPublicBalanceInput struct {
	ShardID string
	Amount  models.Amount
}
