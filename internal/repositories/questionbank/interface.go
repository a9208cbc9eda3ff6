package questionbank

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/triviarena/triviarena/internal/repositories/questionbank Repository

import (
	"context"

	"github.com/triviarena/triviarena/internal/models"
)

// Repository persists the question-bank shard's root state
type Repository interface {
	// GetState retrieves the full question-bank state; a zero state is
	// returned when the shard has never been bootstrapped
	GetState(ctx context.Context, input *GetStateInput) (*models.QuestionBankState, error)

	// SaveState persists the full question-bank state
	SaveState(ctx context.Context, input *SaveStateInput) error
}
