package questionbank

import (
	"github.com/triviarena/triviarena/internal/common/clock"
	"github.com/triviarena/triviarena/internal/common/uuid"
	"github.com/triviarena/triviarena/internal/models"
	bankRepo "github.com/triviarena/triviarena/internal/repositories/questionbank"
	"github.com/triviarena/triviarena/internal/transport"
)

// Config holds configuration for the question bank service
type Config struct {
	// ShardID identifies this question-bank shard
	ShardID string

	// BankrollShard addresses the balance-ledger shard for withdrawals
	BankrollShard string

	// Repository dependencies
	BankRepo bankRepo.Repository

	// Infrastructure dependencies
	Messenger transport.Messenger
	Clock     clock.Clock
	UUID      uuid.UUID
}

type BootstrapInput struct {
	// Admin is the identity granted catalog and treasury control
	Admin string

	// Seed is an optional initial catalog; ids are assigned in order
	Seed []*models.Question
}

type BootstrapOutput struct {
	// Installed is the number of seed questions added
	Installed int
}

type AddQuestionInput struct {
	// Caller must be the registered admin
	Caller string

	Text         string
	Choices      []string
	CorrectIndex int
	Category     string
	Difficulty   int
}

type AddQuestionOutput struct {
	// QuestionID is the id assigned to the new question
	QuestionID uint64
}

type WithdrawInput struct {
	// Caller must be the registered admin
	Caller string

	// Amount to move out of the treasury; must be positive and no greater
	// than the treasury balance
	Amount models.Amount
}

type WithdrawOutput struct {
	// Remaining is the treasury balance after the withdrawal
	Remaining models.Amount
}

type GetTreasuryInput struct {
}

type GetTreasuryOutput struct {
	Balance models.Amount
}

type ListQuestionsInput struct {
}

type ListQuestionsOutput struct {
	Questions []*models.Question
}
