package questionbank

import (
	"context"

	"github.com/triviarena/triviarena/internal/transport"
)

// Service manages the shared question catalog and the protocol-fee treasury
type Service interface {
	// Bootstrap registers the admin and installs an optional seed catalog.
	// It fails if an admin is already registered.
	Bootstrap(ctx context.Context, input *BootstrapInput) (*BootstrapOutput, error)

	// AddQuestion appends a question to the catalog. Admin only.
	AddQuestion(ctx context.Context, input *AddQuestionInput) (*AddQuestionOutput, error)

	// Withdraw moves accumulated protocol fees out of the treasury and
	// credits the admin on the balance ledger. Admin only.
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)

	// HandleMessage processes an inbound cross-shard envelope: question
	// supply requests and protocol fee deposits.
	HandleMessage(ctx context.Context, env *transport.Envelope) error

	// GetTreasury reports the accumulated protocol fees
	GetTreasury(ctx context.Context, input *GetTreasuryInput) (*GetTreasuryOutput, error)

	// ListQuestions returns the full catalog
	ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error)
}
