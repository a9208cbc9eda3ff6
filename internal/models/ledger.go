package models

import (
	"time"
)

// DebtStatus represents the settlement state of a debt record
type DebtStatus string

const (
	// DebtStatusPending indicates the debt has been recorded but not paid
	DebtStatusPending DebtStatus = "pending"

	// DebtStatusPaid indicates the debt has been confirmed paid
	DebtStatusPaid DebtStatus = "paid"
)

// DebtRecord represents an escrow notice in the balance ledger
type DebtRecord struct {
	// ID is the ledger-assigned monotonic identifier
	ID uint64

	// Debtor is the identity the funds are expected from
	Debtor string

	// Amount is the wager being escrowed
	Amount Amount

	// TargetShard is the room shard the escrow is reserved for
	TargetShard string

	// Status is the settlement state
	Status DebtStatus

	// CreatedAt is when the debt was recorded
	CreatedAt time.Time

	// PaidAt is when the debt was confirmed paid
	PaidAt *time.Time
}

// PotRecord represents an outgoing pot transfer logged by the ledger
type PotRecord struct {
	// ID is the ledger-assigned monotonic identifier
	ID uint64

	// Amount is the transferred pot
	Amount Amount

	// TargetShard is the destination shard
	TargetShard string

	// CreatedAt is when the transfer was recorded
	CreatedAt time.Time
}
