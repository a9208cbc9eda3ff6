package bankroll

// LedgerError represents a balance-ledger service error
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	// ErrZeroAmount is returned when an operation requires a positive amount
	ErrZeroAmount = LedgerError("amount must be positive")

	// ErrUnknownCreditPolicy is returned when the configured credit policy
	// is not recognized
	ErrUnknownCreditPolicy = LedgerError("unknown credit policy")

	// ErrUnexpectedMessage is returned for envelope kinds this shard does
	// not handle
	ErrUnexpectedMessage = LedgerError("unexpected message kind")

	// ErrInvalidInput is returned when required input fields are missing
	ErrInvalidInput = LedgerError("invalid input")

	// Configuration errors
	ErrNilConfig      = LedgerError("config cannot be nil")
	ErrNilLedgerRepo  = LedgerError("ledger repository cannot be nil")
	ErrNilMessenger   = LedgerError("messenger cannot be nil")
	ErrNilClock       = LedgerError("clock cannot be nil")
	ErrNilUUID        = LedgerError("uuid generator cannot be nil")
	ErrMissingShardID = LedgerError("shard id must be configured")
)
