package questionbank

// BankError represents a question-bank service error
type BankError string

// Error implements the error interface
func (e BankError) Error() string {
	return string(e)
}

const (
	// ErrNotAdmin is returned when a caller attempts an admin-only
	// operation without being the registered admin
	ErrNotAdmin = BankError("caller is not the question bank admin")

	// ErrAlreadyBootstrapped is returned when Bootstrap is called on a
	// shard that already has an admin
	ErrAlreadyBootstrapped = BankError("question bank is already bootstrapped")

	// ErrNotBootstrapped is returned when an admin operation is attempted
	// before any admin was registered
	ErrNotBootstrapped = BankError("question bank has no admin")

	// ErrInsufficientTreasury is returned when a withdrawal exceeds the
	// accumulated fees
	ErrInsufficientTreasury = BankError("withdrawal exceeds treasury balance")

	// ErrZeroAmount is returned when a withdrawal of zero is requested
	ErrZeroAmount = BankError("amount must be positive")

	// ErrInvalidQuestion is returned when an added question fails validation
	ErrInvalidQuestion = BankError("invalid question")

	// ErrUnexpectedMessage is returned for envelope kinds this shard does
	// not handle
	ErrUnexpectedMessage = BankError("unexpected message kind")

	// ErrInvalidInput is returned when required input fields are missing
	ErrInvalidInput = BankError("invalid input")

	// Configuration errors
	ErrNilConfig      = BankError("config cannot be nil")
	ErrNilBankRepo    = BankError("question bank repository cannot be nil")
	ErrNilMessenger   = BankError("messenger cannot be nil")
	ErrNilClock       = BankError("clock cannot be nil")
	ErrNilUUID        = BankError("uuid generator cannot be nil")
	ErrMissingShardID = BankError("shard ids must be configured")
)
