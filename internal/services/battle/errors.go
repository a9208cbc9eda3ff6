package battle

// BattleError is a custom error type for battle-related errors
type BattleError string

// Error implements the error interface
func (e BattleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomOccupied       BattleError = "room shard already hosts a live battle"
	ErrRoomNotFound       BattleError = "no battle exists on this room shard"
	ErrInvalidBattleState BattleError = "battle is not in a valid state for this operation"
	ErrWrongSecret        BattleError = "join secret does not match"
	ErrRoomFull           BattleError = "room is at maximum capacity"
	ErrAlreadyJoined      BattleError = "player already joined this room"
	ErrNotOwner           BattleError = "only the room owner may start the game"
	ErrNotEnoughPlayers   BattleError = "at least two players are required to start"
	ErrNotInRoom          BattleError = "player is not enrolled in this room"
	ErrWrongQuestionIndex BattleError = "answer does not target the current question"
	ErrAlreadyAnswered    BattleError = "player already answered this question"
	ErrInvalidChoice      BattleError = "choice index is out of range"
	ErrNoActiveQuestion   BattleError = "no question batch is installed"
	ErrBatchInstalled     BattleError = "question batch already installed"
	ErrStaleSupplyReply   BattleError = "question supply reply does not match the pending request"
	ErrUnexpectedMessage  BattleError = "unexpected message kind for room shard"
	ErrInvalidInput       BattleError = "invalid input"

	ErrNilConfig          BattleError = "config cannot be nil"
	ErrNilBattleRepo      BattleError = "battle repository cannot be nil"
	ErrNilLeaderboardRepo BattleError = "leaderboard repository cannot be nil"
	ErrNilMessenger       BattleError = "messenger cannot be nil"
	ErrNilClock           BattleError = "clock cannot be nil"
	ErrNilUUID            BattleError = "UUID generator cannot be nil"
	ErrMissingShardID     BattleError = "shard IDs cannot be empty"
)
