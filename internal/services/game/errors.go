package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrPermissionDenied is returned by a Provisioner or Audience when the
	// platform refuses the bot a permission it needs
	ErrPermissionDenied GameError = "missing permission"

	// ErrDirectMessagesBlocked is returned by a Player when they cannot be
	// sent a private message
	ErrDirectMessagesBlocked GameError = "direct messages blocked"

	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilChannel       GameError = "channel cannot be nil"
	ErrNilSettingsRepo  GameError = "settings repository cannot be nil"
	ErrNilProvisioner   GameError = "provisioner cannot be nil"
	ErrNilDirectory     GameError = "directory cannot be nil"
	ErrNilNarrator      GameError = "narrator cannot be nil"
	ErrNilShuffler      GameError = "shuffler cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
	ErrInvalidPlayers   GameError = "invalid player limits"
)
