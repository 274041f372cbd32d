package models

// GameState represents the phase a game is in
type GameState string

const (
	// GameStateLobby indicates a game is waiting for players to join
	GameStateLobby GameState = "lobby"

	// GameStateNight indicates the mafia, doctor and detective are choosing
	GameStateNight GameState = "night"

	// GameStateDay indicates the village is accusing players
	GameStateDay GameState = "day"

	// GameStateEnded indicates a game has finished and can be restarted
	GameStateEnded GameState = "ended"
)

// IsLobby returns true if the game is waiting for players
func (s GameState) IsLobby() bool {
	return s == GameStateLobby
}

// IsRunning returns true if roles have been allocated and the game has not ended
func (s GameState) IsRunning() bool {
	return s == GameStateNight || s == GameStateDay
}

// IsEnded returns true if the game has finished
func (s GameState) IsEnded() bool {
	return s == GameStateEnded
}

// Win identifies which side won a game
type Win string

const (
	// WinNone means the game ended without a winner
	WinNone Win = "none"

	// WinVillagers means every mafia member is dead
	WinVillagers Win = "villagers"

	// WinMafia means the mafia have equalled or outnumbered the villagers
	WinMafia Win = "mafia"
)

// Role is the part a player plays in a game
type Role string

const (
	RoleMafia     Role = "mafia"
	RoleDoctor    Role = "doctor"
	RoleDetective Role = "detective"
	RoleVillager  Role = "villager"
)

// DeathCause describes how a player left the game
type DeathCause string

const (
	// DeathCauseKilled is a night kill by the mafia
	DeathCauseKilled DeathCause = "killed"

	// DeathCausePurged is a day purge by the village
	DeathCausePurged DeathCause = "purged"

	// DeathCauseLeft is a player leaving a running game
	DeathCauseLeft DeathCause = "left"
)
