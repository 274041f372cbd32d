package models

import "time"

// GameResult is the record kept for a finished game
type GameResult struct {
	// ID is the unique identifier of the result
	ID string `json:"id"`

	// GameID is the identifier of the game instance
	GameID string `json:"game_id"`

	// GuildID is the guild the game was played in
	GuildID string `json:"guild_id"`

	// ChannelID is the channel the game was played in
	ChannelID string `json:"channel_id"`

	// Winner is the side that won
	Winner Win `json:"winner"`

	// Rounds is the number of the last round played
	Rounds int `json:"rounds"`

	// Mafia are the display names of everyone dealt into the mafia
	Mafia []string `json:"mafia"`

	// Villagers are the display names of everyone else
	Villagers []string `json:"villagers"`

	// StartedAt is when roles were allocated
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the game ended
	EndedAt time.Time `json:"ended_at"`
}
