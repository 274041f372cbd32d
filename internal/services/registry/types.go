package registry

import "github.com/KirkDiggler/mafia/internal/services/game"

// Config holds configuration for the registry
type Config struct {
	// Game is the template for new games. GuildID, Channel and Directory are
	// set by the registry for each game.
	Game *game.Config
}

// CreateInput contains parameters for creating a game
type CreateInput struct {
	GuildID string
	Channel game.Audience
}
