package game

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/log"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	resultRepo "github.com/KirkDiggler/mafia/internal/repositories/result"
	settingsRepo "github.com/KirkDiggler/mafia/internal/repositories/settings"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

const (
	// DefaultMinPlayers is the fewest players a game can start with
	DefaultMinPlayers = 5

	// DefaultMaxPlayers is the most players a game can hold
	DefaultMaxPlayers = 15

	// MafiaChannelName is the name of the private mafia channel
	MafiaChannelName = "the-mafia"

	// SkipVote is recorded for a player who skipped the day vote
	SkipVote = ""
)

// Config holds configuration for a game
type Config struct {
	// Player limits, defaults are used when zero
	MinPlayers int
	MaxPlayers int

	// GuildID is the guild the game is played in
	GuildID string

	// Channel is where the game is played
	Channel Audience

	// Repository dependencies
	SettingsRepo settingsRepo.Repository
	// ResultRepo is optional, results are not recorded without it
	ResultRepo resultRepo.Repository

	// Service dependencies
	Provisioner   Provisioner
	Directory     Directory
	Narrator      messaging.Service
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional, the default logger is used without it
	Logger *log.Logger
}

// OnMessageInput is a chat message forwarded to a game
type OnMessageInput struct {
	// Author sent the message
	Author Player

	// ChannelID is where the message was sent
	ChannelID string

	// IsDirect is true for private messages to the bot
	IsDirect bool

	// Content is the raw message text including the prefix
	Content string

	// Mentions are the users mentioned in the message
	Mentions []Player
}

// CreateRestrictedChannelInput contains parameters for creating the mafia channel
type CreateRestrictedChannelInput struct {
	GuildID string

	// ParentChannelID is the game channel, the new channel is placed next to it
	ParentChannelID string

	Name    string
	Members []Player
}

// CreateRestrictedChannelOutput contains the created channel
type CreateRestrictedChannelOutput struct {
	Channel Audience
}

// DeleteChannelInput contains parameters for deleting a channel
type DeleteChannelInput struct {
	ChannelID string
}

// RevokeMemberInput contains parameters for revoking channel access
type RevokeMemberInput struct {
	ChannelID string
	PlayerID  string
}

// command is a parsed chat message
type command struct {
	author    Player
	channelID string
	isDirect  bool
	args      []string
	mentions  []Player
}

type handlerFunc func(g *Game, ctx context.Context, cmd *command)
