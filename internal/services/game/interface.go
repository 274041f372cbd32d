package game

//go:generate mockgen -package=mocks -destination=mocks/mock_provisioner.go github.com/KirkDiggler/mafia/internal/services/game Provisioner,Directory

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Audience is anything the game can send a message to
type Audience interface {
	// ID is the platform identifier of the channel or user
	ID() string

	// Send delivers a message. Sends are fire-and-forget for the game, the
	// returned error is only used to detect blocked private messages.
	Send(ctx context.Context, msg *models.Message) error
}

// Player is a participant. Sending to a Player is a private message.
type Player interface {
	Audience

	// Mention returns the text that pings the player in a channel
	Mention() string

	// DisplayName returns the name shown in rosters
	DisplayName() string
}

// Provisioner manages the private mafia channel
type Provisioner interface {
	// CreateRestrictedChannel creates a channel only the members and the bot can see
	CreateRestrictedChannel(ctx context.Context, input *CreateRestrictedChannelInput) (*CreateRestrictedChannelOutput, error)

	// DeleteChannel removes a channel created by CreateRestrictedChannel
	DeleteChannel(ctx context.Context, input *DeleteChannelInput) error

	// RevokeMember removes a member's access to a restricted channel
	RevokeMember(ctx context.Context, input *RevokeMemberInput) error
}

// Directory gives a game the view of other games it needs
type Directory interface {
	// ActiveGameFor returns the channel of the running or waiting game the
	// player is part of
	ActiveGameFor(playerID string) (string, bool)

	// BindSubChannel routes messages in sub to the game in parent
	BindSubChannel(sub, parent string)

	// UnbindSubChannel stops routing messages in sub
	UnbindSubChannel(sub string)
}
