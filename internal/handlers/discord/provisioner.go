package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/mafia/internal/services/game"
)

const (
	memberAllow = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages
	botAllow    = memberAllow | discordgo.PermissionEmbedLinks | discordgo.PermissionManageChannels | discordgo.PermissionManageRoles
)

// Provisioner creates the private mafia channels through the Discord API
type Provisioner struct {
	session restSession
	botID   func() string
}

var _ game.Provisioner = (*Provisioner)(nil)

// NewProvisioner creates a provisioner. botID returns the bot's user ID,
// which is only known once the session is connected.
func NewProvisioner(session restSession, botID func() string) *Provisioner {
	return &Provisioner{session: session, botID: botID}
}

// CreateRestrictedChannel creates a text channel in the same category as the
// game channel that only the members and the bot can see
func (p *Provisioner) CreateRestrictedChannel(ctx context.Context, input *game.CreateRestrictedChannelInput) (*game.CreateRestrictedChannelOutput, error) {
	if input == nil {
		return nil, game.ErrNilInput
	}

	parent, err := p.session.Channel(input.ParentChannelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", input.ParentChannelID, translateError(err, game.ErrPermissionDenied))
	}

	overwrites := []*discordgo.PermissionOverwrite{
		{
			// the @everyone role shares the guild's ID
			ID:   input.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    p.botID(),
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: botAllow,
		},
	}
	for _, m := range input.Members {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    m.ID(),
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: memberAllow,
		})
	}

	channel, err := p.session.GuildChannelCreateComplex(input.GuildID, discordgo.GuildChannelCreateData{
		Name:                 input.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             parent.ParentID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", translateError(err, game.ErrPermissionDenied))
	}

	return &game.CreateRestrictedChannelOutput{
		Channel: newChannelAudience(p.session, channel.ID),
	}, nil
}

// DeleteChannel deletes a channel
func (p *Provisioner) DeleteChannel(ctx context.Context, input *game.DeleteChannelInput) error {
	if input == nil {
		return game.ErrNilInput
	}

	if _, err := p.session.ChannelDelete(input.ChannelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete channel %s: %w", input.ChannelID, translateError(err, game.ErrPermissionDenied))
	}
	return nil
}

// RevokeMember stops a member seeing a channel
func (p *Provisioner) RevokeMember(ctx context.Context, input *game.RevokeMemberInput) error {
	if input == nil {
		return game.ErrNilInput
	}

	err := p.session.ChannelPermissionSet(input.ChannelID, input.PlayerID,
		discordgo.PermissionOverwriteTypeMember, 0, memberAllow, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to revoke %s from channel %s: %w", input.PlayerID, input.ChannelID, translateError(err, game.ErrPermissionDenied))
	}
	return nil
}
