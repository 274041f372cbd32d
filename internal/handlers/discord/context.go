package discord

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/game"
)

// commandContext is everything a guard or command needs about a message
type commandContext struct {
	authorID  string
	author    *member
	guildID   string
	channelID string
	isDirect  bool
	content   string

	command string
	args    []string

	mentions        []game.Player
	mentionIDs      []string
	roleMentions    []string
	channelMentions []string

	// roleIDs are the author's roles in the guild
	roleIDs []string

	// resolved on demand for guarded commands
	memberResolved bool
	isGuildOwner   bool
	permissions    int64

	guild *models.GuildSettings
	bot   *models.BotSettings

	channel game.Audience
}

func (cc *commandContext) reply(ctx context.Context, content string) error {
	return cc.channel.Send(ctx, &models.Message{Content: content})
}

func (cc *commandContext) replyEmbed(ctx context.Context, e *models.Embed) error {
	return cc.channel.Send(ctx, &models.Message{Embed: e})
}

type commandFunc func(b *Bot, ctx context.Context, cc *commandContext) error

// route is a command and the guard it runs behind
type route struct {
	guard  Guard
	handle commandFunc

	// member guards need the author's guild ownership and permissions
	member bool
}
