package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/game"
)

// channelAudience sends to a text channel
type channelAudience struct {
	session   restSession
	channelID string
}

func newChannelAudience(session restSession, channelID string) *channelAudience {
	return &channelAudience{session: session, channelID: channelID}
}

func (c *channelAudience) ID() string {
	return c.channelID
}

func (c *channelAudience) Send(ctx context.Context, msg *models.Message) error {
	_, err := c.session.ChannelMessageSendComplex(c.channelID, renderMessage(msg), discordgo.WithContext(ctx))
	return translateError(err, game.ErrPermissionDenied)
}

// member is a user taking part in a game, sending to them is a DM
type member struct {
	session restSession
	user    *discordgo.User
	nick    string

	mu          sync.Mutex
	dmChannelID string
}

func newMember(session restSession, user *discordgo.User, nick string) *member {
	return &member{session: session, user: user, nick: nick}
}

func (m *member) ID() string {
	return m.user.ID
}

func (m *member) Mention() string {
	return m.user.Mention()
}

func (m *member) DisplayName() string {
	if m.nick != "" {
		return m.nick
	}
	if m.user.GlobalName != "" {
		return m.user.GlobalName
	}
	return m.user.Username
}

func (m *member) Send(ctx context.Context, msg *models.Message) error {
	channelID, err := m.directChannel(ctx)
	if err != nil {
		return translateError(err, game.ErrDirectMessagesBlocked)
	}

	_, err = m.session.ChannelMessageSendComplex(channelID, renderMessage(msg), discordgo.WithContext(ctx))
	return translateError(err, game.ErrDirectMessagesBlocked)
}

func (m *member) directChannel(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dmChannelID != "" {
		return m.dmChannelID, nil
	}

	channel, err := m.session.UserChannelCreate(m.user.ID, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	m.dmChannelID = channel.ID
	return m.dmChannelID, nil
}
