package discord

import (
	"net/http"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeSession records REST calls instead of talking to Discord
type fakeSession struct {
	mu sync.Mutex

	sent        map[string][]*discordgo.MessageSend
	created     []discordgo.GuildChannelCreateData
	deleted     []string
	revoked     []string
	guild       *discordgo.Guild
	permissions int64

	// blocked users refuse direct messages
	blocked   map[string]bool
	createErr error

	left []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		sent:    make(map[string][]*discordgo.MessageSend),
		blocked: make(map[string]bool),
	}
}

func forbidden() error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden, Status: "403 Forbidden"}}
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.HasPrefix(channelID, "dm-") && f.blocked[strings.TrimPrefix(channelID, "dm-")] {
		return nil, forbidden()
	}
	f.sent[channelID] = append(f.sent[channelID], data)
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSession) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: "dm-" + recipientID, Type: discordgo.ChannelTypeDM}, nil
}

func (f *fakeSession) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: channelID, ParentID: "category-1"}, nil
}

func (f *fakeSession) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, data)
	return &discordgo.Channel{ID: "mafia-1", GuildID: guildID, Name: data.Name}, nil
}

func (f *fakeSession) ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, channelID)
	return &discordgo.Channel{ID: channelID}, nil
}

func (f *fakeSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.revoked = append(f.revoked, targetID)
	return nil
}

func (f *fakeSession) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if f.guild == nil {
		return &discordgo.Guild{ID: guildID}, nil
	}
	return f.guild, nil
}

func (f *fakeSession) UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error) {
	return f.permissions, nil
}

func (f *fakeSession) GuildLeave(guildID string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.left = append(f.left, guildID)
	return nil
}

// texts returns the visible text of everything sent to a channel
func (f *fakeSession) texts(channelID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, m := range f.sent[channelID] {
		text := m.Content
		for _, e := range m.Embeds {
			text += e.Title + "\n" + e.Description
			for _, field := range e.Fields {
				text += "\n" + field.Name + " " + field.Value
			}
		}
		out = append(out, text)
	}
	return out
}

func (f *fakeSession) lastText(channelID string) string {
	texts := f.texts(channelID)
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}
