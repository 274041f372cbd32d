package discord

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/mafia/internal/common/log"
	"github.com/KirkDiggler/mafia/internal/models"
	resultRepo "github.com/KirkDiggler/mafia/internal/repositories/result"
	settingsRepo "github.com/KirkDiggler/mafia/internal/repositories/settings"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/registry"
)

const botName = "MafiaBot"

var channelMention = regexp.MustCompile(`<#(\d+)>`)

// Bot routes Discord messages to guild commands and games
type Bot struct {
	session *discordgo.Session
	rest    restSession
	config  *Config

	registry     *registry.Registry
	settingsRepo settingsRepo.Repository
	resultRepo   resultRepo.Repository

	// guildCount reports how many guilds the bot is in
	guildCount func() int
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened Discord session
	Session *discordgo.Session

	Registry     *registry.Registry
	SettingsRepo settingsRepo.Repository

	// ResultRepo is optional, it backs the stats command
	ResultRepo resultRepo.Repository

	// OwnerID is the Discord user who owns the bot
	OwnerID string

	// BotPrefix is the prefix for bot management commands
	BotPrefix string

	// OperatorChannelID is an optional channel that unexpected errors are posted to
	OperatorChannelID string

	// Shutdown is called by the stop command once every game is destroyed
	Shutdown func()
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	bot, err := newBot(cfg, cfg.Session)
	if err != nil {
		return nil, err
	}

	bot.guildCount = func() int {
		if cfg.Session.State == nil {
			return 0
		}
		return len(cfg.Session.State.Guilds)
	}

	cfg.Session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	cfg.Session.AddHandler(bot.onMessageCreate)
	cfg.Session.AddHandler(bot.onGuildCreate)
	cfg.Session.AddHandler(bot.onGuildDelete)

	return bot, nil
}

func newBot(cfg *Config, rest restSession) (*Bot, error) {
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	return &Bot{
		session:      cfg.Session,
		rest:         rest,
		config:       cfg,
		registry:     cfg.Registry,
		settingsRepo: cfg.SettingsRepo,
		resultRepo:   cfg.ResultRepo,
		guildCount:   func() int { return 0 },
	}, nil
}

// BotUserID returns a function that reports the bot's own user ID once the
// session is connected
func BotUserID(session *discordgo.Session) func() string {
	return func() string {
		if session.State == nil || session.State.User == nil {
			return ""
		}
		return session.State.User.ID
	}
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info("%s is now running", botName)
	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx := context.Background()
	defer b.recoverAndReport(ctx, "message "+m.ID)

	if err := b.handleMessage(ctx, m.Message); err != nil {
		log.Error("failed to handle message %s: %v", m.ID, err)
		b.report(ctx, err)
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()
	defer b.recoverAndReport(ctx, "guild create "+g.ID)

	if err := b.handleGuildCreate(ctx, g.Guild); err != nil {
		log.Error("failed to set up guild %s: %v", g.ID, err)
		b.report(ctx, err)
	}
}

func (b *Bot) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	ctx := context.Background()
	defer b.recoverAndReport(ctx, "guild delete "+g.ID)

	if err := b.handleGuildDelete(ctx, g.Guild); err != nil {
		log.Error("failed to remove guild %s: %v", g.ID, err)
		b.report(ctx, err)
	}
}

// handleGuildCreate creates default settings for a guild seen for the first
// time and introduces the bot to its owner
func (b *Bot) handleGuildCreate(ctx context.Context, guild *discordgo.Guild) error {
	if guild == nil || guild.Unavailable {
		return nil
	}

	_, err := b.settingsRepo.GetGuildSettings(ctx, &settingsRepo.GetGuildSettingsInput{GuildID: guild.ID})
	if err == nil {
		return nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return err
	}

	settings := models.DefaultGuildSettings(guild.ID)
	if err := b.settingsRepo.SaveGuildSettings(ctx, &settingsRepo.SaveGuildSettingsInput{Settings: settings}); err != nil {
		return err
	}
	log.Info("joined guild %s (%s)", guild.ID, guild.Name)

	if guild.OwnerID == "" {
		return nil
	}

	owner := newMember(b.rest, &discordgo.User{ID: guild.OwnerID}, "")
	intro := fmt.Sprintf("Thanks for inviting %s into %s! The default prefix this bot uses to listen for instructions in your Guild is `%s`, to change this prefix message `%ssettings prefix <prefix>` from within your Guild.",
		botName, guild.Name, settings.Prefix, settings.Prefix)
	if err := owner.Send(ctx, &models.Message{Content: intro}); err != nil {
		log.Warn("failed to send intro to owner of guild %s: %v", guild.ID, err)
	}

	return nil
}

// handleGuildDelete forgets a guild the bot was removed from
func (b *Bot) handleGuildDelete(ctx context.Context, guild *discordgo.Guild) error {
	if guild == nil || guild.Unavailable {
		return nil
	}

	log.Info("left guild %s", guild.ID)
	return b.forgetGuild(ctx, guild.ID)
}

// forgetGuild destroys the guild's games and deletes its settings
func (b *Bot) forgetGuild(ctx context.Context, guildID string) error {
	for _, g := range b.registry.GuildGames(guildID) {
		if err := b.registry.Destroy(ctx, g.ChannelID()); err != nil && !errors.Is(err, registry.ErrGameNotFound) {
			log.Warn("failed to destroy game in channel %s: %v", g.ChannelID(), err)
		}
	}

	return b.settingsRepo.DeleteGuildSettings(ctx, &settingsRepo.DeleteGuildSettingsInput{GuildID: guildID})
}

// handleMessage dispatches guild commands, game commands and bot commands
func (b *Bot) handleMessage(ctx context.Context, m *discordgo.Message) error {
	cc := b.newCommandContext(ctx, m)

	var guildPrefix string
	var directGame *game.Game
	if !cc.isDirect {
		guildPrefix = cc.guild.Prefix
	} else if channelID, ok := b.registry.ActiveGameFor(cc.authorID); ok {
		if g, ok := b.registry.Get(channelID); ok {
			directGame = g
			guildPrefix = b.loadGuildSettings(ctx, g.GuildID()).Prefix
		}
	}

	if guildPrefix != "" && strings.HasPrefix(cc.content, guildPrefix) {
		cc.command, cc.args = parseCommand(cc.content, guildPrefix)

		matched := false
		for _, routes := range []map[string]route{guildRoutes, gameRoutes} {
			r, ok := routes[cc.command]
			if !ok {
				continue
			}
			matched = true
			if err := b.run(ctx, r, cc); err != nil {
				return err
			}
		}

		if !matched {
			if err := b.forward(ctx, cc, directGame); err != nil {
				return err
			}
		}
	}

	if cc.bot.Prefix != "" && strings.HasPrefix(cc.content, cc.bot.Prefix) {
		cc.command, cc.args = parseCommand(cc.content, cc.bot.Prefix)
		if r, ok := botRoutes[cc.command]; ok {
			return b.run(ctx, r, cc)
		}
	}

	return nil
}

func (b *Bot) run(ctx context.Context, r route, cc *commandContext) error {
	if r.guard != nil {
		if r.member {
			b.resolveMember(ctx, cc)
		}
		if d := r.guard(cc); !d.Allowed {
			log.Debug("command %s denied for %s: %s", cc.command, cc.authorID, d.Reason)
			return nil
		}
	}
	return r.handle(b, ctx, cc)
}

// forward hands a message to the game it belongs to
func (b *Bot) forward(ctx context.Context, cc *commandContext, directGame *game.Game) error {
	var g *game.Game
	if cc.isDirect {
		g = directGame
	} else if found, ok := b.registry.Lookup(cc.channelID); ok {
		// game channels must still be active, mafia channels always route
		if found.ChannelID() != cc.channelID || cc.guild.IsActiveChannel(cc.channelID) {
			g = found
		}
	}
	if g == nil {
		return nil
	}

	return g.OnMessage(ctx, &game.OnMessageInput{
		Author:    cc.author,
		ChannelID: cc.channelID,
		IsDirect:  cc.isDirect,
		Content:   cc.content,
		Mentions:  cc.mentions,
	})
}

func (b *Bot) newCommandContext(ctx context.Context, m *discordgo.Message) *commandContext {
	cc := &commandContext{
		authorID:  m.Author.ID,
		channelID: m.ChannelID,
		guildID:   m.GuildID,
		isDirect:  m.GuildID == "",
		content:   strings.TrimSpace(m.Content),
		channel:   newChannelAudience(b.rest, m.ChannelID),
		bot:       b.loadBotSettings(ctx),
	}

	var nick string
	if m.Member != nil {
		nick = m.Member.Nick
		cc.roleIDs = m.Member.Roles
	}
	cc.author = newMember(b.rest, m.Author, nick)

	for _, u := range m.Mentions {
		cc.mentions = append(cc.mentions, newMember(b.rest, u, ""))
		cc.mentionIDs = append(cc.mentionIDs, u.ID)
	}
	cc.roleMentions = m.MentionRoles
	for _, match := range channelMention.FindAllStringSubmatch(m.Content, -1) {
		cc.channelMentions = append(cc.channelMentions, match[1])
	}

	if !cc.isDirect {
		cc.guild = b.loadGuildSettings(ctx, m.GuildID)
	}

	return cc
}

// resolveMember looks up the author's standing in the guild for guards
func (b *Bot) resolveMember(ctx context.Context, cc *commandContext) {
	if cc.isDirect || cc.memberResolved {
		return
	}
	cc.memberResolved = true

	guild, err := b.rest.Guild(cc.guildID, discordgo.WithContext(ctx))
	if err != nil {
		log.Warn("failed to get guild %s: %v", cc.guildID, err)
	} else {
		cc.isGuildOwner = guild.OwnerID == cc.authorID
	}

	permissions, err := b.rest.UserChannelPermissions(cc.authorID, cc.channelID, discordgo.WithContext(ctx))
	if err != nil {
		log.Warn("failed to get permissions of %s in %s: %v", cc.authorID, cc.channelID, err)
		return
	}
	cc.permissions = permissions
}

func (b *Bot) loadGuildSettings(ctx context.Context, guildID string) *models.GuildSettings {
	settings, err := b.settingsRepo.GetGuildSettings(ctx, &settingsRepo.GetGuildSettingsInput{GuildID: guildID})
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			log.Warn("failed to load settings for guild %s, using defaults: %v", guildID, err)
		}
		return models.DefaultGuildSettings(guildID)
	}
	if settings.Prefix == "" {
		settings.Prefix = models.DefaultGuildPrefix
	}
	return settings
}

func (b *Bot) loadBotSettings(ctx context.Context) *models.BotSettings {
	settings, err := b.settingsRepo.GetBotSettings(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			log.Warn("failed to load bot settings, using defaults: %v", err)
		}
		settings = &models.BotSettings{Managers: []string{}}
	}

	if settings.Prefix == "" {
		settings.Prefix = b.config.BotPrefix
	}
	if settings.Prefix == "" {
		settings.Prefix = models.DefaultBotPrefix
	}
	if b.config.OwnerID != "" {
		settings.OwnerID = b.config.OwnerID
	}
	return settings
}

// report posts an error to the operator channel if one is configured
func (b *Bot) report(ctx context.Context, err error) {
	if b.config.OperatorChannelID == "" {
		return
	}

	operator := newChannelAudience(b.rest, b.config.OperatorChannelID)
	if sendErr := operator.Send(ctx, &models.Message{Content: fmt.Sprintf(":warning: %v", err)}); sendErr != nil {
		log.Error("failed to report error to operator channel: %v", sendErr)
	}
}

func (b *Bot) recoverAndReport(ctx context.Context, what string) {
	if r := recover(); r != nil {
		err := fmt.Errorf("panic handling %s: %v", what, r)
		log.Error("%v\n%s", err, debug.Stack())
		b.report(ctx, err)
	}
}

// parseCommand splits a prefixed message into its lower cased command and
// the arguments after it
func parseCommand(content, prefix string) (string, []string) {
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
