package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mafia/internal/common/log"
	"github.com/KirkDiggler/mafia/internal/models"
	resultRepo "github.com/KirkDiggler/mafia/internal/repositories/result"
	settingsRepo "github.com/KirkDiggler/mafia/internal/repositories/settings"
	"github.com/KirkDiggler/mafia/internal/services/registry"
)

// recentResults is how many finished games the stats command lists
const recentResults = 5

var guildRoutes = map[string]route{
	"help":     {handle: guildHelp},
	"settings": {guard: GuildManager, handle: guildSettings, member: true},
	"enable":   {guard: GuildManager, handle: guildEnable, member: true},
	"disable":  {guard: GuildManager, handle: guildDisable, member: true},
	"here":     {guard: GuildManager, handle: guildUse, member: true},
	"use":      {guard: GuildManager, handle: guildUse, member: true},
	"remove":   {guard: GuildManager, handle: guildRemove, member: true},
	"stats":    {guard: GuildManager, handle: guildStats, member: true},
}

var gameRoutes = map[string]route{
	"mafia":   {guard: OnlyActiveChannel, handle: createGame},
	"destroy": {guard: OnlyActiveChannel, handle: destroyGame},
}

var botRoutes = map[string]route{
	"help":     {guard: BotManager, handle: botHelp},
	"stats":    {guard: BotManager, handle: botStats},
	"settings": {guard: BotManager, handle: botSettings},
	"leave":    {guard: All(BotManager, OnlyGuild), handle: botLeave},
	"stop":     {guard: BotOwner, handle: botStop},
}

func createGame(b *Bot, ctx context.Context, cc *commandContext) error {
	if cc.guild.Disabled {
		return cc.reply(ctx, fmt.Sprintf("%s is disabled in this server", botName))
	}

	_, err := b.registry.Create(ctx, &registry.CreateInput{
		GuildID: cc.guildID,
		Channel: cc.channel,
	})
	if errors.Is(err, registry.ErrGameAlreadyExists) {
		return b.forward(ctx, cc, nil)
	}
	return err
}

func destroyGame(b *Bot, ctx context.Context, cc *commandContext) error {
	err := b.registry.Destroy(ctx, cc.channelID)
	if errors.Is(err, registry.ErrGameNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return cc.reply(ctx, "The game was destroyed!")
}

func guildHelp(b *Bot, ctx context.Context, cc *commandContext) error {
	prefix := models.DefaultGuildPrefix
	if cc.guild != nil {
		prefix = cc.guild.Prefix
	}

	lines := []string{
		fmt.Sprintf("`%smafia` start a game in this channel", prefix),
		fmt.Sprintf("`%sdestroy` end the game in this channel", prefix),
		fmt.Sprintf("`%shere` or `%suse #channel` let games be played in a channel", prefix, prefix),
		fmt.Sprintf("`%sremove` stop games being played in this channel", prefix),
		fmt.Sprintf("`%senable` / `%sdisable` turn %s on or off in this server", prefix, prefix, botName),
		fmt.Sprintf("`%ssettings [prefix|adduser|removeuser|addrole|removerole|wincommand]` change settings", prefix),
		fmt.Sprintf("`%sstats` show games in this server", prefix),
	}

	return cc.replyEmbed(ctx, &models.Embed{
		Title:       botName,
		Description: strings.Join(lines, "\n"),
		Colour:      models.ColourBlue,
	})
}

func guildSettings(b *Bot, ctx context.Context, cc *commandContext) error {
	settings := cc.guild
	changed := false

	if len(cc.args) > 0 {
		switch strings.ToLower(cc.args[0]) {
		case "prefix":
			if len(cc.args) > 1 {
				settings.Prefix = cc.args[1]
				changed = true
			}
		case "adduser":
			if len(cc.mentionIDs) > 0 {
				settings.ManageUsers = models.AddString(settings.ManageUsers, cc.mentionIDs[0])
				changed = true
			}
		case "removeuser":
			if len(cc.mentionIDs) > 0 {
				settings.ManageUsers = models.RemoveString(settings.ManageUsers, cc.mentionIDs[0])
				changed = true
			}
		case "addrole":
			if len(cc.roleMentions) > 0 {
				settings.ManageRoles = models.AddString(settings.ManageRoles, cc.roleMentions[0])
				changed = true
			}
		case "removerole":
			if len(cc.roleMentions) > 0 {
				settings.ManageRoles = models.RemoveString(settings.ManageRoles, cc.roleMentions[0])
				changed = true
			}
		case "wincommand":
			settings.WinCommand = strings.Join(cc.args[1:], " ")
			changed = true
		}
	}

	if changed {
		if err := b.saveGuildSettings(ctx, settings); err != nil {
			return err
		}
	}

	return cc.replyEmbed(ctx, guildSettingsEmbed(settings))
}

func guildEnable(b *Bot, ctx context.Context, cc *commandContext) error {
	cc.guild.Disabled = false
	if err := b.saveGuildSettings(ctx, cc.guild); err != nil {
		return err
	}
	return cc.reply(ctx, fmt.Sprintf("%s is enabled in this server", botName))
}

func guildDisable(b *Bot, ctx context.Context, cc *commandContext) error {
	cc.guild.Disabled = true
	if err := b.saveGuildSettings(ctx, cc.guild); err != nil {
		return err
	}
	return cc.reply(ctx, fmt.Sprintf("%s is disabled in this server", botName))
}

// guildUse activates the current channel, or the first mentioned one for use
func guildUse(b *Bot, ctx context.Context, cc *commandContext) error {
	channelID := cc.channelID
	if cc.command == "use" {
		if len(cc.channelMentions) == 0 {
			return cc.reply(ctx, "Mention the channel to use, like `use #channel`")
		}
		channelID = cc.channelMentions[0]
	}

	if cc.guild.IsActiveChannel(channelID) {
		return cc.reply(ctx, fmt.Sprintf("%s is already active in <#%s>", botName, channelID))
	}

	cc.guild.ActiveChannels = models.AddString(cc.guild.ActiveChannels, channelID)
	if err := b.saveGuildSettings(ctx, cc.guild); err != nil {
		return err
	}

	return cc.reply(ctx, fmt.Sprintf("%s now active in <#%s> - please check I have `manage_channels` permissions for this channel category or I won't be able to work :cry:", botName, channelID))
}

func guildRemove(b *Bot, ctx context.Context, cc *commandContext) error {
	if !cc.guild.IsActiveChannel(cc.channelID) {
		return nil
	}

	cc.guild.ActiveChannels = models.RemoveString(cc.guild.ActiveChannels, cc.channelID)
	if err := b.saveGuildSettings(ctx, cc.guild); err != nil {
		return err
	}

	return cc.reply(ctx, fmt.Sprintf("No longer active in <#%s>", cc.channelID))
}

func guildStats(b *Bot, ctx context.Context, cc *commandContext) error {
	active := len(b.registry.GuildGames(cc.guildID))
	embed := &models.Embed{
		Title:       botName,
		Description: fmt.Sprintf("There %s %d active game%s in this server", plural(active, "is", "are"), active, plural(active, "", "s")),
		Colour:      models.ColourPink,
	}

	if b.resultRepo != nil {
		out, err := b.resultRepo.ListResults(ctx, &resultRepo.ListResultsInput{GuildID: cc.guildID, Limit: recentResults})
		if err != nil {
			return err
		}

		lines := make([]string, 0, len(out.Results))
		for _, r := range out.Results {
			lines = append(lines, resultLine(r))
		}
		if len(lines) > 0 {
			embed.Fields = append(embed.Fields, &models.EmbedField{
				Name:  "Recent games",
				Value: strings.Join(lines, "\n"),
			})
		}
	}

	return cc.replyEmbed(ctx, embed)
}

func botHelp(b *Bot, ctx context.Context, cc *commandContext) error {
	prefix := cc.bot.Prefix
	lines := []string{
		fmt.Sprintf("`%sstats` show where %s is running", prefix, botName),
		fmt.Sprintf("`%ssettings [prefix|adduser|removeuser]` change bot settings", prefix),
		fmt.Sprintf("`%sleave` make %s leave this server", prefix, botName),
		fmt.Sprintf("`%sstop` destroy every game and shut %s down", prefix, botName),
	}

	return cc.replyEmbed(ctx, &models.Embed{
		Title:       botName,
		Description: strings.Join(lines, "\n"),
		Colour:      models.ColourBlue,
	})
}

func botStats(b *Bot, ctx context.Context, cc *commandContext) error {
	guilds := b.guildCount()
	games := b.registry.Count()

	return cc.replyEmbed(ctx, &models.Embed{
		Title: botName,
		Description: fmt.Sprintf("Currently running on %d Guild%s, with %d active game%s",
			guilds, plural(guilds, "", "s"), games, plural(games, "", "s")),
		Colour: models.ColourPink,
	})
}

func botSettings(b *Bot, ctx context.Context, cc *commandContext) error {
	settings := cc.bot
	changed := false

	if len(cc.args) > 0 {
		switch strings.ToLower(cc.args[0]) {
		case "prefix":
			if len(cc.args) > 1 {
				settings.Prefix = cc.args[1]
				changed = true
			}
		case "adduser":
			if len(cc.mentionIDs) > 0 {
				settings.Managers = models.AddString(settings.Managers, cc.mentionIDs[0])
				changed = true
			}
		case "removeuser":
			if len(cc.mentionIDs) > 0 {
				settings.Managers = models.RemoveString(settings.Managers, cc.mentionIDs[0])
				changed = true
			}
		}
	}

	if changed {
		if err := b.settingsRepo.SaveBotSettings(ctx, &settingsRepo.SaveBotSettingsInput{Settings: settings}); err != nil {
			return err
		}
	}

	return cc.replyEmbed(ctx, &models.Embed{
		Title: botName,
		Fields: []*models.EmbedField{
			{Name: "Prefix", Value: fmt.Sprintf("`%s`", settings.Prefix)},
			{Name: "Managers", Value: userList(settings.Managers)},
		},
		Colour: models.ColourBlue,
	})
}

// botLeave destroys the guild's games and takes the bot out of the guild
func botLeave(b *Bot, ctx context.Context, cc *commandContext) error {
	name := cc.guildID
	if guild, err := b.rest.Guild(cc.guildID); err == nil && guild.Name != "" {
		name = guild.Name
	}

	if err := cc.reply(ctx, fmt.Sprintf("Leaving %s", name)); err != nil {
		log.Warn("failed to announce leaving guild %s: %v", cc.guildID, err)
	}

	if err := b.rest.GuildLeave(cc.guildID); err != nil {
		return fmt.Errorf("failed to leave guild %s: %w", cc.guildID, err)
	}
	log.Info("left guild %s on request of %s", cc.guildID, cc.authorID)

	return b.forgetGuild(ctx, cc.guildID)
}

// botStop destroys every game then shuts the process down
func botStop(b *Bot, ctx context.Context, cc *commandContext) error {
	games := b.registry.Count()
	if err := cc.reply(ctx, fmt.Sprintf("Destroying %d game%s and shutting down", games, plural(games, "", "s"))); err != nil {
		log.Warn("failed to announce shutdown: %v", err)
	}

	b.registry.DestroyAll(ctx)
	log.Info("shutdown requested by %s", cc.authorID)

	if b.config.Shutdown != nil {
		b.config.Shutdown()
	}
	return nil
}

func (b *Bot) saveGuildSettings(ctx context.Context, settings *models.GuildSettings) error {
	return b.settingsRepo.SaveGuildSettings(ctx, &settingsRepo.SaveGuildSettingsInput{Settings: settings})
}

func guildSettingsEmbed(s *models.GuildSettings) *models.Embed {
	winCommand := "none"
	if s.WinCommand != "" {
		winCommand = fmt.Sprintf("`%s`", s.WinCommand)
	}

	channels := make([]string, 0, len(s.ActiveChannels))
	for _, id := range s.ActiveChannels {
		channels = append(channels, fmt.Sprintf("<#%s>", id))
	}
	roles := make([]string, 0, len(s.ManageRoles))
	for _, id := range s.ManageRoles {
		roles = append(roles, fmt.Sprintf("<@&%s>", id))
	}

	status := "enabled"
	if s.Disabled {
		status = "disabled"
	}

	return &models.Embed{
		Title:       "Settings",
		Description: fmt.Sprintf("%s is %s in this server", botName, status),
		Colour:      models.ColourBlue,
		Fields: []*models.EmbedField{
			{Name: "Prefix", Value: fmt.Sprintf("`%s`", s.Prefix)},
			{Name: "Win command", Value: winCommand},
			{Name: "Active channels", Value: orNone(channels)},
			{Name: "Manager users", Value: userList(s.ManageUsers)},
			{Name: "Manager roles", Value: orNone(roles)},
		},
	}
}

func resultLine(r *models.GameResult) string {
	var winner string
	switch r.Winner {
	case models.WinVillagers:
		winner = "The villagers won"
	case models.WinMafia:
		winner = "The mafia won"
	default:
		winner = "Abandoned"
	}
	return fmt.Sprintf("%s after %d round%s (%s)", winner, r.Rounds, plural(r.Rounds, "", "s"), r.EndedAt.Format("2 Jan 2006"))
}

func userList(ids []string) string {
	users := make([]string, 0, len(ids))
	for _, id := range ids {
		users = append(users, fmt.Sprintf("<@%s>", id))
	}
	return orNone(users)
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
