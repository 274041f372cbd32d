package discord

import "github.com/bwmarrin/discordgo"

// Decision is the outcome of a guard
type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Guard decides whether a command may run
type Guard func(cc *commandContext) Decision

// All allows a command only if every guard does
func All(guards ...Guard) Guard {
	return func(cc *commandContext) Decision {
		for _, g := range guards {
			if d := g(cc); !d.Allowed {
				return d
			}
		}
		return allow
	}
}

// BotOwner allows only the owner of the bot
func BotOwner(cc *commandContext) Decision {
	if cc.bot != nil && cc.bot.OwnerID != "" && cc.authorID == cc.bot.OwnerID {
		return allow
	}
	return deny("not the bot owner")
}

// BotManager allows the owner of the bot and its listed managers
func BotManager(cc *commandContext) Decision {
	if cc.bot != nil && cc.bot.IsManager(cc.authorID) {
		return allow
	}
	return deny("not a bot manager")
}

// OnlyGuild allows commands sent in a guild channel
func OnlyGuild(cc *commandContext) Decision {
	if cc.isDirect || cc.guildID == "" {
		return deny("only available in a server")
	}
	return allow
}

// GuildManager allows the guild owner, administrators, members who can
// manage the guild and the users and roles listed in the guild settings
func GuildManager(cc *commandContext) Decision {
	if d := OnlyGuild(cc); !d.Allowed {
		return d
	}

	switch {
	case cc.isGuildOwner:
		return allow
	case cc.permissions&discordgo.PermissionAdministrator != 0:
		return allow
	case cc.permissions&discordgo.PermissionManageServer != 0:
		return allow
	case cc.guild != nil && cc.guild.IsManager(cc.authorID, cc.roleIDs):
		return allow
	}
	return deny("not a server manager")
}

// OnlyActiveChannel allows commands sent in a channel games are enabled in
func OnlyActiveChannel(cc *commandContext) Decision {
	if d := OnlyGuild(cc); !d.Allowed {
		return d
	}
	if cc.guild == nil || !cc.guild.IsActiveChannel(cc.channelID) {
		return deny("not an active channel")
	}
	return allow
}
