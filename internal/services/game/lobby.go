package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafia/internal/models"
)

func (g *Game) handleJoin(ctx context.Context, cmd *command) {
	if !g.inChannel(cmd) || !g.state.IsLobby() {
		return
	}

	author := cmd.author
	if indexOf(g.players, author.ID()) >= 0 {
		g.send(ctx, g.channel, text("You're already in the game!"))
		return
	}
	if channelID, ok := g.directory.ActiveGameFor(author.ID()); ok && channelID != g.channel.ID() {
		g.send(ctx, g.channel, text("You're already in a game elsewhere!"))
		return
	}
	if len(g.players) >= g.maxPlayers {
		g.send(ctx, g.channel, text(fmt.Sprintf("%s the game is full (%d players)", author.Mention(), g.maxPlayers)))
		return
	}

	if err := author.Send(ctx, joinWelcomeMessage(g.prefix())); err != nil {
		if errors.Is(err, ErrDirectMessagesBlocked) {
			g.send(ctx, g.channel, text(fmt.Sprintf(
				"%s you have your DMs turned off - the game doesn't work if I can't send you messages :cry:",
				author.Mention())))
			return
		}
		g.log.Warn("failed to send welcome to %s: %v", author.ID(), err)
		g.send(ctx, g.channel, text(fmt.Sprintf("%s I couldn't send you a message, try joining again", author.Mention())))
		return
	}

	g.addPlayer(author)

	var count string
	if len(g.players) < g.minPlayers {
		count = fmt.Sprintf("%d players of %d needed", len(g.players), g.minPlayers)
	} else {
		count = fmt.Sprintf("%d players of maximum %d", len(g.players), g.maxPlayers)
	}
	g.send(ctx, g.channel, text(fmt.Sprintf("%s joined the game (%s)", author.Mention(), count)))
}

func (g *Game) handleLeave(ctx context.Context, cmd *command) {
	if !g.inChannel(cmd) {
		return
	}

	player := g.findPlayer(cmd.author.ID())
	if player == nil {
		return
	}

	g.send(ctx, g.channel, text(fmt.Sprintf("%s left the game", player.Mention())))

	if !g.state.IsRunning() {
		g.removePlayer(player.ID())
		return
	}

	state := g.state
	g.kill(ctx, player, models.DeathCauseLeft)
	if g.checkWin(ctx) {
		return
	}

	switch state {
	case models.GameStateNight:
		g.departedAtNight(ctx, player.ID())
	case models.GameStateDay:
		g.departedAtDay(ctx, player.ID())
	}
}

func (g *Game) handleStart(ctx context.Context, cmd *command) {
	if !g.inChannel(cmd) || !g.state.IsLobby() {
		return
	}
	if indexOf(g.players, cmd.author.ID()) < 0 {
		return
	}

	if len(g.players) < g.minPlayers {
		g.send(ctx, g.channel, text(fmt.Sprintf(
			"There aren't enough players (%d of %d needed)", len(g.players), g.minPlayers)))
		return
	}

	g.startGame(ctx)
}

func (g *Game) handleRestart(ctx context.Context, cmd *command) {
	if !g.state.IsEnded() {
		return
	}

	g.reset()
	g.send(ctx, g.channel, welcomeMessage(g.prefix(), g.minPlayers))
	g.log.Info("game restarted")
}

func (g *Game) handleWhy(ctx context.Context, cmd *command) {
	if !g.inChannel(cmd) {
		return
	}

	var description string
	switch g.state {
	case models.GameStateLobby:
		if len(g.players) < g.minPlayers {
			description = fmt.Sprintf("I'm waiting for more players to join, use `%sjoin` if you want to play", g.prefix())
		} else {
			description = fmt.Sprintf("I'm waiting for someone to start the game, use `%sstart` when you're ready to begin", g.prefix())
		}
	case models.GameStateNight:
		description = "I'm waiting for the following to make their choices: " + joinList(g.nightWaitingOn())
	case models.GameStateDay:
		var waiting []Player
		for _, p := range g.players {
			if _, ok := g.accusations[p.ID()]; !ok {
				waiting = append(waiting, p)
			}
		}
		plural := "players"
		if len(waiting) == 1 {
			plural = "player"
		}
		description = fmt.Sprintf("I'm waiting for the village to discuss - %d %s left to make a decision (%s)",
			len(waiting), plural, joinList(mentionList(waiting)))
	case models.GameStateEnded:
		description = fmt.Sprintf("The game has ended, use `%srestart` for a new game", g.prefix())
	}

	g.send(ctx, g.channel, embed(description, models.ColourBlue))
}

func (g *Game) handleWho(ctx context.Context, cmd *command) {
	if g.state.IsEnded() {
		return
	}

	if len(g.players) == 0 {
		g.send(ctx, g.channel, embed("Nobody is in the game yet", models.ColourDarkBlue))
		return
	}

	are := "are"
	if len(g.players) == 1 {
		are = "is"
	}
	g.send(ctx, g.channel, embed(fmt.Sprintf("%s %s in the game", mentions(g.players), are), models.ColourDarkBlue))
}

func (g *Game) startGame(ctx context.Context) {
	roles := AllocateRoles(g.shuffler, g.players)
	g.setPlayers(roles.Players)
	g.mafia = roles.Mafia
	g.villagers = roles.Villagers
	g.doctor = roles.Doctor
	g.detective = roles.Detective
	g.dealtMafia = names(roles.Mafia)
	g.dealtVillagers = names(roles.Villagers)
	g.startedAt = g.clock.Now()

	g.log.Info("starting game with %d players, %d mafia", len(g.players), len(g.mafia))

	output, err := g.provisioner.CreateRestrictedChannel(ctx, &CreateRestrictedChannelInput{
		GuildID:         g.guildID,
		ParentChannelID: g.channel.ID(),
		Name:            MafiaChannelName,
		Members:         g.mafia,
	})
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			g.send(ctx, g.channel, text(":exploding_head: I can't continue because I don't have permission to create text channels in this channel category - did you remove the permission?"))
		} else {
			g.log.Error("failed to create mafia channel: %v", err)
			g.send(ctx, g.channel, text(":exploding_head: I can't continue because I couldn't create the mafia channel"))
		}
		g.endGame(ctx, models.WinNone)
		return
	}

	g.mafiaChannel = output.Channel
	g.directory.BindSubChannel(g.mafiaChannel.ID(), g.channel.ID())

	g.sendBriefings(ctx)
	g.startNight(ctx)
}

func (g *Game) sendBriefings(ctx context.Context) {
	g.send(ctx, g.mafiaChannel, text(fmt.Sprintf(
		"%s - you are the mafia, each night you get to mark one villager for death!", mentions(g.mafia))))

	for _, p := range g.players {
		var briefing string
		switch g.roleOf(p.ID()) {
		case models.RoleMafia:
			briefing = fmt.Sprintf("You're in the mafia, each night you get to mark one villager for death! Look for `#%s` channel to make your choice.", MafiaChannelName)
		case models.RoleDoctor:
			briefing = "You're the doctor, each night you get to pick one villager to save - you can't save the same person two nights in a row"
		case models.RoleDetective:
			briefing = "You're the detective, each night you get to pick one villager to investigate and find out if they're in the mafia"
		default:
			briefing = "You're a villager, keep your wits about you there are mafia on the loose!"
		}
		g.sendPrivate(ctx, p, text(briefing))
	}
}
