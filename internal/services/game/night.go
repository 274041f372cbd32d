package game

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
)

func (g *Game) startNight(ctx context.Context) {
	nightfall, err := g.narrator.GetNightfallMessage(ctx, &messaging.GetNightfallMessageInput{Round: g.round})
	if err != nil {
		g.log.Warn("failed to get nightfall message: %v", err)
		nightfall = &messaging.GetNightfallMessageOutput{Title: fmt.Sprintf("Round %d", g.round)}
	}

	g.send(ctx, g.channel, &models.Message{Embed: &models.Embed{
		Title:       nightfall.Title,
		Description: nightfall.Message,
		Colour:      models.ColourPurple,
	}})

	g.setState(models.GameStateNight)
	g.sendPrompts(ctx)
}

func (g *Game) sendPrompts(ctx context.Context) {
	roster := rosterEmbed(g.players)
	prefix := g.prefix()

	if g.nightKill == nil && !g.nightKillSkipped {
		g.send(ctx, g.mafiaChannel, &models.Message{
			Content: fmt.Sprintf("Each reply with `%[1]schoose number` (e.g. `%[1]schoose 1`) to choose the player you wish to mark for death - you need to come to an agreement as a group, if there's no clear choice then nobody will be marked, so you may want to discuss your choice first!", prefix),
			Embed:   roster,
		})
	}

	if g.doctor != nil {
		g.sendPrivate(ctx, g.doctor, &models.Message{
			Content: fmt.Sprintf("Reply with `%[1]schoose number` (e.g. `%[1]schoose 1`) to choose the player you wish to save", prefix),
			Embed:   roster,
		})
	}

	if g.detective != nil {
		g.sendPrivate(ctx, g.detective, &models.Message{
			Content: fmt.Sprintf("Reply with `%[1]schoose number` (e.g. `%[1]schoose 1`) to choose the player you wish to investigate", prefix),
			Embed:   roster,
		})
	}
}

func (g *Game) handleChoose(ctx context.Context, cmd *command) {
	if g.state != models.GameStateNight {
		return
	}

	author := cmd.author
	switch {
	case g.isMafia(author.ID()) && g.inMafiaChannel(cmd):
		g.mafiaChoose(ctx, cmd)
	case isPlayer(g.doctor, author.ID()) && cmd.isDirect:
		target := g.ordinalArg(cmd)
		if target == nil {
			g.send(ctx, author, text("That isn't a valid choice!"))
			return
		}
		if target.ID() == g.previousDoctorSave {
			g.send(ctx, author, text("You can't save the same person two nights running!"))
			return
		}
		g.doctorSave = target
		g.send(ctx, author, text(fmt.Sprintf("Choice submitted - %s will be saved", target.DisplayName())))
	case isPlayer(g.detective, author.ID()) && cmd.isDirect:
		target := g.ordinalArg(cmd)
		if target == nil {
			g.send(ctx, author, text("That isn't a valid choice!"))
			return
		}
		g.detectiveTarget = target
		g.send(ctx, author, text(fmt.Sprintf("Choice submitted - %s will be investigated", target.DisplayName())))
	default:
		return
	}

	g.testNightComplete(ctx)
}

func (g *Game) mafiaChoose(ctx context.Context, cmd *command) {
	author := cmd.author
	if g.nightKill != nil || g.nightKillSkipped {
		return
	}
	if _, ok := g.mafiaChoices[author.ID()]; ok {
		g.send(ctx, g.mafiaChannel, text(fmt.Sprintf("%s - you've already chosen", author.Mention())))
		return
	}

	target := g.ordinalArg(cmd)
	if target == nil {
		g.send(ctx, g.mafiaChannel, text(fmt.Sprintf("%s - that isn't a valid choice", author.Mention())))
		return
	}

	g.mafiaChoices[author.ID()] = target.ID()
	g.send(ctx, g.mafiaChannel, text(fmt.Sprintf("%s - choice submitted", author.Mention())))

	g.resolveMafiaVote(ctx)
}

// resolveMafiaVote decides the kill once every mafia member has chosen
func (g *Game) resolveMafiaVote(ctx context.Context) {
	if len(g.mafia) == 0 || len(g.mafiaChoices) < len(g.mafia) {
		return
	}

	choices := make(map[string]int, len(g.mafiaChoices))
	for voter, target := range g.mafiaChoices {
		choices[voter] = indexOf(g.players, target) + 1
	}

	ordinal, ok := ResolveKill(choices, len(g.mafia), len(g.players))
	if !ok {
		g.nightKillSkipped = true
		g.send(ctx, g.mafiaChannel, text("You couldn't come to an agreement, nobody will be killed this round"))
		return
	}

	g.nightKill = g.players[ordinal-1]
	g.send(ctx, g.mafiaChannel, text(fmt.Sprintf("%s has been marked for death", g.nightKill.DisplayName())))
}

// ordinalArg returns the player at the position given as the first argument
func (g *Game) ordinalArg(cmd *command) Player {
	if len(cmd.args) == 0 {
		return nil
	}
	ordinal, err := strconv.Atoi(cmd.args[0])
	if err != nil || ordinal < 1 || ordinal > len(g.players) {
		return nil
	}
	return g.players[ordinal-1]
}

func (g *Game) nightWaitingOn() []string {
	var waiting []string
	if g.nightKill == nil && !g.nightKillSkipped {
		waiting = append(waiting, "the Mafia")
	}
	if g.doctor != nil && g.doctorSave == nil {
		waiting = append(waiting, "the doctor")
	}
	if g.detective != nil && g.detectiveTarget == nil {
		waiting = append(waiting, "the detective")
	}
	return waiting
}

func (g *Game) testNightComplete(ctx context.Context) {
	if g.state != models.GameStateNight || len(g.nightWaitingOn()) > 0 {
		return
	}
	g.summariseNight(ctx)
}

func (g *Game) summariseNight(ctx context.Context) {
	dawn, err := g.narrator.GetDawnMessage(ctx, &messaging.GetDawnMessageInput{Round: g.round})
	if err != nil {
		g.log.Warn("failed to get dawn message: %v", err)
		dawn = &messaging.GetDawnMessageOutput{Title: "Wakey wakey"}
	}

	summary := &models.Embed{
		Title:       dawn.Title,
		Description: dawn.Message,
		Colour:      models.ColourPurple,
	}

	outcome := messaging.NightOutcomeNoAttempt
	var victim Player

	if g.nightKill != nil {
		summary.Fields = append(summary.Fields, &models.EmbedField{
			Name:  ":dagger:",
			Value: fmt.Sprintf("The Mafia chose to kill %s", g.nightKill.Mention()),
		})

		switch {
		case g.doctorSave != nil && g.doctorSave.ID() == g.nightKill.ID():
			outcome = messaging.NightOutcomeSaved
			summary.Fields = append(summary.Fields, &models.EmbedField{
				Name:  ":syringe:",
				Value: "The doctor managed to save them in time!",
			})
		case g.doctor != nil:
			outcome = messaging.NightOutcomeKilled
			victim = g.nightKill
			summary.Fields = append(summary.Fields, &models.EmbedField{
				Name:  ":skull_crossbones:",
				Value: "The doctor was unable to save them",
			})
		default:
			outcome = messaging.NightOutcomeKilled
			victim = g.nightKill
		}
	} else if g.nightKillFled != "" {
		summary.Fields = append(summary.Fields, &models.EmbedField{
			Name:  ":person_running:",
			Value: fmt.Sprintf("%s fled the village before the Mafia could strike", g.nightKillFled),
		})
	} else {
		summary.Fields = append(summary.Fields, &models.EmbedField{
			Name:  ":person_shrugging:",
			Value: "The Mafia didn't choose anybody to kill this time around",
		})
	}

	if g.detective != nil && g.detectiveTarget != nil {
		target := g.detectiveTarget
		if g.isMafia(target.ID()) {
			summary.Fields = append(summary.Fields, &models.EmbedField{
				Name:  ":detective:",
				Value: "The detective found a member of the mafia",
			})
			g.send(ctx, g.detective, embed(fmt.Sprintf("Correct - %s is in the mafia!", target.DisplayName()), models.ColourDarkRed))
		} else {
			summary.Fields = append(summary.Fields, &models.EmbedField{
				Name:  ":detective:",
				Value: "The detective didn't find a member of the mafia",
			})
			g.send(ctx, g.detective, embed(fmt.Sprintf("Incorrect - %s is not in the mafia!", target.DisplayName()), models.ColourDarkGreen))
		}
	}

	g.send(ctx, g.channel, &models.Message{Embed: summary})

	if victim != nil {
		g.kill(ctx, victim, models.DeathCauseKilled)
		if g.checkWin(ctx) {
			return
		}
	}

	g.startDay(ctx, outcome)
}

// departedAtNight drops choices that involve a player who left during the
// night and lets the remaining choosers see the new numbering
func (g *Game) departedAtNight(ctx context.Context, playerID string) {
	delete(g.mafiaChoices, playerID)
	for voter, target := range g.mafiaChoices {
		if target == playerID {
			delete(g.mafiaChoices, voter)
		}
	}

	if isPlayer(g.nightKill, playerID) {
		g.nightKillFled = g.nightKill.DisplayName()
		g.nightKill = nil
		g.nightKillSkipped = true
		g.send(ctx, g.mafiaChannel, text(fmt.Sprintf(
			"%s fled the village before you could strike, nobody will be killed tonight", g.nightKillFled)))
	}
	if isPlayer(g.doctorSave, playerID) {
		g.doctorSave = nil
	}
	if isPlayer(g.detectiveTarget, playerID) {
		g.detectiveTarget = nil
	}

	g.sendPrompts(ctx)

	if g.nightKill == nil && !g.nightKillSkipped {
		g.resolveMafiaVote(ctx)
	}
	g.testNightComplete(ctx)
}
