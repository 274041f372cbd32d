package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
)

func (g *Game) startDay(ctx context.Context, outcome messaging.NightOutcome) {
	g.setState(models.GameStateDay)

	meeting, err := g.narrator.GetVillageMeetingMessage(ctx, &messaging.GetVillageMeetingMessageInput{Outcome: outcome})
	if err != nil {
		g.log.Warn("failed to get village meeting message: %v", err)
		meeting = &messaging.GetVillageMeetingMessageOutput{Message: "The villagers gather to discuss..."}
	}

	g.send(ctx, g.channel, embed(fmt.Sprintf(
		"%s\n\nIf you're suspicious of a player mention them using `%[2]saccuse` to accuse them of being in the Mafia, or use `%[2]sskip` to stay quiet. At least half the village must accuse someone for them to be purged.\n\n%[3]s are still in the game",
		meeting.Message, g.prefix(), mentions(g.players)), models.ColourDarkOrange))
}

func (g *Game) handleAccuse(ctx context.Context, cmd *command) {
	if !g.inChannel(cmd) || g.state != models.GameStateDay {
		return
	}

	author := g.findPlayer(cmd.author.ID())
	if author == nil {
		return
	}

	if len(cmd.mentions) != 1 {
		g.send(ctx, g.channel, text(fmt.Sprintf("%s that wasn't a valid choice", author.Mention())))
		return
	}

	accused := g.findPlayer(cmd.mentions[0].ID())
	if accused == nil {
		g.send(ctx, g.channel, text(fmt.Sprintf("%s isn't in the game!", cmd.mentions[0].Mention())))
		return
	}

	g.accusations[author.ID()] = accused.ID()
	g.send(ctx, g.channel, text(fmt.Sprintf("%s accused %s - %d left to decide",
		author.Mention(), accused.DisplayName(), len(g.players)-len(g.accusations))))

	g.testDayComplete(ctx)
}

func (g *Game) handleSkip(ctx context.Context, cmd *command) {
	if !g.inChannel(cmd) || g.state != models.GameStateDay {
		return
	}

	author := g.findPlayer(cmd.author.ID())
	if author == nil {
		return
	}

	g.accusations[author.ID()] = SkipVote
	g.send(ctx, g.channel, text(fmt.Sprintf("%s skipped - %d left to decide",
		author.Mention(), len(g.players)-len(g.accusations))))

	g.testDayComplete(ctx)
}

func (g *Game) testDayComplete(ctx context.Context) {
	if g.state != models.GameStateDay || len(g.players) == 0 {
		return
	}
	for _, p := range g.players {
		if _, ok := g.accusations[p.ID()]; !ok {
			return
		}
	}
	g.purge(ctx)
}

func (g *Game) purge(ctx context.Context) {
	roster := make([]string, 0, len(g.players))
	for _, p := range g.players {
		roster = append(roster, p.ID())
	}

	purgedID, ok := ResolvePurge(g.accusations, roster)
	if !ok {
		g.send(ctx, g.channel, embed("The village couldn't come to an agreement, nobody is purged today", models.ColourDarkGreen))
		g.continueGame(ctx)
		return
	}

	purged := g.findPlayer(purgedID)
	g.send(ctx, g.channel, embed(fmt.Sprintf("The village has agreed that %s should be purged", purged.DisplayName()), models.ColourDarkRed))

	g.kill(ctx, purged, models.DeathCausePurged)
	if g.checkWin(ctx) {
		return
	}

	g.continueGame(ctx)
}

// departedAtDay drops accusations by or against a player who left
func (g *Game) departedAtDay(ctx context.Context, playerID string) {
	delete(g.accusations, playerID)
	for voter, accused := range g.accusations {
		if accused == playerID {
			delete(g.accusations, voter)
		}
	}

	g.testDayComplete(ctx)
}

func (g *Game) continueGame(ctx context.Context) {
	g.previousDoctorSave = ""
	if g.doctorSave != nil {
		g.previousDoctorSave = g.doctorSave.ID()
	}
	g.resetNight()
	g.nextRound()

	g.startNight(ctx)
}
