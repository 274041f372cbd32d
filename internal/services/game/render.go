package game

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/mafia/internal/models"
)

func text(content string) *models.Message {
	return &models.Message{Content: content}
}

func embed(description string, colour int) *models.Message {
	return &models.Message{Embed: &models.Embed{
		Description: description,
		Colour:      colour,
	}}
}

func welcomeMessage(prefix string, minPlayers int) *models.Message {
	return &models.Message{Embed: &models.Embed{
		Title: "Mafia :dagger:",
		Description: fmt.Sprintf("Welcome to the village of Upper Lowerstoft, it's normally quite a peaceful place but recently something *a bit sinister* has been happening when everyone's tucked up in bed...\n\n"+
			"To join the game message `%[1]sjoin`, then `%[1]sstart` when there are at least %[2]d players. To leave the game at any point message `%[1]sleave`.",
			prefix, minPlayers),
		Colour: models.ColourDarkRed,
	}}
}

func joinWelcomeMessage(prefix string) *models.Message {
	return embed(fmt.Sprintf("Welcome to Upper Lowerstoft, we hope you have a peaceful visit.\n\n"+
		"During the game I will send you messages here, if you need to leave at any point message `%sleave` in the game channel.",
		prefix), models.ColourDarkBlue)
}

// rosterEmbed numbers the players for choose commands
func rosterEmbed(players []Player) *models.Embed {
	lines := make([]string, 0, len(players))
	for i, p := range players {
		lines = append(lines, fmt.Sprintf("%d - %s", i+1, p.DisplayName()))
	}
	return &models.Embed{
		Description: strings.Join(lines, "\n"),
		Colour:      models.ColourPurple,
	}
}

func deathMessage(player Player, role models.Role, cause models.DeathCause) *models.Message {
	var title string
	switch cause {
	case models.DeathCausePurged:
		title = fmt.Sprintf("%s has been purged!", player.DisplayName())
	case models.DeathCauseLeft:
		title = fmt.Sprintf("%s has fled the village!", player.DisplayName())
	default:
		title = fmt.Sprintf("%s has been killed!", player.DisplayName())
	}

	var description string
	switch role {
	case models.RoleMafia:
		description = "They were in the **mafia**"
	case models.RoleDoctor:
		description = "They were the **doctor**"
	case models.RoleDetective:
		description = "They were the **detective**"
	default:
		description = "They were a **villager**"
	}

	return &models.Message{Embed: &models.Embed{
		Title:       title,
		Description: description,
		Colour:      models.ColourDarkRed,
	}}
}

func endMessage(win models.Win, winners []Player, prefix string) *models.Message {
	switch win {
	case models.WinVillagers:
		return embed(fmt.Sprintf("The villagers (%s) have won!\n\nMessage `%srestart` to play again", mentions(winners), prefix), models.ColourDarkGreen)
	case models.WinMafia:
		return embed(fmt.Sprintf("The Mafia (%s) have won!\n\nMessage `%srestart` to play again", mentions(winners), prefix), models.ColourDarkRed)
	default:
		return embed(fmt.Sprintf("The game has had to end for some reason :cry:\n\nMessage `%srestart` to start a new game", prefix), models.ColourBlue)
	}
}

func mentionList(players []Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Mention())
	}
	return out
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
