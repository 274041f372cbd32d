package settings

import "github.com/KirkDiggler/mafia/internal/models"

type GetGuildSettingsInput struct {
	GuildID string
}

type SaveGuildSettingsInput struct {
	Settings *models.GuildSettings
}

type DeleteGuildSettingsInput struct {
	GuildID string
}

type SaveBotSettingsInput struct {
	Settings *models.BotSettings
}
