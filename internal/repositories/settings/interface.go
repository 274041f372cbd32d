package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafia/internal/repositories/settings Repository

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Repository defines the interface for settings persistence
type Repository interface {
	// GetGuildSettings retrieves the settings blob for a guild
	GetGuildSettings(ctx context.Context, input *GetGuildSettingsInput) (*models.GuildSettings, error)

	// SaveGuildSettings persists the settings blob for a guild
	SaveGuildSettings(ctx context.Context, input *SaveGuildSettingsInput) error

	// DeleteGuildSettings removes the settings blob for a guild
	DeleteGuildSettings(ctx context.Context, input *DeleteGuildSettingsInput) error

	// GetBotSettings retrieves the settings that apply to every guild
	GetBotSettings(ctx context.Context) (*models.BotSettings, error)

	// SaveBotSettings persists the settings that apply to every guild
	SaveBotSettings(ctx context.Context, input *SaveBotSettingsInput) error
}
