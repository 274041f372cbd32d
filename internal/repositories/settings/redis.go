package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	guildKeyPrefix = "settings:guild:"
	botKey         = "settings:bot"
)

// ErrSettingsNotFound is returned when no settings have been stored
var ErrSettingsNotFound = errors.New("settings not found")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetGuildSettings retrieves a guild's settings from Redis
func (r *redisRepository) GetGuildSettings(ctx context.Context, input *GetGuildSettingsInput) (*models.GuildSettings, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	var settings models.GuildSettings
	if err := r.get(ctx, guildKeyPrefix+input.GuildID, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// SaveGuildSettings persists a guild's settings to Redis
func (r *redisRepository) SaveGuildSettings(ctx context.Context, input *SaveGuildSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	if input.Settings.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	return r.set(ctx, guildKeyPrefix+input.Settings.GuildID, input.Settings)
}

// DeleteGuildSettings removes a guild's settings from Redis
func (r *redisRepository) DeleteGuildSettings(ctx context.Context, input *DeleteGuildSettingsInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if err := r.client.Del(ctx, guildKeyPrefix+input.GuildID).Err(); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}

// GetBotSettings retrieves the bot wide settings from Redis
func (r *redisRepository) GetBotSettings(ctx context.Context) (*models.BotSettings, error) {
	var settings models.BotSettings
	if err := r.get(ctx, botKey, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// SaveBotSettings persists the bot wide settings to Redis
func (r *redisRepository) SaveBotSettings(ctx context.Context, input *SaveBotSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	return r.set(ctx, botKey, input.Settings)
}

func (r *redisRepository) get(ctx context.Context, key string, into interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrSettingsNotFound
		}
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := json.Unmarshal([]byte(data), into); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return nil
}

func (r *redisRepository) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// No expiration, settings live until the guild removes the bot
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
