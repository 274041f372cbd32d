package result

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
	resultKeyPrefix      = "result:"
	guildResultsIndexKey = "guild_results:"

	defaultListLimit = 10
)

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("result not found")

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed result repository
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

// SaveResult persists a result and indexes it under its guild
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	if input.Result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, resultKeyPrefix+input.Result.ID, resultJSON, 0)

	if input.Result.GuildID != "" {
		pipe.ZAdd(ctx, guildResultsIndexKey+input.Result.GuildID, redis.Z{
			Score:  float64(input.Result.EndedAt.UnixNano()),
			Member: input.Result.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetResult retrieves a result by ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.ResultID == "" {
		return nil, errors.New("input and result ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+input.ResultID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListResults retrieves a guild's most recent results
func (r *redisRepository) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	ids, err := r.client.ZRevRange(ctx, guildResultsIndexKey+input.GuildID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(ids))
	for _, id := range ids {
		result, err := r.GetResult(ctx, &GetResultInput{ResultID: id})
		if err != nil {
			// Skip results whose blob has gone missing
			if errors.Is(err, ErrResultNotFound) {
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return &ListResultsOutput{
		Results: results,
	}, nil
}
