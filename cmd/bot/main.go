package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/log"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/handlers/discord"
	"github.com/KirkDiggler/mafia/internal/handlers/status"
	"github.com/KirkDiggler/mafia/internal/repositories/result"
	"github.com/KirkDiggler/mafia/internal/repositories/settings"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
	"github.com/KirkDiggler/mafia/internal/services/registry"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

func main() {
	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("Failed to load .env: %v", err)
	}

	if level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		log.Warn("Invalid LOG_LEVEL, using info: %v", err)
	} else {
		log.SetLevel(level)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	settingsRepo, err := settings.NewRedis(&settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		fatal("Failed to create settings repository: %v", err)
	}

	resultRepo, err := result.NewRedis(&result.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		fatal("Failed to create result repository: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		fatal("DISCORD_TOKEN environment variable is required")
	}

	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		fatal("Failed to create Discord session: %v", err)
	}

	// Initialize the game registry, every game is created from this template
	games, err := registry.New(&registry.Config{
		Game: &game.Config{
			MinPlayers:    getEnvInt("MIN_PLAYERS", game.DefaultMinPlayers),
			MaxPlayers:    getEnvInt("MAX_PLAYERS", game.DefaultMaxPlayers),
			SettingsRepo:  settingsRepo,
			ResultRepo:    resultRepo,
			Provisioner:   discord.NewProvisioner(session, discord.BotUserID(session)),
			Narrator:      messaging.New(&messaging.Config{}),
			Shuffler:      shuffle.New(&shuffle.Config{}),
			Clock:         &clock.DefaultClock{},
			UUIDGenerator: uuid.New(),
		},
	})
	if err != nil {
		fatal("Failed to create game registry: %v", err)
	}

	// The stop command closes this to shut the process down
	stopped := make(chan struct{})
	var stopOnce sync.Once

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:           session,
		Registry:          games,
		SettingsRepo:      settingsRepo,
		ResultRepo:        resultRepo,
		OwnerID:           getEnv("BOT_OWNER_ID", ""),
		BotPrefix:         getEnv("BOT_PREFIX", ""),
		OperatorChannelID: getEnv("OPERATOR_CHANNEL_ID", ""),
		Shutdown:          func() { stopOnce.Do(func() { close(stopped) }) },
	})
	if err != nil {
		fatal("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		fatal("Failed to start Discord bot: %v", err)
	}

	// Serve the status endpoint
	statusHandler, err := status.New(&status.Config{Games: games})
	if err != nil {
		fatal("Failed to create status handler: %v", err)
	}
	server := &http.Server{
		Addr:              getEnv("STATUS_ADDR", ":8080"),
		Handler:           statusHandler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Status server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal or the stop command to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	select {
	case <-sc:
	case <-stopped:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Games release their mafia channels before the connection closes
	games.DestroyAll(shutdownCtx)

	if err := bot.Stop(); err != nil {
		log.Error("Error stopping bot: %v", err)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error stopping status server: %v", err)
	}

	log.Info("Bot has been shut down")
}

func fatal(format string, args ...interface{}) {
	log.Error(format, args...)
	os.Exit(1)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
