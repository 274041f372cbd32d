package registry

import (
	"context"
	"sync"

	"github.com/KirkDiggler/mafia/internal/common/log"
	"github.com/KirkDiggler/mafia/internal/services/game"
)

// Registry owns the running games, keyed by channel. Mafia channels are
// mapped back to the channel of the game that created them.
//
// The registry lock is never held while calling into a game's message
// handling, games call back into the registry through game.Directory.
type Registry struct {
	mu          sync.RWMutex
	games       map[string]*game.Game
	subChannels map[string]string
	base        *game.Config
}

var _ game.Directory = (*Registry)(nil)

// New creates an empty registry
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Game == nil {
		return nil, ErrNilGameConfig
	}

	return &Registry{
		games:       make(map[string]*game.Game),
		subChannels: make(map[string]string),
		base:        cfg.Game,
	}, nil
}

// Create starts a game in a channel and posts its welcome message
func (r *Registry) Create(ctx context.Context, input *CreateInput) (*game.Game, error) {
	if input == nil || input.Channel == nil {
		return nil, ErrNilInput
	}

	r.mu.Lock()
	channelID := input.Channel.ID()
	if _, ok := r.games[channelID]; ok {
		r.mu.Unlock()
		return nil, ErrGameAlreadyExists
	}

	cfg := *r.base
	cfg.GuildID = input.GuildID
	cfg.Channel = input.Channel
	cfg.Directory = r

	g, err := game.New(&cfg)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.games[channelID] = g
	r.mu.Unlock()

	log.Info("created game %s in channel %s", g.ID(), channelID)
	g.Launch(ctx)

	return g, nil
}

// Get returns the game played in a channel
func (r *Registry) Get(channelID string) (*game.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.games[channelID]
	return g, ok
}

// Lookup returns the game a channel belongs to, either as its game channel
// or as its mafia channel
func (r *Registry) Lookup(channelID string) (*game.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if g, ok := r.games[channelID]; ok {
		return g, true
	}
	if parent, ok := r.subChannels[channelID]; ok {
		g, ok := r.games[parent]
		return g, ok
	}
	return nil, false
}

// Destroy removes the game played in a channel and releases its mafia channel
func (r *Registry) Destroy(ctx context.Context, channelID string) error {
	r.mu.Lock()
	g, ok := r.games[channelID]
	if !ok {
		r.mu.Unlock()
		return ErrGameNotFound
	}
	r.remove(channelID)
	r.mu.Unlock()

	g.Destroy(ctx)
	log.Info("destroyed game %s in channel %s", g.ID(), channelID)

	return nil
}

// DestroyAll removes every game
func (r *Registry) DestroyAll(ctx context.Context) {
	r.mu.Lock()
	games := make([]*game.Game, 0, len(r.games))
	for channelID, g := range r.games {
		games = append(games, g)
		r.remove(channelID)
	}
	r.mu.Unlock()

	for _, g := range games {
		g.Destroy(ctx)
	}
	log.Info("destroyed %d games", len(games))
}

// Count returns the number of registered games
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// GuildGames returns the games registered for a guild
func (r *Registry) GuildGames(guildID string) []*game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var games []*game.Game
	for _, g := range r.games {
		if g.GuildID() == guildID {
			games = append(games, g)
		}
	}
	return games
}

// ActiveGameFor returns the channel of the game the player is part of.
// Ended games are skipped.
func (r *Registry) ActiveGameFor(playerID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for channelID, g := range r.games {
		if g.IsActive() && g.HasPlayer(playerID) {
			return channelID, true
		}
	}
	return "", false
}

// BindSubChannel routes messages in sub to the game in parent
func (r *Registry) BindSubChannel(sub, parent string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subChannels[sub] = parent
}

// UnbindSubChannel stops routing messages in sub
func (r *Registry) UnbindSubChannel(sub string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subChannels, sub)
}

// remove must be called with the lock held
func (r *Registry) remove(channelID string) {
	delete(r.games, channelID)
	for sub, parent := range r.subChannels {
		if parent == channelID {
			delete(r.subChannels, sub)
		}
	}
}
