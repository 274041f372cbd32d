package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/log"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	resultRepo "github.com/KirkDiggler/mafia/internal/repositories/result"
	settingsRepo "github.com/KirkDiggler/mafia/internal/repositories/settings"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

var handlers = map[string]handlerFunc{
	"join":    (*Game).handleJoin,
	"leave":   (*Game).handleLeave,
	"start":   (*Game).handleStart,
	"choose":  (*Game).handleChoose,
	"accuse":  (*Game).handleAccuse,
	"skip":    (*Game).handleSkip,
	"restart": (*Game).handleRestart,
	"why":     (*Game).handleWhy,
	"who":     (*Game).handleWho,
}

// Game is one game of mafia bound to a channel
type Game struct {
	id         string
	guildID    string
	channel    Audience
	minPlayers int
	maxPlayers int

	settingsRepo  settingsRepo.Repository
	resultRepo    resultRepo.Repository
	provisioner   Provisioner
	directory     Directory
	narrator      messaging.Service
	shuffler      shuffle.Shuffler
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           *log.Logger

	// lock serialises message handling. rosterMu guards players, state and
	// round for readers outside the handling lock, writers hold both.
	lock     sync.Mutex
	rosterMu sync.RWMutex

	settings  *models.GuildSettings
	destroyed bool

	state        models.GameState
	players      []Player
	mafia        []Player
	villagers    []Player
	doctor       Player
	detective    Player
	round        int
	mafiaChannel Audience

	// mafiaChoices maps a mafia member to the player they chose
	mafiaChoices       map[string]string
	nightKill          Player
	nightKillSkipped   bool
	nightKillFled      string
	doctorSave         Player
	previousDoctorSave string
	detectiveTarget    Player

	// accusations maps a voter to the player they accused or SkipVote
	accusations map[string]string

	startedAt      time.Time
	dealtMafia     []string
	dealtVillagers []string
}

// New creates a game in the lobby state. Call Launch to announce it.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Channel == nil {
		return nil, ErrNilChannel
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.Provisioner == nil {
		return nil, ErrNilProvisioner
	}
	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}
	if cfg.Narrator == nil {
		return nil, ErrNilNarrator
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	minPlayers, maxPlayers := cfg.MinPlayers, cfg.MaxPlayers
	if minPlayers == 0 {
		minPlayers = DefaultMinPlayers
	}
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}
	if minPlayers < 3 || maxPlayers < minPlayers {
		return nil, ErrInvalidPlayers
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	id := cfg.UUIDGenerator.NewUUID()
	g := &Game{
		id:            id,
		guildID:       cfg.GuildID,
		channel:       cfg.Channel,
		minPlayers:    minPlayers,
		maxPlayers:    maxPlayers,
		settingsRepo:  cfg.SettingsRepo,
		resultRepo:    cfg.ResultRepo,
		provisioner:   cfg.Provisioner,
		directory:     cfg.Directory,
		narrator:      cfg.Narrator,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		log:           logger.With("game", id).With("channel", cfg.Channel.ID()),
		settings:      models.DefaultGuildSettings(cfg.GuildID),
	}
	g.reset()

	return g, nil
}

// ID returns the unique identifier of the game
func (g *Game) ID() string {
	return g.id
}

// GuildID returns the guild the game is played in
func (g *Game) GuildID() string {
	return g.guildID
}

// ChannelID returns the channel the game is played in
func (g *Game) ChannelID() string {
	return g.channel.ID()
}

// State returns the current phase of the game
func (g *Game) State() models.GameState {
	g.rosterMu.RLock()
	defer g.rosterMu.RUnlock()
	return g.state
}

// Round returns the current round number
func (g *Game) Round() int {
	g.rosterMu.RLock()
	defer g.rosterMu.RUnlock()
	return g.round
}

// PlayerCount returns the number of players still in the game
func (g *Game) PlayerCount() int {
	g.rosterMu.RLock()
	defer g.rosterMu.RUnlock()
	return len(g.players)
}

// HasPlayer returns true if the player is still in the game
func (g *Game) HasPlayer(playerID string) bool {
	g.rosterMu.RLock()
	defer g.rosterMu.RUnlock()
	return indexOf(g.players, playerID) >= 0
}

// IsActive returns true if the game is waiting for players or running
func (g *Game) IsActive() bool {
	return !g.State().IsEnded()
}

// Launch loads the guild settings and posts the welcome message
func (g *Game) Launch(ctx context.Context) {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.loadSettings(ctx)
	g.send(ctx, g.channel, welcomeMessage(g.prefix(), g.minPlayers))
}

// OnMessage handles a chat message forwarded to the game. Problems with the
// message itself are answered in chat and never returned.
func (g *Game) OnMessage(ctx context.Context, input *OnMessageInput) error {
	if input == nil || input.Author == nil {
		return ErrNilInput
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	if g.destroyed {
		return nil
	}

	g.loadSettings(ctx)

	content := strings.TrimSpace(input.Content)
	if !strings.HasPrefix(content, g.prefix()) {
		return nil
	}

	fields := strings.Fields(strings.TrimPrefix(content, g.prefix()))
	if len(fields) == 0 {
		return nil
	}

	handler, ok := handlers[strings.ToLower(fields[0])]
	if !ok {
		return nil
	}

	handler(g, ctx, &command{
		author:    input.Author,
		channelID: input.ChannelID,
		isDirect:  input.IsDirect,
		args:      fields[1:],
		mentions:  input.Mentions,
	})

	return nil
}

// Destroy removes the mafia channel. The game ignores messages afterwards.
func (g *Game) Destroy(ctx context.Context) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.destroyed {
		return
	}

	g.removeMafiaChannel(ctx)
	g.destroyed = true
	g.setState(models.GameStateEnded)
	g.log.Info("game destroyed in round %d", g.round)
}

func (g *Game) reset() {
	g.rosterMu.Lock()
	g.state = models.GameStateLobby
	g.players = []Player{}
	g.round = 1
	g.rosterMu.Unlock()

	g.mafia = nil
	g.villagers = nil
	g.doctor = nil
	g.detective = nil
	g.mafiaChannel = nil
	g.previousDoctorSave = ""
	g.startedAt = time.Time{}
	g.dealtMafia = nil
	g.dealtVillagers = nil
	g.resetNight()
}

func (g *Game) resetNight() {
	g.mafiaChoices = make(map[string]string)
	g.nightKill = nil
	g.nightKillSkipped = false
	g.nightKillFled = ""
	g.doctorSave = nil
	g.detectiveTarget = nil
	g.accusations = make(map[string]string)
}

func (g *Game) loadSettings(ctx context.Context) {
	settings, err := g.settingsRepo.GetGuildSettings(ctx, &settingsRepo.GetGuildSettingsInput{
		GuildID: g.guildID,
	})
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			g.log.Warn("failed to load guild settings, using defaults: %v", err)
		}
		settings = models.DefaultGuildSettings(g.guildID)
	}
	if settings.Prefix == "" {
		settings.Prefix = models.DefaultGuildPrefix
	}
	g.settings = settings
}

func (g *Game) prefix() string {
	return g.settings.Prefix
}

func (g *Game) setState(state models.GameState) {
	g.rosterMu.Lock()
	defer g.rosterMu.Unlock()
	g.state = state
}

func (g *Game) setPlayers(players []Player) {
	g.rosterMu.Lock()
	defer g.rosterMu.Unlock()
	g.players = players
}

func (g *Game) addPlayer(player Player) {
	g.rosterMu.Lock()
	defer g.rosterMu.Unlock()
	g.players = append(g.players, player)
}

func (g *Game) removePlayer(playerID string) {
	g.rosterMu.Lock()
	defer g.rosterMu.Unlock()
	g.players = without(g.players, playerID)
}

func (g *Game) nextRound() {
	g.rosterMu.Lock()
	defer g.rosterMu.Unlock()
	g.round++
}

// send delivers a message and logs a failure
func (g *Game) send(ctx context.Context, to Audience, msg *models.Message) {
	if to == nil {
		return
	}
	if err := to.Send(ctx, msg); err != nil {
		g.log.Warn("failed to send message to %s: %v", to.ID(), err)
	}
}

// sendPrivate messages a player, telling the channel when their DMs are off
func (g *Game) sendPrivate(ctx context.Context, p Player, msg *models.Message) {
	if p == nil {
		return
	}
	err := p.Send(ctx, msg)
	if err == nil {
		return
	}
	if errors.Is(err, ErrDirectMessagesBlocked) {
		g.send(ctx, g.channel, text(fmt.Sprintf(
			"%s you have your DMs turned off - I can't send you your part in the game :cry:", p.Mention())))
		return
	}
	g.log.Warn("failed to send message to %s: %v", p.ID(), err)
}

func (g *Game) inChannel(cmd *command) bool {
	return !cmd.isDirect && cmd.channelID == g.channel.ID()
}

func (g *Game) inMafiaChannel(cmd *command) bool {
	return g.mafiaChannel != nil && !cmd.isDirect && cmd.channelID == g.mafiaChannel.ID()
}

func (g *Game) isMafia(playerID string) bool {
	return indexOf(g.mafia, playerID) >= 0
}

func (g *Game) findPlayer(playerID string) Player {
	if i := indexOf(g.players, playerID); i >= 0 {
		return g.players[i]
	}
	return nil
}

func (g *Game) roleOf(playerID string) models.Role {
	switch {
	case g.isMafia(playerID):
		return models.RoleMafia
	case isPlayer(g.doctor, playerID):
		return models.RoleDoctor
	case isPlayer(g.detective, playerID):
		return models.RoleDetective
	default:
		return models.RoleVillager
	}
}

// kill removes a player from the game and announces their role. The win
// check is left to the caller.
func (g *Game) kill(ctx context.Context, player Player, cause models.DeathCause) {
	id := player.ID()
	if indexOf(g.players, id) < 0 {
		return
	}

	role := g.roleOf(id)
	switch role {
	case models.RoleMafia:
		g.mafia = without(g.mafia, id)
		g.revokeMafiaChannel(ctx, id)
	case models.RoleDoctor:
		g.doctor = nil
		g.villagers = without(g.villagers, id)
	case models.RoleDetective:
		g.detective = nil
		g.villagers = without(g.villagers, id)
	default:
		g.villagers = without(g.villagers, id)
	}

	g.removePlayer(id)
	g.send(ctx, g.channel, deathMessage(player, role, cause))
	g.log.Info("player %s %s, they were %s", id, cause, role)
}

// checkWin ends the game if either side has won and reports whether it did
func (g *Game) checkWin(ctx context.Context) bool {
	win := CheckWin(len(g.mafia), len(g.villagers))
	if win == models.WinNone {
		return false
	}
	g.endGame(ctx, win)
	return true
}

func (g *Game) endGame(ctx context.Context, win models.Win) {
	g.setState(models.GameStateEnded)
	g.removeMafiaChannel(ctx)

	var winners []Player
	switch win {
	case models.WinVillagers:
		winners = g.villagers
	case models.WinMafia:
		winners = g.mafia
	}

	g.send(ctx, g.channel, endMessage(win, winners, g.prefix()))

	if win != models.WinNone && g.settings.WinCommand != "" && len(winners) > 0 {
		g.send(ctx, g.channel, &models.Message{
			Content: g.settings.WinCommand + " " + mentions(winners),
		})
	}

	g.recordResult(ctx, win)
	g.log.Info("game ended in round %d, winner %s", g.round, win)
}

func (g *Game) recordResult(ctx context.Context, win models.Win) {
	if g.resultRepo == nil {
		return
	}

	result := &models.GameResult{
		ID:        g.uuidGenerator.NewUUID(),
		GameID:    g.id,
		GuildID:   g.guildID,
		ChannelID: g.channel.ID(),
		Winner:    win,
		Rounds:    g.round,
		Mafia:     g.dealtMafia,
		Villagers: g.dealtVillagers,
		StartedAt: g.startedAt,
		EndedAt:   g.clock.Now(),
	}

	if err := g.resultRepo.SaveResult(ctx, &resultRepo.SaveResultInput{Result: result}); err != nil {
		g.log.Error("failed to save game result: %v", err)
	}
}

func (g *Game) removeMafiaChannel(ctx context.Context) {
	if g.mafiaChannel == nil {
		return
	}

	id := g.mafiaChannel.ID()
	g.mafiaChannel = nil
	g.directory.UnbindSubChannel(id)

	if err := g.provisioner.DeleteChannel(ctx, &DeleteChannelInput{ChannelID: id}); err != nil {
		g.log.Warn("failed to delete mafia channel %s: %v", id, err)
	}
}

func (g *Game) revokeMafiaChannel(ctx context.Context, playerID string) {
	if g.mafiaChannel == nil {
		return
	}

	err := g.provisioner.RevokeMember(ctx, &RevokeMemberInput{
		ChannelID: g.mafiaChannel.ID(),
		PlayerID:  playerID,
	})
	if err != nil {
		g.log.Warn("failed to revoke mafia channel access for %s: %v", playerID, err)
	}
}

func indexOf(players []Player, playerID string) int {
	for i, p := range players {
		if p.ID() == playerID {
			return i
		}
	}
	return -1
}

func without(players []Player, playerID string) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if p.ID() != playerID {
			out = append(out, p)
		}
	}
	return out
}

func isPlayer(p Player, playerID string) bool {
	return p != nil && p.ID() == playerID
}

func names(players []Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.DisplayName())
	}
	return out
}

func mentions(players []Player) string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Mention())
	}
	return strings.Join(out, " ")
}
