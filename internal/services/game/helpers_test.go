package game_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/game"
)

// fakeAudience records everything sent to it
type fakeAudience struct {
	mu   sync.Mutex
	id   string
	name string
	sent []*models.Message
	err  error
}

func newFakePlayer(n int) *fakeAudience {
	return &fakeAudience{
		id:   fmt.Sprintf("p%d", n),
		name: fmt.Sprintf("Player %d", n),
	}
}

func (f *fakeAudience) ID() string {
	return f.id
}

func (f *fakeAudience) Send(ctx context.Context, msg *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeAudience) Mention() string {
	return "<@" + f.id + ">"
}

func (f *fakeAudience) DisplayName() string {
	return f.name
}

func (f *fakeAudience) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeAudience) contains(substr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, msg := range f.sent {
		if strings.Contains(msg.Text(), substr) {
			return true
		}
	}
	return false
}

func (f *fakeAudience) countContaining(substr string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, msg := range f.sent {
		if strings.Contains(msg.Text(), substr) {
			n++
		}
	}
	return n
}

// noShuffle keeps join order so roles are predictable
type noShuffle struct{}

func (noShuffle) Shuffle(n int, swap func(i, j int)) {}

func asPlayers(fakes []*fakeAudience) []game.Player {
	players := make([]game.Player, 0, len(fakes))
	for _, f := range fakes {
		players = append(players, f)
	}
	return players
}
