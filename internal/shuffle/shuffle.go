package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler randomises the order of n elements using swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Random is a Shuffler backed by math/rand. It is safe for concurrent use.
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random shuffler
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle pseudo-randomises the order of elements
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
