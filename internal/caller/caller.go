package caller

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_caller.go github.com/parlorgames/bingohall/internal/caller Caller

// Caller picks the numbers called out during a game
type Caller interface {
	// Call returns a uniform random number in [1, max]
	Call(max int) int
}

// Config for the number caller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomCaller implements Caller using a seeded random source
type randomCaller struct {
	random *rand.Rand
}

// New creates a new number caller
func New(cfg *Config) *randomCaller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomCaller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Call returns a uniform random number in [1, max]
func (c *randomCaller) Call(max int) int {
	if max < 1 {
		max = 1
	}
	return c.random.Intn(max) + 1
}
