package game

import (
	"math/rand"
	"sync"
	"time"
)

// Sector bounds of a European wheel.
const (
	MinResult = 0
	MaxResult = 36
)

// Generator draws one spin result in [0,36]. Implementations must be
// safe for concurrent settlements.
type Generator interface {
	Draw() int
}

type randGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() Generator {
	return &randGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *randGenerator) Draw() int {
	// rand.Rand is not goroutine-safe.
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(MaxResult + 1)
}
