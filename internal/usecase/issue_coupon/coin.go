package issue_coupon

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomCoin is a fair coin safe for concurrent use
type RandomCoin struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomCoin seeds the coin; seed 0 seeds from the clock
func NewRandomCoin(seed uint64) *RandomCoin {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomCoin{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *RandomCoin) Heads() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(2) == 0
}
