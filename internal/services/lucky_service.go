package services

import (
	"math/rand"
	"sync"
)

// defaultPool is the repdigit fallback used when no weighted pool is
// supplied.
var defaultPool = []string{"00", "11", "22", "33", "44", "55", "66", "77", "88", "99"}

// LuckyService draws one number from a weighted candidate pool.
// Duplicates in the pool raise a value's selection probability; that is
// the only weighting mechanism.
type LuckyService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLuckyService takes the random source so draws can be made
// deterministic under test. The mutex guards the source, which is not
// safe for concurrent use.
func NewLuckyService(rng *rand.Rand) *LuckyService {
	return &LuckyService{rng: rng}
}

// Draw picks one element uniformly from pool, or from the repdigit
// fallback when pool is empty.
func (s *LuckyService) Draw(pool []string) string {
	if len(pool) == 0 {
		pool = defaultPool
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}
