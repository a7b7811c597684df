package services

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler randomises order in place.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewShuffler returns a goroutine-safe Shuffler. A zero seed uses the clock.
func NewShuffler(seed int64) Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))} // #nosec G404 -- ordering only
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// shuffledIDs shuffles ids in place and returns them deduplicated in their new order, capped at need.
func shuffledIDs(s Shuffler, ids []string, need int) []string {
	s.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return truncate(dedupe(ids), need)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func truncate(ids []string, n int) []string {
	if n >= 0 && len(ids) > n {
		return ids[:n]
	}
	return ids
}
