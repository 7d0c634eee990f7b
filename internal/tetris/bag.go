package tetris

import "math/rand"

// Bag deals tetromino kinds without long-run bias. When the pending
// sequence runs out it is refilled with a fixed number of complete
// 7-kind sets and shuffled, so any kind repeats at most a bounded
// number of draws apart.
type Bag struct {
	rng     *rand.Rand
	pending []Kind
	batches int
}

// NewBag creates a bag that refills with the given number of complete
// kind sets at a time. A batch count below 1 is raised to 1.
func NewBag(rng *rand.Rand, batches int) *Bag {
	if batches < 1 {
		batches = 1
	}
	return &Bag{rng: rng, batches: batches}
}

// Draw removes and returns one kind, refilling the bag first if it is
// empty.
func (b *Bag) Draw() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[len(b.pending)-1]
	b.pending = b.pending[:len(b.pending)-1]
	return k
}

// Remaining returns how many kinds are pending before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

// refill loads the configured number of complete kind sets and
// shuffles them uniformly.
func (b *Bag) refill() {
	for range b.batches {
		b.pending = append(b.pending, Kinds[:]...)
	}
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}
