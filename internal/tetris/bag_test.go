package tetris

import (
	"math/rand"
	"testing"
)

func TestBagRefillComposition(t *testing.T) {
	for _, batches := range []int{1, 3} {
		bag := NewBag(rand.New(rand.NewSource(1)), batches)

		counts := make(map[Kind]int)
		for range 7 * batches {
			counts[bag.Draw()]++
		}

		for _, kind := range Kinds {
			if counts[kind] != batches {
				t.Errorf("batches=%d: drew %s %d times, want %d", batches, kind, counts[kind], batches)
			}
		}
	}
}

func TestBagExhaustionTriggersRefill(t *testing.T) {
	const batches = 3
	bag := NewBag(rand.New(rand.NewSource(42)), batches)

	for range 7 * batches {
		bag.Draw()
	}
	if bag.Remaining() != 0 {
		t.Fatalf("Remaining() = %d after full cycle, want 0", bag.Remaining())
	}

	bag.Draw()
	if bag.Remaining() != 7*batches-1 {
		t.Errorf("Remaining() = %d after refill draw, want %d", bag.Remaining(), 7*batches-1)
	}
}

func TestBagDeterministicForSeed(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(7)), 2)
	b := NewBag(rand.New(rand.NewSource(7)), 2)

	for i := range 30 {
		if ka, kb := a.Draw(), b.Draw(); ka != kb {
			t.Fatalf("draw %d: %s != %s for identical seeds", i, ka, kb)
		}
	}
}

func TestBagMinimumBatchCount(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(0)), 0)
	bag.Draw()
	if bag.Remaining() != 6 {
		t.Errorf("Remaining() = %d, want 6 for a single-set refill", bag.Remaining())
	}
}
