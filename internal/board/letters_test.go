package board

import (
	"math/rand"
	"testing"
)

func TestLetterSamplerRange(t *testing.T) {
	s := newLetterSampler(rand.New(rand.NewSource(1)))
	seen := map[byte]int{}
	for i := 0; i < 10000; i++ {
		c := s.next()
		if c < 'A' || c > 'Z' {
			t.Fatalf("sampled %q outside A-Z", c)
		}
		seen[c]++
	}
	// S is weighted over twenty times heavier than X; a draw this large
	// should make that visible.
	if seen['S'] <= seen['X'] {
		t.Fatalf("weighting lost: S=%d X=%d", seen['S'], seen['X'])
	}
}
