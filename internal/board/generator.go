package board

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"
)

const (
	minWordLen = 3
	// Upper bound on generate-validate attempts for one board.
	maxGenAttempts = 1000
)

// ErrNoBoard is returned when not a single usable board came out of the
// generate-validate loop.
var ErrNoBoard = errors.New("no_usable_board")

// Generator builds letter grids and solves them against a dictionary.
type Generator struct {
	dict *Dictionary

	// MinSolutions is the quality bar a board must clear.
	MinSolutions int

	mu      sync.Mutex
	sampler *letterSampler
}

func NewGenerator(dict *Dictionary, minSolutions int) *Generator {
	if minSolutions < 1 {
		minSolutions = 1
	}
	return &Generator{
		dict:         dict,
		MinSolutions: minSolutions,
		sampler:      newLetterSampler(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// Generate produces one board that clears the quality bar. The loop is
// capped; past the cap the best board seen so far is returned, and only a
// run that found no solutions at all fails.
func (g *Generator) Generate() (Board, error) {
	var best Board
	for attempt := 0; attempt < maxGenAttempts; attempt++ {
		grid := g.randomGrid()
		words := g.Solve(grid)
		if len(words) >= g.MinSolutions {
			return Board{Grid: grid, Words: words}, nil
		}
		if len(words) > len(best.Words) {
			best = Board{Grid: grid, Words: words}
		}
	}
	if len(best.Words) == 0 {
		return Board{}, ErrNoBoard
	}
	return best, nil
}

func (g *Generator) randomGrid() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	grid := make([]string, Size*Size)
	for i := range grid {
		grid[i] = string(g.sampler.next())
	}
	return grid
}

// Solve walks every non-repeating adjacent-cell path on the grid and
// collects the dictionary words it spells, sorted and deduplicated.
func (g *Generator) Solve(grid []string) []string {
	found := map[string]struct{}{}
	visited := make([]bool, len(grid))
	var walk func(cell int, prefix string)
	walk = func(cell int, prefix string) {
		word := prefix + grid[cell]
		if len(word) >= minWordLen {
			if _, ok := g.dict.words[word]; ok {
				found[word] = struct{}{}
			}
		}
		if !g.dict.hasPrefix(word) {
			return
		}
		visited[cell] = true
		for _, n := range neighbors(cell) {
			if !visited[n] {
				walk(n, word)
			}
		}
		visited[cell] = false
	}
	for cell := range grid {
		walk(cell, "")
	}

	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func neighbors(cell int) []int {
	row, col := cell/Size, cell%Size
	out := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < Size && c >= 0 && c < Size {
				out = append(out, r*Size+c)
			}
		}
	}
	return out
}
