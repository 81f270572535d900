package board

import "testing"

func testDict(t *testing.T, words string) *Dictionary {
	t.Helper()
	return parseDictionary(words)
}

func TestParseDictionarySkipsShortAndJunk(t *testing.T) {
	d := testDict(t, "cat\nat\ncats\nc4t\n  dog \n")
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	if !d.Contains("cat") || !d.Contains("CATS") || !d.Contains("dog") {
		t.Fatal("expected cat, cats and dog to be accepted")
	}
	if d.Contains("at") || d.Contains("c4t") {
		t.Fatal("short and non-alpha entries must be skipped")
	}
}

func TestSolveFindsAdjacentPaths(t *testing.T) {
	d := testDict(t, "cat\ncats\ndog\n")
	g := NewGenerator(d, 1)
	grid := []string{
		"C", "A", "T", "S",
		"X", "X", "X", "X",
		"X", "X", "X", "X",
		"X", "X", "X", "X",
	}
	words := g.Solve(grid)
	if len(words) != 2 || words[0] != "CAT" || words[1] != "CATS" {
		t.Fatalf("Solve() = %v, want [CAT CATS]", words)
	}
}

func TestSolveNeverReusesACell(t *testing.T) {
	d := testDict(t, "tot\n")
	g := NewGenerator(d, 1)
	grid := []string{
		"T", "O", "X", "X",
		"X", "X", "X", "X",
		"X", "X", "X", "X",
		"X", "X", "X", "X",
	}
	if words := g.Solve(grid); len(words) != 0 {
		t.Fatalf("Solve() = %v, want none (single T on board)", words)
	}
}

func TestGenerateClearsQualityBar(t *testing.T) {
	d, err := LoadDictionary()
	if err != nil {
		t.Fatalf("LoadDictionary() error = %v", err)
	}
	g := NewGenerator(d, 1)
	b, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(b.Grid) != Size*Size {
		t.Fatalf("grid has %d cells, want %d", len(b.Grid), Size*Size)
	}
	if len(b.Words) < 1 {
		t.Fatalf("expected at least one solution, got %d", len(b.Words))
	}
}

func TestNeighborsCornerAndCenter(t *testing.T) {
	if n := neighbors(0); len(n) != 3 {
		t.Fatalf("corner cell has %d neighbors, want 3", len(n))
	}
	if n := neighbors(5); len(n) != 8 {
		t.Fatalf("center cell has %d neighbors, want 8", len(n))
	}
}
