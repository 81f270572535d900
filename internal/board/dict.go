package board

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
)

//go:embed words.txt
var embeddedWords string

// Dictionary holds the accepted word set plus every proper prefix of it,
// so the grid walk can prune dead branches early.
type Dictionary struct {
	words    map[string]struct{}
	prefixes map[string]struct{}
}

// LoadDictionary reads one word per line from WORDS_FILE when set, falling
// back to the embedded list. Words are upper-cased; anything shorter than
// three letters or containing non-letters is skipped.
func LoadDictionary() (*Dictionary, error) {
	raw := embeddedWords
	if path := os.Getenv("WORDS_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = string(data)
	}
	return parseDictionary(raw), nil
}

func parseDictionary(raw string) *Dictionary {
	d := &Dictionary{
		words:    map[string]struct{}{},
		prefixes: map[string]struct{}{},
	}
	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		word := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(word) < minWordLen || !isAlpha(word) {
			continue
		}
		d.words[word] = struct{}{}
		for i := 1; i < len(word); i++ {
			d.prefixes[word[:i]] = struct{}{}
		}
	}
	return d
}

func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToUpper(word)]
	return ok
}

func (d *Dictionary) hasPrefix(p string) bool {
	_, ok := d.prefixes[p]
	return ok
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
