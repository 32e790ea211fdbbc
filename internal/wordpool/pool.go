// Package wordpool supplies the ordered list of candidate words for word
// mode. Pools come from the embedded default list, the config file, a text
// or YAML word file, or a SQLite word database.
package wordpool

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed defaults/words.txt
var defaultWords string

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("wordpool: no usable words")

// Pool is an ordered, de-duplicated list of lower-case words.
type Pool []string

// Default returns the built-in pool.
func Default() Pool {
	p, err := ParseText(strings.NewReader(defaultWords))
	if err != nil {
		// The embedded list is fixed at build time.
		panic("wordpool: embedded list is invalid: " + err.Error())
	}
	return p
}

// New normalizes words into a pool: trimmed, lower-cased, letters only,
// first occurrence kept. Words containing non-letters are dropped.
func New(words []string) (Pool, error) {
	seen := make(map[string]bool, len(words))
	p := make(Pool, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !isWord(w) || seen[w] {
			continue
		}
		seen[w] = true
		p = append(p, w)
	}
	if len(p) == 0 {
		return nil, ErrEmpty
	}
	return p, nil
}

// ParseText reads one word per line. Blank lines and lines starting with #
// are skipped.
func ParseText(r io.Reader) (Pool, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(words)
}

// CountByLength returns the number of words of each rune length.
func (p Pool) CountByLength() map[int]int {
	counts := make(map[int]int)
	for _, w := range p {
		counts[utf8.RuneCountInString(w)]++
	}
	return counts
}

// Strings returns the pool as a plain slice.
func (p Pool) Strings() []string {
	return []string(p)
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
