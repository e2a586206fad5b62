package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gridlife/pkg/grid"
)

// ErrInvalidPattern is returned for malformed plaintext patterns.
var ErrInvalidPattern = errors.New("life: invalid pattern")

// Pattern is a set of live cells relative to its top-left corner. X grows to
// the right and Y grows downward (one step per text row).
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []grid.Coord
}

// builtinPatterns holds a few well-known shapes in plaintext form.
var builtinPatterns = map[string]string{
	"block":   "OO\nOO\n",
	"blinker": "OOO\n",
	"toad":    ".OOO\nOOO.\n",
	"beacon":  "OO..\nOO..\n..OO\n..OO\n",
	"glider":  ".O.\n..O\nOOO\n",
	"lwss":    ".O..O\nO....\nO...O\nOOOO.\n",
}

// Builtins lists the names accepted by Builtin.
func Builtins() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a named built-in pattern.
func Builtin(name string) (Pattern, bool) {
	src, ok := builtinPatterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, false
	}
	p, err := ParsePattern(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("life: builtin %q: %v", name, err))
	}
	p.Name = strings.ToLower(name)
	return p, true
}

// LoadPattern resolves a built-in name first and falls back to reading a
// plaintext file.
func LoadPattern(nameOrPath string) (Pattern, error) {
	if p, ok := Builtin(nameOrPath); ok {
		return p, nil
	}
	f, err := os.Open(nameOrPath)
	if err != nil {
		return Pattern{}, err
	}
	defer f.Close()
	p, err := ParsePattern(f)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", nameOrPath, err)
	}
	return p, nil
}

// ParsePattern reads the plaintext format: lines starting with '!' are
// comments ("!Name: x" sets the name), 'O' or '*' marks a live cell and '.'
// a dead one. Trailing dead cells may be omitted.
func ParsePattern(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	line := 0
	row := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			if name, ok := strings.CutPrefix(text, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for col, ch := range text {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, grid.Coord{X: col, Y: row})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("line %d col %d: unexpected %q: %w", line, col+1, ch, ErrInvalidPattern)
			}
		}
		p.Width = max(p.Width, len(text))
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	p.Height = row
	return p, nil
}
