package life

import "slices"

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named set of cells that must all be alive for a match.
type Pattern struct {
	Name  string
	cells []Offset
}

// ParsePattern builds a pattern from a text picture. 'X', 'O', '*' and '1'
// mark live cells; any other character is ignored. The top-left corner of the
// picture is the anchor.
func ParsePattern(name string, rows ...string) Pattern {
	p := Pattern{Name: name}
	for dy, row := range rows {
		for dx, ch := range []byte(row) {
			switch ch {
			case 'X', 'O', '*', '1':
				p.cells = append(p.cells, Offset{DX: dx, DY: dy})
			}
		}
	}
	return p
}

// Offsets returns a copy of the pattern's cells.
func (p Pattern) Offsets() []Offset { return slices.Clone(p.cells) }

// Library is a read-only, ordered collection of patterns.
type Library struct {
	patterns []Pattern
}

// NewLibrary collects patterns in order. Unnamed or empty patterns and
// repeated names are skipped.
func NewLibrary(patterns ...Pattern) *Library {
	l := &Library{}
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if p.Name == "" || len(p.cells) == 0 || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		l.patterns = append(l.patterns, Pattern{Name: p.Name, cells: slices.Clone(p.cells)})
	}
	return l
}

// Names lists the pattern names in library order.
func (l *Library) Names() []string {
	names := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		names[i] = p.Name
	}
	return names
}

// Patterns returns the library contents.
func (l *Library) Patterns() []Pattern {
	out := make([]Pattern, len(l.patterns))
	for i, p := range l.patterns {
		out[i] = Pattern{Name: p.Name, cells: slices.Clone(p.cells)}
	}
	return out
}

var standardLibrary = NewLibrary(
	ParsePattern("block",
		"XX",
		"XX",
	),
	ParsePattern("beehive",
		".XX.",
		"X..X",
		".XX.",
	),
	ParsePattern("loaf",
		".XX.",
		"X..X",
		".X.X",
		"..X.",
	),
	ParsePattern("boat",
		"XX.",
		"X.X",
		".X.",
	),
	ParsePattern("tub",
		".X.",
		"X.X",
		".X.",
	),
)

// StandardLibrary returns the built-in still lifes: block, beehive, loaf,
// boat and tub.
func StandardLibrary() *Library { return standardLibrary }

// CountPatterns counts standard library matches on the board.
func (b *Board) CountPatterns() map[string]int {
	return MatchPatterns(b, standardLibrary)
}

// MatchPatterns counts, for every pattern in lib, the anchors at which all of
// the pattern's cells are alive. Cells around the pattern are not checked, so
// a pattern also matches inside a larger live region. Every library name is
// present in the result.
func MatchPatterns(b *Board, lib *Library) map[string]int {
	counts := make(map[string]int, len(lib.patterns))
	for _, p := range lib.patterns {
		n := 0
		for y := 0; y < b.h; y++ {
			for x := 0; x < b.w; x++ {
				if b.matchesAt(p, x, y) {
					n++
				}
			}
		}
		counts[p.Name] = n
	}
	return counts
}

func (b *Board) matchesAt(p Pattern, x, y int) bool {
	for _, o := range p.cells {
		nx, ny := b.topo.Wrap(x+o.DX, y+o.DY)
		if b.cur[ny*b.w+nx] == 0 {
			return false
		}
	}
	return true
}
