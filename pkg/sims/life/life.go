package life

import (
	"fmt"

	"cli-life/pkg/core"
)

// Config holds the parameters needed to build a Board.
type Config struct {
	// Width and Height are measured in pixels; the grid has Width/CellSize
	// columns and Height/CellSize rows.
	Width    int
	Height   int
	CellSize int

	LiveDensity float64
	Seed        int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 20, CellSize: 1, LiveDensity: 0.1, Seed: 42}
}

// Validate reports whether the configuration describes a buildable board.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrConfig, c.CellSize)
	}
	if c.Width/c.CellSize <= 0 || c.Height/c.CellSize <= 0 {
		return fmt.Errorf("%w: %dx%d with cell size %d leaves no cells", ErrConfig, c.Width, c.Height, c.CellSize)
	}
	if !(c.LiveDensity >= 0 && c.LiveDensity <= 1) {
		return fmt.Errorf("%w: live density %g outside [0,1]", ErrConfig, c.LiveDensity)
	}
	return nil
}

// Board implements Conway's Game of Life (B3/S23) on a torus.
type Board struct {
	w, h     int
	cellSize int
	density  float64
	gen      int

	topo *Topology
	cur  []uint8
	nxt  []uint8
	rng  *core.RNG
}

// New returns a randomized board of columns x rows cells.
func New(columns, rows int, liveDensity float64, seed int64) (*Board, error) {
	return NewWithConfig(Config{
		Width:       columns,
		Height:      rows,
		CellSize:    1,
		LiveDensity: liveDensity,
		Seed:        seed,
	})
}

// NewWithConfig builds the topology and randomizes the board from cfg.
func NewWithConfig(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(cfg.Width/cfg.CellSize, cfg.Height/cfg.CellSize, cfg.CellSize, cfg.Seed)
	b.density = cfg.LiveDensity
	b.Randomize(cfg.LiveDensity)
	return b, nil
}

func newBoard(w, h, cellSize int, seed int64) *Board {
	cells := make([]uint8, w*h)
	return &Board{
		w:        w,
		h:        h,
		cellSize: cellSize,
		topo:     NewTopology(w, h),
		cur:      cells,
		nxt:      make([]uint8, len(cells)),
		rng:      core.NewRNG(seed),
	}
}

// Columns returns the number of cells per row.
func (b *Board) Columns() int { return b.w }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.h }

// CellSize returns the pixels-per-cell scale factor.
func (b *Board) CellSize() int { return b.cellSize }

// Width returns the board width in pixels.
func (b *Board) Width() int { return b.w * b.cellSize }

// Height returns the board height in pixels.
func (b *Board) Height() int { return b.h * b.cellSize }

// Generation returns how many times the board has advanced since it was built or reset.
func (b *Board) Generation() int { return b.gen }

// Cells exposes the current grid values.
func (b *Board) Cells() []uint8 { return b.cur }

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (b *Board) Alive(x, y int) bool {
	x, y = b.topo.Wrap(x, y)
	return b.cur[b.topo.Index(x, y)] == 1
}

// Set changes the state of the cell at (x, y). Coordinates wrap.
func (b *Board) Set(x, y int, alive bool) {
	x, y = b.topo.Wrap(x, y)
	var v uint8
	if alive {
		v = 1
	}
	b.cur[b.topo.Index(x, y)] = v
}

// Randomize sets each cell alive with probability density.
func (b *Board) Randomize(density float64) {
	b.rng.FillDensity(b.cur, density)
}

// Reset reseeds the board's random source and randomizes it with the
// density it was built with.
func (b *Board) Reset(seed int64) {
	b.rng = core.NewRNG(seed)
	b.gen = 0
	b.Randomize(b.density)
}

// Advance computes the next generation for every cell before committing any
// of them.
func (b *Board) Advance() {
	for idx, alive := range b.cur {
		neighbors := 0
		for _, n := range b.topo.neighbors[idx] {
			neighbors += int(b.cur[n])
		}
		b.nxt[idx] = 0
		if (alive == 1 && (neighbors == 2 || neighbors == 3)) || (alive == 0 && neighbors == 3) {
			b.nxt[idx] = 1
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

// CountLiveCells returns the number of live cells.
func (b *Board) CountLiveCells() int {
	total := 0
	for _, c := range b.cur {
		total += int(c)
	}
	return total
}
