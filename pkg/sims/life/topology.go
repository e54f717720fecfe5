package life

// Neighbor order within a topology entry.
const (
	NW = iota
	N
	NE
	W
	E
	SW
	S
	SE
)

// Topology stores the eight toroidal neighbor indices of every cell in a
// row-major grid.
type Topology struct {
	w, h      int
	neighbors [][8]int
}

// NewTopology computes neighbor indices for a w*h grid with wraparound.
// Tiny grids wrap onto themselves and produce repeated indices.
func NewTopology(w, h int) *Topology {
	t := &Topology{w: w, h: h, neighbors: make([][8]int, w*h)}
	for y := 0; y < h; y++ {
		up := (y - 1 + h) % h
		down := (y + 1) % h
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			t.neighbors[y*w+x] = [8]int{
				NW: up*w + left,
				N:  up*w + x,
				NE: up*w + right,
				W:  y*w + left,
				E:  y*w + right,
				SW: down*w + left,
				S:  down*w + x,
				SE: down*w + right,
			}
		}
	}
	return t
}

// Neighbors returns the neighbor indices of the cell at idx.
func (t *Topology) Neighbors(idx int) [8]int { return t.neighbors[idx] }

// Index returns the linear slice index for coordinates (x, y).
func (t *Topology) Index(x, y int) int { return y*t.w + x }

// Coords is the inverse of Index.
func (t *Topology) Coords(idx int) (int, int) { return idx % t.w, idx / t.w }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t *Topology) Wrap(x, y int) (int, int) {
	x = (x%t.w + t.w) % t.w
	y = (y%t.h + t.h) % t.h
	return x, y
}
