package grid

import (
	"math"

	"github.com/rtfluence/fluence/geom"
)

// Grid is a rectangular, axis-aligned float64 accumulator over BEV
// centimetres. It is owned exclusively by one fluence.Result; during a
// sweep, the integrator mutates it (typically from several goroutines,
// each owning a disjoint row band); afterwards it is read-only.
type Grid struct {
	x0, y0 float64 // lower-left corner, cm
	width  float64 // physical extent, cm
	height float64 // physical extent, cm
	cols   int
	rows   int
	dx, dy float64 // cell spacing, cm
	data   []float64
}

// New allocates a zero-initialised Grid of cols columns and rows rows,
// covering [x0, x0+width] x [y0, y0+height] in BEV centimetres.
// Complexity: O(cols*rows) time and memory.
func New(x0, y0, width, height float64, cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidExtent
	}

	return &Grid{
		x0:     x0,
		y0:     y0,
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		dx:     width / float64(cols),
		dy:     height / float64(rows),
		data:   make([]float64, cols*rows),
	}, nil
}

// Cols returns the column count C.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the row count R.
func (g *Grid) Rows() int { return g.rows }

// Spacing returns the per-cell width (dx) and height (dy) in cm.
func (g *Grid) Spacing() (dx, dy float64) { return g.dx, g.dy }

// Origin returns the lower-left corner of the grid's physical bounds.
func (g *Grid) Origin() (x0, y0 float64) { return g.x0, g.y0 }

// Extent returns the grid's physical width and height in cm.
func (g *Grid) Extent() (width, height float64) { return g.width, g.height }

func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, ErrIndexOutOfBounds
	}
	return row*g.cols + col, nil
}

// Get returns the value at (row, col).
func (g *Grid) Get(row, col int) (float64, error) {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return 0, gridErrorf("Get", row, col, err)
	}
	return g.data[idx], nil
}

// Set assigns v at (row, col).
func (g *Grid) Set(row, col int, v float64) error {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf("Set", row, col, err)
	}
	g.data[idx] = v
	return nil
}

// Add accumulates v into (row, col). Safe to call concurrently from
// multiple goroutines provided each owns a disjoint row range — writes
// to distinct rows never alias, so Add itself does no locking. Calling
// Add on the same cell from two goroutines concurrently is a data race;
// the integrator never does this.
func (g *Grid) Add(row, col int, v float64) error {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf("Add", row, col, err)
	}
	g.data[idx] += v
	return nil
}

// BoundsOfCell returns the axis-aligned rectangle covered by (row, col)
// in BEV centimetres:
//
//	[(x0+col*dx, y0+row*dy), (x0+(col+1)*dx, y0+(row+1)*dy)]
func (g *Grid) BoundsOfCell(row, col int) geom.Rect {
	return geom.Rect{
		XLo: g.x0 + float64(col)*g.dx,
		YLo: g.y0 + float64(row)*g.dy,
		XHi: g.x0 + float64(col+1)*g.dx,
		YHi: g.y0 + float64(row+1)*g.dy,
	}
}

// CellOfPoint returns the (row, col) containing (x, y) using floor
// indexing. Behaviour is undefined (may return an out-of-range index) for
// points outside the grid's bounds — callers clip to bounds first, as
// the integrator does when it turns an aperture bounding box into a cell
// index rectangle.
func (g *Grid) CellOfPoint(x, y float64) (row, col int) {
	col = int(math.Floor((x - g.x0) / g.dx))
	row = int(math.Floor((y - g.y0) / g.dy))
	return row, col
}

// ClampCellRange clips the cell-index rectangle [rLo,rHi) x [cLo,cHi)
// implied by box against this grid's actual [0,rows) x [0,cols) bounds.
// Aperture geometry outside the grid is not an error — it is silently
// dropped here rather than causing an out-of-bounds Add.
func (g *Grid) ClampCellRange(box geom.Rect) (rLo, rHi, cLo, cHi int) {
	if box.Empty() {
		return 0, 0, 0, 0
	}

	rLo, cLo = g.CellOfPoint(box.XLo, box.YLo)
	rHiF, cHiF := g.CellOfPoint(box.XHi, box.YHi)
	// +1 makes the range half-open and exclusive-upper; this can include
	// one extra row/col when box.XHi/YHi lands exactly on a cell edge,
	// but the exact clip in package aperture/fluence contributes zero
	// area for a cell the aperture doesn't actually reach, so the
	// over-inclusion is harmless.
	rHi, cHi = rHiF+1, cHiF+1

	if cLo < 0 {
		cLo = 0
	}
	if rLo < 0 {
		rLo = 0
	}
	if cHi > g.cols {
		cHi = g.cols
	}
	if rHi > g.rows {
		rHi = g.rows
	}
	if cHi < cLo {
		cHi = cLo
	}
	if rHi < rLo {
		rHi = rLo
	}
	return rLo, rHi, cLo, cHi
}

// Sum returns the sum of every cell value, used by tests to check the
// total-fluence invariant.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.data {
		s += v
	}
	return s
}

// ForEach calls fn once per cell with its value, in row-major order.
func (g *Grid) ForEach(fn func(row, col int, v float64)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(r, c, g.data[r*g.cols+c])
		}
	}
}
