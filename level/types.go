// Package level provides the collision world the simulation moves actors
// through: a solid/empty tile grid plus a list of static rectangles.
// It has no dependencies on ebitengine or donburi.
package level

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles intersect. Touching edges do not
// count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Grid is a row-major grid of solid/empty cells.
type Grid struct {
	cols     int
	rows     int
	tileSize float64
	cells    []bool
}

// NewGrid returns an all-empty grid. Non-positive dimensions yield an
// empty grid that reports zero columns and rows.
func NewGrid(cols, rows int, tileSize float64) *Grid {
	if cols <= 0 || rows <= 0 || tileSize <= 0 {
		return &Grid{tileSize: tileSize}
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		cells:    make([]bool, cols*rows),
	}
}

func (g *Grid) Columns() int {
	if g == nil {
		return 0
	}
	return g.cols
}

func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

func (g *Grid) TileSize() float64 {
	if g == nil {
		return 0
	}
	return g.tileSize
}

// Set marks a cell solid or empty. Out-of-range cells are ignored.
func (g *Grid) Set(tx, ty int, solid bool) {
	if !g.inBounds(tx, ty) {
		return
	}
	g.cells[ty*g.cols+tx] = solid
}

// FillRows marks every cell in rows [from, to) solid.
func (g *Grid) FillRows(from, to int) {
	for ty := from; ty < to; ty++ {
		for tx := 0; tx < g.Columns(); tx++ {
			g.Set(tx, ty, true)
		}
	}
}

// Solid reports whether a cell is solid. Out-of-range cells are empty.
func (g *Grid) Solid(tx, ty int) bool {
	if !g.inBounds(tx, ty) {
		return false
	}
	return g.cells[ty*g.cols+tx]
}

// TileRect returns the world rectangle covered by a cell.
func (g *Grid) TileRect(tx, ty int) Rect {
	return Rect{
		X: float64(tx) * g.tileSize,
		Y: float64(ty) * g.tileSize,
		W: g.tileSize,
		H: g.tileSize,
	}
}

func (g *Grid) inBounds(tx, ty int) bool {
	return g != nil && tx >= 0 && ty >= 0 && tx < g.cols && ty < g.rows
}
