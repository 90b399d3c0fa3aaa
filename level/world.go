package level

import (
	"github.com/solarlune/resolv"
)

// Resolv tag for static colliders
const tagSolid = "solid"

// spaceCell is the broadphase cell size for static colliders.
const spaceCell = 32

// World is the collision source for one stage. Either part may be absent;
// a nil *World behaves as an empty, unbounded-height world.
type World struct {
	Grid    *Grid
	Statics []Rect
	Width   float64
	GroundY float64

	space *resolv.Space
	probe *resolv.Object
}

// NewWorld indexes the static rectangles for broadphase queries. Statics
// keep their declaration order; it decides which one wins when several
// overlap a query.
func NewWorld(width, groundY float64, grid *Grid, statics []Rect) *World {
	w := &World{
		Grid:    grid,
		Statics: statics,
		Width:   width,
		GroundY: groundY,
	}
	if len(statics) == 0 {
		return w
	}

	spaceW := int(width) + spaceCell
	spaceH := int(groundY) + spaceCell
	for _, r := range statics {
		if int(r.Right()) >= spaceW {
			spaceW = int(r.Right()) + spaceCell
		}
		if int(r.Bottom()) >= spaceH {
			spaceH = int(r.Bottom()) + spaceCell
		}
	}

	w.space = resolv.NewSpace(spaceW, spaceH, spaceCell, spaceCell)
	for i, r := range statics {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		obj.Data = i
		w.space.Add(obj)
	}
	w.probe = resolv.NewObject(0, 0, 1, 1)
	w.space.Add(w.probe)
	return w
}

// Columns is the tile grid's column count, or 0 without a grid.
func (w *World) Columns() int {
	if w == nil {
		return 0
	}
	return w.Grid.Columns()
}

// Rows is the tile grid's row count, or 0 without a grid.
func (w *World) Rows() int {
	if w == nil {
		return 0
	}
	return w.Grid.Rows()
}

// StageWidth is the world width in pixels. fallback is returned when the
// world has no width of its own.
func (w *World) StageWidth(fallback float64) float64 {
	if w == nil || w.Width <= 0 {
		return fallback
	}
	return w.Width
}

// FirstStatic returns the lowest-indexed static rectangle that overlaps box.
func (w *World) FirstStatic(box Rect) (Rect, bool) {
	if w == nil || len(w.Statics) == 0 {
		return Rect{}, false
	}

	// Without an index every static is a candidate.
	if w.space == nil {
		for _, r := range w.Statics {
			if r.Overlaps(box) {
				return r, true
			}
		}
		return Rect{}, false
	}

	// The probe is padded by a pixel so sub-pixel overlaps at cell borders
	// still land in the candidate set; the exact test below filters them.
	w.probe.X = box.X - 1
	w.probe.Y = box.Y - 1
	w.probe.W = box.W + 2
	w.probe.H = box.H + 2
	w.probe.Update()

	check := w.probe.Check(0, 0, tagSolid)
	if check == nil {
		return Rect{}, false
	}

	best := -1
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || idx < 0 || idx >= len(w.Statics) {
			continue
		}
		if !w.Statics[idx].Overlaps(box) {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return Rect{}, false
	}
	return w.Statics[best], true
}
