package mapedit

import (
	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/tilemap"
)

// Editor is a cursor over a tile map with a selected brush kind.
// Painting goes through tilemap.Map.Set, so the wall ring cannot be broken.
type Editor struct {
	grid     *tilemap.Map
	view     tilemap.Viewport
	x, y     int
	selected tilemap.Kind
}

// NewEditor places the cursor at (x, y), clamped to the map, and recentres
// a viewW x viewH window on it. The brush starts on Wall.
func NewEditor(grid *tilemap.Map, x, y, viewW, viewH int) *Editor {
	e := &Editor{
		grid:     grid,
		view:     tilemap.NewViewport(viewW, viewH),
		selected: tilemap.Wall,
	}
	e.place(x, y)
	return e
}

func (e *Editor) place(x, y int) {
	e.x = core.Clamp(x, 0, e.grid.Width()-1)
	e.y = core.Clamp(y, 0, e.grid.Height()-1)
	e.view.Recenter(e.x, e.y, e.grid.Width(), e.grid.Height())
}

// Move steps the cursor one tile in dir. The cursor stops at the map edge.
func (e *Editor) Move(dir core.Direction) {
	x, y := e.x, e.y
	switch dir {
	case core.DirN:
		y--
	case core.DirS:
		y++
	case core.DirE:
		x++
	case core.DirW:
		x--
	}
	e.place(x, y)
}

// Paint writes the brush kind under the cursor. Border cells are ignored.
func (e *Editor) Paint() {
	e.grid.Set(e.x, e.y, e.selected)
}

// Cycle advances the brush to the next kind, wrapping after the last.
func (e *Editor) Cycle() {
	e.selected = (e.selected + 1) % tilemap.KindCount
}

// Cursor returns the cursor position in tiles.
func (e *Editor) Cursor() (int, int) {
	return e.x, e.y
}

// Selected returns the brush kind.
func (e *Editor) Selected() tilemap.Kind {
	return e.selected
}

// Viewport returns the window centred on the cursor.
func (e *Editor) Viewport() tilemap.Viewport {
	return e.view
}

// Map returns the grid being edited.
func (e *Editor) Map() *tilemap.Map {
	return e.grid
}
