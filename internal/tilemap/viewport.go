package tilemap

import "github.com/dignitasium/Space-Hub/internal/core"

// Viewport is the window of tiles currently shown on the display.
type Viewport struct {
	X, Y int // Origin in tiles
	W, H int // Size in tiles
}

// NewViewport creates a w x h viewport at the origin.
func NewViewport(w, h int) Viewport {
	return Viewport{W: w, H: h}
}

// Recenter moves the origin so the focus tile sits in the middle of the
// window, then clamps it so 0 <= origin <= mapSize-viewportSize on both axes.
// A map smaller than the viewport pins the origin to 0.
func (v *Viewport) Recenter(focusX, focusY, mapW, mapH int) {
	v.X = core.Clamp(focusX-v.W/2, 0, core.Max(0, mapW-v.W))
	v.Y = core.Clamp(focusY-v.H/2, 0, core.Max(0, mapH-v.H))
}

// Contains reports whether the map cell (x, y) is inside the window.
func (v Viewport) Contains(x, y int) bool {
	return core.NewRect(v.X, v.Y, v.W, v.H).Contains(x, y)
}

// ToScreen converts a map cell to window-relative tile coordinates.
func (v Viewport) ToScreen(x, y int) (int, int) {
	return x - v.X, y - v.Y
}
