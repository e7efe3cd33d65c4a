package tilemap

// Feature is a block of terrain placed on the surface at construction.
type Feature struct {
	Kind Kind
	X, Y int
	W, H int
}

// CenterX returns the column in the middle of the feature.
func (f Feature) CenterX() int {
	return f.X + f.W/2
}

// MarsFeatures returns the landmark layout for a map of the given height.
// Landmarks sit on the row above the floor; the crater is a 5x3 hollow
// ending on that row.
func MarsFeatures(height int) []Feature {
	row := height - 2
	return []Feature{
		{Kind: Habitat, X: 5, Y: row, W: 5, H: 1},
		{Kind: Rover, X: 15, Y: row, W: 5, H: 1},
		{Kind: Crater, X: 25, Y: row - 2, W: 5, H: 3},
		{Kind: Terminal, X: 35, Y: row, W: 3, H: 1},
	}
}

// Build creates a walled map and places the features in order.
func Build(width, height int, features []Feature) *Map {
	m := New(width, height)
	for _, f := range features {
		if f.Kind == Crater {
			m.carveCrater(f)
			continue
		}
		m.Fill(f.X, f.Y, f.W, f.H, f.Kind)
	}
	return m
}

// MarsSurface builds the default exploration map.
func MarsSurface(width, height int) *Map {
	return Build(width, height, MarsFeatures(height))
}

// carveCrater clears the feature block, then rims it with Crater tiles:
// a rim on top (corners left open), single walls on the sides, and a full
// floor. The interior stays Empty, an open pocket a character can drop into.
func (m *Map) carveCrater(f Feature) {
	m.Fill(f.X, f.Y, f.W, f.H, Empty)
	if f.W < 3 || f.H < 3 {
		m.Fill(f.X, f.Y+f.H-1, f.W, 1, Crater)
		return
	}

	top := f.Y
	bottom := f.Y + f.H - 1
	left := f.X
	right := f.X + f.W - 1

	m.Fill(left+1, top, f.W-2, 1, Crater)
	for y := top + 1; y < bottom; y++ {
		m.Set(left, y, Crater)
		m.Set(right, y, Crater)
	}
	m.Fill(left, bottom, f.W, 1, Crater)
}
