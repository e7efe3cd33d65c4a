// Package tilemap holds the exploration grid: tile kinds, bounds-checked
// access, the walkability predicates, and the player-centred viewport.
package tilemap

import (
	"fmt"
)

// Kind is the terrain category occupying one grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	Habitat
	Rover
	Crater
	Terminal
)

// KindCount is the number of tile kinds.
const KindCount = 6

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Habitat:
		return "habitat"
	case Rover:
		return "rover"
	case Crater:
		return "crater"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Passable reports whether a character may occupy a tile of kind k.
// Every kind except Wall is passable.
func Passable(k Kind) bool {
	return k != Wall
}

// Supports reports whether a character standing above a tile of kind k is grounded.
//
// Any non-Empty kind supports, Wall included. Wall therefore acts as both
// obstacle and floor. This conflation is most likely unintended, but the
// ground test depends on it and no separate floor kind exists.
func Supports(k Kind) bool {
	return k != Empty
}

// Map is a fixed-size grid of tile kinds whose outer ring is always Wall.
type Map struct {
	width  int
	height int
	cells  []Kind
}

// New creates a width x height map of Empty tiles enclosed by a Wall ring.
// Panics if either dimension is below 3.
func New(width, height int) *Map {
	if width < 3 || height < 3 {
		panic(fmt.Sprintf("tilemap: %dx%d map is too small for a wall ring", width, height))
	}
	m := &Map{
		width:  width,
		height: height,
		cells:  make([]Kind, width*height),
	}
	m.enclose()
	return m
}

// enclose writes Wall along the outer ring.
func (m *Map) enclose() {
	for x := 0; x < m.width; x++ {
		m.cells[x] = Wall
		m.cells[(m.height-1)*m.width+x] = Wall
	}
	for y := 0; y < m.height; y++ {
		m.cells[y*m.width] = Wall
		m.cells[y*m.width+m.width-1] = Wall
	}
}

// Width returns the map width in tiles.
func (m *Map) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (x, y) is a cell of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// OnBorder reports whether (x, y) lies on the outer ring.
func (m *Map) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == m.width-1 || y == m.height-1
}

// At returns the tile kind at (x, y).
// Callers must clamp first: out-of-bounds access panics.
func (m *Map) At(x, y int) Kind {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("tilemap: At(%d, %d) outside %dx%d map", x, y, m.width, m.height))
	}
	return m.cells[y*m.width+x]
}

// Set writes a tile kind, during construction or from the map editor.
// Border cells and out-of-bounds coordinates are left untouched, so the
// Wall ring survives any layout.
func (m *Map) Set(x, y int, k Kind) {
	if !m.InBounds(x, y) || m.OnBorder(x, y) {
		return
	}
	m.cells[y*m.width+x] = k
}

// Fill writes k into the w x h block at (x, y), subject to Set's rules.
func (m *Map) Fill(x, y, w, h int, k Kind) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			m.Set(px, py, k)
		}
	}
}

// Count returns the number of cells holding kind k.
func (m *Map) Count(k Kind) int {
	n := 0
	for _, c := range m.cells {
		if c == k {
			n++
		}
	}
	return n
}
