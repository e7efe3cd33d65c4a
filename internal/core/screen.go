package core

import (
	"image"
	"image/color"
	"strings"
)

// Screen is a monochrome framebuffer implementing Renderer.
// Drawing goes to a back buffer; Present copies it to the front buffer that
// the platform reads, so a half-drawn frame is never shown.
type Screen struct {
	width  int
	height int
	back   []bool
	front  []bool
	frames int
}

// NewScreen creates a new framebuffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		back:   make([]bool, width*height),
		front:  make([]bool, width*height),
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Frames returns how many times Present has been called.
func (s *Screen) Frames() int {
	return s.frames
}

// Clear blanks the back buffer.
func (s *Screen) Clear() {
	for i := range s.back {
		s.back[i] = false
	}
}

// DrawPixel sets or clears one pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) DrawPixel(x, y int, fill FillKind) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	switch fill {
	case FillBlack:
		s.back[y*s.width+x] = true
	case FillWhite:
		s.back[y*s.width+x] = false
	}
}

// DrawLine draws a line between two points using Bresenham's algorithm.
// A transparent line draws black.
func (s *Screen) DrawLine(x0, y0, x1, y1 int, fill FillKind) {
	if fill == FillTransparent {
		fill = FillBlack
	}

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		s.DrawPixel(x0, y0, fill)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect fills a rectangle, or outlines it for FillTransparent.
func (s *Screen) DrawRect(x, y, w, h int, fill FillKind) {
	if w <= 0 || h <= 0 {
		return
	}
	if fill == FillTransparent {
		s.DrawLine(x, y, x+w-1, y, FillBlack)
		s.DrawLine(x, y+h-1, x+w-1, y+h-1, FillBlack)
		s.DrawLine(x, y, x, y+h-1, FillBlack)
		s.DrawLine(x+w-1, y, x+w-1, y+h-1, FillBlack)
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.DrawPixel(px, py, fill)
		}
	}
}

// DrawBitmap paints the set bits of an MSB-first packed bitmap.
// Clear bits leave the background untouched.
func (s *Screen) DrawBitmap(x, y int, bits []byte, w, h int) {
	stride := (w + 7) / 8
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*stride + col/8
			if idx >= len(bits) {
				return
			}
			if bits[idx]&(1<<(7-col%8)) != 0 {
				s.DrawPixel(x+col, y+row, FillBlack)
			}
		}
	}
}

// PrintText writes str at pixel column x on text line row using the 5x7 font.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PrintText(str string, x, row int) {
	y := row * BankHeight
	for _, r := range str {
		glyph := Glyph(r)
		for col, bits := range glyph {
			for bit := 0; bit < 8; bit++ {
				if bits&(1<<bit) != 0 {
					s.DrawPixel(x+col, y+bit, FillBlack)
				}
			}
		}
		x += GlyphAdvance
	}
}

// Present publishes the back buffer.
func (s *Screen) Present() {
	copy(s.front, s.back)
	s.frames++
}

// Pixel reports whether a pixel of the last presented frame is set.
// Returns false for out-of-bounds coordinates.
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.front[y*s.width+x]
}

// Lit returns the number of set pixels in the presented frame.
func (s *Screen) Lit() int {
	n := 0
	for _, p := range s.front {
		if p {
			n++
		}
	}
	return n
}

// String converts the presented frame to text, '#' for set pixels.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if s.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Image returns the presented frame as a two-color paletted image.
func (s *Screen) Image() *image.Paletted {
	palette := color.Palette{
		color.RGBA{R: 0xc7, G: 0xd6, B: 0x8e, A: 0xff}, // backlight
		color.RGBA{R: 0x1e, G: 0x2a, B: 0x14, A: 0xff}, // ink
	}
	img := image.NewPaletted(image.Rect(0, 0, s.width, s.height), palette)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.Pixel(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

var _ Renderer = (*Screen)(nil)
