package tilemap

import "github.com/dignitasium/Space-Hub/internal/core"

// DrawTile paints the glyph for kind k in the size x size cell whose
// top-left corner is pixel (px, py). Empty draws nothing. Habitat draws a
// low dome block; the exploration mode overlays its full bitmap instead.
func DrawTile(dst core.Renderer, k Kind, px, py, size int) {
	switch k {
	case Wall:
		dst.DrawRect(px, py, size, size, core.FillBlack)
	case Habitat:
		dst.DrawRect(px+1, py+size-3, size-2, 3, core.FillBlack)
	case Rover:
		dst.DrawLine(px, py+size/2, px+size-1, py+size/2, core.FillBlack)
	case Crater:
		dst.DrawRect(px+2, py+2, size-4, size-4, core.FillBlack)
	case Terminal:
		dst.DrawLine(px+1, py+1, px+size-2, py+size-2, core.FillBlack)
		dst.DrawLine(px+size-2, py+1, px+1, py+size-2, core.FillBlack)
	}
}
