package core

// Display geometry of the N5110-class LCD.
const (
	LCDWidth   = 84 // Pixels
	LCDHeight  = 48 // Pixels
	BankHeight = 8  // Pixel rows per text line
)

// FillKind selects how a primitive is painted.
type FillKind uint8

const (
	FillWhite       FillKind = iota // Clear pixels
	FillBlack                       // Set pixels
	FillTransparent                 // Outline only; interior untouched
)

// Renderer is the display the modes draw into. A frame is a full redraw:
// Clear, primitives, then Present. Modes never read pixels back.
type Renderer interface {
	Clear()
	DrawPixel(x, y int, fill FillKind)
	DrawLine(x0, y0, x1, y1 int, fill FillKind)
	DrawRect(x, y, w, h int, fill FillKind)

	// DrawBitmap paints set bits black. Rows are packed MSB-first with a
	// stride of ceil(w/8) bytes.
	DrawBitmap(x, y int, bits []byte, w, h int)

	// PrintText writes str starting at pixel column x on text line row.
	PrintText(str string, x, row int)

	// Present flushes the frame to the physical display.
	Present()
}
