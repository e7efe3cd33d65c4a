package tilemap

import (
	"bufio"
	"fmt"
	"io"
)

// Export writes the grid as a nested-array literal, one row per line.
// It is a developer aid for copying an edited layout back into code.
func (m *Map) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "tiles := [%d][%d]uint8{\n", m.height, m.width)
	for y := 0; y < m.height; y++ {
		bw.WriteString("\t{")
		for x := 0; x < m.width; x++ {
			if x > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "%d", uint8(m.At(x, y)))
		}
		bw.WriteString("},\n")
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tilemap: export: %w", err)
	}
	return nil
}
