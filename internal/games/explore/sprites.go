package explore

// Habitat dome, 24x24, three bytes per row.
const (
	habitatW = 24
	habitatH = 24
)

var habitatBitmap = []byte{
	0xf0, 0x6f, 0xff, 0xff, 0x57, 0xff, 0xff, 0x3b, 0xff, 0xff, 0x7d, 0xff,
	0xfe, 0xfe, 0xff, 0xfd, 0xff, 0x7f, 0xfb, 0xff, 0xbf, 0xf7, 0xff, 0xdf,
	0xef, 0xff, 0xef, 0xdf, 0xff, 0xf7, 0xbf, 0xff, 0xfb, 0x00, 0x00, 0x01,
	0xdf, 0xff, 0xff, 0xdf, 0xf0, 0x1f, 0xd0, 0x37, 0xdf, 0xd6, 0xb7, 0xdf,
	0xd6, 0xb7, 0xdf, 0xd6, 0xb7, 0xdf, 0xd6, 0xb7, 0xdf, 0xd0, 0x37, 0xdf,
	0xdf, 0xf7, 0xdf, 0xdf, 0xf7, 0xdf, 0xdf, 0xf7, 0xdf, 0xc0, 0x00, 0x07,
}
