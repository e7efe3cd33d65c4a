package invade

// Ship and enemy sprites, 15x15, two bytes per row.
const spriteSize = 15

var shipBitmap = []byte{
	0x00, 0x00, 0x01, 0x00, 0x03, 0x80, 0x02, 0x80, 0x02, 0xc0,
	0x07, 0xc0, 0x0d, 0xe0, 0x1f, 0xf0, 0x3f, 0xf8, 0x7f, 0xfc,
	0x7f, 0xfc, 0x7f, 0xfc, 0x1f, 0xf0, 0x07, 0xe0, 0x00, 0x00,
}

var enemyBitmap = []byte{
	0x05, 0xe0, 0x0b, 0xf0, 0x03, 0xf0, 0x33, 0xf8, 0x7f, 0xfc,
	0xbf, 0xfa, 0x77, 0xdc, 0x7e, 0xfc, 0x3f, 0xfc, 0xef, 0xee,
	0xc1, 0x86, 0x81, 0x82, 0x80, 0x82, 0x00, 0x00, 0x00, 0x00,
}
