package display

// digit1 decodes the 4-bit-per-nibble speed/level pattern (assembled from
// four memory bytes spread two apart, masked to 0x8ccc) into a digit 0-9.
// Verbatim from brickgame.c's static digit1[] table.
var digit1 = [10]uint16{
	0x8c8c, 0x0880, 0x84c8, 0x88c8, 0x08c4,
	0x884c, 0x8c4c, 0x0888, 0x8ccc, 0x88cc,
}

// digit4 decodes one byte of the four-digit score pattern into a digit
// 0-9. Verbatim from brickgame.c's static digit4[] table.
var digit4 = [10]uint8{
	0xe7, 0xa0, 0xcb, 0xe9, 0xac, 0x6d, 0x6f, 0xe0, 0xef, 0xed,
}

// decodeGlyph10 looks up pattern in table and renders it as '0'-'9' on a
// match, '?' for an unrecognized nonzero pattern, or ' ' for an all-zero
// (blank/unlit) pattern — the original's "j < 10 ? j + '0' : a ? '?' : ' '".
func decodeGlyph10(pattern uint16, table [10]uint16) byte {
	for i, v := range table {
		if pattern == v {
			return byte('0' + i)
		}
	}
	if pattern != 0 {
		return '?'
	}
	return ' '
}

func decodeGlyph4(pattern uint8, table [10]uint8) byte {
	for i, v := range table {
		if pattern == v {
			return byte('0' + i)
		}
	}
	if pattern != 0 {
		return '?'
	}
	return ' '
}
