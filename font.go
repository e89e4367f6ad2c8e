package sevenseg

// Seven-segment patterns for the hexadecimal digits (lsb = segment a).
var font = [16]SegmentBitmap{
	0b00111111, // 0
	0b00000110, // 1
	0b01011011, // 2
	0b01001111, // 3
	0b01100110, // 4
	0b01101101, // 5
	0b01111101, // 6
	0b00000111, // 7
	0b01111111, // 8
	0b01101111, // 9
	0b01110111, // A
	0b01111100, // b
	0b00111001, // C
	0b01011110, // d
	0b01111001, // E
	0b01110001, // F
}

// DigitBitmap returns the segment pattern for a hexadecimal digit,
// with the decimal point bit set if dp is true. Values above 15 have no
// glyph and report ok=false.
func DigitBitmap(value uint8, dp bool) (SegmentBitmap, bool) {
	if value >= uint8(len(font)) {
		return 0, false
	}

	pattern := font[value]
	if dp {
		pattern |= SegDP
	}
	return pattern, true
}

// SetNumber stores the pattern for a decimal or hexadecimal digit at
// the given position. Out-of-range positions and values above 15 are
// silently ignored, leaving the state unchanged. With show set, the
// digit is put on the output pins immediately.
func (d *Display) SetNumber(pos int, value uint8, dp bool, show bool) error {
	pattern, ok := DigitBitmap(value, dp)
	if !ok {
		return nil
	}
	return d.SetSegments(pos, pattern, show)
}
