package sevenseg

import "math"

// NoDecimalPoint disables the decimal point in SetValue. Any position
// at or beyond the digit count works the same way.
const NoDecimalPoint = math.MaxInt

// SetValue formats a numeric value onto the display state, most
// significant digit leftmost. The radix must be at least 2; radixes
// above 16 produce digits without a glyph, which leave their position
// unchanged.
//
// Unless leadingZeros is set, zero digits to the left of the value (and
// to the left of dpPos) are left blank, except the rightmost digit so
// that a zero value still shows "0". A blanked position still gets its
// decimal point when it coincides with dpPos. Pass NoDecimalPoint as
// dpPos when the value needs no decimal point.
//
// SetValue reports whether the value fit on the display. On overflow it
// returns false and the display keeps the truncated low-order digits;
// callers that need rollback must snapshot the state themselves.
func (d *Display) SetValue(value uint64, radix uint64, leadingZeros bool, dpPos int) bool {
	if radix < 2 {
		return false
	}

	for pos := len(d.state); pos > 0; {
		pos--
		digit := value % radix

		// A zero digit is blanked only when nothing above it is
		// nonzero, no leading zeros were asked for, it sits left of
		// the decimal point, and it is not the rightmost digit.
		if digit != 0 || value != 0 || leadingZeros || pos >= dpPos || pos == len(d.state)-1 {
			if digit < uint64(len(font)) {
				_ = d.SetNumber(pos, uint8(digit), dpPos == pos, false)
			}
		} else {
			var pattern SegmentBitmap
			if dpPos == pos {
				pattern = SegDP
			}
			_ = d.SetSegments(pos, pattern, false)
		}

		value /= radix
	}

	return value == 0
}
