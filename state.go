package sevenseg

// Segments returns the stored pattern for a digit. Out-of-range
// positions read as all-off.
func (d *Display) Segments(pos int) SegmentBitmap {
	if pos < 0 || pos >= len(d.state) {
		return 0
	}
	return d.state[pos]
}

// SetSegments stores a segment pattern for a digit. Out-of-range
// positions are silently ignored, so callers may pass unchecked
// indices. With show set, the digit is put on the output pins
// immediately, which also re-enables a blanked display.
func (d *Display) SetSegments(pos int, pattern SegmentBitmap, show bool) error {
	if pos < 0 || pos >= len(d.state) {
		return nil
	}
	d.state[pos] = pattern

	if show {
		return d.ShowDigit(pos)
	}
	return nil
}

// Digit returns a pointer to the stored pattern of a digit for in-place
// updates, or (nil, false) when the position is out of range. The
// pointer stays valid for the lifetime of the display.
func (d *Display) Digit(pos int) (*SegmentBitmap, bool) {
	if pos < 0 || pos >= len(d.state) {
		return nil, false
	}
	return &d.state[pos], true
}

// Clear turns off every segment of every digit in the stored state. The
// output pins are unaffected until the next show.
func (d *Display) Clear() {
	for i := range d.state {
		d.state[i] = 0
	}
}
