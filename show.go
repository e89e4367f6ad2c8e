package sevenseg

// ShowDigit transfers the stored pattern of the given digit to the
// output pins. An out-of-range digit blanks the display; blanking this
// way is the defined encoding, never an error.
func (d *Display) ShowDigit(digit int) error {
	n := len(d.state)

	// If the display is already blanked, don't touch the output pins:
	// the digit lines are all off and the segment lines are all off.
	if d.cur >= 0 && d.cur < n {
		if digit != d.cur {
			// Release the outgoing digit line before the shared
			// segment lines change, otherwise the new pattern bleeds
			// onto the old digit.
			if err := d.digitPins[d.cur].Out(!d.digitOn); err != nil {
				return err
			}

			var pattern SegmentBitmap
			if digit >= 0 && digit < n {
				pattern = d.state[digit]
			}
			if err := d.writeSegments(pattern); err != nil {
				return err
			}
		}
	}

	if digit >= 0 && digit < n {
		if err := d.digitPins[digit].Out(d.digitOn); err != nil {
			return err
		}
	}

	d.cur = digit
	return nil
}

func (d *Display) writeSegments(pattern SegmentBitmap) error {
	for _, pin := range d.segmentPins {
		level := !d.segmentOn
		if pattern&1 != 0 {
			level = d.segmentOn
		}
		if err := pin.Out(level); err != nil {
			return err
		}
		pattern >>= 1
	}
	return nil
}

// Show lights the next digit. This is the multiplexing tick: call it
// repeatedly, at least 25 times per second per digit (see
// MinRefreshInterval). While the display is blanked Show does nothing.
func (d *Display) Show() error {
	if d.IsBlank() {
		return nil
	}

	next := d.cur + 1
	if next >= len(d.state) {
		next = 0
	}
	return d.ShowDigit(next)
}

// SetBlank blanks or un-blanks the display. The pins are updated
// immediately; un-blanking resumes at digit 0.
func (d *Display) SetBlank(blank bool) error {
	if blank {
		return d.ShowDigit(len(d.state))
	}
	return d.ShowDigit(0)
}

// IsBlank reports whether the display is blanked.
func (d *Display) IsBlank() bool {
	return d.cur < 0 || d.cur >= len(d.state)
}
