package sevenseg

import (
	"testing"

	"gotest.tools/assert"
)

func TestSetValue(t *testing.T) {
	testCases := []struct {
		name         string
		value        uint64
		radix        uint64
		leadingZeros bool
		dpPos        int
		want         []SegmentBitmap
		overflow     bool
	}{
		{
			name:  "single digit right aligned",
			value: 7, radix: 10, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{0, 0, 0, font[7]},
		},
		{
			name:  "all digits",
			value: 1234, radix: 10, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{font[1], font[2], font[3], font[4]},
		},
		{
			name:  "zero keeps rightmost digit",
			value: 0, radix: 10, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{0, 0, 0, font[0]},
		},
		{
			name:  "leading zeros",
			value: 7, radix: 10, leadingZeros: true, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{font[0], font[0], font[0], font[7]},
		},
		{
			name:  "hexadecimal",
			value: 0x12AB, radix: 16, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{font[1], font[2], font[0xA], font[0xB]},
		},
		{
			name:  "binary",
			value: 5, radix: 2, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{0, font[1], font[0], font[1]},
		},
		{
			name:  "overflow shows low digits",
			value: 12345, radix: 10, dpPos: NoDecimalPoint,
			want:     []SegmentBitmap{font[2], font[3], font[4], font[5]},
			overflow: true,
		},
		{
			name:  "largest fitting value",
			value: 9999, radix: 10, dpPos: NoDecimalPoint,
			want: []SegmentBitmap{font[9], font[9], font[9], font[9]},
		},
		{
			name:  "smallest overflowing value",
			value: 10000, radix: 10, dpPos: NoDecimalPoint,
			want:     []SegmentBitmap{font[0], font[0], font[0], font[0]},
			overflow: true,
		},
		{
			name:  "decimal point forces zeros to its right",
			value: 7, radix: 10, dpPos: 1,
			want: []SegmentBitmap{0, font[0] | SegDP, font[0], font[7]},
		},
		{
			name:  "decimal point on leftmost digit",
			value: 7, radix: 10, dpPos: 0,
			want: []SegmentBitmap{font[0] | SegDP, font[0], font[0], font[7]},
		},
		{
			name:  "decimal point on rightmost digit",
			value: 7, radix: 10, dpPos: 3,
			want: []SegmentBitmap{0, 0, 0, font[7] | SegDP},
		},
		{
			name:  "decimal point with zero value",
			value: 0, radix: 10, dpPos: 3,
			want: []SegmentBitmap{0, 0, 0, font[0] | SegDP},
		},
		{
			name:  "decimal point with leading zeros",
			value: 7, radix: 10, leadingZeros: true, dpPos: 2,
			want: []SegmentBitmap{font[0], font[0], font[0] | SegDP, font[7]},
		},
		{
			name:  "decimal point position past the digits",
			value: 7, radix: 10, dpPos: 4,
			want: []SegmentBitmap{0, 0, 0, font[7]},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig(t, 4, Config{})
			ok := rig.display.SetValue(tc.value, tc.radix, tc.leadingZeros, tc.dpPos)
			assert.Equal(t, ok, !tc.overflow)
			assert.DeepEqual(t, rig.state(), tc.want)
		})
	}
}

func TestSetValueRejectsBadRadix(t *testing.T) {
	rig := newTestRig(t, 4, Config{})
	before := []SegmentBitmap{SegA, SegB, SegC, SegD}
	for i, pattern := range before {
		assert.NilError(t, rig.display.SetSegments(i, pattern, false))
	}

	assert.Assert(t, !rig.display.SetValue(123, 0, false, NoDecimalPoint))
	assert.Assert(t, !rig.display.SetValue(123, 1, false, NoDecimalPoint))
	assert.DeepEqual(t, rig.state(), before)
}

func TestSetValueDoesNotTouchPins(t *testing.T) {
	rig := newTestRig(t, 4, Config{})

	assert.Assert(t, rig.display.SetValue(1234, 10, false, NoDecimalPoint))
	assert.Equal(t, len(rig.rec.take()), 0)
}

func TestSetValueOverwritesPreviousContent(t *testing.T) {
	rig := newTestRig(t, 4, Config{})

	assert.Assert(t, rig.display.SetValue(8888, 10, false, NoDecimalPoint))
	assert.Assert(t, rig.display.SetValue(7, 10, false, NoDecimalPoint))

	// The suppressed positions must be blanked, not left at "8".
	assert.DeepEqual(t, rig.state(), []SegmentBitmap{0, 0, 0, font[7]})
}
