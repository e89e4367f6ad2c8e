package sevenseg

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Errors
var (
	ErrNoDigitPins = errors.New("sevenseg: at least one digit pin is required")
	ErrInvalidPin  = errors.New("sevenseg: GPIO pin is nil or invalid")
)

// SegmentBitmap holds the on/off state of one digit's segments. Bit 0
// is segment "a", bit 6 is segment "g", bit 7 is the decimal point. A
// set bit means the segment is lit.
type SegmentBitmap uint8

// Segment bits.
const (
	SegA SegmentBitmap = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

const segmentsPerDigit = 7

// Config is the display configuration.
type Config struct {
	// DigitPins are the digit line pins, leftmost digit first. The
	// number of digit pins determines the number of digits.
	DigitPins []gpio.PinOut

	// SegmentPins are the segment line pins in the order a, b, c, d,
	// e, f, g and, if DecimalPoint is set, the decimal point.
	SegmentPins []gpio.PinOut

	// DecimalPoint indicates the display has a decimal point per digit.
	DecimalPoint bool

	// ActiveLowDigits inverts the digit line polarity: a digit is
	// energized by driving its line low instead of high.
	ActiveLowDigits bool

	// ActiveLowSegments inverts the segment line polarity.
	ActiveLowSegments bool

	// Blank starts the display blanked instead of showing digit 0.
	Blank bool
}

// Display drives one multiplexed seven-segment display.
type Display struct {
	digitPins   []gpio.PinOut
	segmentPins []gpio.PinOut
	state       []SegmentBitmap
	cur         int // current digit, out of range = blanked
	digitOn     gpio.Level
	segmentOn   gpio.Level
	decimal     bool
}

// New configures the display pins and returns a driver instance.
//
// Every digit and segment pin is configured as an output and driven to
// its off level. This is the only place pin direction is established;
// all later operations only change pin levels.
func New(config *Config) (*Display, error) {
	if config == nil || len(config.DigitPins) == 0 {
		return nil, ErrNoDigitPins
	}

	segments := segmentsPerDigit
	if config.DecimalPoint {
		segments++
	}
	if len(config.SegmentPins) != segments {
		return nil, fmt.Errorf("sevenseg: expected %d segment pins, got %d", segments, len(config.SegmentPins))
	}

	for _, pin := range config.DigitPins {
		if pin == nil || pin == gpio.INVALID {
			return nil, ErrInvalidPin
		}
	}
	for _, pin := range config.SegmentPins {
		if pin == nil || pin == gpio.INVALID {
			return nil, ErrInvalidPin
		}
	}

	d := &Display{
		digitPins:   append([]gpio.PinOut(nil), config.DigitPins...),
		segmentPins: append([]gpio.PinOut(nil), config.SegmentPins...),
		state:       make([]SegmentBitmap, len(config.DigitPins)),
		digitOn:     gpio.Level(!config.ActiveLowDigits),
		segmentOn:   gpio.Level(!config.ActiveLowSegments),
		decimal:     config.DecimalPoint,
	}
	d.cur = len(d.state) // blanked until SetBlank below

	for _, pin := range d.digitPins {
		if err := pin.Out(!d.digitOn); err != nil {
			return nil, err
		}
	}
	for _, pin := range d.segmentPins {
		if err := pin.Out(!d.segmentOn); err != nil {
			return nil, err
		}
	}

	if err := d.SetBlank(config.Blank); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Display) String() string {
	return fmt.Sprintf("7-segment %d digits", len(d.state))
}

// NumDigits returns the number of digits on the display.
func (d *Display) NumDigits() int {
	return len(d.state)
}

// HasDecimalPoint reports whether the display was configured with a
// decimal point segment.
func (d *Display) HasDecimalPoint() bool {
	return d.decimal
}

// MinRefreshInterval returns the longest Show interval that still
// refreshes every digit 25 times per second, the rate below which the
// display visibly flickers.
func (d *Display) MinRefreshInterval() time.Duration {
	return time.Second / time.Duration(25*len(d.state))
}
