// Package sevenseg drives a multiplexed multi-digit seven-segment LED
// display from general-purpose output pins.
//
// The display is assumed to be wired as a matrix: every digit has a
// common line (the digit line) and the segment lines are shared across
// all digits. Each LED sits between one digit line and one segment
// line, with current-limiting resistors in series. Because the segment
// lines are shared, only one digit can be powered at a time; the driver
// rapidly cycles through the digits so that persistence of vision makes
// the whole display appear lit at once.
//
// The driver keeps an in-memory pattern for every digit. One byte
// represents one digit: the least significant bit is segment "a", bit 6
// is segment "g", and bit 7 is the decimal point on displays that have
// one. The set-functions manipulate this state; the show-functions
// transfer the state of one digit to the output pins.
//
// After constructing a Display, call Show on a regular basis to light
// the next digit, either from a main loop or from a timer callback (the
// Refresher type packages the latter). How often Show is called is not
// critical, but for a steady image every digit should be refreshed at
// least 25 times per second, so a 4-digit display needs at least 100
// calls per second.
//
// The digit patterns may be changed at any time, independent of the
// multiplexing cadence. A single digit update is a single byte store
// and is safe against a concurrent Show tick, but a multi-digit update
// such as SetValue is not atomic across digits: a tick that interleaves
// with it may show a mixed frame for one cycle. The driver deliberately
// takes no locks, since blocking the multiplexing tick is worse than
// one inconsistent frame.
package sevenseg
