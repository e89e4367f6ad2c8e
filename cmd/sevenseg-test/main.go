package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	sevenseg "github.com/jacgoudsmit/Display7Seg"
)

func main() {
	digitsFlag := flag.String("digits", "GPIO2,GPIO3,GPIO4,GPIO5", "Digit line GPIO pins, leftmost digit first")
	segmentsFlag := flag.String("segments", "GPIO6,GPIO7,GPIO8,GPIO9,GPIO10,GPIO11,GPIO12", "Segment line GPIO pins: a,b,c,d,e,f,g and optional decimal point")
	digitsLowFlag := flag.Bool("digits-low", false, "Digit lines are active low")
	segmentsLowFlag := flag.Bool("segments-low", false, "Segment lines are active low")
	radixFlag := flag.Uint64("radix", 10, "Radix used to render the counter")
	intervalFlag := flag.Duration("interval", 0, "Multiplex interval (default: minimum flicker-free rate)")
	stepFlag := flag.Duration("step", 250*time.Millisecond, "Counter increment interval")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	digitPins, err := pinsByName(*digitsFlag)
	if err != nil {
		fatal(err)
	}
	segmentPins, err := pinsByName(*segmentsFlag)
	if err != nil {
		fatal(err)
	}

	display, err := sevenseg.New(&sevenseg.Config{
		DigitPins:         digitPins,
		SegmentPins:       segmentPins,
		DecimalPoint:      len(segmentPins) == 8,
		ActiveLowDigits:   *digitsLowFlag,
		ActiveLowSegments: *segmentsLowFlag,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using display: %s\n", display)

	refresher := sevenseg.NewRefresher(display, *intervalFlag)
	refresher.Start()
	defer refresher.Stop()

	fmt.Println("hit control-c to stop...")
	var (
		value  uint64
		ticker = time.NewTicker(*stepFlag)
	)
	defer ticker.Stop()
	for range ticker.C {
		if !display.SetValue(value, *radixFlag, false, sevenseg.NoDecimalPoint) {
			value = 0
			display.SetValue(value, *radixFlag, false, sevenseg.NoDecimalPoint)
		}
		value++
	}
}

func pinsByName(list string) ([]gpio.PinOut, error) {
	names := strings.Split(list, ",")
	pins := make([]gpio.PinOut, 0, len(names))
	for _, name := range names {
		pin := gpioreg.ByName(strings.TrimSpace(name))
		if pin == nil {
			return nil, fmt.Errorf("unknown GPIO pin %q", name)
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
