// Package crosspoint drives an MT8808-style 8x8 analog crosspoint switch array
// over a bit-banged address/data/strobe bus with a dedicated reset line.
//
// The array has no readback: a write is correct only if the address settle and
// strobe hold times are honoured.
package crosspoint

import (
	"fmt"
	"time"

	"github.com/ps2matrix/ps2matrix/internal/log"
)

// AddressMask selects the six address lines AX0..AX2, AY0..AY2.
const AddressMask = 0x3f

// Address is a 6-bit crosspoint address. Bits 0-2 select the row (AX, the
// target's address line A8..A15), bits 3-5 select the column (AY, the target's
// data line).
type Address uint8

// NewAddress builds an Address from a row (0..7) and a column (0..7).
func NewAddress(row, col uint8) Address {
	return Address((col&0x07)<<3 | row&0x07)
}

func (a Address) Row() uint8    { return uint8(a) & 0x07 }
func (a Address) Column() uint8 { return (uint8(a) >> 3) & 0x07 }

func (a Address) String() string {
	return fmt.Sprintf("r%dc%d", a.Row(), a.Column())
}

// Pins is the GPIO surface of the switch bus.
type Pins interface {
	SetAddress(addr uint8)
	SetStrobe(high bool)
	SetData(high bool)
	SetReset(high bool)
}

// Timing holds the bus timing constants.
type Timing struct {
	Settle     time.Duration `help:"Address settle time before strobe" default:"3us" env:"PS2MATRIX_SWITCH_SETTLE"`
	Hold       time.Duration `help:"Strobe hold time with data applied" default:"3us" env:"PS2MATRIX_SWITCH_HOLD"`
	ResetPulse time.Duration `help:"Width of the reset pulse" default:"3us" env:"PS2MATRIX_SWITCH_RESET_PULSE"`
}

// DefaultTiming matches the MT8808 datasheet minimums with margin.
var DefaultTiming = Timing{
	Settle:     3 * time.Microsecond,
	Hold:       3 * time.Microsecond,
	ResetPulse: 3 * time.Microsecond,
}

// Options configures a Driver. All fields are optional.
type Options struct {
	// Delay blocks for the given duration. Defaults to time.Sleep.
	Delay func(time.Duration)
	// Trace receives every bus transaction.
	Trace log.BusLogger
}

// Driver serializes switch operations onto Pins. It is not safe for
// concurrent use; the caller guarantees a single logical writer.
type Driver struct {
	pins   Pins
	timing Timing
	delay  func(time.Duration)
	trace  log.BusLogger
}

// New returns a Driver for pins.
func New(pins Pins, timing Timing, o *Options) *Driver {
	d := &Driver{
		pins:   pins,
		timing: timing,
		delay:  time.Sleep,
		trace:  log.NewBus(nil),
	}
	if o != nil {
		if o.Delay != nil {
			d.delay = o.Delay
		}
		if o.Trace != nil {
			d.trace = o.Trace
		}
	}
	return d
}

// Reset pulses the reset line, opening every crosspoint.
func (d *Driver) Reset() {
	d.pins.SetStrobe(true)
	d.pins.SetReset(true)
	d.delay(d.timing.ResetPulse)
	d.pins.SetReset(false)
	d.pins.SetStrobe(false)
	d.trace.Reset()
}

// Set closes or opens the crosspoint at addr. Bits above the address lines
// are ignored.
func (d *Driver) Set(addr Address, closed bool) {
	a := uint8(addr) & AddressMask
	d.pins.SetAddress(a)
	d.delay(d.timing.Settle)
	d.pins.SetStrobe(true)
	d.pins.SetData(closed)
	d.delay(d.timing.Hold)
	d.pins.SetStrobe(false)
	d.trace.Switch(a, closed)
}
