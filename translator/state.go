package translator

// Transition reflects the last make/break marker seen. It is global rather
// than per key: the target matrix has no rollover to track.
type Transition int

const (
	Idle Transition = iota
	Pressed
	Released
)

func (t Transition) String() string {
	switch t {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "idle"
	}
}

// Latches are the modifier flags that survive between scan codes.
type Latches struct {
	// SymHeld is set while the dedicated SYM key (left or right Alt) is down.
	SymHeld bool
	// DigitShifted is set when the last digit-row press was relocated, so
	// its release is relocated the same way.
	DigitShifted bool
	// RightShiftHeld is set while right shift is down.
	RightShiftHeld bool
	// RightShifted is the sticky punctuation remap latch: set by a press made
	// under right shift, cleared by the next release.
	RightShifted bool
}

// State is everything the translator carries from one scan code to the next.
type State struct {
	Extended   bool
	Transition Transition
	Latches
}
