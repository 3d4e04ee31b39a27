// Package translator turns a stream of PS/2 Set-2 bytes into crosspoint
// switch operations that reproduce the key presses on a ZX Spectrum matrix.
//
// Decode is not safe for concurrent use. The caller serializes it, normally
// by invoking it only from the irq.Line handler.
package translator

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ps2matrix/ps2matrix/crosspoint"
	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/scancode"
)

// ErrDesync is reported when the byte stream cannot be interpreted. The
// switch array is reset and decoding continues with the next byte.
var ErrDesync = errors.New("scan code stream out of sync")

// DefaultComboDwell is how long the first key of a two-key sequence stays
// closed before the modifiers the second key does not need are opened.
const DefaultComboDwell = 30 * time.Millisecond

var (
	capsAddr = scancode.KeyCaps.Address()
	symAddr  = scancode.KeySym.Address()
)

// Switch is the crosspoint array as seen by the translator.
type Switch interface {
	Reset()
	Set(addr crosspoint.Address, closed bool)
}

// MacroPlayer replays a scan code sequence through the translator.
type MacroPlayer interface {
	Play(seq []byte)
}

// Options configures a Translator. All fields are optional.
type Options struct {
	ComboDwell time.Duration
	// Delay blocks for the given duration. Defaults to time.Sleep.
	Delay  func(time.Duration)
	Logger *slog.Logger
	// OnDesync is called with the offending byte after the array was reset.
	OnDesync func(code byte, err error)
}

type Translator struct {
	sw       Switch
	state    *State
	dwell    time.Duration
	delay    func(time.Duration)
	logger   *slog.Logger
	onDesync func(byte, error)

	player MacroPlayer
	macros map[byte][]byte

	last    atomic.Uint32
	desyncs atomic.Uint64
}

// New returns a Translator driving sw. state may be nil, in which case the
// translator owns a fresh one.
func New(sw Switch, state *State, o *Options) *Translator {
	if state == nil {
		state = &State{}
	}
	t := &Translator{
		sw:     sw,
		state:  state,
		dwell:  DefaultComboDwell,
		delay:  time.Sleep,
		logger: log.Discard(),
	}
	if o != nil {
		if o.ComboDwell > 0 {
			t.dwell = o.ComboDwell
		}
		if o.Delay != nil {
			t.delay = o.Delay
		}
		if o.Logger != nil {
			t.logger = o.Logger
		}
		t.onDesync = o.OnDesync
	}
	return t
}

// BindMacros installs the macro trigger table. Each key is a make code that,
// when pressed, plays its sequence through p instead of being translated.
func (t *Translator) BindMacros(p MacroPlayer, bindings map[byte][]byte) {
	t.player = p
	t.macros = bindings
}

// Reset opens every switch and forgets all latched state.
func (t *Translator) Reset() {
	*t.state = State{}
	t.sw.Reset()
}

// State returns a copy of the current decoder state.
func (t *Translator) State() State { return *t.state }

// LastScanCode returns the most recent make code handed to the matrix
// mapping. It may be read from any goroutine.
func (t *Translator) LastScanCode() byte { return byte(t.last.Load()) }

// Desyncs returns how many times the stream had to be resynchronized.
func (t *Translator) Desyncs() uint64 { return t.desyncs.Load() }

// Decode consumes one byte of the Set-2 stream.
func (t *Translator) Decode(code byte) {
	s := t.state
	switch {
	case code == scancode.Extended:
		if s.Extended {
			t.desync(code)
			return
		}
		s.Extended = true
	case code == scancode.Break:
		s.Transition = Released
	case t.isMacro(code):
		// A trigger after 0xF0 is the trigger's own break: it is consumed
		// and the transition returns to Idle instead of replaying.
		t.macro(code)
	case code == scancode.CodeRightShift:
		if s.Transition == Released {
			s.RightShiftHeld = false
			s.Transition = Idle
		} else {
			s.RightShiftHeld = true
			s.Transition = Pressed
		}
	case scancode.Valid(code):
		if s.RightShiftHeld || s.RightShifted {
			code = RemapPunctuation(code)
			s.RightShifted = s.Transition != Released
		}
		t.translate(code)
	default:
		t.desync(code)
	}
}

func (t *Translator) isMacro(code byte) bool {
	if t.player == nil {
		return false
	}
	_, ok := t.macros[code]
	return ok
}

// macro plays the bound sequence on press. The trigger's break is consumed.
func (t *Translator) macro(code byte) {
	s := t.state
	if s.Transition == Released {
		s.Transition = Idle
		return
	}
	t.logger.Debug("playing macro", "trigger", scancode.Name(code, false))
	t.player.Play(t.macros[code])
}

func (t *Translator) desync(code byte) {
	*t.state = State{}
	t.sw.Reset()
	t.desyncs.Add(1)
	t.logger.Debug("scan code stream desync, switches reset", "code", code)
	if t.onDesync != nil {
		t.onDesync(code, ErrDesync)
	}
}

// translate maps one make code to switch operations according to the
// pending transition.
func (t *Translator) translate(code byte) {
	s := t.state
	k := scancode.Lookup(code, s.Extended)
	s.Extended = false
	t.last.Store(uint32(code))

	enc := [2]scancode.Encoding{k.Primary, k.Secondary}
	if s.Transition == Released {
		s.Transition = Idle
		enc[1], s.DigitShifted = RemapDigitRelease(enc[1], s.DigitShifted)
		for i := 1; i >= 0; i-- {
			t.release(enc[i])
		}
		return
	}

	s.Transition = Pressed
	enc[1], s.DigitShifted = RemapDigitPress(enc[1], s.SymHeld, s.DigitShifted)
	for i, e := range enc {
		if e == scancode.NoKey {
			continue
		}
		t.press(e)
		if i == 0 {
			t.delay(t.dwell)
			if !enc[1].NeedsCaps() {
				t.sw.Set(capsAddr, false)
			}
			if !enc[1].NeedsSym() {
				t.sw.Set(symAddr, false)
			}
		}
	}
}

func (t *Translator) press(e scancode.Encoding) {
	if e.NeedsCaps() {
		t.sw.Set(capsAddr, true)
	}
	if e.NeedsSym() {
		if e == scancode.KeySym {
			t.state.SymHeld = true
		}
		t.sw.Set(symAddr, true)
	}
	t.sw.Set(e.Address(), true)
}

func (t *Translator) release(e scancode.Encoding) {
	if e.NeedsCaps() {
		t.sw.Set(capsAddr, false)
	}
	if e.NeedsSym() {
		if e == scancode.KeySym {
			t.state.SymHeld = false
		}
		t.sw.Set(symAddr, false)
	}
	if e != scancode.NoKey {
		t.sw.Set(e.Address(), false)
	}
}
