// Package macro types fixed scan code sequences into the translator on
// behalf of the user.
package macro

import (
	"log/slog"
	"time"

	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/scancode"
)

// DefaultTypeDelay is how long each key is held. The gap before the next
// key is twice as long so the target can switch input mode.
const DefaultTypeDelay = 50 * time.Millisecond

// Decoder is the translator entry point.
type Decoder interface {
	Decode(code byte)
}

// Masker masks the keyboard interrupt for the length of a playback.
type Masker interface {
	Disable()
	Enable()
}

// Options configures a Player. All fields are optional.
type Options struct {
	TypeDelay time.Duration
	// Delay blocks for the given duration. Defaults to time.Sleep.
	Delay  func(time.Duration)
	Logger *slog.Logger
}

type Player struct {
	dec       Decoder
	mask      Masker
	typeDelay time.Duration
	delay     func(time.Duration)
	logger    *slog.Logger
}

func NewPlayer(dec Decoder, mask Masker, o *Options) *Player {
	p := &Player{
		dec:       dec,
		mask:      mask,
		typeDelay: DefaultTypeDelay,
		delay:     time.Sleep,
		logger:    log.Discard(),
	}
	if o != nil {
		if o.TypeDelay > 0 {
			p.typeDelay = o.TypeDelay
		}
		if o.Delay != nil {
			p.delay = o.Delay
		}
		if o.Logger != nil {
			p.logger = o.Logger
		}
	}
	return p
}

// Play presses and releases every code of seq up to the first zero. The
// interrupt stays masked for the whole sequence, so real key presses made
// meanwhile are lost.
func (p *Player) Play(seq []byte) {
	p.mask.Disable()
	defer p.mask.Enable()

	n := 0
	for _, code := range seq {
		if code == scancode.None {
			break
		}
		p.dec.Decode(code)
		p.delay(p.typeDelay)
		p.dec.Decode(scancode.Break)
		p.dec.Decode(code)
		p.delay(2 * p.typeDelay)
		n++
	}
	p.logger.Debug("macro played", "keys", n)
}
