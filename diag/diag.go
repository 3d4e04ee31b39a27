// Package diag blinks the last processed scan code on a status LED, most
// significant bit first: a short flash is a 1, a long flash a 0.
package diag

import (
	"context"
	"log/slog"
	"time"

	"github.com/ps2matrix/ps2matrix/internal/log"
)

const (
	ShortFlash = 32 * time.Millisecond
	LongFlash  = 128 * time.Millisecond
	BitGap     = 128 * time.Millisecond
	FrameGap   = 512 * time.Millisecond
)

// Pulse holds the LED at one level for D.
type Pulse struct {
	On bool
	D  time.Duration
}

// LED is the status light.
type LED interface {
	SetLED(on bool)
}

// Pattern returns the pulse train for code: eight flashes, each followed by
// a dark gap, then a long dark pause.
func Pattern(code byte) []Pulse {
	out := make([]Pulse, 0, 17)
	for i := 7; i >= 0; i-- {
		d := LongFlash
		if code&(1<<i) != 0 {
			d = ShortFlash
		}
		out = append(out, Pulse{On: true, D: d}, Pulse{On: false, D: BitGap})
	}
	return append(out, Pulse{On: false, D: FrameGap})
}

// Options configures Run. All fields are optional.
type Options struct {
	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep  func(ctx context.Context, d time.Duration) error
	Logger *slog.Logger
}

// Run blinks the value returned by last over and over until ctx is done.
// The LED is left off.
func Run(ctx context.Context, led LED, last func() byte, o *Options) error {
	sleep := Sleep
	logger := log.Discard()
	if o != nil {
		if o.Sleep != nil {
			sleep = o.Sleep
		}
		if o.Logger != nil {
			logger = o.Logger
		}
	}
	defer led.SetLED(false)

	for {
		code := last()
		logger.Log(ctx, log.LevelTrace, "blink", "code", code)
		for _, p := range Pattern(code) {
			led.SetLED(p.On)
			if err := sleep(ctx, p.D); err != nil {
				return err
			}
		}
	}
}

// Sleep waits for d or until ctx is done, returning ctx.Err() in that case.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
