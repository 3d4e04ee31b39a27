package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ps2matrix/ps2matrix/board"
	"github.com/ps2matrix/ps2matrix/bridge"
	"github.com/ps2matrix/ps2matrix/diag"
	"github.com/ps2matrix/ps2matrix/hostinput"
	"github.com/ps2matrix/ps2matrix/internal/log"
)

const bridgePollInterval = 250 * time.Millisecond

type Run struct {
	Board  board.Config  `embed:""`
	Bridge bridge.Config `embed:"" prefix:"bridge."`
	Input  string        `help:"Keyboard source: an evdev device path, or 'tty' for the terminal" default:"tty" env:"PS2MATRIX_INPUT"`
	Grab   bool          `help:"Take the evdev device exclusively" default:"true" negatable:"" env:"PS2MATRIX_GRAB"`
	Blink  bool          `help:"Blink the last scan code on the bridge LED" default:"true" negatable:"" env:"PS2MATRIX_BLINK"`

	Out io.Writer `kong:"-" json:"-" yaml:"-" toml:"-"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, bus log.BusLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, bus, r.source(logger))
}

func (r *Run) source(logger *slog.Logger) hostinput.Source {
	if r.Input == "" || r.Input == "tty" {
		return &hostinput.Terminal{Logger: logger}
	}
	return &hostinput.Evdev{Path: r.Input, Grab: r.Grab, Logger: logger}
}

// Start runs the adapter until src ends, ctx is done or the bridge fails.
func (r *Run) Start(ctx context.Context, logger *slog.Logger, bus log.BusLogger, src hostinput.Source) error {
	tgt, err := openTarget(r.Bridge, stdout(r.Out), logger)
	if err != nil {
		return err
	}
	defer tgt.Close()

	b := board.New(r.Board, tgt.pins, &board.Options{Trace: bus, Logger: logger})
	b.Boot()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if tgt.port != nil {
		if r.Blink {
			go func() {
				_ = diag.Run(ctx, tgt.port, b.LastScanCode, &diag.Options{Logger: logger})
			}()
		}
		go watchBridge(ctx, tgt, cancel)
	}

	logger.Info("Adapter running", "input", r.Input)
	err = src.Run(ctx, func(bs []byte) {
		if lost := b.Send(bs...); lost > 0 {
			logger.Debug("Edges lost while masked", "count", lost)
		}
	})
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	logger.Info("Adapter stopped", "desyncs", b.Desyncs(), "dropped_edges", b.Dropped())
	return err
}

func watchBridge(ctx context.Context, tgt *target, cancel context.CancelCauseFunc) {
	t := time.NewTicker(bridgePollInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := tgt.err(); err != nil {
				cancel(err)
				return
			}
		}
	}
}
