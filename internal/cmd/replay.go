package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ps2matrix/ps2matrix/board"
	"github.com/ps2matrix/ps2matrix/bridge"
	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/ps2"
)

type Replay struct {
	Board   board.Config  `embed:""`
	Bridge  bridge.Config `embed:"" prefix:"bridge."`
	Capture string        `arg:"" type:"existingfile" help:"Logic analyzer CSV export with clk and data columns"`

	Out io.Writer `kong:"-" json:"-" yaml:"-" toml:"-"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, bus log.BusLogger) error {
	f, err := os.Open(r.Capture)
	if err != nil {
		return err
	}
	defer f.Close()

	edges, err := ps2.ReadCapture(f)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Capture, err)
	}
	logger.Info("Replaying capture", "file", r.Capture, "edges", len(edges))

	out := stdout(r.Out)
	tgt, err := openTarget(r.Bridge, out, logger)
	if err != nil {
		return err
	}
	defer tgt.Close()

	b := board.New(r.Board, tgt.pins, &board.Options{
		Delay:  tgt.delay(),
		Trace:  bus,
		Logger: logger,
		OnDesync: func(code byte, _ error) {
			_, _ = fmt.Fprintf(out, "reset after 0x%02X\n", code)
		},
	})
	b.Boot()
	for _, e := range edges {
		b.Edge(e)
	}

	_, _ = fmt.Fprintf(out, "last code 0x%02X, %d resets\n", b.LastScanCode(), b.Desyncs())
	return tgt.err()
}
