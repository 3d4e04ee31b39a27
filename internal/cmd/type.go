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
	"github.com/ps2matrix/ps2matrix/scancode"
)

type Type struct {
	Board   board.Config  `embed:""`
	Bridge  bridge.Config `embed:"" prefix:"bridge."`
	Text    string        `arg:"" help:"Text to type on the target"`
	Capture string        `help:"Also write the keyboard clock and data lines to this CSV file"`

	Out io.Writer `kong:"-" json:"-" yaml:"-" toml:"-"`
}

// Run is called by Kong when the type command is executed.
func (t *Type) Run(logger *slog.Logger, bus log.BusLogger) error {
	codes, err := scancode.ForString(t.Text)
	if err != nil {
		return err
	}

	if t.Capture != "" {
		if err := writeCapture(t.Capture, ps2.EncodeAll(codes)); err != nil {
			return err
		}
		logger.Info("Wrote capture", "file", t.Capture)
	}

	tgt, err := openTarget(t.Bridge, stdout(t.Out), logger)
	if err != nil {
		return err
	}
	defer tgt.Close()

	b := board.New(t.Board, tgt.pins, &board.Options{Delay: tgt.delay(), Trace: bus, Logger: logger})
	b.Boot()
	if lost := b.Send(codes...); lost > 0 {
		return fmt.Errorf("%d edges lost", lost)
	}
	return tgt.err()
}

func writeCapture(path string, edges []ps2.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ps2.WriteCapture(f, edges); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
