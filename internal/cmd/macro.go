package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ps2matrix/ps2matrix/board"
	"github.com/ps2matrix/ps2matrix/bridge"
	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/macro"
)

type Macro struct {
	Board  board.Config  `embed:""`
	Bridge bridge.Config `embed:"" prefix:"bridge."`
	Name   string        `arg:"" help:"Macro to play: cpm, load or signature"`

	Out io.Writer `kong:"-" json:"-" yaml:"-" toml:"-"`
}

// Run is called by Kong when the macro command is executed.
func (m *Macro) Run(logger *slog.Logger, bus log.BusLogger) error {
	mac, ok := macro.Find(m.Name)
	if !ok {
		return fmt.Errorf("unknown macro %q; expected one of %v", m.Name, macro.Names())
	}

	tgt, err := openTarget(m.Bridge, stdout(m.Out), logger)
	if err != nil {
		return err
	}
	defer tgt.Close()

	b := board.New(m.Board, tgt.pins, &board.Options{Delay: tgt.delay(), Trace: bus, Logger: logger})
	b.Boot()
	b.RunMacro(mac)
	return tgt.err()
}
