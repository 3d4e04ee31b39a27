package cmd

import (
	"fmt"
	"io"

	"github.com/ps2matrix/ps2matrix/hostinput"
)

// Devices lists the input devices run can read from.
type Devices struct {
	Out io.Writer `kong:"-" json:"-" yaml:"-" toml:"-"`
}

// Run is called by Kong when the devices command is executed.
func (d *Devices) Run() error {
	devs, err := hostinput.Devices()
	if err != nil {
		return err
	}
	out := stdout(d.Out)
	for _, dev := range devs {
		_, _ = fmt.Fprintln(out, dev)
	}
	return nil
}
