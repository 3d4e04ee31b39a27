//go:build !linux

package hostinput

import (
	"context"
	"errors"
	"log/slog"
)

var errNoEvdev = errors.New("evdev input is only available on Linux")

// Evdev reads a Linux input device.
type Evdev struct {
	Path   string
	Grab   bool
	Logger *slog.Logger
}

func (e *Evdev) Run(context.Context, func([]byte)) error { return errNoEvdev }

func Devices() ([]string, error) { return nil, errNoEvdev }
