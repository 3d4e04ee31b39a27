package hostinput

import (
	"context"
	"fmt"
	"log/slog"

	evdev "github.com/holoplot/go-evdev"

	"github.com/ps2matrix/ps2matrix/internal/log"
)

// Evdev reads a Linux input device.
type Evdev struct {
	Path string
	// Grab takes the device exclusively so keys do not also reach the host.
	Grab   bool
	Logger *slog.Logger
}

func (e *Evdev) Run(ctx context.Context, emit func([]byte)) error {
	logger := log.OrDefault(e.Logger)

	dev, err := evdev.Open(e.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", e.Path, err)
	}
	if name, err := dev.Name(); err == nil {
		logger.Info("Reading keyboard", "device", e.Path, "name", name)
	}
	if e.Grab {
		if err := dev.Grab(); err != nil {
			_ = dev.Close()
			return fmt.Errorf("grab %s: %w", e.Path, err)
		}
	}

	stop := context.AfterFunc(ctx, func() {
		if e.Grab {
			_ = dev.Ungrab()
		}
		_ = dev.Close()
	})
	defer func() {
		if stop() {
			if e.Grab {
				_ = dev.Ungrab()
			}
			_ = dev.Close()
		}
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read %s: %w", e.Path, err)
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		b := Set2For(ev.Code, ev.Value)
		if b == nil {
			logger.Debug("Key has no Set-2 code", "code", uint16(ev.Code))
			continue
		}
		emit(b)
	}
}

// Devices lists input devices as "path<TAB>name" lines.
func Devices() ([]string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range paths {
		out = append(out, fmt.Sprintf("%s\t%s", p.Path, p.Name))
	}
	return out, nil
}
