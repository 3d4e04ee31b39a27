package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ps2matrix/ps2matrix/bridge"
	"github.com/ps2matrix/ps2matrix/crosspoint"
	"github.com/ps2matrix/ps2matrix/scancode"
)

// target is where switch writes go: the serial bridge, or a simulated
// matrix that prints every change.
type target struct {
	pins   crosspoint.Pins
	port   *bridge.Port
	matrix *crosspoint.Matrix
}

func openTarget(cfg bridge.Config, out io.Writer, logger *slog.Logger) (*target, error) {
	if cfg.Port != "" {
		port, err := bridge.Open(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Driving switches through bridge", "port", cfg.Port, "baud", cfg.Baud)
		return &target{pins: port, port: port}, nil
	}

	var mu sync.Mutex
	m := crosspoint.NewMatrix(func(a crosspoint.Address, closed bool) {
		mu.Lock()
		defer mu.Unlock()
		state := "open "
		if closed {
			state = "close"
		}
		_, _ = fmt.Fprintf(out, "%s %s %s\n", state, a, scancode.MatrixKeyName(a))
	})
	logger.Info("Driving simulated matrix")
	return &target{pins: m, matrix: m}, nil
}

// delay is the sleep used by every stage: real time on hardware, none in
// simulation.
func (t *target) delay() func(time.Duration) {
	if t.port != nil {
		return time.Sleep
	}
	return func(time.Duration) {}
}

func (t *target) err() error {
	if t.port == nil {
		return nil
	}
	return t.port.Err()
}

func (t *target) Close() error {
	if t.port == nil {
		return nil
	}
	return t.port.Close()
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
