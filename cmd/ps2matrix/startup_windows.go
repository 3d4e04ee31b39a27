//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/ps2matrix/ps2matrix/internal/util"
)

// Started by double-click: type into the simulated matrix from the console.
func init() {
	if util.IsRunFromGUI() {
		args := os.Args
		if len(args) < 2 || args[1] != "run" {
			slog.Info("Detected GUI startup, injecting 'run' argument")
			newArgs := make([]string, 0, len(args)+1)
			newArgs = append(newArgs, args[0], "run")
			newArgs = append(newArgs, args[1:]...)
			os.Args = newArgs
		}
	}
}
