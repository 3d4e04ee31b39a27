// Package config defines the ps2matrix command line.
package config

import (
	"github.com/ps2matrix/ps2matrix/internal/cmd"
	"github.com/ps2matrix/ps2matrix/internal/log"
)

// CLI is the root Kong command. Values come from flags, then environment,
// then the first config file found.
type CLI struct {
	ConfigFile string     `name:"config" help:"Config file (json, yaml or toml)" type:"path" env:"PS2MATRIX_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Run     cmd.Run           `cmd:"" help:"Forward a host keyboard to the matrix"`
	Replay  cmd.Replay        `cmd:"" help:"Decode a captured PS/2 clock and data trace"`
	Type    cmd.Type          `cmd:"" help:"Type text as PS/2 scan codes"`
	Macro   cmd.Macro         `cmd:"" help:"Play a built-in macro"`
	Table   cmd.Table         `cmd:"" help:"Print the scan code and macro tables"`
	Devices cmd.Devices       `cmd:"" help:"List evdev input devices"`
	Service cmd.Service       `cmd:"" help:"Manage the systemd unit"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
