package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ps2matrix/ps2matrix/bridge"
)

// Service groups the systemd unit subcommands.
type Service struct {
	Install   ServiceInstall   `cmd:"" help:"Install and start a systemd unit running 'ps2matrix run'"`
	Uninstall ServiceUninstall `cmd:"" help:"Stop and remove the systemd unit"`
}

type ServiceInstall struct {
	Bridge    bridge.Config `embed:"" prefix:"bridge."`
	Input     string        `help:"Input device path passed to run" required:""`
	RunConfig string        `name:"run-config" help:"Config file the unit passes to run"`
}

type ServiceUninstall struct{}

// Run is called by Kong when the service install command is executed.
func (s *ServiceInstall) Run(logger *slog.Logger) error {
	exe, err := currentExecutable()
	if err != nil {
		return err
	}
	return install(logger, unitContent(exe, s.runArgs()))
}

// Run is called by Kong when the service uninstall command is executed.
func (s *ServiceUninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}

func (s *ServiceInstall) runArgs() []string {
	args := []string{"run", "--input=" + s.Input}
	if s.Bridge.Port != "" {
		args = append(args, "--bridge.port="+s.Bridge.Port, fmt.Sprintf("--bridge.baud=%d", s.Bridge.Baud))
	}
	if s.RunConfig != "" {
		args = append([]string{"--config=" + s.RunConfig}, args...)
	}
	return args
}

func unitContent(exePath string, args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf(`[Unit]
Description=PS/2 keyboard to ZX Spectrum matrix adapter
After=dev-serial.target

[Service]
Type=simple
ExecStart=%q %s
WorkingDirectory=%s
Restart=on-failure

[Install]
WantedBy=multi-user.target
`, exePath, strings.Join(quoted, " "), filepath.Dir(exePath))
}
