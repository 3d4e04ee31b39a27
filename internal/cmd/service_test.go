package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ps2matrix/ps2matrix/bridge"
)

func TestServiceUnit(t *testing.T) {
	s := &ServiceInstall{
		Bridge:    bridge.Config{Port: "/dev/ttyUSB0", Baud: 115200},
		Input:     "/dev/input/event3",
		RunConfig: "/etc/ps2matrix/run.yaml",
	}
	assert.Equal(t, []string{
		"--config=/etc/ps2matrix/run.yaml",
		"run",
		"--input=/dev/input/event3",
		"--bridge.port=/dev/ttyUSB0",
		"--bridge.baud=115200",
	}, s.runArgs())

	unit := unitContent("/usr/local/bin/ps2matrix", []string{"run", "--input=/dev/input/event3"})
	assert.Contains(t, unit, `ExecStart="/usr/local/bin/ps2matrix" "run" "--input=/dev/input/event3"`)
	assert.Contains(t, unit, "WorkingDirectory=/usr/local/bin")
	assert.Contains(t, unit, "WantedBy=multi-user.target")
}
