package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/ps2matrix/ps2matrix/board"
	"github.com/ps2matrix/ps2matrix/internal/cmd"
	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/ps2"
	"github.com/ps2matrix/ps2matrix/scancode"
)

func TestType(t *testing.T) {
	var out bytes.Buffer
	capture := filepath.Join(t.TempDir(), "a.csv")
	c := &cmd.Type{Board: board.DefaultConfig(), Text: "a", Capture: capture, Out: &out}
	require.NoError(t, c.Run(log.Discard(), log.NewBus(nil)))

	assert.Contains(t, out.String(), "close r1c0 A")
	assert.Contains(t, out.String(), "open  r1c0 A")

	f, err := os.Open(capture)
	require.NoError(t, err)
	defer f.Close()
	edges, err := ps2.ReadCapture(f)
	require.NoError(t, err)
	assert.Equal(t, ps2.EncodeAll([]byte{scancode.CodeA, scancode.Break, scancode.CodeA}), edges)
}

func TestTypeRejectsUntypeable(t *testing.T) {
	c := &cmd.Type{Board: board.DefaultConfig(), Text: "é", Out: &bytes.Buffer{}}
	assert.Error(t, c.Run(log.Discard(), log.NewBus(nil)))
}

func writeTrace(t *testing.T, codes ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ps2.WriteCapture(f, ps2.EncodeAll(codes)))
	require.NoError(t, f.Close())
	return path
}

func TestReplay(t *testing.T) {
	type testCase struct {
		name  string
		codes []byte
		want  []string
	}
	tests := []testCase{
		{
			name:  "clean keystroke",
			codes: []byte{scancode.CodeA, scancode.Break, scancode.CodeA},
			want:  []string{"close r1c0 A", "open  r1c0 A", "last code 0x1C, 0 resets"},
		},
		{
			name:  "double extended prefix",
			codes: []byte{scancode.Extended, scancode.Extended},
			want:  []string{"reset after 0xE0", "1 resets"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &cmd.Replay{Board: board.DefaultConfig(), Capture: writeTrace(t, tt.codes...), Out: &out}
			require.NoError(t, c.Run(log.Discard(), log.NewBus(nil)))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestReplayBadCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("time,foo\n0,x\n"), 0o644))
	c := &cmd.Replay{Board: board.DefaultConfig(), Capture: path, Out: &bytes.Buffer{}}
	assert.Error(t, c.Run(log.Discard(), log.NewBus(nil)))
}

func TestMacro(t *testing.T) {
	var out bytes.Buffer
	c := &cmd.Macro{Board: board.DefaultConfig(), Name: "CPM", Out: &out}
	require.NoError(t, c.Run(log.Discard(), log.NewBus(nil)))
	first := strings.SplitN(out.String(), "\n", 2)[0]
	assert.Equal(t, "close r2c4 T", first)

	c = &cmd.Macro{Board: board.DefaultConfig(), Name: "nope", Out: &out}
	assert.ErrorContains(t, c.Run(log.Discard(), log.NewBus(nil)), "unknown macro")
}

func TestTable(t *testing.T) {
	type testCase struct {
		format string
		check  func(t *testing.T, out []byte)
	}
	tests := []testCase{
		{format: "text", check: func(t *testing.T, out []byte) {
			assert.Contains(t, string(out), "CODE")
			assert.Contains(t, string(out), "TRIGGER")
			assert.Contains(t, string(out), "RANDOMIZE USR 14446")
		}},
		{format: "json", check: func(t *testing.T, out []byte) {
			var doc struct {
				Keys   []scancode.Entry `json:"keys"`
				Macros []struct {
					Name string   `json:"name"`
					Keys []string `json:"keys"`
				} `json:"macros"`
			}
			require.NoError(t, json.Unmarshal(out, &doc))
			assert.Len(t, doc.Keys, len(scancode.Entries()))
			require.Len(t, doc.Macros, 3)
			assert.Equal(t, "cpm", doc.Macros[0].Name)
			assert.Len(t, doc.Macros[0].Keys, 8)
		}},
		{format: "yml", check: func(t *testing.T, out []byte) {
			var doc map[string]any
			require.NoError(t, yaml.Unmarshal(out, &doc))
			assert.Contains(t, doc, "keys")
			assert.Contains(t, doc, "macros")
		}},
		{format: "toml", check: func(t *testing.T, out []byte) {
			assert.Contains(t, string(out), "[[macros]]")
			assert.Contains(t, string(out), "[[keys]]")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, (&cmd.Table{Format: tt.format, Out: &out}).Run())
			tt.check(t, out.Bytes())
		})
	}
}

func TestConfigInit(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sub", "run.yaml")
	c := &cmd.ConfigInit{Command: "run", Format: "yaml", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "tty", doc["input"])
	assert.Equal(t, true, doc["grab"])
	assert.NotContains(t, doc, "out")
	assert.Equal(t, map[string]any{"comboDwell": "30ms"}, doc["keys"])
	assert.Equal(t, map[string]any{"port": "", "baud": 115200}, doc["bridge"])
	assert.Contains(t, doc, "switch")
	assert.Contains(t, doc, "blink")

	assert.Error(t, c.Run(), "existing file without --force")
	c.Force = true
	assert.NoError(t, c.Run())
}

func TestConfigInitSkipsArguments(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "type.json")
	require.NoError(t, (&cmd.ConfigInit{Command: "type", Format: "json", Output: dest}).Run())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "text")
	assert.Contains(t, doc, "capture")
}

type scripted [][]byte

func (s scripted) Run(_ context.Context, emit func([]byte)) error {
	for _, bs := range s {
		emit(bs)
	}
	return nil
}

func TestRunStart(t *testing.T) {
	var out bytes.Buffer
	r := &cmd.Run{Board: board.DefaultConfig(), Out: &out}
	src := scripted{{scancode.CodeA}, {scancode.Break, scancode.CodeA}}
	require.NoError(t, r.Start(context.Background(), log.Discard(), log.NewBus(nil), src))
	assert.Equal(t, "close r1c0 A\nopen  r1c0 A\n", out.String())
}
