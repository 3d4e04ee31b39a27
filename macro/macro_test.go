package macro_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ps2matrix/ps2matrix/macro"
	"github.com/ps2matrix/ps2matrix/scancode"
)

// journal records decoder input, mask changes and delays in one stream.
type journal struct {
	events  []string
	enabled bool
}

func (j *journal) Decode(code byte)      { j.events = append(j.events, fmt.Sprintf("%02X", code)) }
func (j *journal) Disable()              { j.enabled = false; j.events = append(j.events, "cli") }
func (j *journal) Enable()               { j.enabled = true; j.events = append(j.events, "sei") }
func (j *journal) Delay(d time.Duration) { j.events = append(j.events, d.String()) }

func newPlayer(j *journal) *macro.Player {
	return macro.NewPlayer(j, j, &macro.Options{Delay: j.Delay, TypeDelay: 10 * time.Millisecond})
}

func TestPlay(t *testing.T) {
	type testCase struct {
		name     string
		seq      []byte
		expected []string
	}

	cases := []testCase{
		{
			name: "press then release each entry",
			seq:  []byte{scancode.CodeA, scancode.CodeB, scancode.None},
			expected: []string{
				"cli",
				"1C", "10ms", "F0", "1C", "20ms",
				"32", "10ms", "F0", "32", "20ms",
				"sei",
			},
		},
		{
			name:     "stops at the first zero",
			seq:      []byte{scancode.CodeA, scancode.None, scancode.CodeB},
			expected: []string{"cli", "1C", "10ms", "F0", "1C", "20ms", "sei"},
		},
		{
			name:     "no terminator",
			seq:      []byte{scancode.CodeA},
			expected: []string{"cli", "1C", "10ms", "F0", "1C", "20ms", "sei"},
		},
		{
			name:     "empty",
			seq:      []byte{},
			expected: []string{"cli", "sei"},
		},
		{
			name:     "leading zero",
			seq:      []byte{scancode.None, scancode.CodeA},
			expected: []string{"cli", "sei"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := &journal{enabled: true}
			newPlayer(j).Play(tc.seq)
			assert.Equal(t, tc.expected, j.events)
			assert.True(t, j.enabled)
		})
	}
}

func TestDefaultTypeDelay(t *testing.T) {
	j := &journal{}
	macro.NewPlayer(j, j, &macro.Options{Delay: j.Delay}).Play([]byte{scancode.CodeA})
	assert.Contains(t, j.events, "50ms")
	assert.Contains(t, j.events, "100ms")
}

func TestBuiltins(t *testing.T) {
	seen := map[byte]bool{}
	for _, m := range macro.Builtins() {
		assert.False(t, seen[m.Trigger], "duplicate trigger %02X", m.Trigger)
		seen[m.Trigger] = true
		assert.Equal(t, scancode.None, m.Seq[len(m.Seq)-1], m.Name)
		for _, c := range m.Seq[:len(m.Seq)-1] {
			assert.True(t, scancode.Valid(c), "%s: %02X", m.Name, c)
		}
	}

	b := macro.Bindings(macro.Builtins())
	assert.Equal(t, macro.CPMRun.Seq, b[scancode.CodeF1])
	assert.Equal(t, macro.LoadFromDisk.Seq, b[scancode.CodeF2])
	assert.Equal(t, macro.Signature.Seq, b[scancode.CodeF12])

	m, ok := macro.Find("LOAD")
	assert.True(t, ok)
	assert.Equal(t, macro.LoadFromDisk.Name, m.Name)
	_, ok = macro.Find("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"cpm", "load", "signature"}, macro.Names())
}
