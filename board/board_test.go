package board_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ps2matrix/ps2matrix/board"
	"github.com/ps2matrix/ps2matrix/crosspoint"
	"github.com/ps2matrix/ps2matrix/macro"
	"github.com/ps2matrix/ps2matrix/scancode"
	"github.com/ps2matrix/ps2matrix/translator"
)

type change struct {
	Addr   crosspoint.Address
	Closed bool
}

type fixture struct {
	board   *board.Board
	matrix  *crosspoint.Matrix
	changes []change
	desyncs []byte
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	f.matrix = crosspoint.NewMatrix(func(a crosspoint.Address, closed bool) {
		f.changes = append(f.changes, change{a, closed})
	})
	f.board = board.New(board.DefaultConfig(), f.matrix, &board.Options{
		Delay:    func(time.Duration) {},
		OnDesync: func(code byte, _ error) { f.desyncs = append(f.desyncs, code) },
	})
	f.board.Boot()
	return f
}

func (f *fixture) typeText(t *testing.T, s string) {
	t.Helper()
	bs, err := scancode.ForString(s)
	require.NoError(t, err)
	require.Zero(t, f.board.Send(bs...))
}

func TestTyping(t *testing.T) {
	type testCase struct {
		name     string
		text     string
		expected []change
	}

	cases := []testCase{
		{
			name:     "letter",
			text:     "a",
			expected: []change{{0x01, true}, {0x01, false}},
		},
		{
			name:     "capital letter holds CAPS SHIFT",
			text:     "A",
			expected: []change{{0x00, true}, {0x01, true}, {0x01, false}, {0x00, false}},
		},
		{
			name:     "open paren is SYM and 8",
			text:     "(",
			expected: []change{{0x0f, true}, {0x14, true}, {0x14, false}, {0x0f, false}},
		},
		{
			name:     "dedicated colon code",
			text:     ":",
			expected: []change{{0x0f, true}, {0x08, true}, {0x0f, false}, {0x08, false}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.typeText(t, tc.text)
			assert.Equal(t, tc.expected, f.changes)
			assert.Empty(t, f.matrix.ClosedPoints())
			assert.Equal(t, translator.Latches{}, f.board.State().Latches)
		})
	}
}

func TestSendBeforeBootIsLost(t *testing.T) {
	m := crosspoint.NewMatrix(nil)
	b := board.New(board.DefaultConfig(), m, &board.Options{Delay: func(time.Duration) {}})

	assert.Equal(t, 22, b.Send(scancode.CodeA))
	assert.Equal(t, uint64(22), b.Dropped())
	assert.Empty(t, m.ClosedPoints())

	b.Boot()
	assert.Zero(t, b.Send(scancode.CodeA))
	assert.Equal(t, []crosspoint.Address{0x01}, m.ClosedPoints())
}

func TestDesyncOpensEverything(t *testing.T) {
	f := newFixture(t)

	require.Zero(t, f.board.Send(scancode.CodeLeftAlt, scancode.CodeA))
	assert.Equal(t, []crosspoint.Address{0x01, 0x0f}, f.matrix.ClosedPoints())

	require.Zero(t, f.board.Send(scancode.Extended, scancode.Extended))
	assert.Empty(t, f.matrix.ClosedPoints())
	assert.Equal(t, uint64(1), f.board.Desyncs())
	assert.Equal(t, []byte{scancode.Extended}, f.desyncs)
	assert.Equal(t, translator.State{}, f.board.State())
}

func TestMacroFromKeyboard(t *testing.T) {
	f := newFixture(t)

	require.Zero(t, f.board.Send(scancode.CodeF1))
	require.NotEmpty(t, f.changes)
	assert.Equal(t, change{0x22, true}, f.changes[0], "starts with T")
	assert.Empty(t, f.matrix.ClosedPoints())
	assert.Equal(t, scancode.CodeEnter, f.board.LastScanCode())

	n := len(f.changes)
	require.Zero(t, f.board.Send(scancode.Break, scancode.CodeF1))
	assert.Len(t, f.changes, n, "trigger release does not replay")
	assert.Equal(t, translator.Idle, f.board.State().Transition)
}

func TestRunMacro(t *testing.T) {
	f := newFixture(t)

	f.board.RunMacro(macro.LoadFromDisk)
	require.NotEmpty(t, f.changes)
	assert.Equal(t, change{0x1e, true}, f.changes[0], "starts with J")
	assert.Empty(t, f.matrix.ClosedPoints())
	assert.Equal(t, scancode.CodeDblQuote, f.board.LastScanCode())

	// line is live again
	f.changes = nil
	f.typeText(t, "a")
	assert.Equal(t, []change{{0x01, true}, {0x01, false}}, f.changes)
}

func TestCustomMacros(t *testing.T) {
	m := crosspoint.NewMatrix(nil)
	b := board.New(board.DefaultConfig(), m, &board.Options{
		Delay:  func(time.Duration) {},
		Macros: []macro.Macro{{Name: "a", Trigger: scancode.CodeF2, Seq: []byte{scancode.CodeA, 0}}},
	})
	b.Boot()

	require.Zero(t, b.Send(scancode.CodeF2))
	assert.Equal(t, scancode.CodeA, b.LastScanCode())

	require.Zero(t, b.Send(scancode.CodeF1))
	assert.Equal(t, uint64(1), b.Desyncs(), "unbound trigger is out of range")
}
