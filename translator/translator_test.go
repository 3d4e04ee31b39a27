package translator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	th "github.com/ps2matrix/ps2matrix/internal/testing"
	"github.com/ps2matrix/ps2matrix/scancode"
	"github.com/ps2matrix/ps2matrix/translator"
)

func newTranslator(t *testing.T) (*translator.Translator, *th.Recorder) {
	t.Helper()
	rec := th.NewRecorder()
	tr := translator.New(rec, nil, &translator.Options{Delay: rec.Delay})
	return tr, rec
}

func decode(tr *translator.Translator, codes ...byte) {
	for _, c := range codes {
		tr.Decode(c)
	}
}

func TestDecodeSwitches(t *testing.T) {
	type testCase struct {
		name     string
		codes    []byte
		expected []th.Op
	}

	cases := []testCase{
		{
			name:     "letter press",
			codes:    []byte{scancode.CodeA},
			expected: []th.Op{th.Set(0x01, true)},
		},
		{
			name:     "letter press and release",
			codes:    []byte{scancode.CodeA, scancode.Break, scancode.CodeA},
			expected: []th.Op{th.Set(0x01, true), th.Set(0x01, false)},
		},
		{
			name:  "caps combination",
			codes: []byte{scancode.CodeBackspace, scancode.Break, scancode.CodeBackspace},
			expected: []th.Op{
				th.Set(0x00, true), th.Set(0x04, true),
				th.Set(0x00, false), th.Set(0x04, false),
			},
		},
		{
			name:  "extended arrow",
			codes: []byte{scancode.Extended, scancode.ExtLeft, scancode.Extended, scancode.Break, scancode.ExtLeft},
			expected: []th.Op{
				th.Set(0x00, true), th.Set(0x23, true),
				th.Set(0x00, false), th.Set(0x23, false),
			},
		},
		{
			name:  "two-key sequence opens unneeded modifiers after the dwell",
			codes: []byte{scancode.CodeTabKey, scancode.Break, scancode.CodeTabKey},
			expected: []th.Op{
				th.Set(0x00, true), th.Set(0x0f, true), th.Set(0x00, true),
				th.Set(0x00, false), th.Set(0x0f, false),
				th.Set(0x05, true),
				th.Set(0x05, false),
				th.Set(0x00, false), th.Set(0x0f, false), th.Set(0x00, false),
			},
		},
		{
			name:  "sym held shifts the digit row",
			codes: []byte{scancode.CodeLeftAlt, scancode.Code9, scancode.Break, scancode.Code9, scancode.Break, scancode.CodeLeftAlt},
			expected: []th.Op{
				th.Set(0x0f, true), th.Set(0x0f, true),
				th.Set(0x14, true),
				th.Set(0x14, false),
				th.Set(0x0f, false), th.Set(0x0f, false),
			},
		},
		{
			name:  "sym held leaves the top row alone",
			codes: []byte{scancode.CodeLeftAlt, scancode.Code1, scancode.Break, scancode.Code1},
			expected: []th.Op{
				th.Set(0x0f, true), th.Set(0x0f, true),
				th.Set(0x03, true),
				th.Set(0x03, false),
			},
		},
		{
			name:  "right shift remaps punctuation",
			codes: []byte{scancode.CodeRightShift, scancode.CodeComma, scancode.Break, scancode.CodeComma},
			expected: []th.Op{
				th.Set(0x0f, true), th.Set(0x1a, true),
				th.Set(0x0f, false), th.Set(0x1a, false),
			},
		},
		{
			name:  "right shift alone touches nothing",
			codes: []byte{scancode.CodeRightShift, scancode.Break, scancode.CodeRightShift},
		},
		{
			name:  "unmapped key is silent",
			codes: []byte{scancode.CodeEscape, scancode.Break, scancode.CodeEscape},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, rec := newTranslator(t)
			decode(tr, tc.codes...)
			assert.Equal(t, tc.expected, rec.Switches())
			assert.Zero(t, rec.Count(th.OpReset))
		})
	}
}

func TestPressReleaseSymmetry(t *testing.T) {
	for _, e := range scancode.Entries() {
		tr, rec := newTranslator(t)
		var codes []byte
		if e.Extended {
			codes = []byte{scancode.Extended, e.Code, scancode.Extended, scancode.Break, e.Code}
		} else {
			codes = []byte{e.Code, scancode.Break, e.Code}
		}
		decode(tr, codes...)

		closed := map[uint8]bool{}
		for _, op := range rec.Switches() {
			require.Equal(t, th.OpSet, op.Kind, e.Name)
			closed[uint8(op.Addr)] = op.Closed
		}
		for addr, c := range closed {
			assert.False(t, c, "%s leaves 0x%02x closed", e.Name, addr)
		}
		assert.Equal(t, translator.Idle, tr.State().Transition, e.Name)
		assert.False(t, tr.State().Extended, e.Name)
		assert.Equal(t, translator.Latches{}, tr.State().Latches, e.Name)
	}
}

func TestComboDwell(t *testing.T) {
	tr, rec := newTranslator(t)
	decode(tr, scancode.CodeUSRKey)

	var delays []time.Duration
	for _, op := range rec.Ops() {
		if op.Kind == th.OpDelay {
			delays = append(delays, op.Delay)
		}
	}
	assert.Equal(t, []time.Duration{translator.DefaultComboDwell}, delays)

	rec2 := th.NewRecorder()
	tr2 := translator.New(rec2, nil, &translator.Options{Delay: rec2.Delay, ComboDwell: 5 * time.Millisecond})
	tr2.Decode(scancode.CodeA)
	assert.Zero(t, rec2.Count(th.OpDelay), "single keys do not dwell")
	tr2.Decode(scancode.CodeUSRKey)
	assert.Equal(t, 1, rec2.Count(th.OpDelay))
	assert.Equal(t, 5*time.Millisecond, rec2.Ops()[len(rec2.Ops())-4].Delay)
}

func TestDoubleExtendedResyncs(t *testing.T) {
	var got []byte
	rec := th.NewRecorder()
	tr := translator.New(rec, nil, &translator.Options{
		Delay: rec.Delay,
		OnDesync: func(code byte, err error) {
			assert.ErrorIs(t, err, translator.ErrDesync)
			got = append(got, code)
		},
	})

	decode(tr, scancode.Extended, scancode.Extended)

	assert.Equal(t, []th.Op{{Kind: th.OpReset}}, rec.Ops())
	assert.False(t, tr.State().Extended)
	assert.Equal(t, uint64(1), tr.Desyncs())
	assert.Equal(t, []byte{scancode.Extended}, got)
}

func TestInvalidCodeResyncs(t *testing.T) {
	type testCase struct {
		name string
		code byte
	}

	cases := []testCase{
		{name: "below range", code: scancode.CodeF4},
		{name: "zero", code: scancode.None},
		{name: "above range", code: scancode.CodeF7},
		{name: "pause prefix", code: scancode.Pause},
		{name: "self-test passed", code: 0xAA},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, rec := newTranslator(t)
			decode(tr, scancode.CodeLeftAlt, scancode.Extended, tc.code)

			assert.Equal(t, 1, rec.Count(th.OpReset))
			assert.Equal(t, translator.State{}, tr.State())
			assert.Equal(t, uint64(1), tr.Desyncs())
		})
	}
}

func TestRightShiftLatch(t *testing.T) {
	tr, rec := newTranslator(t)

	// right shift goes up before the comma does
	decode(tr, scancode.CodeRightShift, scancode.CodeComma)
	assert.True(t, tr.State().RightShiftHeld)
	assert.True(t, tr.State().RightShifted)

	decode(tr, scancode.Break, scancode.CodeRightShift)
	assert.False(t, tr.State().RightShiftHeld)
	assert.True(t, tr.State().RightShifted)
	assert.Equal(t, translator.Idle, tr.State().Transition)

	rec.Clear()
	decode(tr, scancode.Break, scancode.CodeComma)
	assert.Equal(t, []th.Op{th.Set(0x0f, false), th.Set(0x1a, false)}, rec.Switches(), "release matches the remapped press")
	assert.False(t, tr.State().RightShifted)

	rec.Clear()
	decode(tr, scancode.CodeComma)
	assert.Equal(t, []th.Op{th.Set(0x0f, true), th.Set(0x1f, true)}, rec.Switches(), "plain comma once the latch clears")
}

func TestOverlappedKeysKeepPunctuation(t *testing.T) {
	tr, rec := newTranslator(t)

	decode(tr, scancode.CodeA)
	assert.False(t, tr.State().RightShifted, "plain press leaves the remap latch alone")

	rec.Clear()
	decode(tr, scancode.CodeComma)
	assert.Equal(t, []th.Op{th.Set(0x0f, true), th.Set(0x1f, true)}, rec.Switches())
	assert.Equal(t, scancode.CodeComma, tr.LastScanCode())
	assert.False(t, tr.State().RightShifted)

	rec.Clear()
	decode(tr, scancode.Break, scancode.CodeComma)
	assert.Equal(t, []th.Op{th.Set(0x0f, false), th.Set(0x1f, false)}, rec.Switches())
}

func TestDigitShiftLatch(t *testing.T) {
	tr, rec := newTranslator(t)

	// SYM released before the digit: the digit release is still relocated
	decode(tr, scancode.CodeLeftAlt, scancode.Code0)
	assert.True(t, tr.State().SymHeld)
	assert.True(t, tr.State().DigitShifted)

	decode(tr, scancode.Break, scancode.CodeLeftAlt)
	assert.False(t, tr.State().SymHeld)
	assert.True(t, tr.State().DigitShifted)

	rec.Clear()
	decode(tr, scancode.Break, scancode.Code0)
	assert.Equal(t, []th.Op{th.Set(0x0c, false)}, rec.Switches())
	assert.False(t, tr.State().DigitShifted)
}

type fakePlayer struct {
	played [][]byte
}

func (p *fakePlayer) Play(seq []byte) { p.played = append(p.played, seq) }

func TestMacroTrigger(t *testing.T) {
	tr, rec := newTranslator(t)
	p := &fakePlayer{}
	seq := []byte{scancode.CodeA, 0}
	tr.BindMacros(p, map[byte][]byte{scancode.CodeF1: seq})

	tr.Decode(scancode.CodeF1)
	require.Len(t, p.played, 1)
	assert.Equal(t, seq, p.played[0])

	decode(tr, scancode.Break, scancode.CodeF1)
	assert.Len(t, p.played, 1, "break of the trigger does not replay")
	assert.Equal(t, translator.Idle, tr.State().Transition)
	assert.Empty(t, rec.Ops())

	tr.Decode(scancode.CodeF2)
	assert.Equal(t, 1, rec.Count(th.OpReset), "unbound function key is out of range")
}

func TestLastScanCode(t *testing.T) {
	tr, _ := newTranslator(t)
	assert.Equal(t, byte(0), tr.LastScanCode())

	decode(tr, scancode.CodeRightShift, scancode.CodeSlash)
	assert.Equal(t, scancode.CodeQuestion, tr.LastScanCode(), "records the code after remapping")

	decode(tr, scancode.Extended)
	assert.Equal(t, scancode.CodeQuestion, tr.LastScanCode(), "prefixes are not recorded")
}

func TestReset(t *testing.T) {
	state := &translator.State{}
	rec := th.NewRecorder()
	tr := translator.New(rec, state, &translator.Options{Delay: rec.Delay})

	decode(tr, scancode.CodeLeftAlt, scancode.CodeRightShift, scancode.Extended)
	require.True(t, state.SymHeld)

	tr.Reset()
	assert.Equal(t, translator.State{}, *state)
	assert.Equal(t, 1, rec.Count(th.OpReset))
}

func TestRemapPunctuation(t *testing.T) {
	type testCase struct {
		in       byte
		expected byte
	}

	cases := []testCase{
		{scancode.CodeComma, scancode.CodeLess},
		{scancode.CodePeriod, scancode.CodeGreater},
		{scancode.CodeQuote, scancode.CodeDblQuote},
		{scancode.CodeBracketL, scancode.CodeBraceOpen},
		{scancode.CodeMinus, scancode.CodeUnderscore},
		{scancode.CodeEquals, scancode.CodePlus},
		{scancode.CodeBracketR, scancode.CodeBraceClose},
		{scancode.CodeBackslash, scancode.CodePipe},
		{scancode.CodeSlash, scancode.CodeQuestion},
		{scancode.CodeSemicolon, scancode.CodeColon},
		{scancode.CodeA, scancode.CodeA},
		{scancode.Code9, scancode.Code9},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, translator.RemapPunctuation(tc.in), scancode.Name(tc.in, false))
	}
}

func TestShiftDigit(t *testing.T) {
	type testCase struct {
		in       scancode.Encoding
		expected scancode.Encoding
	}

	cases := []testCase{
		{scancode.Key6, scancode.KeyH},
		{scancode.Key7, scancode.Key6},
		{scancode.Key8, scancode.KeyB},
		{scancode.Key9, scancode.Key8},
		{scancode.Key0, scancode.Key9},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, translator.ShiftDigit(tc.in), tc.in.String())
	}

	e, shifted := translator.RemapDigitPress(scancode.KeyA, true, false)
	assert.Equal(t, scancode.KeyA, e)
	assert.False(t, shifted)

	e, shifted = translator.RemapDigitRelease(scancode.Key9, false)
	assert.Equal(t, scancode.Key9, e)
	assert.False(t, shifted)
}
