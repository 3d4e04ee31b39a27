package scancode

import (
	"fmt"

	"github.com/ps2matrix/ps2matrix/crosspoint"
)

// Encoding is one target key in packed form: bit7 requires SYM SHIFT, bit6
// requires CAPS SHIFT, bits 0-5 are the crosspoint address. Zero means no key.
type Encoding uint8

const (
	NoKey   Encoding = 0x00
	CapsBit Encoding = 0x40
	SymBit  Encoding = 0x80
)

func key(row, col uint8) Encoding { return Encoding(crosspoint.NewAddress(row, col)) }

func (e Encoding) Address() crosspoint.Address { return crosspoint.Address(e) & crosspoint.AddressMask }
func (e Encoding) NeedsCaps() bool             { return e&CapsBit != 0 }
func (e Encoding) NeedsSym() bool              { return e&SymBit != 0 }
func (e Encoding) Row() uint8                  { return uint8(e) & 0x07 }
func (e Encoding) Column() uint8               { return (uint8(e) >> 3) & 0x07 }

func (e Encoding) String() string {
	switch e {
	case NoKey:
		return "-"
	case KeyCaps:
		return "CAPS"
	case KeySym:
		return "SYM"
	case KeyExtMode:
		return "EXT"
	}
	s := MatrixKeyName(e.Address())
	if e.NeedsSym() {
		s = "SYM+" + s
	}
	if e.NeedsCaps() {
		s = "CAPS+" + s
	}
	return s
}

func caps(e Encoding) Encoding { return e | CapsBit }
func sym(e Encoding) Encoding  { return e | SymBit }

// KeyCode is the target sequence for one PS/2 key. Primary is asserted
// first and released last; a single-key code has only Secondary set.
type KeyCode struct {
	Primary   Encoding
	Secondary Encoding
}

func one(e Encoding) KeyCode     { return KeyCode{Secondary: e} }
func two(a, b Encoding) KeyCode { return KeyCode{Primary: a, Secondary: b} }

// Packed returns the compact 16-bit form, primary in the high byte.
func (k KeyCode) Packed() uint16 { return uint16(k.Primary)<<8 | uint16(k.Secondary) }

// Unpack is the inverse of Packed.
func Unpack(v uint16) KeyCode { return KeyCode{Primary: Encoding(v >> 8), Secondary: Encoding(v)} }

func (k KeyCode) IsZero() bool { return k.Primary == NoKey && k.Secondary == NoKey }

func (k KeyCode) String() string {
	if k.Primary == NoKey {
		return k.Secondary.String()
	}
	return k.Primary.String() + " " + k.Secondary.String()
}

// ZX Spectrum keyboard matrix. Rows are the half-row address lines A8..A15,
// columns the data lines D0..D4.
//
//	     D0   D1   D2  D3  D4
//	A8   CAPS Z    X   C   V
//	A9   A    S    D   F   G
//	A10  Q    W    E   R   T
//	A11  1    2    3   4   5
//	A12  0    9    8   7   6
//	A13  P    O    I   U   Y
//	A14  CR   L    K   J   H
//	A15  SP   SYM  M   N   B
var (
	KeyCaps = caps(key(0, 0))
	KeyZ    = key(0, 1)
	KeyX    = key(0, 2)
	KeyC    = key(0, 3)
	KeyV    = key(0, 4)

	KeyA = key(1, 0)
	KeyS = key(1, 1)
	KeyD = key(1, 2)
	KeyF = key(1, 3)
	KeyG = key(1, 4)

	KeyQ = key(2, 0)
	KeyW = key(2, 1)
	KeyE = key(2, 2)
	KeyR = key(2, 3)
	KeyT = key(2, 4)

	Key1 = key(3, 0)
	Key2 = key(3, 1)
	Key3 = key(3, 2)
	Key4 = key(3, 3)
	Key5 = key(3, 4)

	Key0 = key(4, 0)
	Key9 = key(4, 1)
	Key8 = key(4, 2)
	Key7 = key(4, 3)
	Key6 = key(4, 4)

	KeyP = key(5, 0)
	KeyO = key(5, 1)
	KeyI = key(5, 2)
	KeyU = key(5, 3)
	KeyY = key(5, 4)

	KeyEnter = key(6, 0)
	KeyL     = key(6, 1)
	KeyK     = key(6, 2)
	KeyJ     = key(6, 3)
	KeyH     = key(6, 4)

	KeySpace = key(7, 0)
	KeySym   = sym(key(7, 1))
	KeyM     = key(7, 2)
	KeyN     = key(7, 3)
	KeyB     = key(7, 4)
)

// CAPS SHIFT combinations.
var (
	KeyEdit     = caps(Key1)
	KeyCapsLock = caps(Key2)
	KeyTrueVid  = caps(Key3)
	KeyInvVid   = caps(Key4)
	KeyLeft     = caps(Key5)
	KeyDelete   = caps(Key0)
	KeyGraphics = caps(Key9)
	KeyRight    = caps(Key8)
	KeyUp       = caps(Key7)
	KeyDown     = caps(Key6)
)

// SYM SHIFT combinations.
var (
	KeyExtMode     = sym(KeyCaps)
	KeyColon       = sym(KeyZ)
	KeyPound       = sym(KeyX)
	KeyQuestion    = sym(KeyC)
	KeySlash       = sym(KeyV)
	KeyStar        = sym(KeyB)
	KeyComma       = sym(KeyN)
	KeyPeriod      = sym(KeyM)
	KeyCaret       = sym(KeyH)
	KeyMinus       = sym(KeyJ)
	KeyPlus        = sym(KeyK)
	KeyEquals      = sym(KeyL)
	KeyLessEq      = sym(KeyQ)
	KeyNotEq       = sym(KeyW)
	KeyGreaterEq   = sym(KeyE)
	KeyLess        = sym(KeyR)
	KeyGreater     = sym(KeyT)
	KeySemicolon   = sym(KeyO)
	KeyDoubleQuote = sym(KeyP)
	KeyExclaim     = sym(Key1)
	KeyAt          = sym(Key2)
	KeyHash        = sym(Key3)
	KeyDollar      = sym(Key4)
	KeyPercent     = sym(Key5)
	KeyAmpersand   = sym(Key6)
	KeyQuote       = sym(Key7)
	KeyParenOpen   = sym(Key8)
	KeyParenClose  = sym(Key9)
	KeyUnderscore  = sym(Key0)
)

// Extended-mode sequences: EXT MODE, then a key.
var (
	SeqTab          = two(KeyExtMode, KeyP)
	SeqUSR          = two(KeyExtMode, KeyL)
	SeqBracketOpen  = two(KeyExtMode, sym(KeyY))
	SeqBracketClose = two(KeyExtMode, sym(KeyU))
	SeqCopyright    = two(KeyExtMode, sym(KeyP))
	SeqTilde        = two(KeyExtMode, sym(KeyA))
	SeqPipe         = two(KeyExtMode, sym(KeyS))
	SeqBackslash    = two(KeyExtMode, sym(KeyD))
	SeqBraceOpen    = two(KeyExtMode, sym(KeyF))
	SeqBraceClose   = two(KeyExtMode, sym(KeyG))
	SeqCAT          = two(KeyExtMode, sym(Key9))
	// SeqCtrl has modifier bits and no address in its second half. What the
	// target does with it is not pinned down; it is kept as found.
	SeqCtrl         = two(KeyExtMode, caps(sym(NoKey)))
)

var matrixNames = [8][5]string{
	{"CAPS", "Z", "X", "C", "V"},
	{"A", "S", "D", "F", "G"},
	{"Q", "W", "E", "R", "T"},
	{"1", "2", "3", "4", "5"},
	{"0", "9", "8", "7", "6"},
	{"P", "O", "I", "U", "Y"},
	{"ENTER", "L", "K", "J", "H"},
	{"SPACE", "SYM", "M", "N", "B"},
}

// MatrixKeyName returns the legend of the target key wired to a.
func MatrixKeyName(a crosspoint.Address) string {
	if int(a.Column()) < len(matrixNames[a.Row()]) {
		return matrixNames[a.Row()][a.Column()]
	}
	return fmt.Sprintf("?%s", a)
}
