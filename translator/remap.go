package translator

import "github.com/ps2matrix/ps2matrix/scancode"

// punctuationShift moves a PC punctuation code onto the code carrying its
// shifted legend while right shift is in effect.
var punctuationShift = map[byte]int{
	scancode.CodeComma:     -1, // , -> <
	scancode.CodePeriod:    -1, // . -> >
	scancode.CodeQuote:     -1, // ' -> "
	scancode.CodeBracketL:  -1, // [ -> {
	scancode.CodeMinus:     +1, // - -> _
	scancode.CodeEquals:    +1, // = -> +
	scancode.CodeBracketR:  +1, // ] -> }
	scancode.CodeBackslash: +1, // \ -> |
	scancode.CodeSlash:     -3, // / -> ?
	scancode.CodeSemicolon: +4, // ; -> :
}

// RemapPunctuation returns the code to translate in place of code when the
// right-shift remap is in effect. Other codes are returned unchanged.
func RemapPunctuation(code byte) byte {
	if d, ok := punctuationShift[code]; ok {
		return byte(int(code) + d)
	}
	return code
}

const digitRow = 4

// ShiftDigit relocates a digit-row key to the key whose SYM legend matches
// the PC's shifted digit: 6 -> H (^), 7 -> 6 (&), 8 -> B (*), 9 -> 8 ((),
// 0 -> 9 ()).
func ShiftDigit(e scancode.Encoding) scancode.Encoding {
	switch e & 0x38 {
	case 0x20:
		return e | 0x02
	case 0x10:
		return e + 0x13
	default:
		return e + 0x08
	}
}

// RemapDigitPress applies the digit-row relocation for a press. It returns
// the encoding to assert and the new DigitShifted latch.
func RemapDigitPress(e scancode.Encoding, symHeld, shifted bool) (scancode.Encoding, bool) {
	if (symHeld || shifted) && e.Row() == digitRow {
		return ShiftDigit(e), true
	}
	return e, shifted
}

// RemapDigitRelease mirrors RemapDigitPress for a release.
func RemapDigitRelease(e scancode.Encoding, shifted bool) (scancode.Encoding, bool) {
	if shifted && e.Row() == digitRow {
		return ShiftDigit(e), false
	}
	return e, shifted
}
