package scancode

import "fmt"

var plainNames = map[byte]string{
	CodeF9: "F9", CodeF5: "F5", CodeF3: "F3", CodeF1: "F1", CodeF2: "F2", CodeF12: "F12",
	CodeF10: "F10", CodeF8: "F8", CodeF6: "F6", CodeF4: "F4", CodeF11: "F11", CodeF7: "F7",

	CodeA: "A", CodeB: "B", CodeC: "C", CodeD: "D", CodeE: "E", CodeF: "F", CodeG: "G",
	CodeH: "H", CodeI: "I", CodeJ: "J", CodeK: "K", CodeL: "L", CodeM: "M", CodeN: "N",
	CodeO: "O", CodeP: "P", CodeQ: "Q", CodeR: "R", CodeS: "S", CodeT: "T", CodeU: "U",
	CodeV: "V", CodeW: "W", CodeX: "X", CodeY: "Y", CodeZ: "Z",

	Code1: "1", Code2: "2", Code3: "3", Code4: "4", Code5: "5",
	Code6: "6", Code7: "7", Code8: "8", Code9: "9", Code0: "0",

	CodeTabKey:     "Tab",
	CodeBacktick:   "`",
	CodeLeftAlt:    "LAlt",
	CodeLeftShift:  "LShift",
	CodeLeftCtrl:   "LCtrl",
	CodeSpace:      "Space",
	CodeComma:      ",",
	CodePeriod:     ".",
	CodeSlash:      "/",
	CodeSemicolon:  ";",
	CodeMinus:      "-",
	CodeQuote:      "'",
	CodeBracketL:   "[",
	CodeEquals:     "=",
	CodeCapsLock:   "CapsLock",
	CodeRightShift: "RShift",
	CodeEnter:      "Enter",
	CodeBracketR:   "]",
	CodeBackslash:  "\\",
	CodeBackspace:  "Backspace",
	CodeEscape:     "Esc",
	CodeNumLock:    "NumLock",
	CodeScrollLock: "ScrollLock",

	CodeKP0: "Kp0", CodeKP1: "Kp1", CodeKP2: "Kp2", CodeKP3: "Kp3", CodeKP4: "Kp4",
	CodeKP5: "Kp5", CodeKP6: "Kp6", CodeKP7: "Kp7", CodeKP8: "Kp8", CodeKP9: "Kp9",
	CodeKPDot:   "Kp.",
	CodeKPPlus:  "Kp+",
	CodeKPMinus: "Kp-",
	CodeKPStar:  "Kp*",

	// Codes no PC key produces; only reachable through remaps and macros.
	CodeUSRKey:     "<USR>",
	CodeLess:       "<",
	CodeQuestion:   "?",
	CodeGreater:    ">",
	CodeUnderscore: "_",
	CodeColon:      ":",
	CodeDblQuote:   "\"",
	CodeBraceOpen:  "{",
	CodePlus:       "+",
	CodeBraceClose: "}",
	CodePipe:       "|",
}

var extendedNames = map[byte]string{
	ExtRightAlt:  "RAlt",
	ExtRightCtrl: "RCtrl",
	ExtLeftGUI:   "LGui",
	ExtRightGUI:  "RGui",
	ExtApps:      "Apps",
	ExtKPSlash:   "Kp/",
	ExtKPEnter:   "KpEnter",
	ExtEnd:       "End",
	ExtLeft:      "Left",
	ExtHome:      "Home",
	ExtInsert:    "Insert",
	ExtDelete:    "Delete",
	ExtDown:      "Down",
	ExtRight:     "Right",
	ExtUp:        "Up",
	ExtPageDown:  "PageDown",
	ExtPageUp:    "PageUp",
}

// Name returns a human-readable label for a make code.
func Name(code byte, ext bool) string {
	names := plainNames
	if ext {
		names = extendedNames
	}
	if n, ok := names[code]; ok {
		return n
	}
	if ext {
		return fmt.Sprintf("E0 %02X", code)
	}
	return fmt.Sprintf("%02X", code)
}
