package macro

import (
	"strings"

	"github.com/ps2matrix/ps2matrix/scancode"
)

// Macro is a fixed sequence bound to a trigger key. Sequences end with a
// zero byte.
type Macro struct {
	Name        string
	Description string
	Trigger     byte
	Seq         []byte
}

var (
	// CPMRun types RANDOMIZE USR 14446 and Enter, starting CP/M from BASIC.
	CPMRun = Macro{
		Name:        "cpm",
		Description: "RANDOMIZE USR 14446",
		Trigger:     scancode.CodeF1,
		Seq: []byte{
			scancode.CodeT, scancode.CodeUSRKey,
			scancode.Code1, scancode.Code4, scancode.Code4, scancode.Code4, scancode.Code6,
			scancode.CodeEnter, scancode.None,
		},
	}

	// LoadFromDisk types LOAD *"d";1;" in keyword mode.
	LoadFromDisk = Macro{
		Name:        "load",
		Description: `LOAD *"d";1;"`,
		Trigger:     scancode.CodeF2,
		Seq: []byte{
			scancode.CodeJ, scancode.CodeKPStar, scancode.CodeDblQuote, scancode.CodeD,
			scancode.CodeDblQuote, scancode.CodeSemicolon, scancode.Code1,
			scancode.CodeSemicolon, scancode.CodeDblQuote, scancode.None,
		},
	}

	Signature = Macro{
		Name:        "signature",
		Description: `PRINT "SVP2024"`,
		Trigger:     scancode.CodeF12,
		Seq: []byte{
			scancode.CodeP, scancode.CodeDblQuote, scancode.CodeCapsLock,
			scancode.CodeS, scancode.CodeV, scancode.CodeP,
			scancode.Code2, scancode.Code0, scancode.Code2, scancode.Code4,
			scancode.CodeCapsLock, scancode.CodeDblQuote, scancode.CodeEnter, scancode.None,
		},
	}
)

// Builtins returns the compiled-in macros in trigger order.
func Builtins() []Macro {
	return []Macro{CPMRun, LoadFromDisk, Signature}
}

// Find returns the built-in macro called name, ignoring case.
func Find(name string) (Macro, bool) {
	for _, m := range Builtins() {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Macro{}, false
}

// Bindings returns the trigger table for translator.BindMacros.
func Bindings(ms []Macro) map[byte][]byte {
	out := make(map[byte][]byte, len(ms))
	for _, m := range ms {
		out[m.Trigger] = m.Seq
	}
	return out
}

// Names lists the built-in macro names.
func Names() []string {
	var out []string
	for _, m := range Builtins() {
		out = append(out, m.Name)
	}
	return out
}
