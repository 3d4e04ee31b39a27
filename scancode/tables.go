package scancode

// plain maps Set-2 make codes to target keys. Codes a PC keyboard never sends
// (0x0F, 0x40, 0x47, ...) carry symbols that have no dedicated PC key; the
// right-shift punctuation remap lands on them.
var plain = [0x84]KeyCode{
	CodeTabKey:     SeqTab,
	CodeBacktick:   SeqTilde,
	CodeUSRKey:     SeqUSR,
	CodeLeftAlt:    one(KeySym),
	CodeLeftShift:  one(KeyCaps),
	CodeLeftCtrl:   SeqCtrl,
	CodeQ:          one(KeyQ),
	Code1:          one(Key1),
	CodeZ:          one(KeyZ),
	CodeS:          one(KeyS),
	CodeA:          one(KeyA),
	CodeW:          one(KeyW),
	Code2:          one(Key2),
	CodeC:          one(KeyC),
	CodeX:          one(KeyX),
	CodeD:          one(KeyD),
	CodeE:          one(KeyE),
	Code4:          one(Key4),
	Code3:          one(Key3),
	CodeSpace:      one(KeySpace),
	CodeV:          one(KeyV),
	CodeF:          one(KeyF),
	CodeT:          one(KeyT),
	CodeR:          one(KeyR),
	Code5:          one(Key5),
	CodeN:          one(KeyN),
	CodeB:          one(KeyB),
	CodeH:          one(KeyH),
	CodeG:          one(KeyG),
	CodeY:          one(KeyY),
	Code6:          one(Key6),
	CodeM:          one(KeyM),
	CodeJ:          one(KeyJ),
	CodeU:          one(KeyU),
	Code7:          one(Key7),
	Code8:          one(Key8),
	CodeLess:       one(KeyLess),
	CodeComma:      one(KeyComma),
	CodeK:          one(KeyK),
	CodeI:          one(KeyI),
	CodeO:          one(KeyO),
	Code0:          one(Key0),
	Code9:          one(Key9),
	CodeQuestion:   one(KeyQuestion),
	CodeGreater:    one(KeyGreater),
	CodePeriod:     one(KeyPeriod),
	CodeSlash:      one(KeySlash),
	CodeL:          one(KeyL),
	CodeSemicolon:  one(KeySemicolon),
	CodeP:          one(KeyP),
	CodeMinus:      one(KeyMinus),
	CodeUnderscore: one(KeyUnderscore),
	CodeColon:      one(KeyColon),
	CodeDblQuote:   one(KeyDoubleQuote),
	CodeQuote:      one(KeyQuote),
	CodeBraceOpen:  SeqBraceOpen,
	CodeBracketL:   SeqBracketOpen,
	CodeEquals:     one(KeyEquals),
	CodePlus:       one(KeyPlus),
	CodeCapsLock:   one(KeyCapsLock),
	CodeEnter:      one(KeyEnter),
	CodeBracketR:   SeqBracketClose,
	CodeBraceClose: SeqBraceClose,
	CodeBackslash:  SeqBackslash,
	CodePipe:       SeqPipe,
	CodeBackspace:  one(KeyDelete),
	CodeKP1:        one(Key1),
	CodeKP4:        one(Key4),
	CodeKP7:        one(Key7),
	CodeKP0:        one(Key0),
	CodeKPDot:      one(KeyPeriod),
	CodeKP2:        one(Key2),
	CodeKP5:        one(Key5),
	CodeKP6:        one(Key6),
	CodeKP8:        one(Key8),
	CodeEscape:     one(KeyEdit),
	CodeNumLock:    SeqCAT,
	CodeKPPlus:     one(KeyPlus),
	CodeKP3:        one(Key3),
	CodeKPMinus:    one(KeyMinus),
	CodeKPStar:     one(KeyStar),
	CodeKP9:        one(Key9),
}

// extended maps 0xE0-prefixed make codes to target keys.
var extended = [0x7E]KeyCode{
	ExtRightAlt:  one(KeySym),
	ExtRightCtrl: SeqCtrl,
	ExtKPSlash:   one(KeySlash),
	ExtKPEnter:   one(KeyEnter),
	ExtLeft:      one(KeyLeft),
	ExtDown:      one(KeyDown),
	ExtRight:     one(KeyRight),
	ExtUp:        one(KeyUp),
}

// Lookup returns the target key for a make code from the plain or the
// extended table. Codes past the end of a table map to no key.
func Lookup(code byte, ext bool) KeyCode {
	if ext {
		if int(code) < len(extended) {
			return extended[code]
		}
		return KeyCode{}
	}
	if int(code) < len(plain) {
		return plain[code]
	}
	return KeyCode{}
}

// Entry is one populated row of a table.
type Entry struct {
	Code     byte    `json:"code" yaml:"code" toml:"code"`
	Extended bool    `json:"extended" yaml:"extended" toml:"extended"`
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Key      KeyCode `json:"-" yaml:"-" toml:"-"`
	Target   string  `json:"target" yaml:"target" toml:"target"`
	Packed   uint16  `json:"packed" yaml:"packed" toml:"packed"`
}

// Entries lists every mapped code, plain table first, in code order.
func Entries() []Entry {
	var out []Entry
	add := func(code byte, ext bool, k KeyCode) {
		if k.IsZero() {
			return
		}
		out = append(out, Entry{
			Code:     code,
			Extended: ext,
			Name:     Name(code, ext),
			Key:      k,
			Target:   k.String(),
			Packed:   k.Packed(),
		})
	}
	for c, k := range plain {
		add(byte(c), false, k)
	}
	for c, k := range extended {
		add(byte(c), true, k)
	}
	return out
}
