package scancode

import "fmt"

// Stroke is one key, optionally chorded with a modifier, as typed on the
// PS/2 side so that the target shows a given character.
type Stroke struct {
	Modifier byte // make code of the held modifier, or None
	Code     byte
	Extended bool
}

// Letters need LShift (CAPS SHIFT) for upper case. Symbols use the codes the
// tables dedicate to them; the PC-shifted digit row goes through LAlt so the
// digit-row remap produces the PC legend.
var charStrokes = map[rune]Stroke{
	' ':  {Code: CodeSpace},
	'\n': {Code: CodeEnter},
	'\r': {Code: CodeEnter},
	'\t': {Code: CodeTabKey},
	'\b': {Code: CodeBackspace},
	0x7f: {Code: CodeBackspace},
	',':  {Code: CodeComma},
	'.':  {Code: CodePeriod},
	'/':  {Code: CodeSlash},
	';':  {Code: CodeSemicolon},
	'-':  {Code: CodeMinus},
	'\'': {Code: CodeQuote},
	'=':  {Code: CodeEquals},
	'[':  {Code: CodeBracketL},
	']':  {Code: CodeBracketR},
	'\\': {Code: CodeBackslash},
	'~':  {Code: CodeBacktick},
	'<':  {Code: CodeLess},
	'>':  {Code: CodeGreater},
	'?':  {Code: CodeQuestion},
	'_':  {Code: CodeUnderscore},
	':':  {Code: CodeColon},
	'"':  {Code: CodeDblQuote},
	'{':  {Code: CodeBraceOpen},
	'}':  {Code: CodeBraceClose},
	'+':  {Code: CodePlus},
	'|':  {Code: CodePipe},
	'*':  {Code: CodeKPStar},
	'!':  {Modifier: CodeLeftAlt, Code: Code1},
	'@':  {Modifier: CodeLeftAlt, Code: Code2},
	'#':  {Modifier: CodeLeftAlt, Code: Code3},
	'$':  {Modifier: CodeLeftAlt, Code: Code4},
	'%':  {Modifier: CodeLeftAlt, Code: Code5},
	'^':  {Modifier: CodeLeftAlt, Code: Code6},
	'&':  {Modifier: CodeLeftAlt, Code: Code7},
	'(':  {Modifier: CodeLeftAlt, Code: Code9},
	')':  {Modifier: CodeLeftAlt, Code: Code0},
}

var letterCodes = [26]byte{
	CodeA, CodeB, CodeC, CodeD, CodeE, CodeF, CodeG, CodeH, CodeI, CodeJ, CodeK, CodeL, CodeM,
	CodeN, CodeO, CodeP, CodeQ, CodeR, CodeS, CodeT, CodeU, CodeV, CodeW, CodeX, CodeY, CodeZ,
}

var digitCodes = [10]byte{Code0, Code1, Code2, Code3, Code4, Code5, Code6, Code7, Code8, Code9}

// StrokeFor returns the stroke that types c on the target.
func StrokeFor(c rune) (Stroke, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return Stroke{Code: letterCodes[c-'a']}, true
	case c >= 'A' && c <= 'Z':
		return Stroke{Modifier: CodeLeftShift, Code: letterCodes[c-'A']}, true
	case c >= '0' && c <= '9':
		return Stroke{Code: digitCodes[c-'0']}, true
	}
	s, ok := charStrokes[c]
	return s, ok
}

// Make returns the make bytes of s: modifier, then key.
func (s Stroke) Make() []byte {
	var out []byte
	if s.Modifier != None {
		out = append(out, s.Modifier)
	}
	if s.Extended {
		out = append(out, Extended)
	}
	return append(out, s.Code)
}

// Release returns the break bytes of s: key, then modifier.
func (s Stroke) Release() []byte {
	var out []byte
	if s.Extended {
		out = append(out, Extended)
	}
	out = append(out, Break, s.Code)
	if s.Modifier != None {
		out = append(out, Break, s.Modifier)
	}
	return out
}

// Bytes returns the complete make/break sequence of s.
func (s Stroke) Bytes() []byte {
	return append(s.Make(), s.Release()...)
}

// ForString returns the Set-2 byte stream that types input on the target.
func ForString(input string) ([]byte, error) {
	var out []byte
	for _, c := range input {
		s, ok := StrokeFor(c)
		if !ok {
			return nil, fmt.Errorf("no key types %q", c)
		}
		out = append(out, s.Bytes()...)
	}
	return out, nil
}
