package hostinput

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/ps2matrix/ps2matrix/scancode"
)

type set2Key struct {
	code byte
	ext  bool
}

var evdevSet2 = map[evdev.EvCode]set2Key{
	evdev.KEY_A: {code: scancode.CodeA}, evdev.KEY_B: {code: scancode.CodeB},
	evdev.KEY_C: {code: scancode.CodeC}, evdev.KEY_D: {code: scancode.CodeD},
	evdev.KEY_E: {code: scancode.CodeE}, evdev.KEY_F: {code: scancode.CodeF},
	evdev.KEY_G: {code: scancode.CodeG}, evdev.KEY_H: {code: scancode.CodeH},
	evdev.KEY_I: {code: scancode.CodeI}, evdev.KEY_J: {code: scancode.CodeJ},
	evdev.KEY_K: {code: scancode.CodeK}, evdev.KEY_L: {code: scancode.CodeL},
	evdev.KEY_M: {code: scancode.CodeM}, evdev.KEY_N: {code: scancode.CodeN},
	evdev.KEY_O: {code: scancode.CodeO}, evdev.KEY_P: {code: scancode.CodeP},
	evdev.KEY_Q: {code: scancode.CodeQ}, evdev.KEY_R: {code: scancode.CodeR},
	evdev.KEY_S: {code: scancode.CodeS}, evdev.KEY_T: {code: scancode.CodeT},
	evdev.KEY_U: {code: scancode.CodeU}, evdev.KEY_V: {code: scancode.CodeV},
	evdev.KEY_W: {code: scancode.CodeW}, evdev.KEY_X: {code: scancode.CodeX},
	evdev.KEY_Y: {code: scancode.CodeY}, evdev.KEY_Z: {code: scancode.CodeZ},

	evdev.KEY_1: {code: scancode.Code1}, evdev.KEY_2: {code: scancode.Code2},
	evdev.KEY_3: {code: scancode.Code3}, evdev.KEY_4: {code: scancode.Code4},
	evdev.KEY_5: {code: scancode.Code5}, evdev.KEY_6: {code: scancode.Code6},
	evdev.KEY_7: {code: scancode.Code7}, evdev.KEY_8: {code: scancode.Code8},
	evdev.KEY_9: {code: scancode.Code9}, evdev.KEY_0: {code: scancode.Code0},

	evdev.KEY_F1: {code: scancode.CodeF1}, evdev.KEY_F2: {code: scancode.CodeF2},
	evdev.KEY_F3: {code: scancode.CodeF3}, evdev.KEY_F4: {code: scancode.CodeF4},
	evdev.KEY_F5: {code: scancode.CodeF5}, evdev.KEY_F6: {code: scancode.CodeF6},
	evdev.KEY_F7: {code: scancode.CodeF7}, evdev.KEY_F8: {code: scancode.CodeF8},
	evdev.KEY_F9: {code: scancode.CodeF9}, evdev.KEY_F10: {code: scancode.CodeF10},
	evdev.KEY_F11: {code: scancode.CodeF11}, evdev.KEY_F12: {code: scancode.CodeF12},

	evdev.KEY_ESC:        {code: scancode.CodeEscape},
	evdev.KEY_GRAVE:      {code: scancode.CodeBacktick},
	evdev.KEY_MINUS:      {code: scancode.CodeMinus},
	evdev.KEY_EQUAL:      {code: scancode.CodeEquals},
	evdev.KEY_BACKSPACE:  {code: scancode.CodeBackspace},
	evdev.KEY_TAB:        {code: scancode.CodeTabKey},
	evdev.KEY_LEFTBRACE:  {code: scancode.CodeBracketL},
	evdev.KEY_RIGHTBRACE: {code: scancode.CodeBracketR},
	evdev.KEY_BACKSLASH:  {code: scancode.CodeBackslash},
	evdev.KEY_CAPSLOCK:   {code: scancode.CodeCapsLock},
	evdev.KEY_SEMICOLON:  {code: scancode.CodeSemicolon},
	evdev.KEY_APOSTROPHE: {code: scancode.CodeQuote},
	evdev.KEY_ENTER:      {code: scancode.CodeEnter},
	evdev.KEY_LEFTSHIFT:  {code: scancode.CodeLeftShift},
	evdev.KEY_COMMA:      {code: scancode.CodeComma},
	evdev.KEY_DOT:        {code: scancode.CodePeriod},
	evdev.KEY_SLASH:      {code: scancode.CodeSlash},
	evdev.KEY_RIGHTSHIFT: {code: scancode.CodeRightShift},
	evdev.KEY_LEFTCTRL:   {code: scancode.CodeLeftCtrl},
	evdev.KEY_LEFTALT:    {code: scancode.CodeLeftAlt},
	evdev.KEY_SPACE:      {code: scancode.CodeSpace},
	evdev.KEY_NUMLOCK:    {code: scancode.CodeNumLock},
	evdev.KEY_SCROLLLOCK: {code: scancode.CodeScrollLock},

	evdev.KEY_KP0: {code: scancode.CodeKP0}, evdev.KEY_KP1: {code: scancode.CodeKP1},
	evdev.KEY_KP2: {code: scancode.CodeKP2}, evdev.KEY_KP3: {code: scancode.CodeKP3},
	evdev.KEY_KP4: {code: scancode.CodeKP4}, evdev.KEY_KP5: {code: scancode.CodeKP5},
	evdev.KEY_KP6: {code: scancode.CodeKP6}, evdev.KEY_KP7: {code: scancode.CodeKP7},
	evdev.KEY_KP8: {code: scancode.CodeKP8}, evdev.KEY_KP9: {code: scancode.CodeKP9},
	evdev.KEY_KPDOT:      {code: scancode.CodeKPDot},
	evdev.KEY_KPPLUS:     {code: scancode.CodeKPPlus},
	evdev.KEY_KPMINUS:    {code: scancode.CodeKPMinus},
	evdev.KEY_KPASTERISK: {code: scancode.CodeKPStar},

	evdev.KEY_RIGHTALT:  {code: scancode.ExtRightAlt, ext: true},
	evdev.KEY_RIGHTCTRL: {code: scancode.ExtRightCtrl, ext: true},
	evdev.KEY_LEFTMETA:  {code: scancode.ExtLeftGUI, ext: true},
	evdev.KEY_RIGHTMETA: {code: scancode.ExtRightGUI, ext: true},
	evdev.KEY_COMPOSE:   {code: scancode.ExtApps, ext: true},
	evdev.KEY_KPSLASH:   {code: scancode.ExtKPSlash, ext: true},
	evdev.KEY_KPENTER:   {code: scancode.ExtKPEnter, ext: true},
	evdev.KEY_END:       {code: scancode.ExtEnd, ext: true},
	evdev.KEY_LEFT:      {code: scancode.ExtLeft, ext: true},
	evdev.KEY_HOME:      {code: scancode.ExtHome, ext: true},
	evdev.KEY_INSERT:    {code: scancode.ExtInsert, ext: true},
	evdev.KEY_DELETE:    {code: scancode.ExtDelete, ext: true},
	evdev.KEY_DOWN:      {code: scancode.ExtDown, ext: true},
	evdev.KEY_RIGHT:     {code: scancode.ExtRight, ext: true},
	evdev.KEY_UP:        {code: scancode.ExtUp, ext: true},
	evdev.KEY_PAGEDOWN:  {code: scancode.ExtPageDown, ext: true},
	evdev.KEY_PAGEUP:    {code: scancode.ExtPageUp, ext: true},
}

// Set2For returns the Set-2 bytes for an EV_KEY event: value 1 (press) and
// 2 (autorepeat) give the make sequence, 0 the break sequence. Keys with no
// Set-2 code give nil.
func Set2For(code evdev.EvCode, value int32) []byte {
	k, ok := evdevSet2[code]
	if !ok {
		return nil
	}
	switch value {
	case 0:
		return breakBytes(k.code, k.ext)
	case 1, 2:
		return makeBytes(k.code, k.ext)
	}
	return nil
}
