// Package scancode maps PS/2 Set-2 scan codes onto ZX Spectrum key matrix
// encodings. The tables are fixed at build time.
package scancode

// Set-2 protocol bytes.
const (
	Extended byte = 0xE0 // prefix selecting the extended table
	Break    byte = 0xF0 // prefix marking a key release
	Pause    byte = 0xE1 // pause prefix, unsupported
	None     byte = 0x00
)

// Set-2 make codes referenced by name elsewhere.
const (
	CodeF9         byte = 0x01
	CodeF5         byte = 0x03
	CodeF3         byte = 0x04
	CodeF1         byte = 0x05
	CodeF2         byte = 0x06
	CodeF12        byte = 0x07
	CodeF10        byte = 0x09
	CodeF8         byte = 0x0A
	CodeF6         byte = 0x0B
	CodeF4         byte = 0x0C
	CodeTabKey     byte = 0x0D
	CodeBacktick   byte = 0x0E
	CodeUSRKey     byte = 0x0F // unused on PC keyboards
	CodeLeftAlt    byte = 0x11
	CodeLeftShift  byte = 0x12
	CodeLeftCtrl   byte = 0x14
	CodeQ          byte = 0x15
	Code1          byte = 0x16
	CodeZ          byte = 0x1A
	CodeS          byte = 0x1B
	CodeA          byte = 0x1C
	CodeW          byte = 0x1D
	Code2          byte = 0x1E
	CodeC          byte = 0x21
	CodeX          byte = 0x22
	CodeD          byte = 0x23
	CodeE          byte = 0x24
	Code4          byte = 0x25
	Code3          byte = 0x26
	CodeSpace      byte = 0x29
	CodeV          byte = 0x2A
	CodeF          byte = 0x2B
	CodeT          byte = 0x2C
	CodeR          byte = 0x2D
	Code5          byte = 0x2E
	CodeN          byte = 0x31
	CodeB          byte = 0x32
	CodeH          byte = 0x33
	CodeG          byte = 0x34
	CodeY          byte = 0x35
	Code6          byte = 0x36
	CodeM          byte = 0x3A
	CodeJ          byte = 0x3B
	CodeU          byte = 0x3C
	Code7          byte = 0x3D
	Code8          byte = 0x3E
	CodeLess       byte = 0x40 // unused on PC keyboards
	CodeComma      byte = 0x41
	CodeK          byte = 0x42
	CodeI          byte = 0x43
	CodeO          byte = 0x44
	Code0          byte = 0x45
	Code9          byte = 0x46
	CodeQuestion   byte = 0x47 // unused on PC keyboards
	CodeGreater    byte = 0x48 // unused on PC keyboards
	CodePeriod     byte = 0x49
	CodeSlash      byte = 0x4A
	CodeL          byte = 0x4B
	CodeSemicolon  byte = 0x4C
	CodeP          byte = 0x4D
	CodeMinus      byte = 0x4E
	CodeUnderscore byte = 0x4F // unused on PC keyboards
	CodeColon      byte = 0x50 // unused on PC keyboards
	CodeDblQuote   byte = 0x51 // unused on PC keyboards
	CodeQuote      byte = 0x52
	CodeBraceOpen  byte = 0x53 // unused on PC keyboards
	CodeBracketL   byte = 0x54
	CodeEquals     byte = 0x55
	CodePlus       byte = 0x56 // unused on PC keyboards
	CodeCapsLock   byte = 0x58
	CodeRightShift byte = 0x59
	CodeEnter      byte = 0x5A
	CodeBracketR   byte = 0x5B
	CodeBraceClose byte = 0x5C // unused on PC keyboards
	CodeBackslash  byte = 0x5D
	CodePipe       byte = 0x5E // unused on PC keyboards
	CodeBackspace  byte = 0x66
	CodeKP1        byte = 0x69
	CodeKP4        byte = 0x6B
	CodeKP7        byte = 0x6C
	CodeKP0        byte = 0x70
	CodeKPDot      byte = 0x71
	CodeKP2        byte = 0x72
	CodeKP5        byte = 0x73
	CodeKP6        byte = 0x74
	CodeKP8        byte = 0x75
	CodeEscape     byte = 0x76
	CodeNumLock    byte = 0x77
	CodeF11        byte = 0x78
	CodeKPPlus     byte = 0x79
	CodeKP3        byte = 0x7A
	CodeKPMinus    byte = 0x7B
	CodeKPStar     byte = 0x7C
	CodeKP9        byte = 0x7D
	CodeScrollLock byte = 0x7E
	CodeF7         byte = 0x83
)

// Extended (0xE0-prefixed) make codes.
const (
	ExtRightAlt  byte = 0x11
	ExtRightCtrl byte = 0x14
	ExtLeftGUI   byte = 0x1F
	ExtRightGUI  byte = 0x27
	ExtApps      byte = 0x2F
	ExtKPSlash   byte = 0x4A
	ExtKPEnter   byte = 0x5A
	ExtEnd       byte = 0x69
	ExtLeft      byte = 0x6B
	ExtHome      byte = 0x6C
	ExtInsert    byte = 0x70
	ExtDelete    byte = 0x71
	ExtDown      byte = 0x72
	ExtRight     byte = 0x74
	ExtUp        byte = 0x75
	ExtPageDown  byte = 0x7A
	ExtPageUp    byte = 0x7D
)

// Translatable codes lie strictly between these bounds.
const (
	MinValid byte = 0x0C
	MaxValid byte = 0x80
)

// Valid reports whether code lies in the translatable range.
func Valid(code byte) bool { return code > MinValid && code < MaxValid }
