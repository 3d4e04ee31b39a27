package hostinput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/scancode"
)

const (
	ctrlC = 0x03
	ctrlD = 0x04
	esc   = 0x1b
)

// escapeKeys maps the escape sequences of common terminals to keys.
var escapeKeys = map[string]scancode.Stroke{
	"\x1b[A":   {Code: scancode.ExtUp, Extended: true},
	"\x1b[B":   {Code: scancode.ExtDown, Extended: true},
	"\x1b[C":   {Code: scancode.ExtRight, Extended: true},
	"\x1b[D":   {Code: scancode.ExtLeft, Extended: true},
	"\x1b[H":   {Code: scancode.ExtHome, Extended: true},
	"\x1b[F":   {Code: scancode.ExtEnd, Extended: true},
	"\x1b[2~":  {Code: scancode.ExtInsert, Extended: true},
	"\x1b[3~":  {Code: scancode.ExtDelete, Extended: true},
	"\x1bOP":   {Code: scancode.CodeF1},
	"\x1bOQ":   {Code: scancode.CodeF2},
	"\x1b[24~": {Code: scancode.CodeF12},
}

// Terminal reads characters from a terminal in raw mode and types each one
// as a complete stroke. Ctrl-C or Ctrl-D ends input.
type Terminal struct {
	In     *os.File
	Logger *slog.Logger
}

func (t *Terminal) Run(ctx context.Context, emit func([]byte)) error {
	logger := log.OrDefault(t.Logger)
	in := t.In
	if in == nil {
		in = os.Stdin
	}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}

	chunks := make(chan []byte)
	errs := make(chan error, 1)
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				select {
				case chunks <- append([]byte(nil), buf[:n]...):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				errs <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read terminal: %w", err)
		case chunk := <-chunks:
			strokes, quit, unknown := ParseTerminal(chunk)
			for _, r := range unknown {
				logger.Debug("No key types character", "char", string(r))
			}
			for _, s := range strokes {
				emit(s.Make())
				emit(s.Release())
			}
			if quit {
				return nil
			}
		}
	}
}

// ParseTerminal splits raw terminal input into strokes. It reports quit when
// the input holds Ctrl-C or Ctrl-D; anything after it is dropped.
func ParseTerminal(chunk []byte) (strokes []scancode.Stroke, quit bool, unknown []rune) {
	s := string(chunk)
	for len(s) > 0 {
		if s[0] == esc {
			if st, n := matchEscape(s); n > 0 {
				strokes = append(strokes, st)
				s = s[n:]
				continue
			}
			strokes = append(strokes, scancode.Stroke{Code: scancode.CodeEscape})
			s = s[1:]
			continue
		}
		r, n := utf8.DecodeRuneInString(s)
		s = s[n:]
		if r == ctrlC || r == ctrlD {
			return strokes, true, unknown
		}
		st, ok := scancode.StrokeFor(r)
		if !ok {
			unknown = append(unknown, r)
			continue
		}
		strokes = append(strokes, st)
	}
	return strokes, false, unknown
}

func matchEscape(s string) (scancode.Stroke, int) {
	for seq, st := range escapeKeys {
		if strings.HasPrefix(s, seq) {
			return st, len(seq)
		}
	}
	return scancode.Stroke{}, 0
}
