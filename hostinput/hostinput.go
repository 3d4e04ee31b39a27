// Package hostinput reads keys on the host and turns them into Set-2 byte
// sequences, standing in for the PS/2 keyboard.
package hostinput

import (
	"context"

	"github.com/ps2matrix/ps2matrix/scancode"
)

// Source produces Set-2 bytes until ctx is done or input ends. Each call of
// emit carries one complete make or break sequence.
type Source interface {
	Run(ctx context.Context, emit func([]byte)) error
}

// makeBytes returns the make sequence of a key.
func makeBytes(code byte, ext bool) []byte {
	if ext {
		return []byte{scancode.Extended, code}
	}
	return []byte{code}
}

// breakBytes returns the break sequence of a key.
func breakBytes(code byte, ext bool) []byte {
	if ext {
		return []byte{scancode.Extended, scancode.Break, code}
	}
	return []byte{scancode.Break, code}
}
