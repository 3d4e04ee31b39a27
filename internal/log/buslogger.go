package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// BusLogger records switch-bus transactions.
type BusLogger interface {
	// Switch logs one addressed write; addr is the 6-bit matrix address.
	Switch(addr uint8, closed bool)
	// Reset logs a pulse of the reset line.
	Reset()
}

type busLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewBus creates a BusLogger writing to w. A nil writer yields a no-op logger.
func NewBus(w io.Writer) BusLogger {
	return &busLogger{w: w}
}

// Switch emits one line with timestamp, address, row/column split and level.
//
//	2024/09/29 20:26:01.000123 SET 0x1c row=4 col=3 closed
func (b *busLogger) Switch(addr uint8, closed bool) {
	if b.w == nil {
		return
	}
	state := "open"
	if closed {
		state = "closed"
	}
	b.write(fmt.Sprintf("SET 0x%02x row=%d col=%d %s", addr&0x3f, addr&0x07, (addr>>3)&0x07, state))
}

func (b *busLogger) Reset() {
	if b.w == nil {
		return
	}
	b.write("RESET")
}

func (b *busLogger) write(msg string) {
	line := time.Now().Format("2006/01/02 15:04:05.000000") + " " + msg + "\n"
	b.mu.Lock()
	_, _ = io.WriteString(b.w, line)
	b.mu.Unlock()
}
