// Package ps2 reconstructs PS/2 device-to-host frames from clock edges.
//
// A frame is 11 bit cells: start (0), eight data bits LSB first, odd parity
// and stop (1). The device changes data while the clock is high and the host
// samples on the falling edge.
package ps2

import (
	"context"
	"log/slog"
	"math/bits"

	"github.com/ps2matrix/ps2matrix/internal/log"
)

const frameBits = 11

// Phase is the polarity of a clock transition.
type Phase int

const (
	Falling Phase = iota
	Rising
)

func (p Phase) String() string {
	if p == Rising {
		return "rising"
	}
	return "falling"
}

// Edge is one clock transition with the level of the data line at that
// moment.
type Edge struct {
	Phase Phase
	Data  bool
}

// Sink receives completed bytes.
type Sink interface {
	Decode(code byte)
}

// FrameDecoder is the edge interrupt state machine. It is not safe for
// concurrent use; edges arrive one at a time through an irq.Line.
type FrameDecoder struct {
	sink   Sink
	logger *slog.Logger

	phase Phase
	count int
	acc   byte
}

// NewFrameDecoder returns a decoder handing completed bytes to sink.
func NewFrameDecoder(sink Sink, logger *slog.Logger) *FrameDecoder {
	d := &FrameDecoder{sink: sink, logger: log.OrDefault(logger)}
	d.Reset()
	return d
}

// Reset discards any partial frame.
func (d *FrameDecoder) Reset() {
	d.phase = Falling
	d.count = frameBits
	d.acc = 0
}

// Edge consumes one clock transition. Edges of the wrong polarity are
// ignored, the way a pin interrupt armed for one polarity never sees the
// other. A missed edge is not detected; the frame stays misaligned until
// the count happens to line up again.
func (d *FrameDecoder) Edge(e Edge) {
	if e.Phase != d.phase {
		return
	}
	if d.phase == Falling {
		// data window: count 10..3
		if d.count < frameBits && d.count > 2 {
			d.acc >>= 1
			if e.Data {
				d.acc |= 0x80
			}
		}
		d.phase = Rising
		return
	}

	d.phase = Falling
	d.count--
	if d.count > 0 {
		return
	}
	code := d.acc
	d.count = frameBits
	d.acc = 0
	d.logger.Log(context.Background(), log.LevelTrace, "ps2 frame", "code", code)
	d.sink.Decode(code)
}

// Encode returns the 22 edges a keyboard produces to send b.
func Encode(b byte) []Edge {
	cells := make([]bool, 0, frameBits)
	cells = append(cells, false)
	for i := 0; i < 8; i++ {
		cells = append(cells, b&(1<<i) != 0)
	}
	cells = append(cells, bits.OnesCount8(b)%2 == 0, true)

	edges := make([]Edge, 0, 2*frameBits)
	for _, c := range cells {
		edges = append(edges, Edge{Phase: Falling, Data: c}, Edge{Phase: Rising, Data: c})
	}
	return edges
}

// EncodeAll concatenates the frames of every byte in bs.
func EncodeAll(bs []byte) []Edge {
	edges := make([]Edge, 0, len(bs)*2*frameBits)
	for _, b := range bs {
		edges = append(edges, Encode(b)...)
	}
	return edges
}
