// Package testing holds recorders shared by package tests.
package testing

import (
	"fmt"
	"sync"
	"time"

	"github.com/ps2matrix/ps2matrix/crosspoint"
)

// OpKind identifies a recorded switch-bus operation.
type OpKind int

const (
	OpSet OpKind = iota
	OpReset
	OpDelay
)

// Op is one recorded operation.
type Op struct {
	Kind   OpKind
	Addr   crosspoint.Address
	Closed bool
	Delay  time.Duration
}

func (o Op) String() string {
	switch o.Kind {
	case OpReset:
		return "reset"
	case OpDelay:
		return "delay " + o.Delay.String()
	}
	if o.Closed {
		return fmt.Sprintf("close 0x%02x", uint8(o.Addr))
	}
	return fmt.Sprintf("open 0x%02x", uint8(o.Addr))
}

// Set is a shorthand constructor for an OpSet.
func Set(addr uint8, closed bool) Op {
	return Op{Kind: OpSet, Addr: crosspoint.Address(addr), Closed: closed}
}

// Recorder implements the translator's switch interface and a delay
// function, keeping every call in order.
type Recorder struct {
	mu  sync.Mutex
	ops []Op
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Reset() { r.add(Op{Kind: OpReset}) }

func (r *Recorder) Set(addr crosspoint.Address, closed bool) {
	r.add(Op{Kind: OpSet, Addr: addr & crosspoint.AddressMask, Closed: closed})
}

// Delay records a delay instead of sleeping.
func (r *Recorder) Delay(d time.Duration) { r.add(Op{Kind: OpDelay, Delay: d}) }

func (r *Recorder) add(op Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// Ops returns a copy of every recorded operation.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Switches returns the recorded operations without delays.
func (r *Recorder) Switches() []Op {
	var out []Op
	for _, op := range r.Ops() {
		if op.Kind != OpDelay {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many operations of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops() {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Clear forgets every recorded operation.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.ops = nil
	r.mu.Unlock()
}

// PinRecorder implements crosspoint.Pins and records pin writes and
// delays as text, in order.
type PinRecorder struct {
	mu     sync.Mutex
	events []string
}

func (p *PinRecorder) SetAddress(addr uint8) { p.add(fmt.Sprintf("addr=0x%02x", addr)) }
func (p *PinRecorder) SetStrobe(high bool)   { p.add("strobe=" + level(high)) }
func (p *PinRecorder) SetData(high bool)     { p.add("data=" + level(high)) }
func (p *PinRecorder) SetReset(high bool)    { p.add("reset=" + level(high)) }
func (p *PinRecorder) Delay(d time.Duration) { p.add("wait " + d.String()) }

func (p *PinRecorder) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func (p *PinRecorder) add(e string) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

func level(high bool) string {
	if high {
		return "1"
	}
	return "0"
}
