// Package bridge drives the switch bus through a microcontroller attached
// over a serial line. Every pin change is sent as the pair of port images
// [portB, portD], which the bridge copies onto its output ports.
//
//	portB: bit 0-5 address (AX0..AX2, AY0..AY2), bit 6 strobe, bit 7 data
//	portD: bit 0 reset, bit 1 status LED
package bridge

import (
	"fmt"
	"io"
	"sync"

	"github.com/jacobsa/go-serial/serial"
)

const (
	addrMask   = 0x3f
	strobeBit  = 1 << 6
	dataBit    = 1 << 7
	resetBit   = 1 << 0
	ledBit     = 1 << 1
	frameBytes = 2
)

// Config selects the serial device.
type Config struct {
	Port string `help:"Serial device of the bus bridge" env:"PS2MATRIX_BRIDGE_PORT"`
	Baud uint   `help:"Baud rate of the bus bridge" default:"115200" env:"PS2MATRIX_BRIDGE_BAUD"`
}

// Port implements crosspoint.Pins and diag.LED. It is safe for concurrent
// use: the LED is driven from the mainline while the bus is driven from the
// interrupt line.
type Port struct {
	mu    sync.Mutex
	w     io.Writer
	portB byte
	portD byte
	err   error
}

// New returns a Port writing frames to w.
func New(w io.Writer) *Port {
	return &Port{w: w}
}

// Open opens the serial device named by cfg.
func Open(cfg Config) (*Port, error) {
	if cfg.Port == "" {
		return nil, fmt.Errorf("bridge: no serial port configured")
	}
	rwc, err := serial.Open(serial.OpenOptions{
		PortName:        cfg.Port,
		BaudRate:        cfg.Baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("open bridge %s: %w", cfg.Port, err)
	}
	return New(rwc), nil
}

func (p *Port) SetAddress(addr uint8) {
	p.update(func() { p.portB = p.portB&^addrMask | addr&addrMask })
}

func (p *Port) SetStrobe(high bool) { p.update(func() { p.portB = setBit(p.portB, strobeBit, high) }) }
func (p *Port) SetData(high bool)   { p.update(func() { p.portB = setBit(p.portB, dataBit, high) }) }
func (p *Port) SetReset(high bool)  { p.update(func() { p.portD = setBit(p.portD, resetBit, high) }) }
func (p *Port) SetLED(on bool)      { p.update(func() { p.portD = setBit(p.portD, ledBit, on) }) }

// Err returns the first write error. Once set, no more frames are sent.
func (p *Port) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Close closes the underlying device if it is closable.
func (p *Port) Close() error {
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *Port) update(change func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	b, d := p.portB, p.portD
	change()
	if b == p.portB && d == p.portD {
		return
	}
	n, err := p.w.Write([]byte{p.portB, p.portD})
	if err == nil && n != frameBytes {
		err = io.ErrShortWrite
	}
	if err != nil {
		p.err = fmt.Errorf("bridge write: %w", err)
	}
}

func setBit(v, bit byte, on bool) byte {
	if on {
		return v | bit
	}
	return v &^ bit
}
