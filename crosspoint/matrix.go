package crosspoint

import "sync"

// Matrix simulates the switch array behind a set of Pins. Address and data
// are latched on the falling edge of the strobe; a reset pulse inside a
// strobe cycle opens every point and cancels that cycle's latch.
type Matrix struct {
	mu sync.Mutex

	addr   uint8
	data   bool
	strobe bool
	reset  bool
	// resetInCycle is set when reset was asserted during the current strobe.
	resetInCycle bool

	points [8]uint8 // indexed by row, one bit per column

	onChange func(a Address, closed bool)
}

// NewMatrix returns an all-open Matrix. onChange, if not nil, is called
// for every point whose state actually changes; it runs with the Matrix
// locked and must not call back into it.
func NewMatrix(onChange func(a Address, closed bool)) *Matrix {
	return &Matrix{onChange: onChange}
}

func (m *Matrix) SetAddress(addr uint8) {
	m.mu.Lock()
	m.addr = addr & AddressMask
	m.mu.Unlock()
}

func (m *Matrix) SetData(high bool) {
	m.mu.Lock()
	m.data = high
	m.mu.Unlock()
}

func (m *Matrix) SetStrobe(high bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	falling := m.strobe && !high
	if !m.strobe && high {
		m.resetInCycle = m.reset
	}
	m.strobe = high
	if falling && !m.resetInCycle && !m.reset {
		m.apply(Address(m.addr), m.data)
	}
}

func (m *Matrix) SetReset(high bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = high
	if !high {
		return
	}
	if m.strobe {
		m.resetInCycle = true
	}
	for row := range m.points {
		for col := uint8(0); col < 8; col++ {
			if m.points[row]&(1<<col) != 0 {
				m.apply(NewAddress(uint8(row), col), false)
			}
		}
	}
}

// apply must be called with m.mu held.
func (m *Matrix) apply(a Address, closed bool) {
	bit := uint8(1) << a.Column()
	was := m.points[a.Row()]&bit != 0
	if was == closed {
		return
	}
	if closed {
		m.points[a.Row()] |= bit
	} else {
		m.points[a.Row()] &^= bit
	}
	if m.onChange != nil {
		m.onChange(a, closed)
	}
}

// Closed reports whether the point at a is closed.
func (m *Matrix) Closed(a Address) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.points[a.Row()]&(1<<a.Column()) != 0
}

// ClosedPoints returns every closed point in address order.
func (m *Matrix) ClosedPoints() []Address {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Address
	for a := Address(0); a <= AddressMask; a++ {
		if m.points[a.Row()]&(1<<a.Column()) != 0 {
			out = append(out, a)
		}
	}
	return out
}
