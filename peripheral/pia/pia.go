// Package pia implements the MC6821 Peripheral Interface Adapter. The 6820
// and 6821 are register-compatible; this implementation covers the full
// register set: data-direction registers, data ports, control registers,
// interrupt flags, and edge-detected control-line inputs.
//
// Each side (A and B) has a data port connected to external hardware, an
// output register (ORA/ORB) latching CPU writes, a data-direction register
// (DDRA/DDRB, 0=input 1=output per bit), a control register (CRA/CRB)
// controlling interrupts and register selection, and two control lines
// (CA1/CA2 or CB1/CB2). Register addressing uses two address lines (4
// locations), with control-register bit 2 selecting between the DDR and
// the data register at offsets 0 and 2.
package pia

// PIA is a single MC6821 adapter chip.
type PIA struct {
	outputA, ddrA, ctrlA, inputA uint8
	outputB, ddrB, ctrlB, inputB uint8

	irqA1, irqA2 bool
	irqB1, irqB2 bool

	ca1, ca2, cb1, cb2 bool

	portBWritten bool
}

// New returns a PIA with all registers zeroed: all pins input, no
// interrupts pending.
func New() *PIA {
	return &PIA{}
}

// Read reads a PIA register. offset is the two address lines (0-3):
//
//	0, CRA.2=0 -> DDRA      0, CRA.2=1 -> Port A data
//	1                       -> CRA
//	2, CRB.2=0 -> DDRB      2, CRB.2=1 -> Port B data
//	3                       -> CRB
//
// Reading a data port clears both sticky IRQ flags for that side.
func (p *PIA) Read(offset uint8) uint8 {
	switch offset & 0x03 {
	case 0:
		if p.ctrlA&0x04 != 0 {
			p.irqA1 = false
			p.irqA2 = false
			return (p.inputA &^ p.ddrA) | (p.outputA & p.ddrA)
		}
		return p.ddrA
	case 1:
		flags := uint8(0)
		if p.irqA1 {
			flags |= 0x80
		}
		if p.irqA2 {
			flags |= 0x40
		}
		return flags | (p.ctrlA & 0x3F)
	case 2:
		if p.ctrlB&0x04 != 0 {
			p.irqB1 = false
			p.irqB2 = false
			return (p.inputB &^ p.ddrB) | (p.outputB & p.ddrB)
		}
		return p.ddrB
	default: // 3
		flags := uint8(0)
		if p.irqB1 {
			flags |= 0x80
		}
		if p.irqB2 {
			flags |= 0x40
		}
		return flags | (p.ctrlB & 0x3F)
	}
}

// Write writes a PIA register. Writing to a data port stores the value in
// ORA/ORB; only bits where the corresponding DDR bit is 1 actually drive
// the output pins. Writing to a control register only affects bits 5:0
// (bits 7:6 are read-only interrupt flags).
func (p *PIA) Write(offset, data uint8) {
	switch offset & 0x03 {
	case 0:
		if p.ctrlA&0x04 != 0 {
			p.outputA = data
		} else {
			p.ddrA = data
		}
	case 1:
		p.ctrlA = data & 0x3F
	case 2:
		if p.ctrlB&0x04 != 0 {
			p.outputB = data
			p.portBWritten = true
		} else {
			p.ddrB = data
		}
	case 3:
		p.ctrlB = data & 0x3F
	}
}

// SetPortAInput sets the external input pins for port A.
func (p *PIA) SetPortAInput(data uint8) { p.inputA = data }

// SetPortBInput sets the external input pins for port B.
func (p *PIA) SetPortBInput(data uint8) { p.inputB = data }

// SetCA1 updates the CA1 control line. CA1 is always an input; CRA bit 1
// selects the active edge (0=falling, 1=rising) that latches irqA1.
func (p *PIA) SetCA1(state bool) {
	rising := state && !p.ca1
	falling := !state && p.ca1
	p.ca1 = state

	triggerOnRising := p.ctrlA&0x02 != 0
	if (triggerOnRising && rising) || (!triggerOnRising && falling) {
		p.irqA1 = true
	}
}

// SetCB1 updates the CB1 control line, mirroring SetCA1 for side B.
func (p *PIA) SetCB1(state bool) {
	rising := state && !p.cb1
	falling := !state && p.cb1
	p.cb1 = state

	triggerOnRising := p.ctrlB&0x02 != 0
	if (triggerOnRising && rising) || (!triggerOnRising && falling) {
		p.irqB1 = true
	}
}

// SetCA2 updates the CA2 control line when it is configured as an input
// (CRA bit 5 = 0); ignored in output mode. CRA bit 4 selects the active
// edge.
func (p *PIA) SetCA2(state bool) {
	if p.ctrlA&0x20 != 0 {
		return
	}
	rising := state && !p.ca2
	falling := !state && p.ca2
	p.ca2 = state

	triggerOnRising := p.ctrlA&0x10 != 0
	if (triggerOnRising && rising) || (!triggerOnRising && falling) {
		p.irqA2 = true
	}
}

// SetCB2 updates the CB2 control line when it is configured as an input
// (CRB bit 5 = 0); ignored in output mode. CRB bit 4 selects the active
// edge.
func (p *PIA) SetCB2(state bool) {
	if p.ctrlB&0x20 != 0 {
		return
	}
	rising := state && !p.cb2
	falling := !state && p.cb2
	p.cb2 = state

	triggerOnRising := p.ctrlB&0x10 != 0
	if (triggerOnRising && rising) || (!triggerOnRising && falling) {
		p.irqB2 = true
	}
}

// IRQA reports whether the chip's IRQA output line is asserted:
// (irqA1 AND CRA.0) OR (irqA2 AND CRA.3 AND NOT CRA.5).
func (p *PIA) IRQA() bool {
	a1 := p.irqA1 && p.ctrlA&0x01 != 0
	a2 := p.irqA2 && p.ctrlA&0x20 == 0 && p.ctrlA&0x08 != 0
	return a1 || a2
}

// IRQB reports whether the chip's IRQB output line is asserted, mirroring
// IRQA for side B.
func (p *PIA) IRQB() bool {
	b1 := p.irqB1 && p.ctrlB&0x01 != 0
	b2 := p.irqB2 && p.ctrlB&0x20 == 0 && p.ctrlB&0x08 != 0
	return b1 || b2
}

// ReadOutputA returns the bits of port A the CPU is actively driving
// (ORA masked by DDRA), useful for board logic observing CPU output.
func (p *PIA) ReadOutputA() uint8 { return p.outputA & p.ddrA }

// ReadOutputB returns the bits of port B the CPU is actively driving.
func (p *PIA) ReadOutputB() uint8 { return p.outputB & p.ddrB }

// CB2Output returns the driven level of CB2 when configured as output
// (CRB bit 5 = 1): direct-control mode (CRB bit 4 = 1) returns CRB bit 3;
// handshake/pulse mode returns the line's stored state. Returns false when
// CB2 is configured as input.
func (p *PIA) CB2Output() bool {
	if p.ctrlB&0x20 == 0 {
		return false
	}
	if p.ctrlB&0x10 != 0 {
		return p.ctrlB&0x08 != 0
	}
	return p.cb2
}

// TakePortBWritten reports whether port B's data register was written
// since the last call, clearing the flag (a one-shot notification used by
// board logic to detect a CPU-issued command on port B).
func (p *PIA) TakePortBWritten() bool {
	was := p.portBWritten
	p.portBWritten = false
	return was
}
