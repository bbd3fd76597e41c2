package cpu

import (
	"goboy/internal/registers"
)

// regPair16 resolves the 2-bit "dd" register-pair index used by the
// LD rr,nn / INC rr / DEC rr / ADD HL,rr instruction families:
// 00=BC, 01=DE, 10=HL, 11=SP.
func (c *CPU) regPair16(index uint8) uint16 {
	switch index {
	case 0:
		return c.Reg.BC()
	case 1:
		return c.Reg.DE()
	case 2:
		return c.Reg.HL()
	default:
		return c.Reg.SP
	}
}

func (c *CPU) setRegPair16(index uint8, value uint16) {
	switch index {
	case 0:
		c.Reg.SetBC(value)
	case 1:
		c.Reg.SetDE(value)
	case 2:
		c.Reg.SetHL(value)
	default:
		c.Reg.SP = value
	}
}

// pushPopPair resolves the 2-bit "qq" index used by PUSH/POP: 00=BC,
// 01=DE, 10=HL, 11=AF.
func (c *CPU) pushPopPair(index uint8) uint16 {
	switch index {
	case 0:
		return c.Reg.BC()
	case 1:
		return c.Reg.DE()
	case 2:
		return c.Reg.HL()
	default:
		return c.Reg.AF()
	}
}

func (c *CPU) setPushPopPair(index uint8, value uint16) {
	switch index {
	case 0:
		c.Reg.SetBC(value)
	case 1:
		c.Reg.SetDE(value)
	case 2:
		c.Reg.SetHL(value)
	default:
		c.Reg.SetAF(value)
	}
}

// execute decodes and runs one primary opcode, returning its cycle cost in
// clock cycles. The 0x40-0x7F (LD r,r') and 0x80-0xBF (ALU A,r) blocks are
// decoded by bit position rather than enumerated case-by-case, since both
// are perfectly regular across their 3-bit register-index fields; every
// other opcode is handled explicitly.
func (c *CPU) execute(opcode uint8) uint8 {
	switch {
	case opcode >= 0x40 && opcode <= 0x7F && opcode != 0x76:
		dst := (opcode >> 3) & 7
		src := opcode & 7
		c.writeR(dst, c.readR(src))
		if dst == 6 || src == 6 {
			return 8
		}
		return 4

	case opcode >= 0x80 && opcode <= 0xBF:
		op := (opcode >> 3) & 7
		value := c.readR(opcode & 7)
		c.aluOp(op, value)
		if opcode&7 == 6 {
			return 8
		}
		return 4
	}

	switch opcode {
	case 0x00: // NOP
		return 4
	case 0x01, 0x11, 0x21, 0x31: // LD rr,nn
		c.setRegPair16((opcode>>4)&3, c.fetch16())
		return 12
	case 0x02: // LD (BC),A
		c.bus.Write(c.Reg.BC(), c.Reg.A)
		return 8
	case 0x12: // LD (DE),A
		c.bus.Write(c.Reg.DE(), c.Reg.A)
		return 8
	case 0x22: // LD (HL+),A
		c.bus.Write(c.Reg.HL(), c.Reg.A)
		c.Reg.SetHL(c.Reg.HL() + 1)
		return 8
	case 0x32: // LD (HL-),A
		c.bus.Write(c.Reg.HL(), c.Reg.A)
		c.Reg.SetHL(c.Reg.HL() - 1)
		return 8
	case 0x03, 0x13, 0x23, 0x33: // INC rr
		idx := (opcode >> 4) & 3
		c.setRegPair16(idx, c.regPair16(idx)+1)
		return 8
	case 0x0B, 0x1B, 0x2B, 0x3B: // DEC rr
		idx := (opcode >> 4) & 3
		c.setRegPair16(idx, c.regPair16(idx)-1)
		return 8
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C: // INC r
		r := (opcode >> 3) & 7
		c.writeR(r, c.inc8(c.readR(r)))
		if r == 6 {
			return 12
		}
		return 4
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D: // DEC r
		r := (opcode >> 3) & 7
		c.writeR(r, c.dec8(c.readR(r)))
		if r == 6 {
			return 12
		}
		return 4
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E: // LD r,n
		r := (opcode >> 3) & 7
		c.writeR(r, c.fetch8())
		if r == 6 {
			return 12
		}
		return 8
	case 0x07: // RLCA
		c.Reg.A = c.rlc(c.Reg.A)
		c.Reg.SetFlag(registers.FlagZero, false)
		return 4
	case 0x0F: // RRCA
		c.Reg.A = c.rrc(c.Reg.A)
		c.Reg.SetFlag(registers.FlagZero, false)
		return 4
	case 0x17: // RLA
		c.Reg.A = c.rl(c.Reg.A)
		c.Reg.SetFlag(registers.FlagZero, false)
		return 4
	case 0x1F: // RRA
		c.Reg.A = c.rr(c.Reg.A)
		c.Reg.SetFlag(registers.FlagZero, false)
		return 4
	case 0x08: // LD (nn),SP
		addr := c.fetch16()
		c.bus.Write(addr, uint8(c.Reg.SP))
		c.bus.Write(addr+1, uint8(c.Reg.SP>>8))
		return 20
	case 0x09, 0x19, 0x29, 0x39: // ADD HL,rr
		c.addHL16(c.regPair16((opcode >> 4) & 3))
		return 8
	case 0x0A: // LD A,(BC)
		c.Reg.A = c.bus.Read(c.Reg.BC())
		return 8
	case 0x1A: // LD A,(DE)
		c.Reg.A = c.bus.Read(c.Reg.DE())
		return 8
	case 0x2A: // LD A,(HL+)
		c.Reg.A = c.bus.Read(c.Reg.HL())
		c.Reg.SetHL(c.Reg.HL() + 1)
		return 8
	case 0x3A: // LD A,(HL-)
		c.Reg.A = c.bus.Read(c.Reg.HL())
		c.Reg.SetHL(c.Reg.HL() - 1)
		return 8
	case 0x10: // STOP
		c.fetch8()
		c.stopped = true
		return 4
	case 0x18: // JR e
		offset := c.fetchSigned8()
		c.Reg.PC = uint16(int32(c.Reg.PC) + int32(offset))
		return 12
	case 0x20, 0x28, 0x30, 0x38: // JR cc,e
		offset := c.fetchSigned8()
		if c.condition((opcode >> 3) & 3) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(offset))
			return 12
		}
		return 8
	case 0x27: // DAA
		c.daa()
		return 4
	case 0x2F: // CPL
		c.cpl()
		return 4
	case 0x37: // SCF
		c.scf()
		return 4
	case 0x3F: // CCF
		c.ccf()
		return 4
	case 0x76: // HALT
		if !c.irq.IME && c.hasPendingInterrupts() {
			c.haltBug = true
		} else {
			c.halted = true
		}
		return 4
	case 0xC0, 0xC8, 0xD0, 0xD8: // RET cc
		if c.condition((opcode >> 3) & 3) {
			c.Reg.PC = c.popWord()
			return 20
		}
		return 8
	case 0xC1, 0xD1, 0xE1, 0xF1: // POP rr
		c.setPushPopPair((opcode>>4)&3, c.popWord())
		return 12
	case 0xC2, 0xCA, 0xD2, 0xDA: // JP cc,nn
		addr := c.fetch16()
		if c.condition((opcode >> 3) & 3) {
			c.Reg.PC = addr
			return 16
		}
		return 12
	case 0xC3: // JP nn
		c.Reg.PC = c.fetch16()
		return 16
	case 0xC4, 0xCC, 0xD4, 0xDC: // CALL cc,nn
		addr := c.fetch16()
		if c.condition((opcode >> 3) & 3) {
			c.pushWord(c.Reg.PC)
			c.Reg.PC = addr
			return 24
		}
		return 12
	case 0xC5, 0xD5, 0xE5, 0xF5: // PUSH rr
		c.pushWord(c.pushPopPair((opcode >> 4) & 3))
		return 16
	case 0xC6: // ADD A,n
		c.Reg.A = c.add8(c.Reg.A, c.fetch8(), false)
		return 8
	case 0xCE: // ADC A,n
		c.Reg.A = c.add8(c.Reg.A, c.fetch8(), c.Reg.Flag(registers.FlagCarry))
		return 8
	case 0xD6: // SUB n
		c.Reg.A = c.sub8(c.Reg.A, c.fetch8(), false)
		return 8
	case 0xDE: // SBC A,n
		c.Reg.A = c.sub8(c.Reg.A, c.fetch8(), c.Reg.Flag(registers.FlagCarry))
		return 8
	case 0xE6: // AND n
		c.Reg.A = c.and8(c.Reg.A, c.fetch8())
		return 8
	case 0xEE: // XOR n
		c.Reg.A = c.xor8(c.Reg.A, c.fetch8())
		return 8
	case 0xF6: // OR n
		c.Reg.A = c.or8(c.Reg.A, c.fetch8())
		return 8
	case 0xFE: // CP n
		c.cp8(c.Reg.A, c.fetch8())
		return 8
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF: // RST n
		c.pushWord(c.Reg.PC)
		c.Reg.PC = uint16(opcode &^ 0xC7)
		return 16
	case 0xC9: // RET
		c.Reg.PC = c.popWord()
		return 16
	case 0xD9: // RETI
		c.Reg.PC = c.popWord()
		c.irq.ReturnEnable()
		return 16
	case 0xE9: // JP (HL)
		c.Reg.PC = c.Reg.HL()
		return 4
	case 0xF9: // LD SP,HL
		c.Reg.SP = c.Reg.HL()
		return 8
	case 0xCD: // CALL nn
		addr := c.fetch16()
		c.pushWord(c.Reg.PC)
		c.Reg.PC = addr
		return 24
	case 0xE0: // LDH (n),A
		addr := 0xFF00 + uint16(c.fetch8())
		c.bus.Write(addr, c.Reg.A)
		return 12
	case 0xF0: // LDH A,(n)
		addr := 0xFF00 + uint16(c.fetch8())
		c.Reg.A = c.bus.Read(addr)
		return 12
	case 0xE2: // LD (C),A
		c.bus.Write(0xFF00+uint16(c.Reg.C), c.Reg.A)
		return 8
	case 0xF2: // LD A,(C)
		c.Reg.A = c.bus.Read(0xFF00 + uint16(c.Reg.C))
		return 8
	case 0xEA: // LD (nn),A
		c.bus.Write(c.fetch16(), c.Reg.A)
		return 16
	case 0xFA: // LD A,(nn)
		c.Reg.A = c.bus.Read(c.fetch16())
		return 16
	case 0xE8: // ADD SP,e
		c.Reg.SP = c.addSPSigned(c.fetchSigned8())
		return 16
	case 0xF8: // LD HL,SP+e
		c.Reg.SetHL(c.addSPSigned(c.fetchSigned8()))
		return 12
	case 0xF3: // DI
		c.irq.RequestDisable()
		return 4
	case 0xFB: // EI
		c.irq.RequestEnable()
		return 4
	case 0xCB:
		return c.executeCB(c.fetch8())
	default:
		panic(&ErrIllegalOpcode{Opcode: opcode, PC: c.Reg.PC - 1})
	}
}

// condition evaluates the 2-bit "cc" field shared by JR/JP/CALL/RET:
// 00=NZ, 01=Z, 10=NC, 11=C.
func (c *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !c.Reg.Flag(registers.FlagZero)
	case 1:
		return c.Reg.Flag(registers.FlagZero)
	case 2:
		return !c.Reg.Flag(registers.FlagCarry)
	default:
		return c.Reg.Flag(registers.FlagCarry)
	}
}

// aluOp dispatches the 3-bit operation field of the 0x80-0xBF block:
// 0=ADD 1=ADC 2=SUB 3=SBC 4=AND 5=XOR 6=OR 7=CP.
func (c *CPU) aluOp(op uint8, value uint8) {
	switch op {
	case 0:
		c.Reg.A = c.add8(c.Reg.A, value, false)
	case 1:
		c.Reg.A = c.add8(c.Reg.A, value, c.Reg.Flag(registers.FlagCarry))
	case 2:
		c.Reg.A = c.sub8(c.Reg.A, value, false)
	case 3:
		c.Reg.A = c.sub8(c.Reg.A, value, c.Reg.Flag(registers.FlagCarry))
	case 4:
		c.Reg.A = c.and8(c.Reg.A, value)
	case 5:
		c.Reg.A = c.xor8(c.Reg.A, value)
	case 6:
		c.Reg.A = c.or8(c.Reg.A, value)
	case 7:
		c.cp8(c.Reg.A, value)
	}
}
