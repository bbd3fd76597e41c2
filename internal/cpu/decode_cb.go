package cpu

// executeCB decodes and runs one CB-prefixed opcode. All 256 are regular
// across their 3-bit register-index field: bits 6-7 select the group
// (0=rotate/shift, 1=BIT, 2=RES, 3=SET), bits 3-5 select the rotate/shift
// operation or the bit index, and bits 0-2 select the register (6 is
// (HL)).
func (c *CPU) executeCB(opcode uint8) uint8 {
	group := opcode >> 6
	r := opcode & 7
	value := c.readR(r)

	// Cycle costs already include the CB prefix byte's own fetch, per the
	// standard LR35902 timing table.
	baseCycles := uint8(8)
	if r == 6 {
		baseCycles = 16
	}

	switch group {
	case 0: // rotate/shift
		op := (opcode >> 3) & 7
		c.writeR(r, c.shiftOp(op, value))
		return baseCycles
	case 1: // BIT n,r - never writes back, and costs 4 less for (HL)
		n := (opcode >> 3) & 7
		c.bit(n, value)
		if r == 6 {
			return 12
		}
		return 8
	case 2: // RES n,r
		n := (opcode >> 3) & 7
		c.writeR(r, resBit(n, value))
		return baseCycles
	default: // SET n,r
		n := (opcode >> 3) & 7
		c.writeR(r, setBit(n, value))
		return baseCycles
	}
}

// shiftOp dispatches the rotate/shift group's 3-bit operation field:
// 0=RLC 1=RRC 2=RL 3=RR 4=SLA 5=SRA 6=SWAP 7=SRL.
func (c *CPU) shiftOp(op uint8, value uint8) uint8 {
	switch op {
	case 0:
		return c.rlc(value)
	case 1:
		return c.rrc(value)
	case 2:
		return c.rl(value)
	case 3:
		return c.rr(value)
	case 4:
		return c.sla(value)
	case 5:
		return c.sra(value)
	case 6:
		return c.swap(value)
	default:
		return c.srl(value)
	}
}
