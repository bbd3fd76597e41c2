package cpu

import "goboy/internal/registers"

// add8 adds b (and optionally the carry flag) to a and sets the flags
// ADD/ADC leave behind.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add8(a, b uint8, carry bool) uint8 {
	var cin uint8
	if carry {
		cin = 1
	}
	result := a + b + cin
	c.Reg.SetFlags(
		result == 0,
		false,
		(a&0xF)+(b&0xF)+cin > 0xF,
		uint16(a)+uint16(b)+uint16(cin) > 0xFF,
	)
	return result
}

// sub8 subtracts b (and optionally the carry flag) from a.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub8(a, b uint8, carry bool) uint8 {
	var cin uint8
	if carry {
		cin = 1
	}
	result := a - b - cin
	c.Reg.SetFlags(
		result == 0,
		true,
		int(a&0xF)-int(b&0xF)-int(cin) < 0,
		int(a)-int(b)-int(cin) < 0,
	)
	return result
}

func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.Reg.SetFlags(result == 0, false, true, false)
	return result
}

func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.Reg.SetFlags(result == 0, false, false, false)
	return result
}

func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.Reg.SetFlags(result == 0, false, false, false)
	return result
}

// cp8 compares a against b without storing the result (CP n).
func (c *CPU) cp8(a, b uint8) {
	c.sub8(a, b, false)
}

// inc8 increments value by one. The carry flag is left untouched, per the
// instruction's flag table.
func (c *CPU) inc8(value uint8) uint8 {
	result := value + 1
	c.Reg.SetFlag(registers.FlagZero, result == 0)
	c.Reg.SetFlag(registers.FlagSubtract, false)
	c.Reg.SetFlag(registers.FlagHalfCarry, value&0xF == 0xF)
	return result
}

func (c *CPU) dec8(value uint8) uint8 {
	result := value - 1
	c.Reg.SetFlag(registers.FlagZero, result == 0)
	c.Reg.SetFlag(registers.FlagSubtract, true)
	c.Reg.SetFlag(registers.FlagHalfCarry, value&0xF == 0)
	return result
}

// addHL16 adds value to HL. Z is left untouched; the others reflect the
// 16-bit addition.
func (c *CPU) addHL16(value uint16) {
	hl := c.Reg.HL()
	result := hl + value
	c.Reg.SetFlag(registers.FlagSubtract, false)
	c.Reg.SetFlag(registers.FlagHalfCarry, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.Reg.SetFlag(registers.FlagCarry, uint32(hl)+uint32(value) > 0xFFFF)
	c.Reg.SetHL(result)
}

// addSPSigned implements the shared arithmetic of ADD SP,e and
// LD HL,SP+e: the 16-bit result of adding a signed 8-bit immediate to SP,
// with H/C computed from the low-byte addition as unsigned hardware does.
func (c *CPU) addSPSigned(offset int8) uint16 {
	sp := c.Reg.SP
	e := uint16(uint8(offset))
	result := sp + e
	c.Reg.SetFlags(
		false,
		false,
		(sp&0xF)+(e&0xF) > 0xF,
		(sp&0xFF)+(e&0xFF) > 0xFF,
	)
	return result
}

// daa implements decimal-adjust after an 8-bit BCD addition or
// subtraction, following the standard correction table.
func (c *CPU) daa() {
	a := c.Reg.A
	var adjust uint8
	carry := c.Reg.Flag(registers.FlagCarry)

	if c.Reg.Flag(registers.FlagSubtract) {
		if c.Reg.Flag(registers.FlagHalfCarry) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if c.Reg.Flag(registers.FlagHalfCarry) || a&0xF > 0x9 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}

	c.Reg.A = a
	c.Reg.SetFlag(registers.FlagZero, a == 0)
	c.Reg.SetFlag(registers.FlagHalfCarry, false)
	c.Reg.SetFlag(registers.FlagCarry, carry)
}

func (c *CPU) cpl() {
	c.Reg.A = ^c.Reg.A
	c.Reg.SetFlag(registers.FlagSubtract, true)
	c.Reg.SetFlag(registers.FlagHalfCarry, true)
}

func (c *CPU) scf() {
	c.Reg.SetFlag(registers.FlagSubtract, false)
	c.Reg.SetFlag(registers.FlagHalfCarry, false)
	c.Reg.SetFlag(registers.FlagCarry, true)
}

func (c *CPU) ccf() {
	c.Reg.SetFlag(registers.FlagSubtract, false)
	c.Reg.SetFlag(registers.FlagHalfCarry, false)
	c.Reg.SetFlag(registers.FlagCarry, !c.Reg.Flag(registers.FlagCarry))
}
