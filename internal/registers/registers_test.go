package registers

import "testing"

func TestPairedViewRoundTrip(t *testing.T) {
	var f File
	f.SetBC(0x1234)
	if f.BC() != 0x1234 {
		t.Errorf("BC() = %#04x, want 0x1234", f.BC())
	}
	if f.B != 0x12 || f.C != 0x34 {
		t.Errorf("B,C = %#02x,%#02x, want 0x12,0x34", f.B, f.C)
	}
}

func TestSetAFMasksLowNibble(t *testing.T) {
	var f File
	f.SetAF(0x00FF)
	if f.F != 0xF0 {
		t.Errorf("F = %#02x, want 0xf0 (low nibble masked)", f.F)
	}
	if f.AF() != 0x00F0 {
		t.Errorf("AF() = %#04x, want 0x00f0", f.AF())
	}
}

func TestSetFlagMasksLowNibble(t *testing.T) {
	var f File
	f.SetFlag(FlagZero, true)
	f.F |= 0x0F // simulate stray low-nibble bits some caller set directly
	f.SetFlag(FlagCarry, true)
	if f.F&0x0F != 0 {
		t.Errorf("F low nibble = %#02x, want 0", f.F&0x0F)
	}
	if !f.Flag(FlagZero) || !f.Flag(FlagCarry) {
		t.Errorf("expected Z and C set, F = %#02x", f.F)
	}
}

func TestSetFlags(t *testing.T) {
	var f File
	f.SetFlags(true, false, true, false)
	if !f.Flag(FlagZero) || f.Flag(FlagSubtract) || !f.Flag(FlagHalfCarry) || f.Flag(FlagCarry) {
		t.Errorf("SetFlags produced F = %#02x, want Z,H set only", f.F)
	}
}

func TestRegisterIndex(t *testing.T) {
	f := File{A: 1, B: 2, C: 3, D: 4, E: 5, H: 6, L: 7}
	cases := []struct {
		index uint8
		want  uint8
	}{
		{0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}, {5, 7}, {7, 1},
	}
	for _, c := range cases {
		p := f.RegisterIndex(c.index)
		if p == nil || *p != c.want {
			t.Errorf("RegisterIndex(%d) = %v, want pointer to %d", c.index, p, c.want)
		}
	}
	if f.RegisterIndex(6) != nil {
		t.Errorf("RegisterIndex(6) should be nil ((HL) is not a plain register)")
	}
}
