package interrupts

import "testing"

func TestRequestSetsPendingBit(t *testing.T) {
	c := New()
	c.Request(Timer)
	if c.Pending&(1<<Timer) == 0 {
		t.Error("expected Timer's pending bit set")
	}
}

func TestHighestRespectsPriorityOrder(t *testing.T) {
	c := New()
	c.Enable = 0x1F
	c.Request(Joypad)
	c.Request(VBlank)
	c.Request(Timer)

	src, ok := c.Highest()
	if !ok || src != VBlank {
		t.Errorf("Highest() = %v,%v, want VBlank (highest priority pending)", src, ok)
	}
}

func TestHighestIgnoresDisabledSources(t *testing.T) {
	c := New()
	c.Enable = 0 // nothing enabled
	c.Request(VBlank)
	if _, ok := c.Highest(); ok {
		t.Error("expected no highest source when nothing is enabled")
	}
}

func TestServiceClearsIMEAndPendingBit(t *testing.T) {
	c := New()
	c.Enable = 0x1F
	c.IME = true
	c.Request(VBlank)

	vector := c.Service(VBlank)
	if vector != 0x0040 {
		t.Errorf("Service(VBlank) vector = %#04x, want 0x0040", vector)
	}
	if c.IME {
		t.Error("expected IME cleared after Service")
	}
	if c.Pending&(1<<VBlank) != 0 {
		t.Error("expected VBlank's pending bit cleared after Service")
	}
}

func TestDelayedEnableTakesEffectNextTick(t *testing.T) {
	c := New()
	c.RequestEnable()
	if c.IME {
		t.Error("IME should not be set immediately after RequestEnable")
	}
	c.Tick()
	if !c.IME {
		t.Error("expected IME set after one Tick following RequestEnable")
	}
}

func TestDelayedDisableTakesEffectNextTick(t *testing.T) {
	c := New()
	c.IME = true
	c.RequestDisable()
	if !c.IME {
		t.Error("IME should still be set immediately after RequestDisable")
	}
	c.Tick()
	if c.IME {
		t.Error("expected IME cleared after one Tick following RequestDisable")
	}
}

func TestReturnEnableIsImmediate(t *testing.T) {
	c := New()
	c.ReturnEnable()
	if !c.IME {
		t.Error("expected IME set immediately by ReturnEnable (RETI is not delayed)")
	}
}

func TestFlagRegisterTopBitsAlwaysHigh(t *testing.T) {
	c := New()
	c.Pending = 0x01
	if got := c.Read(FlagRegister); got != 0xE1 {
		t.Errorf("Read(IF) = %#02x, want 0xe1 (top 3 bits forced high)", got)
	}
}

func TestVectorAddressing(t *testing.T) {
	cases := []struct {
		src  Source
		want uint16
	}{
		{VBlank, 0x0040}, {LCDStat, 0x0048}, {Timer, 0x0050}, {Serial, 0x0058}, {Joypad, 0x0060},
	}
	for _, c := range cases {
		if got := c.src.Vector(); got != c.want {
			t.Errorf("%v.Vector() = %#04x, want %#04x", c.src, got, c.want)
		}
	}
}
