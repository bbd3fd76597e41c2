package ppu

import (
	"testing"

	"goboy/internal/interrupts"
)

func newTestPPU() (*PPU, *interrupts.Controller) {
	irq := interrupts.New()
	p := New(irq, NullScreen{})
	p.Write(LCDCAddr, lcdcEnable) // power on, background/window/sprites off
	return p, irq
}

func TestModeSequenceOAMToVRAMToHBlank(t *testing.T) {
	p, _ := newTestPPU()
	if p.Mode() != ModeOAM {
		t.Fatalf("initial mode = %d, want ModeOAM", p.Mode())
	}
	p.Step(oamCycles)
	if p.Mode() != ModeVRAM {
		t.Errorf("mode after oamCycles = %d, want ModeVRAM", p.Mode())
	}
	p.Step(vramCycles)
	if p.Mode() != ModeHBlank {
		t.Errorf("mode after vramCycles = %d, want ModeHBlank", p.Mode())
	}
}

func TestVBlankFiresExactlyOnceAtLine143To144(t *testing.T) {
	p, irq := newTestPPU()

	fired := 0
	for line := 0; line < 144; line++ {
		p.Step(oamCycles)
		p.Step(vramCycles)
		before := irq.Pending & (1 << interrupts.VBlank)
		p.Step(hblankCycles)
		after := irq.Pending & (1 << interrupts.VBlank)
		if before == 0 && after != 0 {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("VBlank fired %d times across lines 0-143, want exactly 1 (at 143->144)", fired)
	}
	if p.LY() != ScreenHeight {
		t.Errorf("LY = %d, want %d", p.LY(), ScreenHeight)
	}
	if p.Mode() != ModeVBlank {
		t.Errorf("mode = %d, want ModeVBlank", p.Mode())
	}
}

func TestLYWrapsFrom153To0(t *testing.T) {
	p, _ := newTestPPU()
	// drive through all 144 visible lines plus 10 v-blank lines.
	for line := 0; line < 144; line++ {
		p.Step(oamCycles)
		p.Step(vramCycles)
		p.Step(hblankCycles)
	}
	for line := 0; line < 10; line++ {
		// Step takes a uint8, so each 456-cycle line is fed in two halves.
		p.Step(lineCycles / 2)
		p.Step(lineCycles / 2)
	}
	if p.LY() != 0 {
		t.Errorf("LY = %d, want 0 after wrapping past 153", p.LY())
	}
	if p.Mode() != ModeOAM {
		t.Errorf("mode = %d, want ModeOAM at the start of the next frame", p.Mode())
	}
}

func TestLYCCoincidenceFiresLCDStat(t *testing.T) {
	p, irq := newTestPPU()
	p.Write(LYCAddr, 1)
	p.Write(STATAddr, statLYCInterrupt)

	p.Step(oamCycles)
	p.Step(vramCycles)
	p.Step(hblankCycles) // LY becomes 1, should equal LYC

	if irq.Pending&(1<<interrupts.LCDStat) == 0 {
		t.Error("expected LCDStat interrupt pending after LY==LYC with the LYC interrupt enabled")
	}
	if p.Read(STATAddr)&statCoincidence == 0 {
		t.Error("expected STAT coincidence bit set")
	}
}

func TestDisablingLCDResetsLYAndMode(t *testing.T) {
	p, _ := newTestPPU()
	p.Step(oamCycles)
	p.Step(vramCycles) // now in HBlank
	p.Write(LCDCAddr, 0)
	if p.LY() != 0 {
		t.Errorf("LY = %d, want 0 after disabling LCD", p.LY())
	}
	if p.Mode() != ModeHBlank {
		t.Errorf("mode = %d, want ModeHBlank immediately after disabling", p.Mode())
	}
}

func TestDisabledPPUDoesNotAdvance(t *testing.T) {
	irq := interrupts.New()
	p := New(irq, NullScreen{})
	// LCDC starts at 0: disabled.
	for i := 0; i < 100; i++ {
		p.Step(100)
	}
	if p.LY() != 0 {
		t.Errorf("LY = %d, want 0 while disabled", p.LY())
	}
}

func TestVRAMAndOAMReadWrite(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(0x8000, 0xAB)
	if got := p.Read(0x8000); got != 0xAB {
		t.Errorf("VRAM Read(0x8000) = %#02x, want 0xab", got)
	}
	p.Write(0xFE10, 0xCD)
	if got := p.Read(0xFE10); got != 0xCD {
		t.Errorf("OAM Read(0xfe10) = %#02x, want 0xcd", got)
	}
}

func TestStatReadForcesBit7High(t *testing.T) {
	p, _ := newTestPPU()
	if p.Read(STATAddr)&0x80 == 0 {
		t.Error("expected STAT bit 7 to always read high")
	}
}
