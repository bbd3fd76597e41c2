package gameboy

import (
	"errors"
	"testing"

	"goboy/internal/cpu"
	"goboy/internal/debug"
	"goboy/internal/interrupts"
	"goboy/internal/joypad"
	"goboy/internal/mmu"
)

func romImage(cartType uint8) []byte {
	rom := make([]byte, 32*1024)
	rom[0x147] = cartType
	// JR -2: an infinite loop at the cartridge entry point so RunFrame
	// always has something to retire without ever faulting.
	rom[0x100] = 0x18
	rom[0x101] = 0xFE
	return rom
}

func TestNewRejectsUnsupportedCartridge(t *testing.T) {
	_, err := New(romImage(0x01))
	if err == nil {
		t.Fatal("New with MBC1 type = nil error, want unsupported-cartridge fault")
	}
	var fault *FaultError
	if !errors.As(err, &fault) {
		t.Fatalf("New error = %v, want *FaultError", err)
	}
	if fault.Kind != FaultUnsupportedCartridge {
		t.Fatalf("fault.Kind = %v, want FaultUnsupportedCartridge", fault.Kind)
	}
}

func TestNewWithoutBootROMStartsAtPostBootState(t *testing.T) {
	gb, err := New(romImage(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gb.PC() != 0x0100 {
		t.Fatalf("PC() = %#04x, want 0x0100", gb.PC())
	}
}

func TestNewWithBootROMStartsAtZero(t *testing.T) {
	bootImage := make([]byte, 0x100)
	gb, err := New(romImage(0x00), WithBootROM(bootImage))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gb.PC() != 0x0000 {
		t.Fatalf("PC() = %#04x, want 0x0000", gb.PC())
	}
}

func TestRunFrameRetiresExactlyOneFrameBudget(t *testing.T) {
	gb, err := New(romImage(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gb.RunFrame(); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	if gb.cyclesThisFrame < FrameCycles {
		t.Fatalf("cyclesThisFrame = %d, want >= %d", gb.cyclesThisFrame, FrameCycles)
	}
	// An infinite two-byte loop never advances PC past its own address.
	if gb.PC() != 0x0100 {
		t.Fatalf("PC() after RunFrame = %#04x, want 0x0100 (still looping)", gb.PC())
	}
}

func TestCyclesLastFrameMatchesRunFrameBudget(t *testing.T) {
	gb, err := New(romImage(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gb.RunFrame(); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	if gb.CyclesLastFrame() != gb.cyclesThisFrame {
		t.Fatalf("CyclesLastFrame() = %d, want %d", gb.CyclesLastFrame(), gb.cyclesThisFrame)
	}
}

func TestPPUModeCycleTotalsAccumulateAcrossFrames(t *testing.T) {
	gb, err := New(romImage(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// The post-boot register state leaves the LCD off, and a disabled PPU
	// does not advance; turn it on so the frame's cycles reach it.
	gb.bus.Write(0xFF40, 0x80)

	if err := gb.RunFrame(); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	totals := gb.PPUModeCycleTotals()
	var sum int
	for _, c := range totals {
		sum += c
	}
	if sum < FrameCycles {
		t.Fatalf("PPUModeCycleTotals sum = %d, want >= %d", sum, FrameCycles)
	}
}

func TestRunFrameIsRepeatable(t *testing.T) {
	gb, err := New(romImage(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := gb.RunFrame(); err != nil {
			t.Fatalf("RunFrame #%d: %v", i, err)
		}
		if gb.cyclesThisFrame < FrameCycles {
			t.Fatalf("frame #%d cyclesThisFrame = %d, want >= %d", i, gb.cyclesThisFrame, FrameCycles)
		}
	}
}

func TestPressSurfacesAsJoypadInterruptWithinAFrame(t *testing.T) {
	gb, err := New(romImage(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	gb.bus.Write(0xFF00, 0x10) // select buttons, so A's bit is reported
	gb.irq.Enable = 1 << interrupts.Joypad
	gb.Press(joypad.A)
	if err := gb.RunFrame(); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	source, pending := gb.irq.Highest()
	if !pending || source != interrupts.Joypad {
		t.Fatalf("Highest() after press+RunFrame = (%v, %v), want (Joypad, true)", source, pending)
	}
}

// illegalOpcodeROM places an undefined opcode at the cartridge entry
// point; 0xD3 is never assigned on the LR35902.
func illegalOpcodeROM() []byte {
	rom := make([]byte, 32*1024)
	rom[0x100] = 0xD3
	return rom
}

// unclaimedWriteROM writes A to 0xA0A0, inside the cartridge RAM window a
// ROM-only cartridge never backs, then loops forever so a frame's worth
// of cycle budget never runs dry before the fault fires.
func unclaimedWriteROM() []byte {
	rom := make([]byte, 32*1024)
	rom[0x100] = 0xEA // LD (nn),A
	rom[0x101] = 0xA0
	rom[0x102] = 0xA0
	rom[0x103] = 0x18 // JR -2
	rom[0x104] = 0xFE
	return rom
}

func TestRunFrameReportsIllegalOpcodeFault(t *testing.T) {
	gb, err := New(illegalOpcodeROM(), WithDebugger(debug.NewBreakpointSet()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = gb.RunFrame()
	if err == nil {
		t.Fatal("RunFrame over an illegal opcode = nil error, want a fault")
	}
	var fault *FaultError
	if !errors.As(err, &fault) {
		t.Fatalf("RunFrame error = %v, want *FaultError", err)
	}
	if fault.Kind != FaultIllegalOpcode {
		t.Fatalf("fault.Kind = %v, want FaultIllegalOpcode", fault.Kind)
	}
	var illegalOpcode *cpu.ErrIllegalOpcode
	if !errors.As(fault.Cause, &illegalOpcode) {
		t.Fatalf("fault.Cause = %v, want *cpu.ErrIllegalOpcode", fault.Cause)
	}
	if illegalOpcode.Opcode != 0xD3 {
		t.Fatalf("illegalOpcode.Opcode = %#02x, want 0xD3", illegalOpcode.Opcode)
	}
}

func TestRunFrameReportsUnclaimedAddressFault(t *testing.T) {
	gb, err := New(unclaimedWriteROM(), WithDebugger(debug.NewBreakpointSet()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = gb.RunFrame()
	if err == nil {
		t.Fatal("RunFrame over an unclaimed-address write = nil error, want a fault")
	}
	var fault *FaultError
	if !errors.As(err, &fault) {
		t.Fatalf("RunFrame error = %v, want *FaultError", err)
	}
	if fault.Kind != FaultUnclaimedAddress {
		t.Fatalf("fault.Kind = %v, want FaultUnclaimedAddress", fault.Kind)
	}
	var unclaimed *mmu.ErrUnclaimedAddress
	if !errors.As(fault.Cause, &unclaimed) {
		t.Fatalf("fault.Cause = %v, want *mmu.ErrUnclaimedAddress", fault.Cause)
	}
	if unclaimed.Addr != 0xA0A0 || !unclaimed.Write {
		t.Fatalf("unclaimed = %+v, want Addr=0xA0A0 Write=true", unclaimed)
	}
}
