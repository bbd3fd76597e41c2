// Package gameboy provides the top-level machine container: a single
// owning struct holding every component as a plain field, with RunFrame as
// the sole entry point a host rendering loop calls once per frame.
package gameboy

import (
	"goboy/internal/boot"
	"goboy/internal/cartridge"
	"goboy/internal/cpu"
	"goboy/internal/debug"
	"goboy/internal/interrupts"
	"goboy/internal/joypad"
	"goboy/internal/mmu"
	"goboy/internal/ppu"
	"goboy/internal/serial"
	"goboy/internal/telemetry"
	"goboy/internal/timer"
	"goboy/pkg/log"
	"goboy/pkg/screen"
)

// FrameCycles is one full frame's clock-cycle budget: 144 visible
// scanlines plus 10 V-blank lines, 456 cycles each.
const FrameCycles = 70224

// GameBoy owns every piece of emulated state and drives the frame loop.
type GameBoy struct {
	cpu       *cpu.CPU
	bus       *mmu.Bus
	ppu       *ppu.PPU
	irq       *interrupts.Controller
	joypad    *joypad.State
	cart      *cartridge.Cartridge
	debugger  debug.Debugger
	telemetry *telemetry.Hub
	screen    screen.Screen
	log       log.Logger

	cyclesThisFrame int
}

// New constructs a machine around rom, applying opts. rom must be a valid
// ROM-only cartridge image; any other cartridge type is refused.
func New(rom []byte, opts ...Option) (*GameBoy, error) {
	cfg := config{logger: log.NewNull(), debugger: debug.NoopDebugger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, &FaultError{Kind: FaultUnsupportedCartridge, Cause: err}
	}

	var bootImage *boot.ROM
	if cfg.bootROM != nil {
		bootImage, err = boot.Load(cfg.bootROM)
		if err != nil {
			return nil, err
		}
	}

	irq := interrupts.New()
	scr := cfg.screen
	if scr == nil {
		scr = ppu.NullScreen{}
	}
	p := ppu.New(irq, scr)
	pad := joypad.New()
	tmr := timer.New(irq)
	ser := serial.New()

	bus := mmu.New(bootImage, cart, p, pad, irq, tmr, ser, cfg.logger)
	c := cpu.New(bus, irq)

	if bootImage == nil {
		setPostBootState(c)
	}

	gb := &GameBoy{
		cpu:       c,
		bus:       bus,
		ppu:       p,
		irq:       irq,
		joypad:    pad,
		cart:      cart,
		debugger:  cfg.debugger,
		telemetry: cfg.telemetry,
		screen:    scr,
		log:       cfg.logger,
	}
	gb.log.Infof("gameboy: loaded %q (fingerprint %016x)", cart.Header().Title, cart.Fingerprint())
	if bootImage != nil {
		gb.log.Infof("gameboy: boot rom attached (fingerprint %016x)", bootImage.Fingerprint())
	}
	return gb, nil
}

// setPostBootState places the registers exactly where the DMG boot ROM
// leaves them, for callers that skip supplying a boot image.
func setPostBootState(c *cpu.CPU) {
	c.Reg.PC = 0x0100
	c.Reg.SP = 0xFFFE
	c.Reg.SetAF(0x01B0)
	c.Reg.SetBC(0x0013)
	c.Reg.SetDE(0x00D8)
	c.Reg.SetHL(0x014D)
}

// Press and Release forward a host input event to the joypad port.
func (g *GameBoy) Press(key joypad.Key)   { g.joypad.Press(key) }
func (g *GameBoy) Release(key joypad.Key) { g.joypad.Release(key) }

// PC exposes the current program counter, mostly for tests and the
// debugger collaborator.
func (g *GameBoy) PC() uint16 { return g.cpu.Reg.PC }

// CyclesLastFrame reports how many clock cycles the most recently
// completed RunFrame call actually spent, for a caller accumulating
// per-frame timing diagnostics.
func (g *GameBoy) CyclesLastFrame() int { return g.cyclesThisFrame }

// PPUModeCycleTotals reports the PPU's cumulative per-mode cycle counts
// since the machine was created, for an offline mode-occupancy
// diagnostic.
func (g *GameBoy) PPUModeCycleTotals() [4]int { return g.ppu.ModeCycleTotals() }

// RunFrame retires instructions until the frame's cycle budget is reached,
// recovering exactly once at the boundary: a recovered fault is handed to
// the attached debugger (if any) and re-panicked if none is attached,
// since the core has no other way to express "the frame cannot complete."
func (g *GameBoy) RunFrame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause := asError(r)
			fault := &FaultError{Kind: classifyFault(cause), Cause: cause}
			g.log.Errorf("%v", fault)
			g.debugger.OnFault(fault, g.snapshot())
			if _, ok := g.debugger.(debug.NoopDebugger); ok {
				panic(r)
			}
			err = fault
		}
	}()

	g.cyclesThisFrame = 0
	for g.cyclesThisFrame < FrameCycles {
		if g.debugger.ShouldBreak(g.cpu.Reg.PC) {
			break
		}
		g.cyclesThisFrame += int(g.cpu.Step())
	}

	g.publishTelemetry()
	return nil
}

func (g *GameBoy) snapshot() debug.Snapshot {
	r := &g.cpu.Reg
	return debug.Snapshot{
		PC: r.PC, SP: r.SP,
		A: r.A, F: r.F,
		B: r.B, C: r.C, D: r.D, E: r.E,
		H: r.H, L: r.L,
		IME: g.irq.IME,
	}
}

// frameSource is satisfied by screen.RGBAScreen; publishTelemetry uses it
// to hand the hub a frame's raw pixels without the gameboy package
// depending on image.RGBA directly.
type frameSource interface {
	Pix() []byte
}

func (g *GameBoy) publishTelemetry() {
	if g.telemetry == nil {
		return
	}
	if src, ok := g.screen.(frameSource); ok {
		g.telemetry.PublishFrame(src.Pix())
	}
	if pending := g.irq.Pending & g.irq.Enable & 0x1F; pending != 0 {
		g.telemetry.PublishInterrupt(pending)
	}
}
