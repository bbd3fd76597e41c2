package gameboy

import (
	"goboy/internal/debug"
	"goboy/internal/telemetry"
	"goboy/pkg/log"
	"goboy/pkg/screen"
)

// config collects the construction-time choices an Option mutates.
type config struct {
	logger    log.Logger
	debugger  debug.Debugger
	telemetry *telemetry.Hub
	screen    screen.Screen
	bootROM   []byte
}

// Option configures a GameBoy at construction time, following the usual
// functional-options shape for optional collaborators (logger, debugger,
// telemetry sink) a caller may or may not want wired in. Model selection
// is deliberately absent: DMG is the only model New ever produces.
type Option func(*config)

// WithLogger overrides the default no-op logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDebugger attaches a debug.Debugger; ShouldBreak is polled before
// every instruction and OnFault is called if the frame panics.
func WithDebugger(d debug.Debugger) Option {
	return func(c *config) { c.debugger = d }
}

// WithTelemetry attaches a telemetry.Hub that receives completed frames
// and posted interrupts.
func WithTelemetry(h *telemetry.Hub) Option {
	return func(c *config) { c.telemetry = h }
}

// WithScreen overrides the default NullScreen the PPU draws into.
func WithScreen(s screen.Screen) Option {
	return func(c *config) { c.screen = s }
}

// WithBootROM supplies the 256-byte DMG boot image. Without it, the
// machine starts as if the boot overlay had already completed: PC at
// 0x0100 and registers at the documented post-boot state.
func WithBootROM(image []byte) Option {
	return func(c *config) { c.bootROM = image }
}
