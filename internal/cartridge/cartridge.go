// Package cartridge decodes the fixed header and serves bytes from a
// read-only ROM-only cartridge image. Memory-bank controllers are out of
// scope; any cartridge-type byte other than 0x00 is refused at load time
// rather than silently mis-emulated.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// ErrUnsupportedType is returned by New when the header declares a
// cartridge type this emulator cannot run.
type ErrUnsupportedType struct {
	Type Type
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("cartridge: unsupported cartridge type %s", e.Type)
}

// Cartridge is a ROM-only cartridge: reads return the underlying image
// byte, writes are discarded.
type Cartridge struct {
	header      Header
	rom         []byte
	fingerprint uint64
}

// New parses rom's header and returns a Cartridge. rom must be at least
// 32 KiB and declare cartridge type 0x00 ("ROM only"); anything else is
// refused.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < 32*1024 {
		return nil, fmt.Errorf("cartridge: image too small: %d bytes (want >= 32768)", len(rom))
	}
	h, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}
	if h.Type != ROM {
		return nil, &ErrUnsupportedType{Type: h.Type}
	}

	return &Cartridge{
		header:      h,
		rom:         rom,
		fingerprint: xxhash.Sum64(rom),
	}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header { return c.header }

// Fingerprint returns a content hash of the ROM image, used for logging
// and as a stable self-test key - not for save-file naming, since
// battery-backed saves are out of scope.
func (c *Cartridge) Fingerprint() uint64 { return c.fingerprint }

// Contains reports whether addr falls within the ROM or cartridge RAM
// windows this cartridge owns. ROM-only cartridges have no cartridge RAM,
// so only [0x0000, 0x7FFF] is claimed.
func (c *Cartridge) Contains(addr uint16) bool {
	return addr <= 0x7FFF
}

// Read returns the ROM byte at addr. Reads past the end of a short image
// return 0xFF, matching open-bus behaviour rather than panicking.
func (c *Cartridge) Read(addr uint16) uint8 {
	if int(addr) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[addr]
}

// Write is a no-op: ROM-only cartridges are read-only.
func (c *Cartridge) Write(addr uint16, value uint8) {}
