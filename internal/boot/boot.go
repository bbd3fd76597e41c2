// Package boot provides the boot ROM overlay: a 256-byte image mapped over
// [0x0000, 0x00FF] until a write of 0x01 to 0xFF50 disables it
// permanently. Loading the image bytes themselves is the host's job; this
// package only holds and serves them.
package boot

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// ROM is the 256-byte DMG boot image.
type ROM struct {
	raw         []byte
	fingerprint uint64
}

// Load validates and wraps a boot ROM image. The DMG/MGB/SGB boot ROM is
// exactly 256 bytes; anything else is a fault, not a silently-accepted
// short read.
func Load(b []byte) (*ROM, error) {
	if len(b) != 0x100 {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d (want 256)", len(b))
	}
	raw := make([]byte, len(b))
	copy(raw, b)
	return &ROM{raw: raw, fingerprint: xxhash.Sum64(raw)}, nil
}

// Read returns the byte at the given offset within the boot ROM.
func (r *ROM) Read(addr uint16) uint8 {
	return r.raw[addr]
}

// Fingerprint returns a content hash of the boot ROM, used only for
// logging which image was attached.
func (r *ROM) Fingerprint() uint64 {
	return r.fingerprint
}
