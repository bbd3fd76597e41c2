package cartridge

import "fmt"

// Type is the cartridge-type byte at 0x0147. Only ROM-only is supported;
// every other value is surfaced for diagnostics but refused at load time.
type Type uint8

const (
	ROM Type = 0x00
)

func (t Type) String() string {
	if t == ROM {
		return "ROM ONLY"
	}
	return fmt.Sprintf("UNKNOWN (%#02x)", uint8(t))
}

// Header is the parsed fixed header at 0x0100-0x014F.
type Header struct {
	EntryPoint [4]byte
	Logo       [48]byte
	Title      string
	Type       Type
	RawType    uint8
}

// parseHeader parses the 0x0100-0x014F header region of a ROM image.
// header must be exactly 0x50 bytes, the slice rom[0x100:0x150].
func parseHeader(header []byte) (Header, error) {
	if len(header) != 0x50 {
		return Header{}, fmt.Errorf("cartridge: invalid header length: %d", len(header))
	}

	h := Header{RawType: header[0x47]}
	copy(h.EntryPoint[:], header[0x00:0x04])
	copy(h.Logo[:], header[0x04:0x34])
	h.Type = Type(h.RawType)

	// title is ASCII padded with NULs at 0x34-0x43 (15 bytes). Malformed
	// (non-ASCII) titles are non-fatal: truncate to empty instead.
	title := header[0x34:0x43]
	end := len(title)
	for i, b := range title {
		if b == 0x00 {
			end = i
			break
		}
	}
	if !isASCIIPrintable(title[:end]) {
		h.Title = ""
	} else {
		h.Title = string(title[:end])
	}

	return h, nil
}

func isASCIIPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}
