package mmu

import "fmt"

// ErrUnclaimedAddress reports a bus access to an address no region's
// Contains claims. The bus has no open-bus fallback value: an address
// with no owner is a fault, not a silently-tolerated read or write.
type ErrUnclaimedAddress struct {
	Addr  uint16
	Write bool
}

func (e *ErrUnclaimedAddress) Error() string {
	op := "read from"
	if e.Write {
		op = "write to"
	}
	return fmt.Sprintf("mmu: unclaimed address, %s %#04x", op, e.Addr)
}
