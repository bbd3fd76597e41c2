// Package joypad emulates the single port at 0xFF00: an active-low,
// selector-gated nibble over two key groups (directions, buttons).
package joypad

// Key identifies a physical button, matching the external Input contract.
type Key uint8

const (
	A Key = iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
)

// buttonBit and directionBit give each key's position within the lower
// nibble reported when its selector group is active.
var buttonBit = map[Key]uint8{
	A:      0,
	B:      1,
	Select: 2,
	Start:  3,
}

var directionBit = map[Key]uint8{
	Right: 0,
	Left:  1,
	Up:    2,
	Down:  3,
}

const (
	selectDirections uint8 = 1 << 4
	selectButtons    uint8 = 1 << 5
)

// State is the joypad's register and debounced key state.
type State struct {
	selector  uint8 // bits 4-5 of 0xFF00, written by the ROM
	buttons   uint8 // bit set = pressed, one bit per buttonBit
	direction uint8 // bit set = pressed, one bit per directionBit

	// pendingInterrupt is drained by the bus's step and turned into a
	// posted pad interrupt.
	pendingInterrupt bool
}

// New returns a joypad with nothing selected and nothing pressed.
func New() *State {
	return &State{selector: selectDirections | selectButtons}
}

func (s *State) Contains(addr uint16) bool { return addr == 0xFF00 }

// Read reconstructs the port's reported nibble: active-low, gated by
// whichever selector bit(s) are clear.
func (s *State) Read(addr uint16) uint8 {
	reportedLow := uint8(0x0F)
	if s.selector&selectDirections == 0 {
		reportedLow &^= s.direction
	}
	if s.selector&selectButtons == 0 {
		reportedLow &^= s.buttons
	}
	return s.selector | 0xC0 | reportedLow
}

// Write updates the selector bits; the lower nibble is read-only from the
// bus's perspective (it reflects key state, not ROM-written data).
func (s *State) Write(addr uint16, value uint8) {
	s.selector = (s.selector & 0xCF) | (value & 0x30)
}

// Press marks key as held. A 1->0 transition in the nibble the ROM is
// currently watching posts a pad interrupt.
func (s *State) Press(key Key) {
	before := s.Read(0xFF00) & 0x0F
	if bit, ok := buttonBit[key]; ok {
		s.buttons |= 1 << bit
	}
	if bit, ok := directionBit[key]; ok {
		s.direction |= 1 << bit
	}
	after := s.Read(0xFF00) & 0x0F
	if before&^after != 0 {
		s.pendingInterrupt = true
	}
}

// Release marks key as no longer held.
func (s *State) Release(key Key) {
	if bit, ok := buttonBit[key]; ok {
		s.buttons &^= 1 << bit
	}
	if bit, ok := directionBit[key]; ok {
		s.direction &^= 1 << bit
	}
}

// TakeInterrupt reports and clears whether a press posted a pad interrupt
// since the last call.
func (s *State) TakeInterrupt() bool {
	fired := s.pendingInterrupt
	s.pendingInterrupt = false
	return fired
}
