package bits

import "testing"

func TestVal(t *testing.T) {
	if got := Val(0b1000_0000, 7); got != 1 {
		t.Errorf("Val(0x80, 7) = %d, want 1", got)
	}
	if got := Val(0b1000_0000, 6); got != 0 {
		t.Errorf("Val(0x80, 6) = %d, want 0", got)
	}
}

func TestSet(t *testing.T) {
	if got := Set(0, 3); got != 0b0000_1000 {
		t.Errorf("Set(0, 3) = %#08b, want %#08b", got, 0b0000_1000)
	}
	if got := Set(0xFF, 3); got != 0xFF {
		t.Errorf("Set(0xFF, 3) = %#08b, want unchanged 0xFF", got)
	}
}

func TestReset(t *testing.T) {
	if got := Reset(0xFF, 3); got != 0b1111_0111 {
		t.Errorf("Reset(0xFF, 3) = %#08b, want %#08b", got, 0b1111_0111)
	}
	if got := Reset(0, 3); got != 0 {
		t.Errorf("Reset(0, 3) = %#08b, want unchanged 0", got)
	}
}

func TestTest(t *testing.T) {
	if !Test(0b0000_0010, 1) {
		t.Error("Test(0x02, 1) = false, want true")
	}
	if Test(0b0000_0010, 0) {
		t.Error("Test(0x02, 0) = true, want false")
	}
}
