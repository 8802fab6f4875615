package booking

import "testing"

func TestSlots_Grid(t *testing.T) {
	slots := Slots()

	if len(slots) != 18 {
		t.Fatalf("len(Slots()) = %d, want 18", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("first slot = %q, want 09:00", slots[0])
	}
	if slots[len(slots)-1] != "17:30" {
		t.Errorf("last slot = %q, want 17:30", slots[len(slots)-1])
	}

	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Errorf("slots not strictly ascending at %d: %q >= %q", i, slots[i-1], slots[i])
		}
	}
}

func TestSlots_Deterministic(t *testing.T) {
	a := Slots()
	b := Slots()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Slots() not deterministic at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range Slots() {
		if !IsValidSlot(s) {
			t.Errorf("IsValidSlot(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "08:30", "18:00", "09:15", "9:00"} {
		if IsValidSlot(s) {
			t.Errorf("IsValidSlot(%q) = true, want false", s)
		}
	}
}
