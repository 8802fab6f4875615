package booking

import "fmt"

const (
	slotOpenHour  = 9
	slotCloseHour = 18 // exclusive, last slot starts 17:30
)

// Slots returns the fixed half-hour grid a doctor can be booked on,
// "09:00" through "17:30" ascending. Pure and deterministic.
func Slots() []string {
	out := make([]string, 0, (slotCloseHour-slotOpenHour)*2)
	for h := slotOpenHour; h < slotCloseHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
		out = append(out, fmt.Sprintf("%02d:30", h))
	}
	return out
}

// IsValidSlot reports whether s is one of the grid labels.
func IsValidSlot(s string) bool {
	for _, slot := range Slots() {
		if slot == s {
			return true
		}
	}
	return false
}
