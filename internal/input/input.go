// Package input turns raw controller state into per-slot player input:
// rising-edge detection for buttons, assignment of controllers to the fixed
// player slots, and digital-to-analog conversion for keyboards.
package input

import "log"

// Edge detects the rising edge of a button so one press fires exactly once,
// however many ticks the button stays held.
type Edge struct {
	held bool
}

// Update records the button level for this tick and reports whether it was
// just pressed.
func (e *Edge) Update(pressed bool) bool {
	rising := pressed && !e.held
	e.held = pressed
	return rising
}

// Held reports the level recorded on the last Update.
func (e *Edge) Held() bool {
	return e.held
}

// Slots assigns controller IDs to a fixed number of player slots. A newly
// connected controller takes the lowest free slot; disconnecting frees it.
type Slots[ID comparable] struct {
	ids  []ID
	used []bool
}

// NewSlots creates an assignment table with n slots.
func NewSlots[ID comparable](n int) *Slots[ID] {
	return &Slots[ID]{
		ids:  make([]ID, n),
		used: make([]bool, n),
	}
}

// Connect assigns id to the first free slot. ok is false when every slot is
// taken. Connecting an already assigned id returns its existing slot.
func (s *Slots[ID]) Connect(id ID) (slot int, ok bool) {
	if slot, ok := s.SlotOf(id); ok {
		return slot, true
	}
	for i := range s.used {
		if !s.used[i] {
			s.ids[i] = id
			s.used[i] = true
			log.Printf("Controller %v connected to slot %d", id, i)
			return i, true
		}
	}
	log.Printf("Controller %v connected but all %d slots are taken", id, len(s.used))
	return -1, false
}

// Disconnect frees the slot held by id.
func (s *Slots[ID]) Disconnect(id ID) (slot int, ok bool) {
	slot, ok = s.SlotOf(id)
	if !ok {
		return -1, false
	}
	var zero ID
	s.ids[slot] = zero
	s.used[slot] = false
	log.Printf("Controller %v disconnected from slot %d", id, slot)
	return slot, true
}

// SlotOf returns the slot id is assigned to.
func (s *Slots[ID]) SlotOf(id ID) (int, bool) {
	for i := range s.used {
		if s.used[i] && s.ids[i] == id {
			return i, true
		}
	}
	return -1, false
}

// Controller returns the controller assigned to slot.
func (s *Slots[ID]) Controller(slot int) (ID, bool) {
	var zero ID
	if slot < 0 || slot >= len(s.used) || !s.used[slot] {
		return zero, false
	}
	return s.ids[slot], true
}

// Len returns the number of slots.
func (s *Slots[ID]) Len() int {
	return len(s.used)
}

// KeyAxes converts four direction keys into stick values. Opposite keys
// cancel out.
func KeyAxes(up, down, left, right bool) (x, y float64) {
	if left {
		x--
	}
	if right {
		x++
	}
	if up {
		y--
	}
	if down {
		y++
	}
	return x, y
}
