package term

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fetchfrenzy/internal/input"
	"chosenoffset.com/fetchfrenzy/internal/session"
)

// holdWindow is how long a key counts as held after its last press or
// autorepeat. Terminals report presses only, never releases.
const holdWindow = 0.35

type control int

const (
	controlUp control = iota
	controlDown
	controlLeft
	controlRight
	controlConfirm

	controlCount
)

// binding is one player's control driven by a key.
type binding struct {
	slot    int
	control control
}

var (
	keyBindings = map[tcell.Key]binding{
		tcell.KeyUp:    {1, controlUp},
		tcell.KeyDown:  {1, controlDown},
		tcell.KeyLeft:  {1, controlLeft},
		tcell.KeyRight: {1, controlRight},
		tcell.KeyEnter: {1, controlConfirm},
	}
	runeBindings = map[rune]binding{
		'w': {0, controlUp},
		's': {0, controlDown},
		'a': {0, controlLeft},
		'd': {0, controlRight},
		' ': {0, controlConfirm},
	}
)

// lookup returns the binding for a key event.
func lookup(ev *tcell.EventKey) (binding, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b, ok := runeBindings[r]
		return b, ok
	}
	b, ok := keyBindings[ev.Key()]
	return b, ok
}

// holds emulates held keys from press events. Each control stays down for
// holdWindow seconds after its last press.
type holds struct {
	last  [][controlCount]float64
	clock float64
}

func newHolds(slots int) *holds {
	h := &holds{last: make([][controlCount]float64, slots)}
	for i := range h.last {
		for c := range h.last[i] {
			h.last[i][c] = -holdWindow
		}
	}
	return h
}

func (h *holds) press(b binding) {
	if b.slot < 0 || b.slot >= len(h.last) {
		return
	}
	h.last[b.slot][b.control] = h.clock
}

func (h *holds) advance(dt float64) {
	h.clock += dt
}

func (h *holds) down(slot int, c control) bool {
	return h.clock-h.last[slot][c] < holdWindow
}

// inputs returns one connected Input per slot from the emulated key state.
func (h *holds) inputs() []session.Input {
	out := make([]session.Input, len(h.last))
	for slot := range out {
		x, y := input.KeyAxes(
			h.down(slot, controlUp),
			h.down(slot, controlDown),
			h.down(slot, controlLeft),
			h.down(slot, controlRight),
		)
		out[slot] = session.Input{
			Connected: true,
			X:         x,
			Y:         y,
			Confirm:   h.down(slot, controlConfirm),
		}
	}
	return out
}
