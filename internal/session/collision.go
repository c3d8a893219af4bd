package session

import "chosenoffset.com/fetchfrenzy/internal/entity"

// resolveCollisions runs each player's collection pass in slot order. For
// every kind the player's overlaps are removed, scored, and the kind is
// topped back up to its floor before the next kind is checked. An item two
// players reach on the same tick goes to the lower slot.
func (s *Session) resolveCollisions() {
	for _, p := range s.players {
		for _, kind := range entity.Kinds {
			s.collect(p, kind)
			s.replenish(kind)
		}
	}
}

// collect removes every item of kind that p overlaps and awards it.
func (s *Session) collect(p *entity.Player, kind entity.Kind) {
	items := s.items[kind]
	kept := items[:0]
	for _, it := range items {
		if !p.Collides(it.Shape()) {
			kept = append(kept, it)
			continue
		}
		s.claim(p, it)
	}
	clear(items[len(kept):])
	s.items[kind] = kept
}

// claim applies a collected item to the player. Power-ups grant the speed
// buff and score nothing; everything else feeds the combo engine.
func (s *Session) claim(p *entity.Player, it entity.Item) {
	pos := it.Shape().Pos

	if it.Kind() == entity.KindPowerUp {
		p.ActivateSpeedBoost()
		s.emit(Event{Type: EventSpeedBoost, Slot: p.Slot, Kind: entity.KindPowerUp, Pos: pos})
		return
	}

	res := p.AddScore(it.Points())
	s.emit(Event{
		Type:       EventCollected,
		Slot:       p.Slot,
		Kind:       it.Kind(),
		Pos:        pos,
		Points:     res.Points,
		Multiplier: res.Multiplier,
		Combo:      res.Combo,
	})
}
