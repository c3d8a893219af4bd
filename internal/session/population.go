package session

import "chosenoffset.com/fetchfrenzy/internal/entity"

// floor returns the minimum live count for a kind while playing.
func (s *Session) floor(kind entity.Kind) int {
	return s.spawner.Rule(kind).Floor
}

// replenish spawns items of one kind until its floor is met.
func (s *Session) replenish(kind entity.Kind) {
	for len(s.items[kind]) < s.floor(kind) {
		s.spawn(kind)
	}
}

func (s *Session) spawn(kind entity.Kind) {
	s.items[kind] = append(s.items[kind], s.spawner.Spawn(kind, s.arena))
}

// populate clears every collection and restocks each kind to its floor.
func (s *Session) populate() {
	for _, kind := range entity.Kinds {
		clear(s.items[kind])
		s.items[kind] = s.items[kind][:0]
		s.replenish(kind)
	}
}

// addLevelBonus adds one extra treat per level past the first, plus an extra
// cat for every second bonus treat.
func (s *Session) addLevelBonus() {
	for i := 0; i < s.level-1; i++ {
		s.spawn(entity.KindTreat)
		if i%2 == 0 {
			s.spawn(entity.KindCat)
		}
	}
}
