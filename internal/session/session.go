// Package session is the game simulation core: the level state machine, the
// live entity collections, collision-triggered scoring, and the population
// rules that keep the arena stocked. It has no rendering, audio or device
// dependencies; a host feeds it a delta time and controller input once per
// frame and reads state and events back.
package session

import (
	"log"
	"math"
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/entity"
	"chosenoffset.com/fetchfrenzy/internal/input"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

// Input is one player slot's controller state for a single tick.
type Input struct {
	Connected bool    // False for an empty slot; that player gets no movement
	X, Y      float64 // Stick axes in [-1, 1]
	Confirm   bool    // Raw level of the confirm button; edges are detected here
}

// PlayerView is a read-only snapshot of a player for presentation.
type PlayerView struct {
	Slot           int
	Pos            geom.Point
	Size           float64
	Heading        geom.Point
	Score          int
	Combo          int
	Multiplier     int
	ComboTimeLeft  float64
	Boosted        bool
	BoostRemaining float64
	Moving         bool
	Happy          bool
}

// Session is the root aggregate of a running game.
type Session struct {
	cfg     *simulation.Config
	rng     *rand.Rand
	spawner *entity.Spawner
	arena   geom.Arena
	minSize int

	state    State
	level    int
	timeLeft float64

	players []*entity.Player
	items   [entity.KindCount][]entity.Item

	confirm []input.Edge
	events  []Event
	history []LevelResult
}

// New creates a session in the start state with players placed in opposite
// corners and the arena stocked for level 1.
func New(cfg *simulation.Config, rng *rand.Rand) *Session {
	s := &Session{
		cfg:      cfg,
		rng:      rng,
		spawner:  entity.NewSpawner(cfg, rng),
		minSize:  max(cfg.Arena.MinSize, int(math.Ceil(cfg.LargestBodySize()))),
		state:    StateStart,
		level:    1,
		timeLeft: cfg.Session.LevelDuration,
		confirm:  make([]input.Edge, simulation.PlayerCount),
	}
	s.arena = geom.NewArena(cfg.Arena.Width, cfg.Arena.Height, s.minSize)

	starts := []geom.Point{
		{X: 100, Y: 100},
		{X: s.arena.Width - 100, Y: s.arena.Height - 100},
	}
	for slot := 0; slot < simulation.PlayerCount; slot++ {
		pos := s.arena.Clamp(starts[slot%len(starts)], cfg.Player.Size)
		s.players = append(s.players, entity.NewPlayer(slot, pos, cfg))
	}

	s.populate()
	return s
}

// Tick advances the simulation by dt seconds. inputs is indexed by player
// slot; missing entries count as disconnected.
//
// Outside the playing state only the confirm edge is observed. While playing
// the level timer runs down first; on expiry the session transitions and the
// rest of the tick is skipped.
func (s *Session) Tick(dt float64, inputs []Input) {
	dt = s.clampDelta(dt)
	confirmed := s.confirmEdge(inputs)

	switch s.state {
	case StateStart:
		if confirmed {
			s.setState(StatePlaying)
		}
		return
	case StateLevelComplete:
		if confirmed {
			s.nextLevel()
		}
		return
	case StateWinner, StateGameOver:
		if confirmed {
			s.restart()
		}
		return
	}

	s.timeLeft -= dt
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.endLevel()
		return
	}

	s.updatePlayers(dt, inputs)
	s.updateCreatures(dt)
	s.resolveCollisions()
}

// Resize changes the arena dimensions and pulls every entity back inside.
// Positions are clamped, never re-randomized.
func (s *Session) Resize(width, height int) {
	arena := geom.NewArena(width, height, s.minSize)
	if arena == s.arena {
		return
	}
	s.arena = arena
	for _, p := range s.players {
		p.Clamp(arena)
	}
	for _, items := range s.items {
		for _, it := range items {
			it.Clamp(arena)
		}
	}
}

// Abandon ends a game in progress, moving playing to gameover. It reports
// whether the transition happened. Timer expiry never leads here.
func (s *Session) Abandon() bool {
	if s.state != StatePlaying {
		return false
	}
	s.setState(StateGameOver)
	return true
}

// State returns the current state tag.
func (s *Session) State() State {
	return s.state
}

// Level returns the current level number, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// TimeLeft returns the seconds remaining in the current level.
func (s *Session) TimeLeft() float64 {
	return s.timeLeft
}

// Arena returns the current play field.
func (s *Session) Arena() geom.Arena {
	return s.arena
}

// Players returns a snapshot of every player, indexed by slot.
func (s *Session) Players() []PlayerView {
	views := make([]PlayerView, len(s.players))
	for i, p := range s.players {
		views[i] = PlayerView{
			Slot:           p.Slot,
			Pos:            p.Pos,
			Size:           p.Size,
			Heading:        p.Heading,
			Score:          p.Score,
			Combo:          p.ComboCount(),
			Multiplier:     p.ComboMultiplier(),
			ComboTimeLeft:  p.ComboTimeLeft(),
			Boosted:        p.Boosted(),
			BoostRemaining: p.BoostRemaining(),
			Moving:         p.Moving(),
			Happy:          p.Happy(),
		}
	}
	return views
}

// Scores returns the cumulative score of every player, indexed by slot.
func (s *Session) Scores() []int {
	scores := make([]int, len(s.players))
	for i, p := range s.players {
		scores[i] = p.Score
	}
	return scores
}

// Items returns the live items of one kind. The slice is a copy; the items
// themselves must be treated as read-only.
func (s *Session) Items(kind entity.Kind) []entity.Item {
	if kind < 0 || kind >= entity.KindCount {
		return nil
	}
	return append([]entity.Item(nil), s.items[kind]...)
}

// Count returns the number of live items of one kind.
func (s *Session) Count(kind entity.Kind) int {
	if kind < 0 || kind >= entity.KindCount {
		return 0
	}
	return len(s.items[kind])
}

// History returns the scores recorded at the end of each finished level.
func (s *Session) History() []LevelResult {
	return append([]LevelResult(nil), s.history...)
}

// Leader returns the slot with the highest score. tie is true when more than
// one player shares it.
func (s *Session) Leader() (slot int, tie bool) {
	best := -1
	for i, p := range s.players {
		switch {
		case best < 0 || p.Score > s.players[best].Score:
			best, tie = i, false
		case p.Score == s.players[best].Score:
			tie = true
		}
	}
	return best, tie
}

func (s *Session) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, s.cfg.Session.MaxDelta)
}

// confirmEdge updates every slot's confirm detector and reports whether any
// slot saw a fresh press. Detectors run in every state so a button held
// across a transition does not fire again.
func (s *Session) confirmEdge(inputs []Input) bool {
	confirmed := false
	for slot := range s.confirm {
		pressed := slot < len(inputs) && inputs[slot].Connected && inputs[slot].Confirm
		if s.confirm[slot].Update(pressed) {
			confirmed = true
		}
	}
	return confirmed
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	log.Printf("Session state %s -> %s (level %d)", from, to, s.level)
	s.emit(Event{Type: EventStateChanged, Slot: -1, From: from, To: to, Level: s.level})
}

func (s *Session) updatePlayers(dt float64, inputs []Input) {
	for _, p := range s.players {
		p.Advance(dt)

		if p.Slot >= len(inputs) || !inputs[p.Slot].Connected {
			continue
		}
		in := inputs[p.Slot]
		p.Move(dt, entity.Axes{X: in.X, Y: in.Y}, s.arena)

		if p.ShouldBark(s.rng) {
			s.emit(Event{Type: EventBark, Slot: p.Slot, Pos: p.Pos})
		}
	}
}

func (s *Session) updateCreatures(dt float64) {
	threats := make([]geom.Point, len(s.players))
	for i, p := range s.players {
		threats[i] = p.Pos
	}

	for _, items := range s.items {
		for _, it := range items {
			switch m := it.(type) {
			case *entity.Squirrel:
				m.Update(dt, threats, s.arena, s.rng)
			case *entity.Cat:
				if m.Update(dt, s.arena, s.rng) {
					s.emit(Event{Type: EventMeow, Slot: -1, Kind: entity.KindCat, Pos: m.Pos})
				}
			}
		}
	}
}

func (s *Session) endLevel() {
	s.history = append(s.history, LevelResult{Level: s.level, Scores: s.Scores()})
	log.Printf("Level %d ended with scores %v", s.level, s.Scores())

	next := StateLevelComplete
	if s.level >= s.cfg.Session.MaxLevels {
		next = StateWinner
	}
	s.emit(Event{Type: EventLevelEnded, Slot: -1, Level: s.level, To: next})
	s.setState(next)
}

// nextLevel advances to the following level. Scores carry over; the arena is
// restocked with extra treats and cats for the higher level.
func (s *Session) nextLevel() {
	s.level++
	s.timeLeft = s.cfg.Session.LevelDuration
	s.populate()
	s.addLevelBonus()
	s.setState(StatePlaying)
}

// restart begins a fresh game from level 1 with zeroed scores.
func (s *Session) restart() {
	s.level = 1
	s.timeLeft = s.cfg.Session.LevelDuration
	s.history = nil
	for _, p := range s.players {
		p.Reset()
	}
	s.populate()
	s.setState(StatePlaying)
}
