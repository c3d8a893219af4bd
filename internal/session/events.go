package session

import (
	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/entity"
)

// EventType identifies a session notification.
type EventType int

const (
	// EventCollected fires when a player scores an item.
	EventCollected EventType = iota
	// EventSpeedBoost fires when a player picks up a speed power-up.
	EventSpeedBoost
	// EventLevelEnded fires when the level timer runs out.
	EventLevelEnded
	// EventBark fires when a player's dog decides to bark.
	EventBark
	// EventMeow fires when a cat decides to meow.
	EventMeow
	// EventStateChanged fires on every state transition.
	EventStateChanged
)

func (t EventType) String() string {
	switch t {
	case EventCollected:
		return "collected"
	case EventSpeedBoost:
		return "speedboost"
	case EventLevelEnded:
		return "levelended"
	case EventBark:
		return "bark"
	case EventMeow:
		return "meow"
	case EventStateChanged:
		return "statechanged"
	default:
		return "unknown"
	}
}

// Event is a point-in-time notification for the presentation layer. Only
// the fields relevant to Type are set.
type Event struct {
	Type EventType
	Slot int // Player slot, -1 when not player specific

	Kind       entity.Kind
	Pos        geom.Point
	Points     int // Points awarded after the multiplier
	Multiplier int
	Combo      int // Uncapped combo count

	Level    int
	From, To State
}

// LevelResult records both scores at the end of a level.
type LevelResult struct {
	Level  int
	Scores []int
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Events returns every event raised since the last call and forgets them, so
// each occurrence is delivered exactly once.
func (s *Session) Events() []Event {
	events := s.events
	s.events = nil
	return events
}
