package session

// State is the session state-machine tag.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
	StateLevelComplete
	StateWinner
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateLevelComplete:
		return "levelcomplete"
	case StateWinner:
		return "winner"
	default:
		return "unknown"
	}
}
