package hud

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"chosenoffset.com/fetchfrenzy/internal/session"
)

// ScoreLabel formats a player's score panel text.
func ScoreLabel(slot, score int) string {
	return fmt.Sprintf("P%d: %d", slot+1, score)
}

// TimerLabel formats the seconds left, rounded up.
func TimerLabel(timeLeft float64) string {
	return fmt.Sprintf("%ds", int(math.Ceil(math.Max(0, timeLeft))))
}

// TimerColor is green with plenty of time, gold past the halfway mark and
// red for the last five seconds.
func TimerColor(timeLeft float64) color.RGBA {
	secs := math.Ceil(timeLeft)
	switch {
	case secs <= 5:
		return red
	case secs <= 15:
		return gold
	default:
		return green
	}
}

// WinnerLine announces the leader, or a tie.
func WinnerLine(slot int, tie bool) string {
	if tie {
		return "It's a Tie!"
	}
	return fmt.Sprintf("Player %d Wins!", slot+1)
}

// LevelTitle is the banner for a finished level.
func LevelTitle(level int) string {
	return fmt.Sprintf("LEVEL %d COMPLETE!", level)
}

// NextLevelPrompt tells players how to continue.
func NextLevelPrompt(level int) string {
	return fmt.Sprintf("Press A to start Level %d", level+1)
}

// HistoryLines summarizes the recorded scores of every finished level.
func HistoryLines(history []session.LevelResult) []string {
	lines := make([]string, 0, len(history))
	for _, r := range history {
		scores := make([]string, len(r.Scores))
		for i, s := range r.Scores {
			scores[i] = fmt.Sprint(s)
		}
		lines = append(lines, fmt.Sprintf("Level %d: %s", r.Level, strings.Join(scores, " - ")))
	}
	return lines
}
