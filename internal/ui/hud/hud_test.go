package hud

import (
	"testing"

	"chosenoffset.com/fetchfrenzy/internal/session"
)

func TestTimerLabel(t *testing.T) {
	tests := []struct {
		left float64
		want string
	}{
		{30, "30s"},
		{29.01, "30s"},
		{5.5, "6s"},
		{0.001, "1s"},
		{0, "0s"},
		{-2, "0s"},
	}
	for _, tt := range tests {
		if got := TimerLabel(tt.left); got != tt.want {
			t.Errorf("TimerLabel(%v) = %q, want %q", tt.left, got, tt.want)
		}
	}
}

func TestTimerColor(t *testing.T) {
	if TimerColor(20) != green {
		t.Error("Expected green with plenty of time")
	}
	if TimerColor(15) != gold || TimerColor(6) != gold {
		t.Error("Expected gold between 6 and 15 seconds")
	}
	if TimerColor(5) != red || TimerColor(0.2) != red {
		t.Error("Expected red for the last five seconds")
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ScoreLabel(0, 120), "P1: 120"},
		{ScoreLabel(1, 0), "P2: 0"},
		{WinnerLine(1, false), "Player 2 Wins!"},
		{WinnerLine(0, true), "It's a Tie!"},
		{LevelTitle(3), "LEVEL 3 COMPLETE!"},
		{NextLevelPrompt(3), "Press A to start Level 4"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestHistoryLines(t *testing.T) {
	lines := HistoryLines([]session.LevelResult{
		{Level: 1, Scores: []int{40, 10}},
		{Level: 2, Scores: []int{90, 120}},
	})

	want := []string{"Level 1: 40 - 10", "Level 2: 90 - 120"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
