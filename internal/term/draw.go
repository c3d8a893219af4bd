package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/entity"
	"chosenoffset.com/fetchfrenzy/internal/session"
	"chosenoffset.com/fetchfrenzy/internal/ui/hud"
)

var (
	styleField  = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 60, 20))
	styleHUD    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGold)
	styleBanner = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleTitle  = styleBanner.Foreground(tcell.ColorGold).Bold(true)
)

// glyph is how a collectible kind looks on the field.
type glyph struct {
	r     rune
	color tcell.Color
}

var glyphs = [entity.KindCount]glyph{
	entity.KindTreat:    {'o', tcell.ColorSaddleBrown},
	entity.KindCat:      {'C', tcell.ColorOrange},
	entity.KindBone:     {'=', tcell.ColorWhite},
	entity.KindPowerUp:  {'*', tcell.ColorYellow},
	entity.KindSquirrel: {'s', tcell.ColorTan},
}

var playerColors = []tcell.Color{tcell.ColorDodgerBlue, tcell.ColorRed}

// viewport maps arena coordinates onto the cells below the HUD row.
type viewport struct {
	arena         geom.Arena
	width, height int
	top           int
}

// cell returns the screen cell for an arena point.
func (v viewport) cell(p geom.Point) (x, y int) {
	x = int(p.X / v.arena.Width * float64(v.width))
	y = int(p.Y / v.arena.Height * float64(v.height))
	x = max(0, min(v.width-1, x))
	y = max(0, min(v.height-1, y))
	return x, y + v.top
}

// Draw renders the field, HUD row and any overlay.
func (h *Host) Draw() {
	s := h.screen
	w, ht := s.Size()
	s.Clear()
	if w <= 0 || ht <= 1 {
		s.Show()
		return
	}

	for y := 1; y < ht; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, styleField)
		}
	}

	view := viewport{arena: h.session.Arena(), width: w, height: ht - 1, top: 1}
	for _, kind := range entity.Kinds {
		g := glyphs[kind]
		st := styleField.Foreground(g.color)
		for _, it := range h.session.Items(kind) {
			x, y := view.cell(it.Shape().Pos)
			s.SetContent(x, y, g.r, nil, st)
		}
	}
	for _, p := range h.session.Players() {
		x, y := view.cell(p.Pos)
		st := styleField.Foreground(playerColors[p.Slot%len(playerColors)]).Bold(true)
		if p.Boosted {
			st = st.Background(tcell.ColorYellow)
		}
		s.SetContent(x, y, rune('1'+p.Slot), nil, st)
	}
	for _, t := range h.fx.Texts() {
		x, y := view.cell(t.Pos)
		c := t.Color
		h.text(x-len(t.Text)/2, y, t.Text, styleField.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}

	h.drawHUD(w)
	h.drawOverlay(w, ht)
	if h.statusLeft > 0 {
		h.text(0, ht-1, h.status, styleBanner)
	}
	s.Show()
}

func (h *Host) drawHUD(w int) {
	for x := 0; x < w; x++ {
		h.screen.SetContent(x, 0, ' ', nil, styleHUD)
	}
	players := h.session.Players()
	if len(players) == 0 {
		return
	}
	h.text(0, 0, scoreline(players[0]), styleHUD)
	if len(players) > 1 {
		right := scoreline(players[1])
		h.text(w-len(right), 0, right, styleHUD)
	}

	if h.session.State() == session.StatePlaying {
		mid := fmt.Sprintf("LEVEL %d  %s", h.session.Level(), hud.TimerLabel(h.session.TimeLeft()))
		c := hud.TimerColor(h.session.TimeLeft())
		h.centered(w, 0, mid, styleHUD.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}
}

// scoreline is a player's HUD entry with combo and boost markers.
func scoreline(p session.PlayerView) string {
	line := hud.ScoreLabel(p.Slot, p.Score)
	if p.Combo > 1 {
		line += fmt.Sprintf(" x%d", p.Multiplier)
	}
	if p.Boosted {
		line += fmt.Sprintf(" >>%.0fs", math.Ceil(p.BoostRemaining))
	}
	return line
}

func (h *Host) drawOverlay(w, ht int) {
	var lines []string
	slot, tie := h.session.Leader()
	scores := func() {
		for _, p := range h.session.Players() {
			lines = append(lines, fmt.Sprintf("Player %d: %d", p.Slot+1, p.Score))
		}
	}

	switch h.session.State() {
	case session.StatePlaying:
		return
	case session.StateStart:
		lines = append(lines,
			"FETCH FRENZY",
			"",
			"Player 1: WASD, Space to start",
			"Player 2: arrow keys, Enter to start",
			"M mute  Esc end game  Q quit",
		)
	case session.StateLevelComplete:
		lines = append(lines, hud.LevelTitle(h.session.Level()))
		if !tie {
			lines = append(lines, hud.WinnerLine(slot, false))
		}
		lines = append(lines, "")
		scores()
		lines = append(lines, "", hud.NextLevelPrompt(h.session.Level()))
	case session.StateWinner:
		lines = append(lines, hud.WinnerLine(slot, tie), "", "Final Scores:")
		scores()
		lines = append(lines, "")
		lines = append(lines, hud.HistoryLines(h.session.History())...)
		lines = append(lines, "", "Press Space or Enter to play again")
	case session.StateGameOver:
		lines = append(lines, "GAME OVER", "")
		scores()
		lines = append(lines, "", hud.WinnerLine(slot, tie), "", "Press Space or Enter to play again")
	}

	top := max(1, (ht-len(lines))/2)
	for i, line := range lines {
		st := styleBanner
		if i == 0 {
			st = styleTitle
		}
		if line != "" {
			h.centered(w, top+i, line, st)
		}
	}
}

func (h *Host) centered(w, y int, text string, st tcell.Style) {
	h.text((w-len(text))/2, y, text, st)
}

// text writes a single-width string, dropping cells off screen.
func (h *Host) text(x, y int, text string, st tcell.Style) {
	w, ht := h.screen.Size()
	if y < 0 || y >= ht {
		return
	}
	for i, r := range []rune(text) {
		if cx := x + i; cx >= 0 && cx < w {
			h.screen.SetContent(cx, y, r, nil, st)
		}
	}
}
