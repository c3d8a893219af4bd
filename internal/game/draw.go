package game

import (
	"image/color"
	"math"

	"chosenoffset.com/fetchfrenzy/internal/entity"
	"chosenoffset.com/fetchfrenzy/internal/render"
	"chosenoffset.com/fetchfrenzy/internal/session"
)

var (
	grass     = color.RGBA{144, 238, 144, 255}
	grassDark = color.RGBA{124, 218, 124, 255}
	black     = color.RGBA{0, 0, 0, 255}
	white     = color.RGBA{255, 255, 255, 255}
	pink      = color.RGBA{255, 105, 180, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()
	g.drawBackground(screen, w, h)

	for _, kind := range entity.Kinds {
		for _, it := range g.Session.Items(kind) {
			g.drawItem(screen, kind, it.Shape())
		}
	}
	for _, p := range g.Session.Players() {
		g.drawPlayer(screen, p)
	}

	g.drawEffects(screen)
	g.GameHUD.Draw(screen, g.Session)
	g.drawMessages(screen, h)
}

func (g *Game) drawBackground(screen render.Image, w, h int) {
	screen.Fill(grass)

	// Mowed stripes
	const stripe = 80
	for x := 0; x < w; x += stripe * 2 {
		g.Renderer.FillRect(screen, float32(x), 0, stripe, float32(h), grassDark)
	}
}

func (g *Game) drawItem(screen render.Image, kind entity.Kind, b entity.Body) {
	r := g.Renderer
	x, y := float32(b.Pos.X), float32(b.Pos.Y)
	rad := float32(b.Size / 2)

	switch kind {
	case entity.KindTreat:
		brown := color.RGBA{160, 82, 45, 255}
		r.FillCircle(screen, x, y, rad, brown)
		r.FillCircle(screen, x-rad/3, y-rad/3, rad/4, color.RGBA{210, 140, 90, 255})
	case entity.KindCat:
		orange := color.RGBA{255, 140, 0, 255}
		r.FillCircle(screen, x, y, rad, orange)
		// Ears
		r.StrokeLine(screen, x-rad*0.7, y-rad*0.5, x-rad*0.5, y-rad*1.2, 3, orange)
		r.StrokeLine(screen, x-rad*0.5, y-rad*1.2, x-rad*0.1, y-rad*0.8, 3, orange)
		r.StrokeLine(screen, x+rad*0.7, y-rad*0.5, x+rad*0.5, y-rad*1.2, 3, orange)
		r.StrokeLine(screen, x+rad*0.5, y-rad*1.2, x+rad*0.1, y-rad*0.8, 3, orange)
		// Eyes and whiskers
		r.FillCircle(screen, x-rad*0.35, y-rad*0.1, 2.5, black)
		r.FillCircle(screen, x+rad*0.35, y-rad*0.1, 2.5, black)
		r.StrokeLine(screen, x-rad*1.1, y+rad*0.2, x-rad*0.3, y+rad*0.25, 1, black)
		r.StrokeLine(screen, x+rad*0.3, y+rad*0.25, x+rad*1.1, y+rad*0.2, 1, black)
	case entity.KindBone:
		bone := color.RGBA{245, 245, 220, 255}
		r.FillRect(screen, x-rad*0.7, y-rad*0.2, rad*1.4, rad*0.4, bone)
		for _, dx := range []float32{-rad * 0.75, rad * 0.75} {
			r.FillCircle(screen, x+dx, y-rad*0.25, rad*0.3, bone)
			r.FillCircle(screen, x+dx, y+rad*0.25, rad*0.3, bone)
		}
	case entity.KindPowerUp:
		pulse := float32(1 + 0.15*math.Sin(g.GameHUD.Clock()*6))
		r.FillCircle(screen, x, y, rad*pulse, color.RGBA{255, 215, 0, 255})
		r.StrokeCircle(screen, x, y, rad*pulse+3, 2, color.NRGBA{255, 255, 255, 200})
		// Lightning bolt
		r.StrokeLine(screen, x+rad*0.2, y-rad*0.6, x-rad*0.2, y, 3, black)
		r.StrokeLine(screen, x-rad*0.2, y, x+rad*0.2, y, 3, black)
		r.StrokeLine(screen, x+rad*0.2, y, x-rad*0.2, y+rad*0.6, 3, black)
	case entity.KindSquirrel:
		fur := color.RGBA{139, 115, 85, 255}
		r.FillCircle(screen, x+rad*0.7, y-rad*0.4, rad*0.6, color.RGBA{160, 130, 100, 255})
		r.FillCircle(screen, x, y, rad*0.8, fur)
		r.FillCircle(screen, x-rad*0.3, y-rad*0.2, 2, black)
	}
}

func (g *Game) drawPlayer(screen render.Image, p session.PlayerView) {
	r := g.Renderer
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	rad := float32(p.Size / 2)

	body := color.RGBA{139, 69, 19, 255}
	if p.Slot == 1 {
		body = color.RGBA{210, 105, 30, 255}
	}

	if p.Boosted {
		glow := float32(4 + 2*math.Sin(g.GameHUD.Clock()*12))
		r.FillCircle(screen, x, y, rad+glow+4, color.NRGBA{255, 255, 0, 90})
	}

	// Fluffy coat
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		r.FillCircle(screen, x+rad*0.75*float32(math.Cos(a)), y+rad*0.75*float32(math.Sin(a)), rad*0.35, body)
	}
	r.FillCircle(screen, x, y, rad*0.85, body)

	// Face toward the heading
	hx, hy := float32(p.Heading.X), float32(p.Heading.Y)
	fx, fy := x+hx*rad*0.3, y+hy*rad*0.3
	r.FillCircle(screen, fx-rad*0.25, fy-rad*0.15, 3, black)
	r.FillCircle(screen, fx+rad*0.25, fy-rad*0.15, 3, black)
	r.FillCircle(screen, fx, fy+rad*0.15, 4, black)
	if p.Happy || p.Moving {
		r.FillCircle(screen, fx, fy+rad*0.4, 4, pink)
	}

	r.StrokeCircle(screen, x, y, rad, 2, playerRing(p.Slot))
}

func (g *Game) drawEffects(screen render.Image) {
	for _, p := range g.FX.Particles() {
		c := fade(p.Color, p.Life)
		g.Renderer.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius()), c)
	}
	for _, t := range g.FX.Texts() {
		c := fade(t.Color, t.Alpha())
		w, h := g.Renderer.MeasureText(t.Text, t.Size)
		g.Renderer.DrawText(screen, t.Text, t.Pos.X-w/2, t.Pos.Y-h/2, c, t.Size)
	}
}

func (g *Game) drawMessages(screen render.Image, height int) {
	y := float64(height) - 30
	for i := len(g.Messages) - 1; i >= 0; i-- {
		msg := g.Messages[i]
		c := fade(white, msg.TimeLeft)
		g.Renderer.DrawText(screen, msg.Text, 10, y, c, 16)
		y -= 20
	}
}

func playerRing(slot int) color.RGBA {
	if slot == 1 {
		return color.RGBA{255, 80, 80, 255}
	}
	return color.RGBA{80, 160, 255, 255}
}

// fade returns c at the given opacity, clamped to [0, 1].
func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * alpha)}
}
