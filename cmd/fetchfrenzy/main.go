package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/fetchfrenzy/internal/audio"
	"chosenoffset.com/fetchfrenzy/internal/game"
	ebitenrender "chosenoffset.com/fetchfrenzy/internal/render/ebiten"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

func main() {
	rulesPath := flag.String("rules", "data/rules.yaml", "Rules file (YAML or JSON); defaults are used if missing")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	width := flag.Int("width", 0, "Arena width override")
	height := flag.Int("height", 0, "Arena height override")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	mute := flag.Bool("mute", false, "Start with sound off")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*rulesPath)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}
	if *width > 0 {
		cfg.Arena.Width = *width
	}
	if *height > 0 {
		cfg.Arena.Height = *height
	}
	log.Printf("Arena %dx%d, %gs levels", cfg.Arena.Width, cfg.Arena.Height, cfg.Session.LevelDuration)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	synth := audio.NewSynth(audio.DefaultSampleRate, audio.DefaultVolume, rand.New(rand.NewSource(rng.Int63())))
	hooks := audio.NewHooks(synth, audio.NewEbitenSink(audio.DefaultSampleRate))
	hooks.SetMuted(*mute)

	g := game.New(cfg, rng, renderer, inputMgr, engine, hooks)

	// Set up the window
	engine.SetWindowSize(g.ScreenWidth, g.ScreenHeight)
	engine.SetWindowTitle("Fetch Frenzy")
	engine.SetWindowResizable(true)
	engine.SetFullscreen(*fullscreen)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
