package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fetchfrenzy/internal/audio"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
	"chosenoffset.com/fetchfrenzy/internal/term"
)

func main() {
	rulesPath := flag.String("rules", "data/rules.yaml", "Rules file (YAML or JSON); defaults are used if missing")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	width := flag.Int("width", 0, "Arena width override")
	height := flag.Int("height", 0, "Arena height override")
	mute := flag.Bool("mute", false, "Start with sound off")
	logPath := flag.String("log", "", "Write logs to this file (logs are discarded otherwise)")
	flag.Parse()

	// The terminal belongs to the game; keep log output off it
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := simulation.LoadConfig(*rulesPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load rules: %v", err)
	}
	if *width > 0 {
		cfg.Arena.Width = *width
	}
	if *height > 0 {
		cfg.Arena.Height = *height
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var hooks *audio.Hooks
	if sink, err := audio.NewSpeakerSink(audio.DefaultSampleRate); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	} else {
		defer sink.Close()
		synth := audio.NewSynth(audio.DefaultSampleRate, audio.DefaultVolume, rand.New(rand.NewSource(rng.Int63())))
		hooks = audio.NewHooks(synth, sink)
		hooks.SetMuted(*mute)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.NewHost(screen, cfg, rng, hooks)
	err = host.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Printf("Terminal host stopped: %v", err)
	}
}
