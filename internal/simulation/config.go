// Package simulation provides configuration for the game simulation rules.
// Rules can be loaded from a JSON or YAML file so the arena, timings, and
// creature behaviors can be tuned without rebuilding.
package simulation

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all simulation rules for a game
type Config struct {
	Arena    ArenaConfig    `json:"arena" yaml:"arena"`
	Session  SessionConfig  `json:"session" yaml:"session"`
	Player   PlayerConfig   `json:"player" yaml:"player"`
	Items    ItemsConfig    `json:"items" yaml:"items"`
	Cat      CatConfig      `json:"cat" yaml:"cat"`
	Squirrel SquirrelConfig `json:"squirrel" yaml:"squirrel"`
	Input    InputConfig    `json:"input" yaml:"input"`
}

// ArenaConfig defines the play field
type ArenaConfig struct {
	Width   int `json:"width" yaml:"width"`
	Height  int `json:"height" yaml:"height"`
	MinSize int `json:"min_size" yaml:"min_size"` // Smallest accepted dimension
}

// SessionConfig defines level timing and scoring
type SessionConfig struct {
	LevelDuration float64 `json:"level_duration" yaml:"level_duration"` // Seconds per level
	MaxLevels     int     `json:"max_levels" yaml:"max_levels"`         // Level after which the game is won
	MaxDelta      float64 `json:"max_delta" yaml:"max_delta"`           // Longest tick accepted, in seconds
	ComboWindow   float64 `json:"combo_window" yaml:"combo_window"`     // Seconds a combo stays hot
	ComboCap      int     `json:"combo_cap" yaml:"combo_cap"`           // Highest applied multiplier
}

// PlayerConfig defines the controllable dogs
type PlayerConfig struct {
	Size            float64 `json:"size" yaml:"size"`
	Speed           float64 `json:"speed" yaml:"speed"`
	BoostSpeed      float64 `json:"boost_speed" yaml:"boost_speed"`
	BoostDuration   float64 `json:"boost_duration" yaml:"boost_duration"`
	Deadzone        float64 `json:"deadzone" yaml:"deadzone"`
	MoveEpsilon     float64 `json:"move_epsilon" yaml:"move_epsilon"`
	HappyDuration   float64 `json:"happy_duration" yaml:"happy_duration"`
	BarkMoveChance  float64 `json:"bark_move_chance" yaml:"bark_move_chance"`
	BarkHappyChance float64 `json:"bark_happy_chance" yaml:"bark_happy_chance"`
	BarkCooldownMin float64 `json:"bark_cooldown_min" yaml:"bark_cooldown_min"`
	BarkCooldownMax float64 `json:"bark_cooldown_max" yaml:"bark_cooldown_max"`
}

// ItemRule defines one kind of collectible
type ItemRule struct {
	Size   float64 `json:"size" yaml:"size"`
	Points int     `json:"points" yaml:"points"`
	Floor  int     `json:"floor" yaml:"floor"` // Minimum live count while playing
}

// ItemsConfig holds the rule for every collectible kind
type ItemsConfig struct {
	Treat    ItemRule `json:"treat" yaml:"treat"`
	Cat      ItemRule `json:"cat" yaml:"cat"`
	Bone     ItemRule `json:"bone" yaml:"bone"`
	PowerUp  ItemRule `json:"powerup" yaml:"powerup"`
	Squirrel ItemRule `json:"squirrel" yaml:"squirrel"`
}

// CatConfig defines cat wandering
type CatConfig struct {
	SpeedMin           float64 `json:"speed_min" yaml:"speed_min"`
	SpeedMax           float64 `json:"speed_max" yaml:"speed_max"`
	InitialSpeed       float64 `json:"initial_speed" yaml:"initial_speed"`
	TurnMin            float64 `json:"turn_min" yaml:"turn_min"` // Seconds between direction decisions
	TurnMax            float64 `json:"turn_max" yaml:"turn_max"`
	NewDirectionChance float64 `json:"new_direction_chance" yaml:"new_direction_chance"`
	MeowMin            float64 `json:"meow_min" yaml:"meow_min"`
	MeowMax            float64 `json:"meow_max" yaml:"meow_max"`
	InitialMeowMax     float64 `json:"initial_meow_max" yaml:"initial_meow_max"`
}

// SquirrelConfig defines squirrel fleeing and wandering
type SquirrelConfig struct {
	ThreatRadius   float64 `json:"threat_radius" yaml:"threat_radius"`
	FleeSpeed      float64 `json:"flee_speed" yaml:"flee_speed"`
	WanderSpeed    float64 `json:"wander_speed" yaml:"wander_speed"`
	PanicDuration  float64 `json:"panic_duration" yaml:"panic_duration"`
	RetargetChance float64 `json:"retarget_chance" yaml:"retarget_chance"` // Per tick
	ArriveRadius   float64 `json:"arrive_radius" yaml:"arrive_radius"`
	InitialSpeed   float64 `json:"initial_speed" yaml:"initial_speed"` // Max initial speed per axis
}

// InputConfig defines how controllers map to player slots
type InputConfig struct {
	KeyboardFallback bool `json:"keyboard_fallback" yaml:"keyboard_fallback"`
}

// PlayerCount is the fixed number of player slots.
const PlayerCount = 2

// DefaultConfig returns the stock rules: 30 second levels, effectively
// unlimited levels, and the classic item mix.
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:   1280,
			Height:  800,
			MinSize: 160,
		},
		Session: SessionConfig{
			LevelDuration: 30,
			MaxLevels:     999,
			MaxDelta:      0.25,
			ComboWindow:   2,
			ComboCap:      5,
		},
		Player: PlayerConfig{
			Size:            50,
			Speed:           300,
			BoostSpeed:      500,
			BoostDuration:   5,
			Deadzone:        0.2,
			MoveEpsilon:     0.1,
			HappyDuration:   1,
			BarkMoveChance:  0.01,
			BarkHappyChance: 0.3,
			BarkCooldownMin: 2,
			BarkCooldownMax: 5,
		},
		Items: ItemsConfig{
			Treat:    ItemRule{Size: 25, Points: 10, Floor: 5},
			Cat:      ItemRule{Size: 40, Points: 50, Floor: 1},
			Bone:     ItemRule{Size: 30, Points: 20, Floor: 2},
			PowerUp:  ItemRule{Size: 30, Points: 0, Floor: 1},
			Squirrel: ItemRule{Size: 30, Points: 30, Floor: 2},
		},
		Cat: CatConfig{
			SpeedMin:           80,
			SpeedMax:           120,
			InitialSpeed:       100,
			TurnMin:            1,
			TurnMax:            3,
			NewDirectionChance: 0.7,
			MeowMin:            8,
			MeowMax:            20,
			InitialMeowMax:     10,
		},
		Squirrel: SquirrelConfig{
			ThreatRadius:   150,
			FleeSpeed:      400,
			WanderSpeed:    100,
			PanicDuration:  1,
			RetargetChance: 0.02,
			ArriveRadius:   10,
			InitialSpeed:   100,
		},
		Input: InputConfig{
			KeyboardFallback: true,
		},
	}
}

// LoadConfig loads simulation config from a JSON or YAML file. The format is
// picked from the file extension; anything other than .yaml/.yml is read as JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			log.Printf("Rules file %s not found, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse simulation config %s: %w", path, err)
	}

	config.Sanitize()
	log.Printf("Loaded rules from %s", path)
	return config, nil
}

// Sanitize clamps malformed values to safe minimums so the simulation never
// divides by zero or runs away.
func (c *Config) Sanitize() {
	if c.Arena.MinSize < 1 {
		c.Arena.MinSize = 1
	}
	c.Arena.Width = max(c.Arena.Width, c.Arena.MinSize)
	c.Arena.Height = max(c.Arena.Height, c.Arena.MinSize)

	c.Session.LevelDuration = positiveOr(c.Session.LevelDuration, 30)
	if c.Session.MaxLevels < 1 {
		c.Session.MaxLevels = 1
	}
	c.Session.MaxDelta = positiveOr(c.Session.MaxDelta, 0.25)
	c.Session.ComboWindow = nonNegative(c.Session.ComboWindow)
	if c.Session.ComboCap < 1 {
		c.Session.ComboCap = 1
	}

	p := &c.Player
	p.Size = positiveOr(p.Size, 50)
	p.Speed = nonNegative(p.Speed)
	p.BoostSpeed = nonNegative(p.BoostSpeed)
	p.BoostDuration = nonNegative(p.BoostDuration)
	p.Deadzone = math.Min(nonNegative(p.Deadzone), 1)
	p.MoveEpsilon = nonNegative(p.MoveEpsilon)
	p.HappyDuration = nonNegative(p.HappyDuration)
	p.BarkMoveChance = probability(p.BarkMoveChance)
	p.BarkHappyChance = probability(p.BarkHappyChance)
	p.BarkCooldownMin, p.BarkCooldownMax = orderedRange(p.BarkCooldownMin, p.BarkCooldownMax)

	for _, rule := range []*ItemRule{&c.Items.Treat, &c.Items.Cat, &c.Items.Bone, &c.Items.PowerUp, &c.Items.Squirrel} {
		rule.Size = positiveOr(rule.Size, 1)
		if rule.Points < 0 {
			rule.Points = 0
		}
		if rule.Floor < 0 {
			rule.Floor = 0
		}
	}

	cat := &c.Cat
	cat.SpeedMin, cat.SpeedMax = orderedRange(cat.SpeedMin, cat.SpeedMax)
	cat.InitialSpeed = nonNegative(cat.InitialSpeed)
	cat.TurnMin, cat.TurnMax = orderedRange(cat.TurnMin, cat.TurnMax)
	cat.NewDirectionChance = probability(cat.NewDirectionChance)
	cat.MeowMin, cat.MeowMax = orderedRange(cat.MeowMin, cat.MeowMax)
	cat.InitialMeowMax = nonNegative(cat.InitialMeowMax)

	sq := &c.Squirrel
	sq.ThreatRadius = nonNegative(sq.ThreatRadius)
	sq.FleeSpeed = nonNegative(sq.FleeSpeed)
	sq.WanderSpeed = nonNegative(sq.WanderSpeed)
	sq.PanicDuration = nonNegative(sq.PanicDuration)
	sq.RetargetChance = probability(sq.RetargetChance)
	sq.ArriveRadius = nonNegative(sq.ArriveRadius)
	sq.InitialSpeed = nonNegative(sq.InitialSpeed)
}

// LargestBodySize returns the biggest configured entity size.
func (c *Config) LargestBodySize() float64 {
	size := c.Player.Size
	for _, rule := range []ItemRule{c.Items.Treat, c.Items.Cat, c.Items.Bone, c.Items.PowerUp, c.Items.Squirrel} {
		size = math.Max(size, rule.Size)
	}
	return size
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return fallback
}

func nonNegative(v float64) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return 0
}

func probability(v float64) float64 {
	return math.Min(nonNegative(v), 1)
}

// orderedRange returns a valid [lo, hi] pair, swapping reversed bounds.
func orderedRange(lo, hi float64) (float64, float64) {
	lo, hi = nonNegative(lo), nonNegative(hi)
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}
