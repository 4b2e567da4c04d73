// Package config provides YAML-based game configuration loading and
// difficulty management for the ZapGrid platform.
package config

// ZapConfig contains all tunable parameters for a ZapGrid match.
type ZapConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Bot        BotConfig        `yaml:"bot"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions and generator bias.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MissingLinkPercent is the target maximum share of dead-end tiles
	// the generator biases against, in whole percent.
	MissingLinkPercent int `yaml:"missing_link_percent"`
}

// RulesConfig defines match rules and phase timing. Durations are in
// simulation ticks so a fixed seed and tap sequence replay identically
// at any tick rate.
type RulesConfig struct {
	TargetScore     int `yaml:"target_score"`      // versus mode ends at this score
	RotateTicks     int `yaml:"rotate_ticks"`      // rotation animation window
	FreezeZapTicks  int `yaml:"freeze_zap_ticks"`  // freeze while a connection burns
	FreezeBombTicks int `yaml:"freeze_bomb_ticks"` // freeze before a bomb clears
	FallTicks       int `yaml:"fall_ticks"`        // tile fall duration after a clear
	BonusFallTicks  int `yaml:"bonus_fall_ticks"`  // coin/power-up fall duration
}

// BotConfig defines the computer opponent's reaction delay range.
type BotConfig struct {
	DelayMinTicks int `yaml:"delay_min_ticks"`
	DelayMaxTicks int `yaml:"delay_max_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the file's values as-is
)
