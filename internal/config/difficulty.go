package config

// ApplyPreset adjusts a config for a named difficulty.
// "fixed" keeps the file's values untouched. The other presets scale the
// generator bias (more dead-ends on hard boards) and the bot's reaction
// delay (a hard bot answers faster).
func ApplyPreset(cfg *ZapConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.MissingLinkPercent = 1
		cfg.Bot.DelayMinTicks = 120
		cfg.Bot.DelayMaxTicks = 240
	case DifficultyNormal:
		cfg.Board.MissingLinkPercent = 3
		cfg.Bot.DelayMinTicks = 60
		cfg.Bot.DelayMaxTicks = 120
	case DifficultyHard:
		cfg.Board.MissingLinkPercent = 6
		cfg.Bot.DelayMinTicks = 30
		cfg.Bot.DelayMaxTicks = 60
	case DifficultyFixed:
		// Keep values from the file.
	}
	cfg.Difficulty = preset
}

// ValidPreset reports whether the name is a known difficulty preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
