package config

import (
	_ "embed"
)

//go:embed defaults/zapgrid.yaml
var defaultZapYAML []byte

// Default returns the default ZapGrid configuration: a 12x10 board with a
// 3% dead-end target and timing tuned for 60 ticks per second.
func Default() ZapConfig {
	return ZapConfig{
		Board: BoardConfig{
			Width:              12,
			Height:             10,
			MissingLinkPercent: 3,
		},
		Rules: RulesConfig{
			TargetScore:     100,
			RotateTicks:     9,
			FreezeZapTicks:  120,
			FreezeBombTicks: 60,
			FallTicks:       24,
			BonusFallTicks:  36,
		},
		Bot: BotConfig{
			DelayMinTicks: 60,
			DelayMaxTicks: 120,
		},
		Difficulty: DifficultyNormal,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultZapYAML
}
