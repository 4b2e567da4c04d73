package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the ZapGrid configuration.
// Search order: customPath -> ~/.zapgrid/configs/zapgrid.yaml ->
// ./configs/zapgrid.yaml -> embedded default.
func Load(customPath string) (ZapConfig, error) {
	var cfg ZapConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fillDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("zapgrid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fillDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/zapgrid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fillDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultZapYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return fillDefaults(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zapgrid", "configs", filename)
}

// fillDefaults replaces zero values in a partially specified config so a
// sparse user file still yields a playable match.
func fillDefaults(cfg ZapConfig) ZapConfig {
	def := Default()

	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Board.MissingLinkPercent < 0 {
		cfg.Board.MissingLinkPercent = def.Board.MissingLinkPercent
	}
	if cfg.Rules.TargetScore <= 0 {
		cfg.Rules.TargetScore = def.Rules.TargetScore
	}
	if cfg.Rules.RotateTicks <= 0 {
		cfg.Rules.RotateTicks = def.Rules.RotateTicks
	}
	if cfg.Rules.FreezeZapTicks <= 0 {
		cfg.Rules.FreezeZapTicks = def.Rules.FreezeZapTicks
	}
	if cfg.Rules.FreezeBombTicks <= 0 {
		cfg.Rules.FreezeBombTicks = def.Rules.FreezeBombTicks
	}
	if cfg.Rules.FallTicks <= 0 {
		cfg.Rules.FallTicks = def.Rules.FallTicks
	}
	if cfg.Rules.BonusFallTicks <= 0 {
		cfg.Rules.BonusFallTicks = def.Rules.BonusFallTicks
	}
	if cfg.Bot.DelayMinTicks <= 0 {
		cfg.Bot.DelayMinTicks = def.Bot.DelayMinTicks
	}
	if cfg.Bot.DelayMaxTicks < cfg.Bot.DelayMinTicks {
		cfg.Bot.DelayMaxTicks = cfg.Bot.DelayMinTicks
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = def.Difficulty
	}
	return cfg
}
