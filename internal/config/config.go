package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Compiled fallbacks used when no config file is loaded or a field is unset.
// These are the contract values the game was balanced around.
const (
	defaultRefSeesProbability       = 0.6
	defaultTackleHealthPenalty      = 10
	defaultPenaltyMissHealthPenalty = 5
	defaultScoreIncrement           = 1
	defaultLeaderboardCapacity      = 50
	defaultStartingHealth           = 100
)

// GameConfig tunes match resolution and leaderboard behavior.
type GameConfig struct {
	// RefSeesProbability is the chance a foul is flagged by the referee.
	RefSeesProbability float64 `json:"ref_sees_probability"`
	// TackleHealthPenalty is the health lost when a tackle goes unseen.
	TackleHealthPenalty int `json:"tackle_health_penalty"`
	// PenaltyMissHealthPenalty is the health lost when a penalty kick is saved.
	PenaltyMissHealthPenalty int `json:"penalty_miss_health_penalty"`
	// ScoreIncrement is the default goals added per scoring action.
	ScoreIncrement int `json:"score_increment"`
	// LeaderboardCapacity bounds the persisted result window.
	LeaderboardCapacity int `json:"leaderboard_capacity"`
	// DefaultHealth is the starting health offered to new matches.
	DefaultHealth int `json:"default_health"`
	// PresetPlayers lists the selectable preset identities.
	PresetPlayers []string `json:"preset_players"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
// Only the first call loads; later calls return the first result.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// reset clears the loaded configuration. Intended for tests.
func reset() {
	cfg = nil
	loadOnce = sync.Once{}
	loadErr = nil
}

// RefSeesProbability returns the configured referee-sees probability.
func RefSeesProbability() float64 {
	if cfg == nil || cfg.RefSeesProbability <= 0 || cfg.RefSeesProbability > 1 {
		return defaultRefSeesProbability
	}
	return cfg.RefSeesProbability
}

// TacklePenalty returns the health cost of an unseen tackle.
func TacklePenalty() int {
	if cfg == nil || cfg.TackleHealthPenalty <= 0 {
		return defaultTackleHealthPenalty
	}
	return cfg.TackleHealthPenalty
}

// MissPenalty returns the health cost of a saved penalty kick.
func MissPenalty() int {
	if cfg == nil || cfg.PenaltyMissHealthPenalty <= 0 {
		return defaultPenaltyMissHealthPenalty
	}
	return cfg.PenaltyMissHealthPenalty
}

// ScoreIncrement returns the default goals per scoring action.
func ScoreIncrement() int {
	if cfg == nil || cfg.ScoreIncrement <= 0 {
		return defaultScoreIncrement
	}
	return cfg.ScoreIncrement
}

// LeaderboardCapacity returns the bound on persisted results.
func LeaderboardCapacity() int {
	if cfg == nil || cfg.LeaderboardCapacity <= 0 {
		return defaultLeaderboardCapacity
	}
	return cfg.LeaderboardCapacity
}

// DefaultHealth returns the starting health offered to new matches.
func DefaultHealth() int {
	if cfg == nil || cfg.DefaultHealth <= 0 {
		return defaultStartingHealth
	}
	return cfg.DefaultHealth
}

// PresetPlayers returns the selectable preset identities, or nil when
// no config file provided any.
func PresetPlayers() []string {
	if cfg == nil {
		return nil
	}
	return cfg.PresetPlayers
}

// IsPresetPlayer reports whether name is one of the configured presets.
func IsPresetPlayer(name string) bool {
	for _, p := range PresetPlayers() {
		if p == name {
			return true
		}
	}
	return false
}
