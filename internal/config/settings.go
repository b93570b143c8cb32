package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Settings is the initialization-time configuration of a game session.
type Settings struct {
	StartingHealth     int     `json:"starting_health" yaml:"starting_health" env:"TF_STARTING_HEALTH"`
	StartingGold       int     `json:"starting_gold" yaml:"starting_gold" env:"TF_STARTING_GOLD"`
	WaveBonusBase      int     `json:"wave_bonus_base" yaml:"wave_bonus_base" env:"TF_WAVE_BONUS_BASE"`
	WaveBonusIncrement int     `json:"wave_bonus_increment" yaml:"wave_bonus_increment" env:"TF_WAVE_BONUS_INCREMENT"`
	VictoryWave        int     `json:"victory_wave" yaml:"victory_wave" env:"TF_VICTORY_WAVE"`
	InitialCorn        int     `json:"initial_corn" yaml:"initial_corn" env:"TF_INITIAL_CORN"`
	LowCornThreshold   int     `json:"low_corn_threshold" yaml:"low_corn_threshold" env:"TF_LOW_CORN_THRESHOLD"`
	CornGrabRange      float64 `json:"corn_grab_range" yaml:"corn_grab_range" env:"TF_CORN_GRAB_RANGE"`
	// HealthLoss: game over when health reaches zero.
	HealthLoss bool `json:"health_loss" yaml:"health_loss" env:"TF_HEALTH_LOSS"`
	// CornLoss: game over when every unit of corn has been stolen.
	CornLoss  bool   `json:"corn_loss" yaml:"corn_loss" env:"TF_CORN_LOSS"`
	Seed      int64  `json:"seed" yaml:"seed" env:"TF_SEED"`
	WavesFile string `json:"waves_file" yaml:"waves_file" env:"TF_WAVES_FILE"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		StartingHealth:     StartingHealth,
		StartingGold:       StartingGold,
		WaveBonusBase:      WaveBonusBase,
		WaveBonusIncrement: WaveBonusIncrement,
		VictoryWave:        VictoryWave,
		InitialCorn:        InitialCorn,
		LowCornThreshold:   LowCornThreshold,
		CornGrabRange:      CornGrabRange,
		HealthLoss:         true,
		CornLoss:           true,
	}
}

// LoadSettings reads a JSON or YAML settings file on top of the defaults,
// then applies environment overrides. An empty path skips the file.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := s.decode(filepath.Ext(path), data); err != nil {
			return s, err
		}
	}
	if err := s.ApplyEnv(); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, s); err != nil {
			return fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	default:
		return fmt.Errorf("unsupported settings format %q", ext)
	}
	return nil
}

// ApplyEnv overrides fields from TF_* environment variables.
func (s *Settings) ApplyEnv() error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values the session cannot start with.
func (s Settings) Validate() error {
	var errs []error
	if s.StartingHealth <= 0 {
		errs = append(errs, fmt.Errorf("starting_health must be positive, got %d", s.StartingHealth))
	}
	if s.StartingGold < 0 {
		errs = append(errs, fmt.Errorf("starting_gold must not be negative, got %d", s.StartingGold))
	}
	if s.WaveBonusBase < 0 || s.WaveBonusIncrement < 0 {
		errs = append(errs, errors.New("wave bonus must not be negative"))
	}
	if s.InitialCorn < 0 {
		errs = append(errs, fmt.Errorf("initial_corn must not be negative, got %d", s.InitialCorn))
	}
	if s.LowCornThreshold < 0 {
		errs = append(errs, fmt.Errorf("low_corn_threshold must not be negative, got %d", s.LowCornThreshold))
	}
	if s.CornGrabRange <= 0 {
		errs = append(errs, fmt.Errorf("corn_grab_range must be positive, got %g", s.CornGrabRange))
	}
	if s.VictoryWave < 0 {
		errs = append(errs, fmt.Errorf("victory_wave must not be negative, got %d", s.VictoryWave))
	}
	return errors.Join(errs...)
}
