package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
	if s.WaveBonusBase != 50 || s.WaveBonusIncrement != 10 || s.LowCornThreshold != 5 {
		t.Fatalf("unexpected default bonus/threshold: %+v", s)
	}
}

func TestLoadSettingsJSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{"starting_health": 40, "starting_gold": 100, "corn_loss": false}`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.StartingHealth != 40 || s.StartingGold != 100 {
		t.Fatalf("expected health 40 gold 100, got %d %d", s.StartingHealth, s.StartingGold)
	}
	if s.CornLoss {
		t.Fatalf("expected corn_loss disabled")
	}
	if !s.HealthLoss {
		t.Fatalf("expected health_loss to keep its default")
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", "initial_corn: 25\nlow_corn_threshold: 3\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.InitialCorn != 25 || s.LowCornThreshold != 3 {
		t.Fatalf("expected corn 25 threshold 3, got %d %d", s.InitialCorn, s.LowCornThreshold)
	}
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "settings.yml", "starting_gold: 300\n")
	t.Setenv("TF_STARTING_GOLD", "750")
	t.Setenv("TF_HEALTH_LOSS", "false")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.StartingGold != 750 {
		t.Fatalf("expected env gold 750, got %d", s.StartingGold)
	}
	if s.HealthLoss {
		t.Fatalf("expected health_loss disabled by env")
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "unknown format", file: "settings.toml", body: "x = 1"},
		{name: "bad json", file: "settings.json", body: "{"},
		{name: "invalid health", file: "settings.json", body: `{"starting_health": 0}`},
		{name: "negative corn", file: "settings.yaml", body: "initial_corn: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)
			if _, err := LoadSettings(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
