// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

type waveFile struct {
	Wave            int    `json:"wave"`
	EnemyID         string `json:"enemy_id"`
	Count           int    `json:"count"`
	SpawnIntervalMs int    `json:"spawn_interval_ms"`
}

// LoadWaveDefinitions reads a wave table from a JSON file.
// Every enemy_id must exist in enemies.
func LoadWaveDefinitions(path string, enemies map[string]EnemyDefinition) (map[int]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var raw []waveFile
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}

	waves := make(map[int]WaveDefinition, len(raw))
	for _, w := range raw {
		if w.Wave <= 0 {
			return nil, fmt.Errorf("wave number must be positive, got %d", w.Wave)
		}
		if _, ok := enemies[w.EnemyID]; !ok {
			return nil, fmt.Errorf("wave %d: unknown enemy %q", w.Wave, w.EnemyID)
		}
		if w.Count < 0 || w.SpawnIntervalMs <= 0 {
			return nil, fmt.Errorf("wave %d: invalid count %d or interval %dms", w.Wave, w.Count, w.SpawnIntervalMs)
		}
		waves[w.Wave] = WaveDefinition{
			EnemyID:       w.EnemyID,
			Count:         w.Count,
			SpawnInterval: time.Duration(w.SpawnIntervalMs) * time.Millisecond,
		}
	}
	if _, ok := waves[1]; !ok {
		return nil, fmt.Errorf("wave definitions must include wave 1")
	}

	log.Printf("Loaded %d wave definitions", len(waves))
	return waves, nil
}
