package system

import (
	"testing"
	"time"

	"tower-fusion/internal/defs"
	"tower-fusion/internal/event"
	"tower-fusion/internal/types"
)

func TestWaveSystemSpawnsAndEnds(t *testing.T) {
	d := event.NewDispatcher()
	rec := record(d, event.WaveEnded)
	patterns := map[int]defs.WaveDefinition{
		1: {EnemyID: "THIEF_CROW", Count: 2, SpawnInterval: 500 * time.Millisecond},
	}
	var spawned []types.EntityID
	next := types.EntityID(0)
	ws := NewWaveSystem(patterns, func(enemyID string) types.EntityID {
		if enemyID != "THIEF_CROW" {
			t.Fatalf("unexpected enemy %s", enemyID)
		}
		next++
		spawned = append(spawned, next)
		return next
	}, d)

	ws.StartWave(1)
	ws.Update(0.3)
	if len(spawned) != 0 {
		t.Fatalf("expected no spawn before interval, got %d", len(spawned))
	}
	ws.Update(0.3)
	ws.Update(0.5)
	if len(spawned) != 2 || ws.ActiveEnemies() != 2 {
		t.Fatalf("expected 2 spawned and active, got %d %d", len(spawned), ws.ActiveEnemies())
	}

	ws.Update(1)
	if rec.count(event.WaveEnded) != 0 {
		t.Fatalf("wave ended with enemies alive")
	}

	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: spawned[0]})
	d.Dispatch(event.Event{Type: event.EnemyEscaped, Data: spawned[1]})
	ws.Update(0.1)
	ws.Update(0.1)

	if rec.count(event.WaveEnded) != 1 {
		t.Fatalf("expected WaveEnded once, got %d", rec.count(event.WaveEnded))
	}
	if rec.events[0].Data != 1 {
		t.Fatalf("expected WaveEnded(1), got %v", rec.events[0].Data)
	}
	if ws.Current() != nil {
		t.Fatalf("expected no current wave")
	}
}

func TestWaveSystemStop(t *testing.T) {
	d := event.NewDispatcher()
	rec := record(d, event.WaveEnded)
	ws := NewWaveSystem(nil, func(string) types.EntityID { return 1 }, d)

	ws.StartWave(1)
	ws.Update(5)
	ws.Stop()
	ws.Update(5)

	if rec.count(event.WaveEnded) != 0 || ws.ActiveEnemies() != 0 {
		t.Fatalf("expected stopped wave to stay silent")
	}
}

func TestWaveSystemClose(t *testing.T) {
	d := event.NewDispatcher()
	ws := NewWaveSystem(nil, nil, d)
	ws.Close()
	if d.ListenerCount(event.EnemyDestroyed) != 0 || d.ListenerCount(event.EnemyEscaped) != 0 {
		t.Fatalf("expected listeners removed")
	}
}
