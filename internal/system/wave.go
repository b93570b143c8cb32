// internal/system/wave.go
package system

import (
	"log"

	"tower-fusion/internal/component"
	"tower-fusion/internal/defs"
	"tower-fusion/internal/event"
	"tower-fusion/internal/interfaces"
	"tower-fusion/internal/types"
)

var _ interfaces.WaveScheduler = (*WaveSystem)(nil)

// SpawnFunc создаёт вора указанного типа и возвращает его ID.
type SpawnFunc func(enemyID string) types.EntityID

type WaveSystem struct {
	patterns        map[int]defs.WaveDefinition
	eventDispatcher *event.Dispatcher
	spawn           SpawnFunc
	current         *component.Wave
	activeEnemies   map[types.EntityID]struct{}
	subscriptions   []event.Subscription
}

func NewWaveSystem(patterns map[int]defs.WaveDefinition, spawn SpawnFunc, eventDispatcher *event.Dispatcher) *WaveSystem {
	if patterns == nil {
		patterns = defs.WavePatterns
	}
	ws := &WaveSystem{
		patterns:        patterns,
		eventDispatcher: eventDispatcher,
		spawn:           spawn,
		activeEnemies:   make(map[types.EntityID]struct{}),
	}
	ws.subscriptions = []event.Subscription{
		eventDispatcher.Subscribe(event.EnemyDestroyed, ws),
		eventDispatcher.Subscribe(event.EnemyEscaped, ws),
	}
	return ws
}

func (s *WaveSystem) Close() {
	for _, sub := range s.subscriptions {
		s.eventDispatcher.Unsubscribe(sub)
	}
	s.subscriptions = nil
}

func (s *WaveSystem) StartWave(waveNumber int) {
	waveDef, ok := defs.WaveFor(s.patterns, waveNumber)
	if !ok {
		log.Printf("[WaveSystem] no definition for wave %d", waveNumber)
		waveDef = defs.WaveDefinition{}
	}
	s.current = &component.Wave{
		Number:         waveNumber,
		EnemyID:        waveDef.EnemyID,
		EnemiesToSpawn: waveDef.Count,
		SpawnInterval:  waveDef.SpawnInterval.Seconds(),
	}
	log.Printf("[WaveSystem] wave %d: %d x %s", waveNumber, waveDef.Count, waveDef.EnemyID)
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.current
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
		return
	}
	if len(s.activeEnemies) == 0 {
		s.current = nil
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// Stop бросает текущую волну без события WaveEnded.
func (s *WaveSystem) Stop() {
	s.current = nil
	s.activeEnemies = make(map[types.EntityID]struct{})
}

func (s *WaveSystem) Current() *component.Wave {
	return s.current
}

func (s *WaveSystem) ActiveEnemies() int {
	return len(s.activeEnemies)
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	if s.spawn == nil {
		log.Printf("[WaveSystem] no spawner, enemy %s skipped", wave.EnemyID)
		return
	}
	id := s.spawn(wave.EnemyID)
	if id == 0 {
		return
	}
	s.activeEnemies[id] = struct{}{}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if id, ok := e.Data.(types.EntityID); ok {
		delete(s.activeEnemies, id)
	}
}
