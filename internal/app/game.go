// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/defs"
	"tower-fusion/internal/entity"
	"tower-fusion/internal/event"
	"tower-fusion/internal/system"
	"tower-fusion/internal/utils"
)

// Game wires the session systems together and drives them each tick.
type Game struct {
	Settings        config.Settings
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Storage         *system.CornStorage
	CornSystem      *system.CornSystem
	StateSystem     *system.StateSystem
	WaveSystem      *system.WaveSystem
	ThiefSystem     *system.ThiefSystem
	PlayerSystem    *system.PlayerSystem
	Rng             *utils.PRNGService

	subscriptions []event.Subscription
}

// NewGame builds a session. waves may be nil to use the built-in table.
func NewGame(settings config.Settings, waves map[int]defs.WaveDefinition) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	storage := system.NewCornStorage(
		settings.InitialCorn,
		component.Position{X: config.StorageX, Y: config.StorageY},
		settings.CornGrabRange,
		eventDispatcher,
	)

	g := &Game{
		Settings:        settings,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Storage:         storage,
		Rng:             utils.NewPRNGService(settings.Seed),
	}
	g.CornSystem = system.NewCornSystem(storage, settings.LowCornThreshold, eventDispatcher)
	g.StateSystem = system.NewStateSystem(settings, nil, eventDispatcher)
	g.ThiefSystem = system.NewThiefSystem(ecs, g.CornSystem, g.StateSystem, g.Rng,
		component.Position{X: config.SpawnX, Y: config.SpawnY}, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(waves, g.ThiefSystem.Spawn, eventDispatcher)
	g.StateSystem.SetScheduler(g.WaveSystem)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.StateSystem)

	g.subscriptions = append(g.subscriptions,
		eventDispatcher.SubscribeFunc(event.WaveEnded, g.onWaveEnded),
		eventDispatcher.SubscribeFunc(event.GameOver, g.onSessionEnded),
		eventDispatcher.SubscribeFunc(event.Victory, g.onSessionEnded),
		eventDispatcher.Subscribe(event.EnemyDestroyed, g.PlayerSystem),
	)
	if settings.CornLoss {
		g.subscriptions = append(g.subscriptions,
			eventDispatcher.SubscribeFunc(event.GameLostToCorn, g.onCornLost))
	}

	log.Printf("Game initialized: health %d, gold %d, corn %d", settings.StartingHealth, settings.StartingGold, settings.InitialCorn)
	return g
}

// Update advances the running wave. Nothing moves outside WaveInProgress.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.StateSystem.Lifecycle() != component.WaveInProgress {
		return
	}
	g.WaveSystem.Update(deltaTime)
	g.ThiefSystem.Update(deltaTime)
}

// StartWave begins the next wave if the session is preparing.
func (g *Game) StartWave() {
	g.StateSystem.StartWave()
}

// TogglePause pauses a running session or resumes a paused one.
func (g *Game) TogglePause() {
	if g.StateSystem.Lifecycle() == component.Paused {
		g.StateSystem.Resume()
		return
	}
	g.StateSystem.Pause()
}

// DeclareVictory ends the session as won. In corn theft mode a session with
// an empty storage cannot be won.
func (g *Game) DeclareVictory() bool {
	if g.Settings.CornLoss && g.CornSystem.RemainingCorn() <= 0 {
		log.Println("Cannot win - all corn has been taken!")
		return false
	}
	if g.Settings.CornLoss {
		log.Printf("Victory with %d corn remaining!", g.CornSystem.RemainingCorn())
	}
	g.StateSystem.Victory()
	return g.StateSystem.Lifecycle() == component.Victory
}

// Restart resets every system to a fresh session.
func (g *Game) Restart() {
	g.WaveSystem.Stop()
	g.ThiefSystem.Clear()
	g.CornSystem.ResetState()
	g.StateSystem.RestartGame()
}

// Close detaches every listener the game registered.
func (g *Game) Close() {
	for _, sub := range g.subscriptions {
		g.EventDispatcher.Unsubscribe(sub)
	}
	g.subscriptions = nil
	g.WaveSystem.Close()
	g.CornSystem.Close()
}

// DebugInfo summarises the session for the HUD.
func (g *Game) DebugInfo() string {
	s := g.StateSystem.Snapshot()
	return fmt.Sprintf("%s | wave %d | thieves %d\n%s",
		s.Lifecycle, s.Wave, g.ThiefSystem.Count(), g.CornSystem.DebugInfo())
}

func (g *Game) onWaveEnded(e event.Event) {
	wave, _ := e.Data.(int)
	g.StateSystem.EndWave()
	if g.Settings.VictoryWave > 0 && wave >= g.Settings.VictoryWave {
		g.DeclareVictory()
	}
}

func (g *Game) onCornLost(event.Event) {
	log.Println("Game Lost - All corn has been stolen!")
	g.StateSystem.GameOver()
}

func (g *Game) onSessionEnded(event.Event) {
	g.WaveSystem.Stop()
	g.ThiefSystem.Clear()
}
