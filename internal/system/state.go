package system

import (
	"log"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/event"
	"tower-fusion/internal/interfaces"
)

var _ interfaces.HealthModifier = (*StateSystem)(nil)

// StateSystem владеет здоровьем, золотом, номером волны и фазой сессии.
//
// Недопустимые переходы молча игнорируются. После GameOver или Victory
// состояние не меняется, пока не вызван RestartGame.
type StateSystem struct {
	settings        config.Settings
	scheduler       interfaces.WaveScheduler
	eventDispatcher *event.Dispatcher
	state           component.SessionState
	beforePause     component.Lifecycle
}

// NewStateSystem создаёт контроллер. scheduler может быть nil.
func NewStateSystem(settings config.Settings, scheduler interfaces.WaveScheduler, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		settings:        settings,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		state: component.SessionState{
			Health:    settings.StartingHealth,
			Gold:      settings.StartingGold,
			Lifecycle: component.Preparing,
		},
	}
}

// SetScheduler подключает планировщик волн после создания.
func (s *StateSystem) SetScheduler(scheduler interfaces.WaveScheduler) {
	s.scheduler = scheduler
}

func (s *StateSystem) ModifyHealth(delta int) {
	if s.terminal("ModifyHealth") {
		return
	}
	s.state.Health += delta
	if s.state.Health < 0 {
		s.state.Health = 0
	}
	s.dispatch(event.HealthChanged, s.state.Health)

	if s.state.Health > 0 {
		return
	}
	if !s.settings.HealthLoss {
		log.Println("[StateSystem] health depleted, but only corn theft ends the game")
		return
	}
	s.GameOver()
}

// SpendGold списывает золото, если его хватает. Иначе ничего не меняет.
func (s *StateSystem) SpendGold(amount int) bool {
	if amount < 0 || s.state.Lifecycle.IsTerminal() {
		return false
	}
	if s.state.Gold < amount {
		return false
	}
	s.state.Gold -= amount
	s.dispatch(event.GoldChanged, s.state.Gold)
	return true
}

func (s *StateSystem) AddGold(amount int) {
	if amount < 0 {
		log.Printf("[StateSystem] negative gold amount %d ignored", amount)
		return
	}
	if s.terminal("AddGold") {
		return
	}
	s.state.Gold += amount
	s.dispatch(event.GoldChanged, s.state.Gold)
}

func (s *StateSystem) StartWave() {
	if s.state.Lifecycle != component.Preparing {
		return
	}
	s.state.Wave++
	s.state.Lifecycle = component.WaveInProgress
	s.dispatch(event.WaveChanged, s.state.Wave)
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)

	if s.scheduler == nil {
		log.Printf("[StateSystem] no wave scheduler, wave %d has no enemies", s.state.Wave)
		return
	}
	s.scheduler.StartWave(s.state.Wave)
}

func (s *StateSystem) EndWave() {
	if s.state.Lifecycle != component.WaveInProgress {
		return
	}
	s.state.Lifecycle = component.Preparing
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)
	s.AddGold(s.WaveBonus(s.state.Wave))
}

// WaveBonus — золото за завершение волны.
func (s *StateSystem) WaveBonus(wave int) int {
	return s.settings.WaveBonusBase + wave*s.settings.WaveBonusIncrement
}

func (s *StateSystem) GameOver() {
	if s.terminal("GameOver") {
		return
	}
	s.state.Lifecycle = component.GameOver
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)
	s.dispatch(event.GameOver, nil)
	log.Println("[StateSystem] Game Over!")
}

func (s *StateSystem) Victory() {
	if s.terminal("Victory") {
		return
	}
	s.state.Lifecycle = component.Victory
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)
	s.dispatch(event.Victory, nil)
	log.Println("[StateSystem] Victory!")
}

// Pause ставит сессию на паузу. Вызывается только извне.
func (s *StateSystem) Pause() {
	if s.state.Lifecycle != component.Preparing && s.state.Lifecycle != component.WaveInProgress {
		return
	}
	s.beforePause = s.state.Lifecycle
	s.state.Lifecycle = component.Paused
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)
}

// Resume возвращает фазу, которая была до паузы.
func (s *StateSystem) Resume() {
	if s.state.Lifecycle != component.Paused {
		return
	}
	s.state.Lifecycle = s.beforePause
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)
}

func (s *StateSystem) RestartGame() {
	s.state = component.SessionState{
		Health:    s.settings.StartingHealth,
		Gold:      s.settings.StartingGold,
		Wave:      0,
		Lifecycle: component.Preparing,
	}
	s.dispatch(event.HealthChanged, s.state.Health)
	s.dispatch(event.GoldChanged, s.state.Gold)
	s.dispatch(event.WaveChanged, s.state.Wave)
	s.dispatch(event.LifecycleChanged, s.state.Lifecycle)
}

func (s *StateSystem) Health() int                    { return s.state.Health }
func (s *StateSystem) Gold() int                      { return s.state.Gold }
func (s *StateSystem) Wave() int                      { return s.state.Wave }
func (s *StateSystem) Lifecycle() component.Lifecycle { return s.state.Lifecycle }

// Snapshot возвращает копию состояния.
func (s *StateSystem) Snapshot() component.SessionState {
	return s.state
}

func (s *StateSystem) terminal(op string) bool {
	if !s.state.Lifecycle.IsTerminal() {
		return false
	}
	log.Printf("[StateSystem] %s ignored: game already ended (%s)", op, s.state.Lifecycle)
	return true
}

func (s *StateSystem) dispatch(eventType event.EventType, data interface{}) {
	s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: data})
}
