package system

import (
	"fmt"
	"log"

	"tower-fusion/internal/component"
	"tower-fusion/internal/event"
	"tower-fusion/internal/interfaces"
	"tower-fusion/internal/types"
)

var _ interfaces.CornThief = (*CornSystem)(nil)

// CornSystem следит за кражей кукурузы: сколько вынесено за пределы карты
// и не проиграна ли из-за этого игра.
//
// Опустевшее хранилище игру не заканчивает: воров с кукурузой ещё можно
// перехватить. Проигрыш наступает, только когда вынесена вся кукуруза.
type CornSystem struct {
	storage         interfaces.CornPool
	eventDispatcher *event.Dispatcher
	lowThreshold    int
	stolen          int
	lossReported    bool
	subscriptions   []event.Subscription
}

// NewCornSystem создаёт трекер. storage может быть nil, тогда все операции
// с хранилищем ничего не делают.
func NewCornSystem(storage interfaces.CornPool, lowThreshold int, eventDispatcher *event.Dispatcher) *CornSystem {
	cs := &CornSystem{
		storage:         storage,
		eventDispatcher: eventDispatcher,
		lowThreshold:    lowThreshold,
	}
	if storage == nil {
		log.Println("[CornSystem] no corn storage, theft tracking disabled")
		return cs
	}
	cs.subscriptions = []event.Subscription{
		eventDispatcher.Subscribe(event.CornTaken, cs),
		eventDispatcher.Subscribe(event.CornReturned, cs),
		eventDispatcher.Subscribe(event.AllCornStolen, cs),
	}
	return cs
}

// Close отписывает трекер от событий хранилища.
func (s *CornSystem) Close() {
	for _, sub := range s.subscriptions {
		s.eventDispatcher.Unsubscribe(sub)
	}
	s.subscriptions = nil
}

func (s *CornSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.CornTaken:
		remaining, _ := e.Data.(int)
		log.Printf("[CornSystem] corn taken, remaining: %d", remaining)
		if remaining > 0 && remaining <= s.lowThreshold {
			log.Printf("[CornSystem] WARNING: only %d corn remaining!", remaining)
			s.eventDispatcher.Dispatch(event.Event{Type: event.LowCornWarning, Data: remaining})
		}
	case event.CornReturned:
		remaining, _ := e.Data.(int)
		log.Printf("[CornSystem] corn returned, remaining: %d", remaining)
	case event.AllCornStolen:
		log.Println("[CornSystem] storage is empty, thieves still have to get away")
	}
}

// RegisterGrab — вор пытается взять кукурузу из хранилища.
func (s *CornSystem) RegisterGrab(agent types.EntityID) {
	if s.storage == nil {
		log.Printf("[CornSystem] grab by %d ignored: no storage", agent)
		return
	}
	if !s.storage.TakeCorn(agent) {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.CornGrabbed, Data: agent})
}

// RegisterSteal — вор вынес кукурузу. Какой именно вор брал кукурузу,
// не проверяется, но вынести больше, чем находится в пути, нельзя.
func (s *CornSystem) RegisterSteal(agent types.EntityID) {
	if s.storage != nil && s.InTransit() <= 0 {
		log.Printf("[CornSystem] steal by %d ignored: no corn in transit", agent)
		return
	}
	s.stolen++
	log.Printf("[CornSystem] corn stolen by %d, total stolen: %d", agent, s.stolen)
	s.eventDispatcher.Dispatch(event.Event{Type: event.CornStolen, Data: agent})
	s.checkLoss()
}

// ReturnResource возвращает кукурузу убитого вора в хранилище.
func (s *CornSystem) ReturnResource() {
	if s.storage == nil {
		log.Println("[CornSystem] return ignored: no storage")
		return
	}
	if s.InTransit() <= 0 {
		log.Println("[CornSystem] return ignored: no corn in transit")
		return
	}
	s.storage.ReturnCorn()
}

// IsGameLost: вынесено не меньше, чем было в хранилище.
func (s *CornSystem) IsGameLost() bool {
	return s.storage != nil && s.stolen >= s.storage.InitialCornCount()
}

// ResetState обнуляет счётчик и заполняет хранилище заново.
func (s *CornSystem) ResetState() {
	s.stolen = 0
	s.lossReported = false
	if s.storage != nil {
		s.storage.ResetStorage()
	}
	log.Println("[CornSystem] corn state reset")
}

func (s *CornSystem) checkLoss() {
	if s.lossReported || !s.IsGameLost() {
		return
	}
	s.lossReported = true
	log.Println("[CornSystem] GAME LOST: all corn has been stolen")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameLostToCorn})
}

func (s *CornSystem) Stolen() int {
	return s.stolen
}

func (s *CornSystem) RemainingCorn() int {
	if s.storage == nil {
		return 0
	}
	return s.storage.CornCount()
}

func (s *CornSystem) InitialCornCount() int {
	if s.storage == nil {
		return 0
	}
	return s.storage.InitialCornCount()
}

// InTransit — кукуруза, которую несут воры. Не хранится, а вычисляется.
func (s *CornSystem) InTransit() int {
	return s.InitialCornCount() - s.RemainingCorn() - s.stolen
}

func (s *CornSystem) StoragePosition() component.Position {
	if s.storage == nil {
		return component.Position{}
	}
	return s.storage.Position()
}

func (s *CornSystem) IsInGrabRange(pos component.Position) bool {
	return s.storage != nil && s.storage.IsInGrabRange(pos)
}

// DebugInfo — сводка для отладочного вывода.
func (s *CornSystem) DebugInfo() string {
	if s.storage == nil {
		return "No corn storage"
	}
	return fmt.Sprintf("Corn: %d/%d in storage, %d stolen, %d in transit",
		s.RemainingCorn(), s.InitialCornCount(), s.stolen, s.InTransit())
}
