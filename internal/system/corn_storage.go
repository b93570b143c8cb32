package system

import (
	"log"

	"tower-fusion/internal/component"
	"tower-fusion/internal/event"
	"tower-fusion/internal/interfaces"
	"tower-fusion/internal/types"
)

var _ interfaces.CornPool = (*CornStorage)(nil)

// CornStorage — хранилище кукурузы, которое обороняет игрок.
type CornStorage struct {
	stock           component.CornStock
	position        component.Position
	grabRange       float64
	eventDispatcher *event.Dispatcher
}

func NewCornStorage(initial int, position component.Position, grabRange float64, eventDispatcher *event.Dispatcher) *CornStorage {
	if initial < 0 {
		initial = 0
	}
	return &CornStorage{
		stock:           component.CornStock{Initial: initial, Current: initial},
		position:        position,
		grabRange:       grabRange,
		eventDispatcher: eventDispatcher,
	}
}

// TakeCorn забирает одну единицу. Возвращает false, если хранилище пустое.
func (s *CornStorage) TakeCorn(agent types.EntityID) bool {
	if s.stock.Current <= 0 {
		return false
	}
	s.stock.Current--
	s.dispatch(event.Event{Type: event.CornTaken, Data: s.stock.Current})
	if s.stock.Current == 0 {
		s.dispatch(event.Event{Type: event.AllCornStolen})
	}
	return true
}

// ReturnCorn возвращает единицу, которую нёс убитый вор.
func (s *CornStorage) ReturnCorn() {
	if s.stock.Current >= s.stock.Initial {
		log.Printf("[CornStorage] return ignored, storage already full (%d)", s.stock.Current)
		return
	}
	s.stock.Current++
	s.dispatch(event.Event{Type: event.CornReturned, Data: s.stock.Current})
}

func (s *CornStorage) ResetStorage() {
	s.stock.Current = s.stock.Initial
}

func (s *CornStorage) CornCount() int {
	return s.stock.Current
}

func (s *CornStorage) InitialCornCount() int {
	return s.stock.Initial
}

func (s *CornStorage) Position() component.Position {
	return s.position
}

func (s *CornStorage) IsInGrabRange(pos component.Position) bool {
	return s.position.DistanceTo(pos) <= s.grabRange
}

func (s *CornStorage) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}
