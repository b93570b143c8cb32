// internal/interfaces/game_context.go
package interfaces

import (
	"tower-fusion/internal/component"
	"tower-fusion/internal/types"
)

// CornPool — хранилище кукурузы, из которого воруют.
type CornPool interface {
	TakeCorn(agent types.EntityID) bool
	ReturnCorn()
	ResetStorage()
	CornCount() int
	InitialCornCount() int
	IsInGrabRange(pos component.Position) bool
	Position() component.Position
}

// WaveScheduler запускает волну с указанным номером.
type WaveScheduler interface {
	StartWave(waveNumber int)
}

// CornThief — то, что нужно ворам от трекера кражи.
type CornThief interface {
	RegisterGrab(agent types.EntityID)
	RegisterSteal(agent types.EntityID)
	ReturnResource()
	IsInGrabRange(pos component.Position) bool
	StoragePosition() component.Position
	RemainingCorn() int
}

// HealthModifier — то, что нужно ворам от контроллера сессии.
type HealthModifier interface {
	ModifyHealth(delta int)
}

// GoldEarner — получатель награды за убийство.
type GoldEarner interface {
	AddGold(amount int)
}
