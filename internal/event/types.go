// internal/event/types.go
package event

// События сессии. В Data лежит новое значение поля.
const (
	HealthChanged    EventType = "HealthChanged"    // int
	GoldChanged      EventType = "GoldChanged"      // int
	WaveChanged      EventType = "WaveChanged"      // int
	LifecycleChanged EventType = "LifecycleChanged" // component.Lifecycle
	GameOver         EventType = "GameOver"
	Victory          EventType = "Victory"
)

// События кражи кукурузы.
const (
	CornGrabbed    EventType = "CornGrabbed"    // types.EntityID
	CornStolen     EventType = "CornStolen"     // types.EntityID
	GameLostToCorn EventType = "GameLostToCorn" // Украдена вся кукуруза
	LowCornWarning EventType = "LowCornWarning" // int, остаток в хранилище
)

// События хранилища.
const (
	CornTaken     EventType = "CornTaken"    // int, остаток
	CornReturned  EventType = "CornReturned" // int, остаток
	AllCornStolen EventType = "AllCornStolen"
)

const (
	WaveEnded      EventType = "WaveEnded"      // int, номер волны
	EnemyDestroyed EventType = "EnemyDestroyed" // types.EntityID
	EnemyEscaped   EventType = "EnemyEscaped"   // types.EntityID, вор добрался до точки появления
)
