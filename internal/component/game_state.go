package component

// Lifecycle — фаза игровой сессии
type Lifecycle int

const (
	Preparing Lifecycle = iota // Подготовка, можно строить
	WaveInProgress
	GameOver
	Victory
	Paused // Зарезервировано для паузы извне
)

func (l Lifecycle) String() string {
	switch l {
	case Preparing:
		return "Preparing"
	case WaveInProgress:
		return "WaveInProgress"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	case Paused:
		return "Paused"
	}
	return "Unknown"
}

// IsTerminal сообщает, закончилась ли игра.
func (l Lifecycle) IsTerminal() bool {
	return l == GameOver || l == Victory
}

// SessionState — ресурсы игрока и фаза сессии
type SessionState struct {
	Health    int
	Gold      int
	Wave      int
	Lifecycle Lifecycle
}
