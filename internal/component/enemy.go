package component

// ThiefPhase — этап маршрута вора
type ThiefPhase int

const (
	ThiefToStorage   ThiefPhase = iota // Идёт к хранилищу
	ThiefCarrying                      // Несёт кукурузу обратно
	ThiefEmptyHanded                   // Хранилище пустое, уходит без добычи
)

// Thief представляет вора кукурузы.
type Thief struct {
	DefID  string
	Phase  ThiefPhase
	Health int
	Spawn  Position // Куда вор возвращается с добычей
}

// Carrying сообщает, несёт ли вор кукурузу.
func (t *Thief) Carrying() bool {
	return t.Phase == ThiefCarrying
}
