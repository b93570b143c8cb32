package system

import (
	"log"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/defs"
	"tower-fusion/internal/entity"
	"tower-fusion/internal/event"
	"tower-fusion/internal/interfaces"
	"tower-fusion/internal/types"
	"tower-fusion/internal/utils"
)

// ThiefSystem ведёт воров по скриптовому маршруту:
// точка появления → хранилище → обратно к точке появления.
type ThiefSystem struct {
	ecs             *entity.ECS
	corn            interfaces.CornThief
	health          interfaces.HealthModifier
	rng             *utils.PRNGService // nil — оборона не стреляет
	eventDispatcher *event.Dispatcher
	spawnPoint      component.Position
	enemies         map[string]defs.EnemyDefinition
}

func NewThiefSystem(ecs *entity.ECS, corn interfaces.CornThief, health interfaces.HealthModifier, rng *utils.PRNGService, spawnPoint component.Position, eventDispatcher *event.Dispatcher) *ThiefSystem {
	return &ThiefSystem{
		ecs:             ecs,
		corn:            corn,
		health:          health,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		spawnPoint:      spawnPoint,
		enemies:         defs.EnemyLibrary,
	}
}

// Spawn создаёт вора. Возвращает 0, если тип неизвестен.
func (s *ThiefSystem) Spawn(enemyID string) types.EntityID {
	def, ok := s.enemies[enemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", enemyID)
		return 0
	}
	id := s.ecs.NewEntity()
	pos := s.spawnPoint
	s.ecs.Positions[id] = &pos
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Thieves[id] = &component.Thief{
		DefID:  def.ID,
		Phase:  component.ThiefToStorage,
		Health: def.Health,
		Spawn:  s.spawnPoint,
	}
	return id
}

func (s *ThiefSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ThiefIDs() {
		thief, ok := s.ecs.Thieves[id]
		if !ok {
			continue
		}
		s.applyDefense(id, deltaTime)
		if _, alive := s.ecs.Thieves[id]; !alive {
			continue
		}
		s.move(id, thief, deltaTime)
	}
}

func (s *ThiefSystem) move(id types.EntityID, thief *component.Thief, deltaTime float64) {
	pos := s.ecs.Positions[id]
	step := s.ecs.Velocities[id].Speed * deltaTime

	switch thief.Phase {
	case component.ThiefToStorage:
		next, _ := utils.MoveTowards(*pos, s.corn.StoragePosition(), step)
		*pos = next
		if !s.corn.IsInGrabRange(*pos) {
			return
		}
		before := s.corn.RemainingCorn()
		s.corn.RegisterGrab(id)
		if s.corn.RemainingCorn() < before {
			thief.Phase = component.ThiefCarrying
		} else {
			thief.Phase = component.ThiefEmptyHanded
		}
	case component.ThiefCarrying, component.ThiefEmptyHanded:
		next, reached := utils.MoveTowards(*pos, thief.Spawn, step)
		*pos = next
		if reached {
			s.escape(id, thief)
		}
	}
}

func (s *ThiefSystem) escape(id types.EntityID, thief *component.Thief) {
	if thief.Carrying() {
		s.corn.RegisterSteal(id)
	} else if s.health != nil {
		damage := config.DamagePerLeak
		if def, ok := s.enemies[thief.DefID]; ok && def.DamageToPlayer > 0 {
			damage = def.DamageToPlayer
		}
		s.health.ModifyHealth(-damage)
	}
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
}

func (s *ThiefSystem) applyDefense(id types.EntityID, deltaTime float64) {
	if s.rng == nil {
		return
	}
	if s.ecs.Positions[id].DistanceTo(s.corn.StoragePosition()) > config.DefenseHitRange {
		return
	}
	if s.rng.Chance(config.DefenseHitRate * deltaTime) {
		s.Damage(id, 1)
	}
}

// Damage наносит урон вору. Убитый вор с кукурузой возвращает её в хранилище.
func (s *ThiefSystem) Damage(id types.EntityID, amount int) {
	thief, ok := s.ecs.Thieves[id]
	if !ok || thief.Health <= 0 {
		return
	}
	thief.Health -= amount
	if thief.Health > 0 {
		return
	}
	if thief.Carrying() {
		s.corn.ReturnResource()
	}
	// Событие до удаления: подписчикам нужен тип вора.
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: id})
	s.ecs.RemoveEntity(id)
}

// Kill убивает вора сразу.
func (s *ThiefSystem) Kill(id types.EntityID) {
	if thief, ok := s.ecs.Thieves[id]; ok {
		s.Damage(id, thief.Health)
	}
}

// Clear убирает всех воров без событий. Используется при перезапуске.
func (s *ThiefSystem) Clear() {
	for _, id := range s.ecs.ThiefIDs() {
		s.ecs.RemoveEntity(id)
	}
}

func (s *ThiefSystem) Count() int {
	return len(s.ecs.Thieves)
}
