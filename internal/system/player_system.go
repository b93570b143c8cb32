// internal/system/player_system.go
package system

import (
	"log"

	"tower-fusion/internal/defs"
	"tower-fusion/internal/entity"
	"tower-fusion/internal/event"
	"tower-fusion/internal/interfaces"
	"tower-fusion/internal/types"
)

// PlayerSystem начисляет игроку золото за убитых воров.
type PlayerSystem struct {
	ecs     *entity.ECS
	gold    interfaces.GoldEarner
	enemies map[string]defs.EnemyDefinition
}

func NewPlayerSystem(ecs *entity.ECS, gold interfaces.GoldEarner) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, gold: gold, enemies: defs.EnemyLibrary}
}

// OnEvent обрабатывает события, на которые подписана система.
// EnemyDestroyed приходит до удаления сущности, поэтому вор ещё в ECS.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	id, _ := e.Data.(types.EntityID)
	thief, ok := s.ecs.Thieves[id]
	if !ok {
		return
	}
	def, ok := s.enemies[thief.DefID]
	if !ok || def.GoldReward <= 0 {
		return
	}
	s.gold.AddGold(def.GoldReward)
	log.Printf("[PlayerSystem] %s killed, awarded %d gold", def.Name, def.GoldReward)
}
