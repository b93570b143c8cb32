// internal/entity/ecs.go
package entity

import (
	"sort"

	"tower-fusion/internal/component"
	"tower-fusion/internal/types"
)

type ECS struct {
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Thieves    map[types.EntityID]*component.Thief
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Thieves:    make(map[types.EntityID]*component.Thief),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Thieves, id)
}

// ThiefIDs возвращает ID воров по возрастанию, чтобы обход был детерминированным.
func (ecs *ECS) ThiefIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Thieves))
	for id := range ecs.Thieves {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
