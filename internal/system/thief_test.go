package system

import (
	"testing"

	"tower-fusion/internal/component"
	"tower-fusion/internal/entity"
	"tower-fusion/internal/event"
)

type thiefWorld struct {
	d       *event.Dispatcher
	state   *StateSystem
	corn    *CornSystem
	thieves *ThiefSystem
}

func newThiefWorld(t *testing.T, initialCorn int) *thiefWorld {
	t.Helper()
	d := event.NewDispatcher()
	state := NewStateSystem(testSettings(), nil, d)
	corn := NewCornSystem(newStorage(initialCorn, d), 5, d)
	thieves := NewThiefSystem(entity.NewECS(), corn, state, nil, component.Position{}, d)
	return &thiefWorld{d: d, state: state, corn: corn, thieves: thieves}
}

func (w *thiefWorld) run(seconds float64) {
	const dt = 0.05
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		w.thieves.Update(dt)
	}
}

func TestThiefStealsCorn(t *testing.T) {
	w := newThiefWorld(t, 3)
	rec := record(w.d, event.CornGrabbed, event.CornStolen, event.EnemyEscaped)

	id := w.thieves.Spawn("THIEF_CROW")
	if id == 0 {
		t.Fatalf("expected thief to spawn")
	}
	w.run(1)
	if !w.thieves.ecs.Thieves[id].Carrying() {
		t.Fatalf("expected thief to carry corn after reaching storage")
	}
	if w.corn.InTransit() != 1 {
		t.Fatalf("expected 1 in transit, got %d", w.corn.InTransit())
	}

	w.run(2)
	expectTypes(t, rec, event.CornGrabbed, event.CornStolen, event.EnemyEscaped)
	if w.corn.Stolen() != 1 || w.thieves.Count() != 0 {
		t.Fatalf("expected 1 stolen and no thieves left, got %d %d", w.corn.Stolen(), w.thieves.Count())
	}
}

func TestKilledCarrierReturnsCorn(t *testing.T) {
	w := newThiefWorld(t, 3)
	rec := record(w.d, event.CornReturned, event.EnemyDestroyed)

	id := w.thieves.Spawn("THIEF_CROW")
	w.run(1)
	w.thieves.Kill(id)

	expectTypes(t, rec, event.CornReturned, event.EnemyDestroyed)
	if w.corn.RemainingCorn() != 3 || w.corn.InTransit() != 0 {
		t.Fatalf("expected corn back in storage, got %s", w.corn.DebugInfo())
	}
}

func TestEmptyHandedThiefDamagesBase(t *testing.T) {
	w := newThiefWorld(t, 0)

	w.thieves.Spawn("THIEF_CROW")
	w.run(3)

	if w.state.Health() != 19 {
		t.Fatalf("expected health 19 after leak, got %d", w.state.Health())
	}
	if w.corn.Stolen() != 0 {
		t.Fatalf("expected nothing stolen, got %d", w.corn.Stolen())
	}
}

func TestDamageBelowHealthKeepsThief(t *testing.T) {
	w := newThiefWorld(t, 3)
	id := w.thieves.Spawn("THIEF_BOAR")

	w.thieves.Damage(id, 1)

	if w.thieves.Count() != 1 || w.thieves.ecs.Thieves[id].Health != 7 {
		t.Fatalf("expected wounded boar to survive")
	}
}

func TestSpawnUnknownThief(t *testing.T) {
	w := newThiefWorld(t, 3)
	if id := w.thieves.Spawn("THIEF_DRAGON"); id != 0 {
		t.Fatalf("expected 0 for unknown thief, got %d", id)
	}
}
