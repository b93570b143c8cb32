package system

import (
	"testing"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/event"
)

// recorder collects dispatched events in order.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

func record(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		d.Subscribe(t, r)
	}
	return r
}

var sessionEvents = []event.EventType{
	event.HealthChanged, event.GoldChanged, event.WaveChanged,
	event.LifecycleChanged, event.GameOver, event.Victory,
}

var cornEvents = []event.EventType{
	event.CornGrabbed, event.CornStolen, event.GameLostToCorn, event.LowCornWarning,
	event.CornTaken, event.CornReturned, event.AllCornStolen,
}

func expectTypes(t *testing.T, r *recorder, want ...event.EventType) {
	t.Helper()
	got := r.types()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}
}

type fakeScheduler struct {
	started []int
}

func (f *fakeScheduler) StartWave(waveNumber int) {
	f.started = append(f.started, waveNumber)
}

func testSettings() config.Settings {
	s := config.DefaultSettings()
	s.StartingHealth = 20
	s.StartingGold = 100
	return s
}

func newStorage(initial int, d *event.Dispatcher) *CornStorage {
	return NewCornStorage(initial, component.Position{X: 100, Y: 0}, 10, d)
}
