package ui

import (
	"testing"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/event"
	"tower-fusion/internal/types"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Fatalf("toRoman(%d): expected %q, got %q", n, want, got)
		}
	}
}

func TestCellColor(t *testing.T) {
	if cellColor(5, 5, 20) != healthEmptyColor {
		t.Fatalf("expected empty cell beyond health")
	}
	if cellColor(0, 10, 20) != healthLowColor {
		t.Fatalf("expected low color at half health")
	}
	if cellColor(0, 15, 20) != healthFullColor {
		t.Fatalf("expected full color above half health")
	}
}

func TestLifecycleColor(t *testing.T) {
	if LifecycleColor(component.Preparing) != config.BuildStateColor {
		t.Fatalf("expected build color while preparing")
	}
	if LifecycleColor(component.WaveInProgress) != config.WaveStateColor {
		t.Fatalf("expected wave color during a wave")
	}
}

func TestHUDFollowsEvents(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(d, component.SessionState{Health: 20, Gold: 1000}, 10)
	defer h.Close()

	d.Dispatch(event.Event{Type: event.HealthChanged, Data: 17})
	d.Dispatch(event.Event{Type: event.GoldChanged, Data: 940})
	d.Dispatch(event.Event{Type: event.WaveChanged, Data: 2})
	d.Dispatch(event.Event{Type: event.LifecycleChanged, Data: component.WaveInProgress})
	d.Dispatch(event.Event{Type: event.CornStolen, Data: types.EntityID(3)})
	d.Dispatch(event.Event{Type: event.LowCornWarning, Data: 4})

	want := []string{
		"Health: 17",
		"Gold: 940",
		"Wave: 2 (WaveInProgress)",
		"Corn stolen: 1/10",
		"Only 4 corn left in storage!",
	}
	got := h.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	d.Dispatch(event.Event{Type: event.WaveChanged, Data: 0})
	if lines := h.Lines(); len(lines) != 4 || lines[3] != "Corn stolen: 0/10" {
		t.Fatalf("expected corn counters cleared on restart, got %v", lines)
	}
}

func TestHUDClose(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(d, component.SessionState{Health: 20}, 10)
	h.Close()
	if d.ListenerCount(event.HealthChanged) != 0 {
		t.Fatalf("expected HUD to unsubscribe")
	}
}
