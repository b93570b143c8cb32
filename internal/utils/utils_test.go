package utils

import (
	"math"
	"testing"

	"tower-fusion/internal/component"
)

func TestMoveTowards(t *testing.T) {
	from := component.Position{X: 0, Y: 0}
	to := component.Position{X: 10, Y: 0}

	pos, reached := MoveTowards(from, to, 4)
	if reached || math.Abs(pos.X-4) > 1e-9 || pos.Y != 0 {
		t.Fatalf("expected (4,0) not reached, got %+v %v", pos, reached)
	}

	pos, reached = MoveTowards(pos, to, 100)
	if !reached || pos != to {
		t.Fatalf("expected to reach target, got %+v %v", pos, reached)
	}
}

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("expected identical sequences for the same seed")
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatalf("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatalf("Chance(1) returned false")
		}
	}
}
