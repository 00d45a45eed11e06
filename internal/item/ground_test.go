package item

import (
	"testing"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

func TestSpawnResourceAndPickup(t *testing.T) {
	m := NewGroundManager(0)

	m.SpawnResource(model.ResourceWood, 3, geom.NewPoint(5, 5))
	m.SpawnResource(model.ResourceWood, 2, geom.NewPoint(6, 6))
	m.SpawnResource(model.ResourceGold, 1, geom.NewPoint(7, 7))

	if m.Count() != 3 {
		t.Fatalf("Count = %d, want 3", m.Count())
	}
	if got := m.CountOf(model.ResourceWood); got != 5 {
		t.Errorf("CountOf(wood) = %d, want 5", got)
	}
	if got := m.CountOf(model.ResourceMeat); got != 0 {
		t.Errorf("CountOf(meat) = %d, want 0", got)
	}

	pile, ok := m.Pickup(1)
	if !ok {
		t.Fatal("Pickup(1) failed")
	}
	if pile.Kind() != model.ResourceWood || pile.Count() != 3 {
		t.Errorf("picked up %v x%d", pile.Kind(), pile.Count())
	}
	if _, ok := m.Pickup(1); ok {
		t.Error("double pickup must fail")
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d after pickup, want 2", m.Count())
	}
}

func TestSpawnResourceIgnoresNonPositive(t *testing.T) {
	m := NewGroundManager(0)

	m.SpawnResource(model.ResourceGold, 0, geom.NewPoint(0, 0))
	m.SpawnResource(model.ResourceGold, -2, geom.NewPoint(0, 0))

	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0", m.Count())
	}
}

func TestSweepExpiresOldPiles(t *testing.T) {
	m := NewGroundManager(30 * time.Second)

	m.SpawnResource(model.ResourceMeat, 1, geom.NewPoint(0, 0))
	m.SpawnResource(model.ResourceMeat, 1, geom.NewPoint(1, 1))

	if removed := m.Sweep(time.Now()); removed != 0 {
		t.Errorf("fresh piles swept: %d", removed)
	}

	if removed := m.Sweep(time.Now().Add(31 * time.Second)); removed != 2 {
		t.Errorf("Sweep removed %d, want 2", removed)
	}
	if m.Count() != 0 {
		t.Errorf("Count = %d after sweep, want 0", m.Count())
	}
}

func TestSweepDisabledWithZeroWindow(t *testing.T) {
	m := NewGroundManager(0)
	m.SpawnResource(model.ResourceWood, 1, geom.NewPoint(0, 0))

	if removed := m.Sweep(time.Now().Add(time.Hour)); removed != 0 {
		t.Errorf("Sweep removed %d with expiry disabled", removed)
	}
}
