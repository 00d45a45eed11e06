package geom

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestPointAdd(t *testing.T) {
	p := NewPoint(10, -3).Add(NewPoint(-4, 5))
	if p.X != 6 || p.Y != 2 {
		t.Errorf("got (%v, %v), want (6, 2)", p.X, p.Y)
	}
}

func TestPointAddDoesNotMutate(t *testing.T) {
	p := NewPoint(1, 1)
	_ = p.Add(NewPoint(5, 5))
	if p.X != 1 || p.Y != 1 {
		t.Errorf("receiver mutated: (%v, %v)", p.X, p.Y)
	}
}

func TestDistance(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(3, 4)

	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := a.DistanceSquared(b); d != 25 {
		t.Errorf("DistanceSquared = %v, want 25", d)
	}
	if d := a.Distance(a); d != 0 {
		t.Errorf("self distance = %v, want 0", d)
	}
}

func TestRandPointInDisk_StaysInsideRadius(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const radius = 5.0

	for range 1000 {
		p := RandPointInDisk(rng, radius)
		if d := math.Hypot(p.X, p.Y); d > radius {
			t.Fatalf("point (%v, %v) outside radius: %v", p.X, p.Y, d)
		}
	}
}

func TestRandPointInDisk_ZeroRadius(t *testing.T) {
	// Must not consume any draws: a panicking source proves it.
	p := RandPointInDisk(panicRand{}, 0)
	if p != (Point{}) {
		t.Errorf("got %v, want origin", p)
	}
	p = RandPointInDisk(panicRand{}, -1)
	if p != (Point{}) {
		t.Errorf("got %v, want origin", p)
	}
}

type panicRand struct{}

func (panicRand) Float64() float64 { panic("unexpected draw") }
func (panicRand) IntN(int) int     { panic("unexpected draw") }
