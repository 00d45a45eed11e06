package geom

import "math"

// Rand is the random source injected into everything that rolls dice.
// *rand.Rand from math/rand/v2 satisfies it; tests use scripted sequences.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Point represents a position in the 2D game world.
// Value type, passed by value (immutable).
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a Point with the given coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point shifted by the given offset (immutable pattern).
func (p Point) Add(offset Point) Point {
	p.X += offset.X
	p.Y += offset.Y
	return p
}

// DistanceSquared returns the squared distance to another point (no sqrt).
func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// RandPointInDisk returns a uniformly distributed offset inside a disk of
// the given radius. Used for guard placement scatter and loot drop offsets.
func RandPointInDisk(rng Rand, radius float64) Point {
	if radius <= 0 {
		return Point{}
	}
	// sqrt keeps density uniform over the disk area
	r := radius * math.Sqrt(rng.Float64())
	angle := 2 * math.Pi * rng.Float64()
	return Point{
		X: r * math.Cos(angle),
		Y: r * math.Sin(angle),
	}
}
