package loot

import (
	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// Drop represents a single resource drop request.
type Drop struct {
	Kind  model.ResourceKind
	Count int32
}

// HitChances holds the per-hit drop probabilities of a structure.
// Values are probabilities in [0,1]; rolls are independent per kind,
// so both wood and gold may drop from the same hit.
type HitChances struct {
	Wood float64
	Gold float64
}

// DestroyRanges holds the on-destruction drop amounts of a structure.
// Each amount is drawn uniformly in [Min, Max] inclusive.
type DestroyRanges struct {
	WoodMin, WoodMax int32
	GoldMin, GoldMax int32
}

// RollOnHit rolls the per-hit drops. Each configured kind is rolled
// independently: a uniform draw in [0,1) succeeds when it is <= the
// configured chance. Returned drops always have Count=1.
func RollOnHit(rng geom.Rand, c HitChances) []Drop {
	var drops []Drop
	if c.Wood > 0 && rng.Float64() <= c.Wood {
		drops = append(drops, Drop{Kind: model.ResourceWood, Count: 1})
	}
	if c.Gold > 0 && rng.Float64() <= c.Gold {
		drops = append(drops, Drop{Kind: model.ResourceGold, Count: 1})
	}
	return drops
}

// RollOnDestroy rolls the destruction drops: one uniform integer draw per
// configured range, inclusive of both bounds. Zero-amount results are
// omitted.
func RollOnDestroy(rng geom.Rand, r DestroyRanges) []Drop {
	var drops []Drop
	if n := rollRange(rng, r.WoodMin, r.WoodMax); n > 0 {
		drops = append(drops, Drop{Kind: model.ResourceWood, Count: n})
	}
	if n := rollRange(rng, r.GoldMin, r.GoldMax); n > 0 {
		drops = append(drops, Drop{Kind: model.ResourceGold, Count: n})
	}
	return drops
}

// rollRange draws a uniform integer in [min, max] inclusive.
// Degenerate ranges collapse without consuming a random draw.
func rollRange(rng geom.Rand, min, max int32) int32 {
	if max < min {
		max = min
	}
	if min < 0 {
		min = 0
	}
	if max <= 0 {
		return 0
	}
	if min == max {
		return min
	}
	return min + int32(rng.IntN(int(max-min+1)))
}
