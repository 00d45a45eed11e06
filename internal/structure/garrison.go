package structure

import (
	"log/slog"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// Garrison manages the bounded guard population of one structure: spawn
// timing, weighted composition and cap enforcement. Replenishment follows
// the configured Policy.
//
// Not synchronized on its own: the owning Structure serializes access.
type Garrison struct {
	cfg *GarrisonConfig

	units      []UnitHandle // live set, dead handles pruned every tick
	spawned    int32        // logical spawn counter checked against Cap
	sinceSpawn time.Duration
	activated  bool

	warnedSpawn bool // log-once guard for unresolvable spawns
}

// NewGarrison creates a garrison for the given config.
func NewGarrison(cfg *GarrisonConfig) *Garrison {
	return &Garrison{cfg: cfg}
}

// Population returns the current live-unit count.
func (g *Garrison) Population() int {
	return len(g.units)
}

// Spawned returns the logical spawn counter compared against the cap.
func (g *Garrison) Spawned() int32 {
	return g.spawned
}

// Activated reports whether the player was within activation range on the
// last tick.
func (g *Garrison) Activated() bool {
	return g.activated
}

// Tick advances the garrison by dt. Activation follows the player
// distance; dead units are pruned; one unit may spawn when the interval
// has elapsed and the cap allows it.
func (g *Garrison) Tick(dt time.Duration, playerDistance float64, center geom.Point, spawner UnitSpawner, rng geom.Rand) {
	g.activated = playerDistance <= g.cfg.ActivationRange

	pruned := g.prune()
	if g.cfg.Policy == PolicyRegenerating && pruned > 0 {
		g.spawned -= int32(pruned)
		if g.spawned < 0 {
			g.spawned = 0
		}
	}

	g.sinceSpawn += dt

	if !g.activated || g.spawned >= g.cfg.Cap || g.sinceSpawn < g.cfg.SpawnInterval {
		return
	}

	unitCfg := g.pick(rng)
	if unitCfg == nil {
		if !g.warnedSpawn {
			g.warnedSpawn = true
			slog.Warn("garrison has no resolvable unit config, skipping spawns")
		}
		return
	}

	pos := center.Add(geom.RandPointInDisk(rng, g.cfg.Radius))
	handle, err := spawner.SpawnGuard(unitCfg, pos)
	if err != nil {
		if !g.warnedSpawn {
			g.warnedSpawn = true
			slog.Warn("guard spawn failed, skipping", "unit", unitCfg.Name(), "error", err)
		}
		return
	}

	g.units = append(g.units, handle)
	g.spawned++
	g.sinceSpawn = 0

	slog.Debug("guard spawned",
		"unit", unitCfg.Name(),
		"population", len(g.units),
		"spawned", g.spawned,
		"cap", g.cfg.Cap,
		"policy", g.cfg.Policy)
}

// Reset clears the population and timers. Used when the owning structure
// respawns with a fresh garrison.
func (g *Garrison) Reset() {
	g.units = nil
	g.spawned = 0
	g.sinceSpawn = 0
	g.activated = false
}

// prune drops dead handles from the live set and returns how many were
// removed.
func (g *Garrison) prune() int {
	alive := g.units[:0]
	for _, u := range g.units {
		if u.Alive() {
			alive = append(alive, u)
		}
	}
	pruned := len(g.units) - len(alive)
	g.units = alive
	return pruned
}

// pick selects a unit config for the next spawn. The stronghold support
// substitution is rolled first; otherwise the roster is sampled by weight
// (equal weights give a uniform pick). Returns nil when nothing is
// configured.
func (g *Garrison) pick(rng geom.Rand) *model.UnitConfig {
	if g.cfg.Support != nil && g.cfg.SupportChance > 0 && rng.Float64() < g.cfg.SupportChance {
		return g.cfg.Support
	}

	var total int32
	for _, e := range g.cfg.Roster {
		if e.Unit != nil && e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return nil
	}

	roll := int32(rng.IntN(int(total)))
	for _, e := range g.cfg.Roster {
		if e.Unit == nil || e.Weight <= 0 {
			continue
		}
		if roll < e.Weight {
			return e.Unit
		}
		roll -= e.Weight
	}
	return nil
}
