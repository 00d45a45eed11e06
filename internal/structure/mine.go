package structure

import (
	"log/slog"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// Mine implements the non-destructible resource node: probabilistic
// extraction per hit, depletion, timed regeneration, and a miner
// population derived from the remaining yield.
//
// Not synchronized on its own: the owning Structure serializes access.
type Mine struct {
	cfg *MineConfig

	remaining    int32
	regenElapsed time.Duration
	depleted     bool

	// Miner bookkeeping follows the Depleting policy: the spawn counter
	// never decreases, so killed miners are not replaced until the derived
	// target exceeds the historical spawn count.
	miners        []UnitHandle
	minersSpawned int32

	warnedSpawn bool
}

// NewMine creates a full mine for the given config.
func NewMine(cfg *MineConfig) *Mine {
	return &Mine{
		cfg:       cfg,
		remaining: cfg.Capacity,
	}
}

// Remaining returns the extractable units left in the node.
func (m *Mine) Remaining() int32 {
	return m.remaining
}

// Depleted reports whether the node is currently empty. Informational:
// extraction simply yields nothing until regeneration refills it.
func (m *Mine) Depleted() bool {
	return m.depleted
}

// MinerPopulation returns the current live miner count.
func (m *Mine) MinerPopulation() int {
	return len(m.miners)
}

// MinersSpawned returns the historical miner spawn counter.
func (m *Mine) MinersSpawned() int32 {
	return m.minersSpawned
}

// OnHit rolls one extraction attempt. The node takes no damage; a
// successful roll against a non-empty node yields one gold near the
// node. A draw is consumed on every hit regardless of remaining yield.
func (m *Mine) OnHit(pos geom.Point, scatter float64, loots LootSpawner, rng geom.Rand) {
	if rng.Float64() > m.cfg.ExtractionChance {
		return
	}
	if m.remaining <= 0 {
		return
	}

	m.remaining--
	loots.SpawnResource(model.ResourceGold, 1, pos.Add(geom.RandPointInDisk(rng, scatter)))

	if m.remaining == 0 {
		m.depleted = true
		slog.Info("gold mine depleted")
	}
}

// Tick advances regeneration and reconciles the miner population. The
// miner target is derived from remaining yield and re-evaluated every
// tick rather than on a spawn interval.
func (m *Mine) Tick(dt time.Duration, center geom.Point, spawner UnitSpawner, rng geom.Rand) {
	if m.cfg.RegenInterval > 0 {
		m.regenElapsed += dt
		for m.regenElapsed >= m.cfg.RegenInterval {
			m.regenElapsed -= m.cfg.RegenInterval
			m.remaining += m.cfg.RegenAmount
			if m.remaining > m.cfg.Capacity {
				m.remaining = m.cfg.Capacity
			}
		}
		if m.depleted && m.remaining > 0 {
			m.depleted = false
		}
	}

	// Prune dead miners from the live set. Depleting policy: no slot is
	// freed on the spawn counter.
	alive := m.miners[:0]
	for _, u := range m.miners {
		if u.Alive() {
			alive = append(alive, u)
		}
	}
	m.miners = alive

	for m.minersSpawned < m.desiredMiners() {
		if m.cfg.Miner == nil {
			if !m.warnedSpawn {
				m.warnedSpawn = true
				slog.Warn("mine has no miner config, skipping spawns")
			}
			return
		}

		pos := center.Add(geom.RandPointInDisk(rng, m.cfg.Radius))
		handle, err := spawner.SpawnGuard(m.cfg.Miner, pos)
		if err != nil {
			if !m.warnedSpawn {
				m.warnedSpawn = true
				slog.Warn("miner spawn failed, skipping", "error", err)
			}
			return
		}

		m.miners = append(m.miners, handle)
		m.minersSpawned++

		slog.Debug("miner spawned",
			"population", len(m.miners),
			"spawned", m.minersSpawned,
			"remaining", m.remaining)
	}
}

// desiredMiners derives the miner target from the remaining yield,
// capped by MinerCap.
func (m *Mine) desiredMiners() int32 {
	if m.cfg.MinerPerUnits <= 0 {
		return 0
	}
	desired := m.remaining / m.cfg.MinerPerUnits
	if desired > m.cfg.MinerCap {
		desired = m.cfg.MinerCap
	}
	return desired
}

// restore sets the remaining yield with invariant clamps (persistence).
func (m *Mine) restore(remaining int32) {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > m.cfg.Capacity {
		remaining = m.cfg.Capacity
	}
	m.remaining = remaining
	m.depleted = remaining == 0
}
