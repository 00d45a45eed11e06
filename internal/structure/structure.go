package structure

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/loot"
	"github.com/udisondev/wildraid/internal/model"
)

// State is the lifecycle state of a structure.
type State int32

const (
	StateActive State = iota
	StateDestroyed
	StateAwaitingRespawn
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDestroyed:
		return "destroyed"
	case StateAwaitingRespawn:
		return "awaiting_respawn"
	default:
		return "unknown"
	}
}

// Structure is the fortified-structure lifecycle engine. One engine per
// attackable entity; houses, towers, the stronghold and the gold mine
// differ only in the Template they are built from.
//
// Thread-safe: all mutable state is guarded by mu. The host is expected
// to drive Tick and deliver damage from a single world tick owner, but
// overlapping calls are safe.
type Structure struct {
	mu sync.Mutex

	id     uint32
	tmpl   *Template
	pos    geom.Point
	origin geom.Point

	currentHP int32
	state     State

	stockpile *Stockpile
	garrison  *Garrison
	respawn   *RespawnGate
	mine      *Mine

	rng    geom.Rand
	loots  LootSpawner
	events Notifier
	units  UnitSpawner

	warnedDeadHit bool // log-once guard for damage after destruction
}

// New creates a structure at full health from its template.
func New(id uint32, tmpl *Template, pos geom.Point, rng geom.Rand, loots LootSpawner, events Notifier, units UnitSpawner) *Structure {
	s := &Structure{
		id:        id,
		tmpl:      tmpl,
		pos:       pos,
		origin:    pos,
		currentHP: tmpl.MaxHP,
		state:     StateActive,
		stockpile: NewStockpile(),
		rng:       rng,
		loots:     loots,
		events:    events,
		units:     units,
	}

	if tmpl.Garrison != nil {
		s.garrison = NewGarrison(tmpl.Garrison)
	}
	if tmpl.Respawn != nil {
		s.respawn = NewRespawnGate(tmpl.Respawn)
	}
	if tmpl.Mine != nil {
		s.mine = NewMine(tmpl.Mine)
	}

	return s
}

// ID returns the structure's object ID.
func (s *Structure) ID() uint32 { return s.id }

// Kind returns the structure kind.
func (s *Structure) Kind() Kind { return s.tmpl.Kind }

// Name returns the structure name.
func (s *Structure) Name() string { return s.tmpl.Name }

// Template returns the policy record this structure was built from.
func (s *Structure) Template() *Template { return s.tmpl }

// Position returns the current position.
func (s *Structure) Position() geom.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// CurrentHP returns the current health.
func (s *Structure) CurrentHP() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentHP
}

// MaxHP returns the maximum health.
func (s *Structure) MaxHP() int32 { return s.tmpl.MaxHP }

// State returns the lifecycle state.
func (s *Structure) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Garrison returns the guard controller (nil if the type has none).
func (s *Structure) Garrison() *Garrison { return s.garrison }

// Mine returns the resource node controller (nil for destructible types).
func (s *Structure) Mine() *Mine { return s.mine }

// RespawnGate returns the respawn gate (nil if the type cannot respawn).
func (s *Structure) RespawnGate() *RespawnGate { return s.respawn }

// StockpileCount returns the stored amount of one resource kind.
func (s *Structure) StockpileCount(kind model.ResourceKind) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stockpile.Count(kind)
}

// Deposit stores resources carried in by an allied worker unit.
func (s *Structure) Deposit(kind model.ResourceKind, amount int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return
	}
	s.stockpile.Deposit(kind, amount)
}

// ApplyDamage delivers a combat hit. For resource nodes this is an
// extraction roll; for everything else it decrements health, rolls the
// per-hit loot and destroys the structure when health reaches zero.
// Damage to a non-active structure is silently ignored — overlapping hits
// during a destroy window are routine, not an error.
func (s *Structure) ApplyDamage(amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mine != nil {
		// Non-destructible node: hits only roll extraction.
		s.mine.OnHit(s.pos, s.tmpl.LootScatter, s.loots, s.rng)
		return
	}

	if s.state != StateActive {
		if !s.warnedDeadHit {
			s.warnedDeadHit = true
			slog.Warn("damage to non-active structure ignored",
				"structure", s.tmpl.Name,
				"id", s.id,
				"state", s.state)
		}
		return
	}

	s.currentHP -= int32(math.Round(amount))

	for _, d := range loot.RollOnHit(s.rng, s.tmpl.OnHit) {
		s.loots.SpawnResource(d.Kind, d.Count, s.pos.Add(geom.RandPointInDisk(s.rng, s.tmpl.LootScatter)))
	}

	if s.currentHP <= 0 {
		s.currentHP = 0
		s.destroyLocked()
	}
}

// Destroy forces destruction regardless of remaining health (admin/debug
// path). Idempotent like the combat path.
func (s *Structure) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return
	}
	s.currentHP = 0
	s.destroyLocked()
}

// destroyLocked runs the destruction sequence: stockpile drain, destroy
// loot roll, notifications, state transition. Caller holds mu; the state
// guard makes repeated calls no-ops.
func (s *Structure) destroyLocked() {
	if s.state != StateActive {
		return
	}

	// Stockpile first: one spawn request per stored unit, scattered near
	// the structure.
	for _, d := range s.stockpile.Drain() {
		for range d.Count {
			s.loots.SpawnResource(d.Kind, 1, s.pos.Add(geom.RandPointInDisk(s.rng, s.tmpl.LootScatter)))
		}
	}

	for _, d := range loot.RollOnDestroy(s.rng, s.tmpl.OnDestroy) {
		s.loots.SpawnResource(d.Kind, d.Count, s.pos)
	}

	s.events.StructureDestroyed(s)
	if s.tmpl.Kind == KindStronghold {
		s.events.StrongholdDestroyed(s)
	}

	if s.tmpl.CanRespawn && s.respawn != nil {
		s.state = StateAwaitingRespawn
		s.respawn.Reset()
	} else {
		s.state = StateDestroyed
	}

	slog.Info("structure destroyed",
		"structure", s.tmpl.Name,
		"id", s.id,
		"kind", s.tmpl.Kind,
		"state", s.state)
}

// Tick advances the structure by dt. playerDistance is supplied by the
// host's spatial query each tick.
func (s *Structure) Tick(dt time.Duration, playerDistance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateActive:
		if s.garrison != nil {
			s.garrison.Tick(dt, playerDistance, s.pos, s.units, s.rng)
		}
		if s.mine != nil {
			s.mine.Tick(dt, s.pos, s.units, s.rng)
		}

	case StateAwaitingRespawn:
		if s.respawn.Tick(dt, playerDistance) {
			s.respawnLocked()
		}
	}
}

// respawnLocked re-arms the structure: full health, fresh garrison,
// original position. Caller holds mu.
func (s *Structure) respawnLocked() {
	s.currentHP = s.tmpl.MaxHP
	if s.garrison != nil {
		s.garrison.Reset()
	}
	s.pos = s.origin
	s.state = StateActive
	s.warnedDeadHit = false

	s.events.StructureRespawned(s)

	slog.Info("structure respawned",
		"structure", s.tmpl.Name,
		"id", s.id,
		"position", s.pos)
}
