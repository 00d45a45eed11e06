package model

import (
	"sync/atomic"

	"github.com/udisondev/wildraid/internal/geom"
)

// UnitRole classifies what a guard unit does once spawned.
type UnitRole int32

const (
	RoleWorker UnitRole = iota
	RoleArmedWorker
	RoleSpearGuard
	RoleHeavyMelee
	RoleRanged
	RoleSupport
	RoleMiner
)

// String returns the role name.
func (r UnitRole) String() string {
	switch r {
	case RoleWorker:
		return "worker"
	case RoleArmedWorker:
		return "armed_worker"
	case RoleSpearGuard:
		return "spear_guard"
	case RoleHeavyMelee:
		return "heavy_melee"
	case RoleRanged:
		return "ranged"
	case RoleSupport:
		return "support"
	case RoleMiner:
		return "miner"
	default:
		return "unknown"
	}
}

// UnitConfig is the template a structure spawns guard units from.
type UnitConfig struct {
	id   int32
	name string
	role UnitRole
}

// NewUnitConfig creates a unit template.
func NewUnitConfig(id int32, name string, role UnitRole) *UnitConfig {
	return &UnitConfig{id: id, name: name, role: role}
}

// ID returns the template ID.
func (c *UnitConfig) ID() int32 { return c.id }

// Name returns the unit name.
func (c *UnitConfig) Name() string { return c.name }

// Role returns the unit role.
func (c *UnitConfig) Role() UnitRole { return c.role }

// GuardUnit is a live spawned unit. The owning garrison keeps the handle
// and polls Alive to prune dead units; the handle never becomes nil.
type GuardUnit struct {
	objectID uint32
	config   *UnitConfig
	position geom.Point

	alive atomic.Bool
}

// NewGuardUnit creates a live guard unit at the given position.
func NewGuardUnit(objectID uint32, config *UnitConfig, position geom.Point) *GuardUnit {
	u := &GuardUnit{
		objectID: objectID,
		config:   config,
		position: position,
	}
	u.alive.Store(true)
	return u
}

// ObjectID returns the unique object ID.
func (u *GuardUnit) ObjectID() uint32 { return u.objectID }

// Config returns the template this unit was spawned from.
func (u *GuardUnit) Config() *UnitConfig { return u.config }

// Position returns the spawn position.
func (u *GuardUnit) Position() geom.Point { return u.position }

// Alive reports whether the unit is still alive (atomic read).
func (u *GuardUnit) Alive() bool {
	return u.alive.Load()
}

// Kill marks the unit dead. Returns false if it was already dead.
func (u *GuardUnit) Kill() bool {
	return u.alive.CompareAndSwap(true, false)
}
