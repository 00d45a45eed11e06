package structure

import (
	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// LootSpawner receives resource-spawn requests. Fire-and-forget: the
// engine never inspects a result. Implemented by the ground-item system.
type LootSpawner interface {
	SpawnResource(kind model.ResourceKind, count int32, pos geom.Point)
}

// Notifier receives structure lifecycle events. Consumed by quest and
// progress tracking outside the engine.
type Notifier interface {
	StructureDestroyed(s *Structure)
	// StrongholdDestroyed fires in addition to StructureDestroyed when the
	// destroyed structure is a stronghold (zone liberated).
	StrongholdDestroyed(s *Structure)
	// StructureRespawned fires when a destroyed stronghold re-arms; hosts
	// use it to restore visibility and collision.
	StructureRespawned(s *Structure)
}

// UnitHandle is a live-unit reference retained by a garrison. The handle
// stays valid after death; Alive turning false is the death signal.
type UnitHandle interface {
	Alive() bool
}

// UnitSpawner creates guard units. Synchronous: the returned handle is
// kept by the garrison to detect death.
type UnitSpawner interface {
	SpawnGuard(config *model.UnitConfig, pos geom.Point) (UnitHandle, error)
}
