package main

import (
	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
	"github.com/udisondev/wildraid/internal/structure"
	"github.com/udisondev/wildraid/internal/unit"
)

// unitSpawnerAdapter adapts the unit manager to the structure engine's
// spawn boundary.
type unitSpawnerAdapter struct {
	units *unit.Manager
}

func (a *unitSpawnerAdapter) SpawnGuard(config *model.UnitConfig, pos geom.Point) (structure.UnitHandle, error) {
	return a.units.Spawn(config, pos)
}
